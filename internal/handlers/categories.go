package handlers

import (
	"net/http"
)

type CategoryInfo struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type CategoriesResponse struct {
	Categories []CategoryInfo `json:"categories"`
}

// Categories lists the catalog's categories with their technology counts.
func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	catalog := h.res.Catalog()

	response := CategoriesResponse{Categories: []CategoryInfo{}}
	for _, name := range catalog.CategoryNames() {
		response.Categories = append(response.Categories, CategoryInfo{
			Name:  name,
			Count: len(catalog.Technologies[name]),
		})
	}

	h.respondJSON(w, http.StatusOK, response)
}
