package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stackscope/core/internal/parser"
	"github.com/stackscope/core/internal/resolver"
)

var (
	resolveCatalog string
	resolveTarget  string
	resolveSelects []string
	resolveJSON    bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve the valid options for one category under a selection",
	Example: `  stackscope resolve --catalog catalog.json --target stateManagement --select frameworks=React
  stackscope resolve --catalog catalog.json --target hosting --select backends=Express.js --select databases=PostgreSQL`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runResolve(cmd.OutOrStdout(), resolveCatalog, resolveTarget, resolveSelects, resolveJSON)
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveCatalog, "catalog", "", "path to catalog file")
	resolveCmd.Flags().StringVar(&resolveTarget, "target", "", "category to resolve options for")
	resolveCmd.Flags().StringArrayVar(&resolveSelects, "select", nil, "current selection as category=id (repeatable)")
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "emit the result as a JSON array")
	resolveCmd.MarkFlagRequired("catalog")
	resolveCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(out io.Writer, catalogPath, target string, selects []string, jsonOut bool) error {
	selections, err := parseSelections(selects)
	if err != nil {
		return err
	}

	catalog, err := parser.LoadCatalog(catalogPath)
	if err != nil {
		return err
	}

	result := resolver.New(catalog).Options(selections, target)

	if jsonOut {
		return json.NewEncoder(out).Encode(result)
	}
	for _, id := range result.Sorted() {
		fmt.Fprintln(out, id)
	}
	return nil
}

func parseSelections(pairs []string) (map[string]string, error) {
	selections := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		category, id, ok := strings.Cut(pair, "=")
		if !ok || category == "" || id == "" {
			return nil, fmt.Errorf("invalid --select %q: expected category=id", pair)
		}
		selections[category] = id
	}
	return selections, nil
}
