// Package main is the stackscope CLI: it serves the compatibility resolution
// API and answers one-shot resolution queries against a catalog file.
package main

func main() {
	Execute()
}
