// Package main provides the entry point for the cutwise CLI.
//
// Cutwise renders a finalized cutting solution into the documents a cutting
// floor works from: a per-board layout PDF, a multi-sheet XLSX report, a
// material-usage CSV, and optional QR part labels, DXF outlines, and a
// markdown summary.
//
// Usage:
//
//	cutwise generate <solution.json>
//	cutwise init
//
// See --help for all available options.
package main

// main is the entry point for cutwise.
func main() {
	Execute()
}
