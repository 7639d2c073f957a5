// Package report renders diagnostics for people and machines: colored
// terminal text, markdown, and a JSON report with a severity summary.
package report
