// Package cmd wires the cobra-based CLI commands for notioncli.
//
// Each command is a thin marshaling layer: it validates arguments, calls the
// API facade and hands the result to the output formatter. The lint and
// formatting rules in .golangci.yml apply to every addition.
package cmd
