// Package luhnkit provides the command-line interface for the luhnkit tool.
// It configures subcommands (validate, generate, explain, detect, batch, log,
// interactive, config), parses flags, and executes the selected command.
//
// Typical usage from a main package:
//
//	package main
//	import "github.com/varalys/luhnkit/cmd/luhnkit"
//	func main() { luhnkit.Execute() }
package luhnkit
