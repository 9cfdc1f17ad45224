// Package main is the entry point for the pacreport CLI application.
//
// This file bootstraps the application by invoking the command execution
// logic defined in the cmd package. The pacreport tool renders package
// upgrade reports and search results from resolver-supplied record files.
package main

import "github.com/ajxudir/pacreport/cmd"

// main initializes and runs the pacreport CLI application.
//
// It delegates all command parsing and execution to the cmd package,
// which handles the report, search, and version subcommands.
func main() {
	cmd.Execute()
}
