// Package main is the entry point for the goaliescout CLI tool, which
// analyzes hockey tracking and event exports and ranks player movement.
package main

import "github.com/UtahNetScout/GoalieScout/cmd"

func main() {
	cmd.Execute()
}
