// Package main provides the entry point for the lever CLI tool.
package main

import (
	"github.com/talentops/lever-go/cmd/lever/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
