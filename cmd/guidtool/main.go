// Package main is a binary wrapper package around cmd.
package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/google/go-uefi-guids/cmd"
)

// GoReleaser will populates those fields
// https://goreleaser.com/cookbooks/using-main.version/
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	uuidVersion = "unknown"
	uuidModule  = "github.com/google/uuid"
)

func main() {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, dep := range info.Deps {
			if dep.Path == uuidModule {
				uuidVersion = dep.Version
			}
		}
	}

	cmd.RootCmd.Version = fmt.Sprintf("%s, commit %s, built at %s\n- google/uuid version %s",
		version, commit, date, uuidVersion)

	if cmd.RootCmd.Execute() != nil {
		os.Exit(1)
	}
}
