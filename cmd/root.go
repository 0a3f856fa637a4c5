// Package cmd contains a CLI to inspect UEFI GUIDs and the known GUID registry.
package cmd

import (
	"io"

	"github.com/google/logger"
	"github.com/spf13/cobra"
)

// RootCmd is the entrypoint for guidtool.
var RootCmd = &cobra.Command{
	Use: "guidtool",
	Long: `Inspect UEFI GUIDs

Converts GUIDs between their canonical text form, the EFI_GUID memory layout
and RFC 4122 byte order, and resolves GUIDs against a registry of well-known
firmware event groups, protocols, modules and HOB markers.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogger(cmd.ErrOrStderr())
	},
}

var log *logger.Logger

// initLogger points the package logger at w when --verbose is set and
// discards everything otherwise. Failures are reported through the returned
// errors, not the log.
func initLogger(w io.Writer) {
	if log != nil {
		log.Close()
	}
	if !verbose {
		w = io.Discard
	}
	log = logger.Init("guidtool", false, false, w)
}

func init() {
	hideHelp(RootCmd)
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"log details of each step to stderr")
}
