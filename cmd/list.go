package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/go-uefi-guids/guids"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the well-known GUID registry",
	Long: `List every registered GUID with its name, kind and description.

Use --kind to restrict the listing and --format to choose between an aligned
text table, JSON and YAML.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := filterKinds(guids.All(), kinds)
		log.Infof("listing %d of %d registered GUIDs", len(entries), len(guids.All()))
		return writeOutput(func(w io.Writer) error { return writeEntries(w, entries) })
	},
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <name|guid>",
	Short: "Resolve a registered name or GUID",
	Long: `Resolve a registered name (DXE_CORE or DXECore) or GUID text to its
registry entry. Lookup fails for GUIDs that are not registered.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := guids.Resolve(args[0])
		if err != nil {
			return err
		}
		log.Infof("resolved %q to %s", args[0], e.Name)
		return writeOutput(func(w io.Writer) error { return writeEntries(w, []guids.Entry{e}) })
	},
}

func filterKinds(entries []guids.Entry, want []guids.Kind) []guids.Entry {
	if len(want) == 0 {
		return entries
	}
	var out []guids.Entry
	for _, e := range entries {
		for _, k := range want {
			if e.Kind == k {
				out = append(out, e)
				break
			}
		}
	}
	return out
}

func writeEntries(w io.Writer, entries []guids.Entry) error {
	switch format {
	case formatJSON:
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal registry as JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("failed to marshal registry as YAML: %w", err)
		}
		return enc.Close()
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, e := range entries {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.GUID, e.Name, e.Kind, e.Description)
		}
		return tw.Flush()
	}
}

func init() {
	RootCmd.AddCommand(listCmd)
	RootCmd.AddCommand(lookupCmd)
	for _, c := range []*cobra.Command{listCmd, lookupCmd} {
		addOutputFlag(c)
		addFormatFlag(c)
	}
	addKindFlag(listCmd)
}
