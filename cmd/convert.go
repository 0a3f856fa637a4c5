package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/google/go-uefi-guids/guid"
	"github.com/google/go-uefi-guids/guids"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode <name|guid>",
	Short: "Write the EFI_GUID memory layout of a GUID",
	Long: `Write the 16 byte EFI_GUID memory layout of a GUID, with the first three
fields little-endian. The argument may be GUID text or a registered name.
Output is hex unless --raw is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := parseArg(args[0])
		if err != nil {
			return err
		}
		b := g.Bytes()
		log.Infof("encoding %s (%s)", g, guids.Name(g))
		return writeOutput(func(w io.Writer) error {
			if raw {
				_, err := w.Write(b[:])
				return err
			}
			_, err := fmt.Fprintln(w, hex.EncodeToString(b[:]))
			return err
		})
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode [hex]",
	Short: "Read an EFI_GUID memory layout and print the GUID",
	Long: `Read a 16 byte EFI_GUID memory layout and print its canonical text and
registered name. The bytes come from the hex argument, or from --input (stdin
by default) as hex, or as raw bytes with --raw.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) == 1 {
			data, err = decodeHex(args[0])
		} else {
			data, err = readInput()
		}
		if err != nil {
			return err
		}
		g, err := guid.FromSlice(data)
		if err != nil {
			return fmt.Errorf("failed to decode EFI_GUID: %w", err)
		}
		log.Infof("decoded %d bytes", len(data))
		return writeOutput(func(w io.Writer) error {
			_, err := fmt.Fprintf(w, "%s %s\n", g, guids.Name(g))
			return err
		})
	},
}

var uuidCmd = &cobra.Command{
	Use:   "uuid <name|guid>",
	Short: "Compare EFI_GUID and RFC 4122 byte orders",
	Long: `Print a GUID in both binary layouts. EFI_GUID stores the first three
fields little-endian, RFC 4122 stores them big-endian; both share one text
form.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := parseArg(args[0])
		if err != nil {
			return err
		}
		efi := g.Bytes()
		u := g.UUID()
		var b strings.Builder
		fmt.Fprintf(&b, "text:     %s\n", g)
		fmt.Fprintf(&b, "efi:      %s\n", hex.EncodeToString(efi[:]))
		fmt.Fprintf(&b, "rfc4122:  %s\n", hex.EncodeToString(u[:]))
		fmt.Fprintf(&b, "version:  %d\nvariant:  %s\n", u.Version(), u.Variant())
		return writeOutput(func(w io.Writer) error {
			_, err := io.WriteString(w, b.String())
			return err
		})
	},
}

// parseArg accepts a registered name or any GUID text guid.Parse accepts.
func parseArg(arg string) (guid.GUID, error) {
	if e, err := guids.Lookup(arg); err == nil {
		return e.GUID, nil
	}
	return guid.Parse(arg)
}

func decodeHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex input: %w", err)
	}
	return data, nil
}

func readInput() ([]byte, error) {
	in := dataInput()
	defer in.Close()
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if raw {
		return data, nil
	}
	return decodeHex(string(data))
}

func init() {
	RootCmd.AddCommand(encodeCmd)
	RootCmd.AddCommand(decodeCmd)
	RootCmd.AddCommand(uuidCmd)
	for _, c := range []*cobra.Command{encodeCmd, decodeCmd, uuidCmd} {
		addOutputFlag(c)
	}
	addRawFlag(encodeCmd)
	addRawFlag(decodeCmd)
	addInputFlag(decodeCmd)
}
