package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/go-uefi-guids/guids"
	"github.com/spf13/cobra"
)

var (
	output  string
	input   string
	verbose bool
	format  = formatText
	kinds   []guids.Kind
	raw     bool
)

type outputFormat string

const (
	formatText outputFormat = "text"
	formatJSON outputFormat = "json"
	formatYAML outputFormat = "yaml"
)

var formats = []outputFormat{formatText, formatJSON, formatYAML}

type formatFlag struct {
	value *outputFormat
}

func (f *formatFlag) Set(val string) error {
	for _, allowed := range formats {
		if string(allowed) == val {
			*f.value = allowed
			return nil
		}
	}
	return errors.New("unknown format")
}

func (f *formatFlag) Type() string {
	return "format"
}

func (f *formatFlag) String() string {
	return string(*f.value)
}

// Allowed gives a string list of the permitted format values for this flag.
func (f *formatFlag) Allowed() string {
	out := make([]string, len(formats))
	for i, v := range formats {
		out[i] = string(v)
	}
	return strings.Join(out, ", ")
}

type kindsFlag struct {
	value *[]guids.Kind
}

func (f *kindsFlag) Set(val string) error {
	for _, s := range strings.Split(val, ",") {
		k, err := guids.ParseKind(s)
		if err != nil {
			return err
		}
		*f.value = append(*f.value, k)
	}
	return nil
}

func (f *kindsFlag) Type() string {
	return "kinds"
}

func (f *kindsFlag) String() string {
	out := make([]string, len(*f.value))
	for i, k := range *f.value {
		out[i] = k.String()
	}
	return strings.Join(out, ",")
}

// Disable the "help" subcommand (and just use the -h/--help flags).
// This should be called on all commands with subcommands.
// See https://github.com/spf13/cobra/issues/587 for why this is needed.
func hideHelp(cmd *cobra.Command) {
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
}

// Lets this command specify an output file, for use with dataOutput().
func addOutputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&output, "output", "",
		"output file (defaults to stdout)")
}

// Lets this command specify an input file, for use with dataInput().
func addInputFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&input, "input", "",
		"input file (defaults to stdin)")
}

// Lets this command choose how registry entries are rendered.
func addFormatFlag(cmd *cobra.Command) {
	f := formatFlag{&format}
	cmd.PersistentFlags().Var(&f, "format", "output format: "+f.Allowed())
}

// Lets this command restrict output to some kinds of GUIDs.
func addKindFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().Var(&kindsFlag{&kinds}, "kind",
		"comma separated list of GUID kinds (event-group, protocol, module, hob, sentinel)")
}

// Lets this command write raw bytes instead of hex.
func addRawFlag(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVar(&raw, "raw", false, "read or write raw bytes instead of hex")
}

// alwaysError implements io.ReadWriteCloser by always returning an error
type alwaysError struct {
	error
}

func (ae alwaysError) Write([]byte) (int, error) {
	return 0, ae.error
}

func (ae alwaysError) Read(_ []byte) (n int, err error) {
	return 0, ae.error
}

// Close is a no-op; the error is already reported by Read or Write.
func (ae alwaysError) Close() error {
	return nil
}

// stdStream keeps os.Stdout and os.Stdin open when a command closes them.
type stdStream struct {
	io.ReadWriter
}

func (stdStream) Close() error {
	return nil
}

// Handle to output data file. If there is an issue opening the file, the Writer
// returned will return the error upon any call to Write()
func dataOutput() io.WriteCloser {
	if output == "" {
		return stdStream{os.Stdout}
	}

	file, err := os.Create(output)
	if err != nil {
		return alwaysError{err}
	}
	return file
}

// Handle to input data file. If there is an issue opening the file, the Reader
// returned will return the error upon any call to Read()
func dataInput() io.ReadCloser {
	if input == "" {
		return stdStream{os.Stdin}
	}

	file, err := os.Open(input)
	if err != nil {
		return alwaysError{err}
	}
	return file
}

// writeOutput runs write against the data output and closes it, returning
// the first error from either.
func writeOutput(write func(io.Writer) error) (err error) {
	out := dataOutput()
	defer func() {
		if cerr := out.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close output: %w", cerr)
		}
	}()
	return write(out)
}
