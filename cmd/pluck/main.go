package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	pluck "github.com/mizumaki/pluck"
	"github.com/mizumaki/pluck/jsonpath"
	yamlsrc "github.com/mizumaki/pluck/source/yaml"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		dotted   string
		pointer  string
		jpQuery  string
		yamlMode bool
		raw      bool
		maxDepth int
		maxBytes int64
	)
	cmd := &cobra.Command{
		Use:   "pluck [file]",
		Short: "Extract one value from a JSON or YAML document by path",
		Long: `pluck reads a document from a file or stdin and prints the single value
addressed by a path of object keys and array indices. The address can be a
dotted path, an RFC 6901 JSON Pointer, or a singular RFC 9535 JSONPath.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := buildPath(cmd, dotted, pointer, jpQuery)
			if err != nil {
				return err
			}
			data, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			var doc pluck.Document
			if yamlMode {
				doc, err = yamlsrc.FromBytes(data)
			} else {
				doc, err = pluck.ParseBytes(data, pluck.Option{MaxDepth: maxDepth, MaxBytes: maxBytes})
			}
			if err != nil {
				return err
			}
			v, err := pluck.DecodeAt[any](pluck.Root(doc), p)
			if err != nil {
				return err
			}
			return printValue(cmd.OutOrStdout(), v, raw)
		},
	}
	cmd.Flags().StringVarP(&dotted, "path", "p", "", "dotted path, e.g. items.2.price")
	cmd.Flags().StringVar(&pointer, "pointer", "", "RFC 6901 JSON Pointer, e.g. /items/2/price")
	cmd.Flags().StringVarP(&jpQuery, "jsonpath", "j", "", "singular RFC 9535 JSONPath, e.g. $.items[2].price")
	cmd.Flags().BoolVarP(&yamlMode, "yaml", "y", false, "treat input as YAML")
	cmd.Flags().BoolVarP(&raw, "raw", "r", false, "print string results without JSON quoting")
	cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "maximum container nesting for JSON input (0 = unlimited)")
	cmd.Flags().Int64Var(&maxBytes, "max-bytes", 0, "maximum input size in bytes for JSON input (0 = unlimited)")
	return cmd
}

// buildPath resolves the one path flag the caller set. Exactly one of
// --path, --pointer and --jsonpath must be given.
func buildPath(cmd *cobra.Command, dotted, pointer, jpQuery string) (pluck.Path, error) {
	set := 0
	for _, name := range []string{"path", "pointer", "jsonpath"} {
		if cmd.Flags().Changed(name) {
			set++
		}
	}
	if set == 0 {
		return nil, fmt.Errorf("one of --path, --pointer or --jsonpath is required")
	}
	if set > 1 {
		return nil, fmt.Errorf("--path, --pointer and --jsonpath are mutually exclusive")
	}
	switch {
	case cmd.Flags().Changed("pointer"):
		return pluck.ParsePointer(pointer)
	case cmd.Flags().Changed("jsonpath"):
		return jsonpath.Convert(jpQuery)
	default:
		return pluck.ParsePath(dotted)
	}
}

func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 1 && args[0] != "-" {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(cmd.InOrStdin())
}

func printValue(w io.Writer, v any, raw bool) error {
	if raw {
		if s, ok := v.(string); ok {
			_, err := fmt.Fprintln(w, s)
			return err
		}
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
