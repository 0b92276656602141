package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"
)

// readInput returns the contents of --file, or all of stdin
func (o *options) readInput(cmd *cobra.Command) (string, error) {
	if o.file != "" && o.file != "-" {
		b, err := os.ReadFile(o.file)
		if err != nil {
			return "", err
		}

		return string(b), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(cmd.ErrOrStderr(), "reading from stdin, finish with Ctrl-D")
	}

	b, err := io.ReadAll(in)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

// tokens returns the arguments, or the input when there are none, split on commas and whitespace
func (o *options) tokens(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return fields(strings.Join(args, " ")), nil
	}

	s, err := o.readInput(cmd)
	if err != nil {
		return nil, err
	}

	return fields(s), nil
}

func fields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

// print writes v in the selected format; text renders the human readable form
func (o *options) print(cmd *cobra.Command, v interface{}, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()

	switch o.format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}

		_, err = w.Write(b)
		return err
	default:
		text(w)
		return nil
	}
}
