/*
Copyright 2026 The Jsnom Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cli implements the jsonlint command: a thin collaborator
// around the json parser that turns byte offsets into line and column
// diagnostics.
package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jsnom/jsnom/go/json"
)

var (
	compact bool
	quiet   bool
)

// Main returns the root jsonlint command.
func Main() *cobra.Command {
	root := &cobra.Command{
		Use:   "jsonlint [file ...]",
		Short: "Validate JSON documents",
		Long: "jsonlint parses each named file (or standard input when no files\n" +
			"are given) as a single JSON document and reports the first syntax\n" +
			"error as file:line:col.",
		Args:          cobra.ArbitraryArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	registerFlags(root.Flags())
	return root
}

func registerFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&compact, "compact", "c", false, "re-emit each valid document in serialized form")
	fs.BoolVarP(&quiet, "quiet", "q", false, "suppress per-file OK output")
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return err
		}
		return lint(cmd, "<stdin>", data)
	}
	for _, name := range args {
		data, err := os.ReadFile(name)
		if err != nil {
			return err
		}
		if err := lint(cmd, name, data); err != nil {
			return err
		}
	}
	return nil
}

func lint(cmd *cobra.Command, name string, data []byte) error {
	v, err := json.ParseBytes(data)
	if err != nil {
		var syn *json.SyntaxError
		if errors.As(err, &syn) {
			line, col := Position(data, syn.Offset)
			return fmt.Errorf("%s:%d:%d: %v", name, line, col, err)
		}
		return fmt.Errorf("%s: %v", name, err)
	}
	switch {
	case compact:
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", v.MarshalTo(nil))
	case !quiet:
		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", name)
	}
	return nil
}

var newline = []byte("\n")

// Position converts a byte offset in data into 1-based line and column
// numbers. Columns count bytes, not runes.
func Position(data []byte, offset int) (line, col int) {
	if offset > len(data) {
		offset = len(data)
	}
	start := bytes.LastIndex(data[:offset], newline) + 1
	line = bytes.Count(data[:start], newline) + 1
	return line, offset - start + 1
}
