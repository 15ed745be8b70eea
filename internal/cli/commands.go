// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/gaissmai/radix"
	"github.com/gaissmai/radix/textkey"
)

func newGetCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value of key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			val, ok := a.ix.Get(args[0])
			if !ok {
				return fmt.Errorf("key %q: %w", args[0], ErrNotFound)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), val)
			return err
		},
	}
}

func newPrefixCommand(a *app) *cobra.Command {
	var unsorted bool

	cmd := &cobra.Command{
		Use:   "prefix <prefix>",
		Short: "List all entries starting with prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			view := a.ix.Prefix(args[0])

			seq := view.AllSorted()
			if unsorted {
				seq = view.All()
			}

			w := cmd.OutOrStdout()
			for key, val := range seq {
				if _, err := fmt.Fprintf(w, "%s\t%s\n", textkey.Join(key), val); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unsorted, "unsorted", false, "List in insertion order")

	return cmd
}

func newLongestCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "longest <key>",
		Short: "Print the longest indexed prefix of key and its value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix, val, ok := a.ix.Longest(args[0])
			if !ok {
				return fmt.Errorf("prefix of %q: %w", args[0], ErrNotFound)
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", prefix, val)
			return err
		},
	}
}

func newTreeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree [prefix]",
		Short: "Print the index, or the part starting with prefix, as tree diagram",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.subtree(args).Fprint(cmd.OutOrStdout())
		},
	}
}

func newExportCommand(a *app) *cobra.Command {
	var indent bool

	cmd := &cobra.Command{
		Use:   "export [prefix]",
		Short: "Export the index, or the part starting with prefix, as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := a.subtree(args).MarshalJSON()
			if err != nil {
				return err
			}

			if indent {
				buf := new(bytes.Buffer)
				if err := json.Indent(buf, data, "", "  "); err != nil {
					return err
				}
				data = buf.Bytes()
			}

			return writeLine(cmd.OutOrStdout(), data)
		},
	}

	cmd.Flags().BoolVar(&indent, "indent", false, "Indent the JSON output")

	return cmd
}

func newStatsCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the shape of the index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := a.ix.Tree().Stats()

			_, err := fmt.Fprintf(cmd.OutOrStdout(),
				"entries\t%d\nnodes\t%d\nmax-depth\t%d\nmax-fanout\t%d\nmax-key-len\t%d\n",
				s.Entries, s.Nodes, s.MaxDepth, s.MaxFanout, s.MaxKeyLen)
			return err
		},
	}
}

// subtree returns the whole index or the view of args[0].
func (a *app) subtree(args []string) *radix.Node[string, string] {
	if len(args) == 0 {
		return a.ix.Tree()
	}
	return a.ix.Prefix(args[0])
}

func writeLine(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
