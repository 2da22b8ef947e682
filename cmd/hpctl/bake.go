// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/hidden-pages/fingerprint"
	"github.com/danielhkuo/hidden-pages/puzzles"
)

type bakeOptions struct {
	YAML  bool
	Hints []string
}

// puzzleDocument mirrors the puzzle file layout read by puzzles.Parse
type puzzleDocument struct {
	Puzzles []puzzles.Entry `yaml:"puzzles"`
}

// NewBakeCommand creates the bake command
func NewBakeCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &bakeOptions{}

	cmd := &cobra.Command{
		Use:   "bake <password>...",
		Short: "Print the fingerprint of each password",
		Long: `Bake each password into its fingerprint.

With --yaml the result is a puzzle document ready to paste into a puzzle
file. --hint may be repeated; the n-th hint goes with the n-th password.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBake(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.YAML, "yaml", false, "emit a puzzle document")
	cmd.Flags().StringArrayVar(&opts.Hints, "hint", nil, "hint for the matching password (repeatable)")

	return cmd
}

func runBake(rootOpts *RootOptions, opts *bakeOptions, passwords []string, cmd *cobra.Command) error {
	if len(opts.Hints) > len(passwords) {
		return fmt.Errorf("got %d hints for %d passwords", len(opts.Hints), len(passwords))
	}

	entries := make([]puzzles.Entry, len(passwords))
	for i, pw := range passwords {
		fp := rootOpts.bake(pw)
		if fp == fingerprint.InvalidMarker {
			return fmt.Errorf("password %d is longer than %d characters", i+1, fingerprint.MaxInputLength)
		}
		entries[i].Fingerprint = fp
		if i < len(opts.Hints) {
			entries[i].Hint = opts.Hints[i]
		}
	}

	out := cmd.OutOrStdout()
	if !opts.YAML {
		for _, e := range entries {
			fmt.Fprintln(out, e.Fingerprint)
		}
		return nil
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(puzzleDocument{Puzzles: entries}); err != nil {
		return fmt.Errorf("failed to encode puzzles: %w", err)
	}
	return enc.Close()
}
