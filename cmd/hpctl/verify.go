// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/hidden-pages/fingerprint"
	"github.com/danielhkuo/hidden-pages/puzzles"
)

// ErrNoMatch is returned when a password unlocks no page
var ErrNoMatch = errors.New("password does not unlock any page")

// NewVerifyCommand creates the verify command
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	var puzzlesPath string

	cmd := &cobra.Command{
		Use:   "verify <password>",
		Short: "Report which page a password unlocks",
		Long: `Bake the password and look it up in a puzzle file.

Without --puzzles the built-in puzzle set is used. Every fingerprint in the
file is also checked against the alphabet.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(rootOpts, puzzlesPath, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&puzzlesPath, "puzzles", "", "puzzle file (default: built-in set)")

	return cmd
}

func runVerify(rootOpts *RootOptions, path, password string, cmd *cobra.Command) error {
	dict := puzzles.Default()
	if path != "" {
		var err error
		if dict, err = puzzles.Load(path); err != nil {
			return err
		}
	}

	out := cmd.OutOrStdout()
	enc := fingerprint.DefaultEncoder()
	for i, e := range dict.Entries() {
		if !enc.Valid(e.Fingerprint) {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: page %d fingerprint %q can never be unlocked\n", i+1, e.Fingerprint)
		}
	}

	fp := rootOpts.bake(password)
	entry, ok := dict.Lookup(fp)
	if !ok {
		return fmt.Errorf("%w (fingerprint %s)", ErrNoMatch, fp)
	}

	fmt.Fprintf(out, "page %d: %s\n", dict.Index(fp)+1, entry.Fingerprint)
	if entry.Hint != "" {
		fmt.Fprintf(out, "hint: %s\n", entry.Hint)
	}
	return nil
}
