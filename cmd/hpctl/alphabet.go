// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/hidden-pages/fingerprint"
)

// NewAlphabetCommand creates the alphabet command
func NewAlphabetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "alphabet",
		Short: "Print the fingerprint alphabet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := fingerprint.DefaultAlphabet()
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%d symbols\n", a, a.Size())
			return nil
		},
	}
}
