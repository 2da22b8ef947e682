// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"github.com/spf13/cobra"
	"golang.org/x/text/unicode/norm"

	"github.com/danielhkuo/hidden-pages/fingerprint"
)

// RootOptions holds global flags for all commands
type RootOptions struct {
	// NFC normalizes passwords the same way the server does with -nfc
	NFC bool
}

// NewRootCommand creates the root command for hpctl
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "hpctl",
		Short:         "Authoring tools for hidden pages",
		Long:          "Bake passwords into fingerprints and verify puzzle files.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVar(&opts.NFC, "nfc", false, "NFC-normalize passwords before baking")

	cmd.AddCommand(NewBakeCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))
	cmd.AddCommand(NewAlphabetCommand())

	return cmd
}

func (o *RootOptions) bake(password string) string {
	if o.NFC {
		password = norm.NFC.String(password)
	}
	return fingerprint.Bake(password)
}
