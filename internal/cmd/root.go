// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourorg/hex2base64/internal/convert"
)

// NewRootCmd creates the root command for hex2base64.
func NewRootCmd(log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hex2base64 <hex>",
		Short: "Convert a hex string to Base64",
		Long: `Convert a hexadecimal byte string to its standard Base64 encoding.

The argument must have even length and contain only 0-9, a-f and A-F.
Whitespace and a 0x prefix are rejected. The result uses the RFC 4648
alphabet with = padding and is printed on a single line.`,
		Example: `  hex2base64 4d616e
  hex2base64 00`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			out, err := convert.Convert(in)
			if err != nil {
				log.WithField("length", len(in)).Debug("rejected hex input")
				return err
			}
			log.WithField("bytes", len(in)/2).Debug("decoded hex input")
			fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	return cmd
}
