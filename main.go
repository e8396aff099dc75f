// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/yourorg/hex2base64/internal/cmd"
)

func main() {
	log := cmd.NewLogger(os.Stderr, false)
	root := cmd.NewRootCmd(log)
	if err := root.Execute(); err != nil {
		log.WithField("cmd", "hex2base64").Error(err)
		os.Exit(1)
	}
}
