// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

package cmd

import (
	"io"

	"github.com/sirupsen/logrus"
)

// NewLogger returns a text logger writing to w. Debug output is enabled only
// when debug is set.
func NewLogger(w io.Writer, debug bool) *logrus.Logger {
	log := logrus.New()
	log.Out = w
	log.Formatter = &logrus.TextFormatter{
		DisableTimestamp: true,
		QuoteEmptyFields: true,
	}
	log.Level = logrus.WarnLevel
	if debug {
		log.Level = logrus.DebugLevel
	}
	return log
}
