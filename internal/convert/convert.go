// Copyright (c) 2025 Arc Engineering
// SPDX-License-Identifier: MIT

// Package convert turns hex-encoded byte strings into standard Base64 text.
package convert

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
)

// ErrInvalidInput is matched by every error Convert and Decode return.
var ErrInvalidInput = errors.New("invalid input")

// InvalidInputError reports a hex string that has odd length or contains a
// character outside 0-9a-fA-F.
type InvalidInputError struct {
	Err error
}

func (e *InvalidInputError) Error() string {
	return ErrInvalidInput.Error() + ": " + e.Err.Error()
}

func (e *InvalidInputError) Unwrap() error { return e.Err }

func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Decode returns the bytes encoded by s, two hex digits per byte.
// Surrounding whitespace and a 0x prefix are not accepted.
func Decode(s string) ([]byte, error) {
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, &InvalidInputError{Err: err}
	}
	return buf, nil
}

// Convert decodes s as hex and returns the padded standard Base64 encoding
// of the result. The empty string converts to the empty string.
func Convert(s string) (string, error) {
	buf, err := Decode(s)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf), nil
}
