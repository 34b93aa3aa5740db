package domain

import (
	"errors"
	"regexp"
	"strings"
)

// ErrInvalidAddress is returned when an input does not look like an
// Ethereum address. It is the only error the analysis pipeline surfaces
// to its caller.
var ErrInvalidAddress = errors.New("invalid address format")

var addressPattern = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)

// ValidateAddress checks that s is a well-formed Ethereum address.
// It must pass before any network call is issued.
func ValidateAddress(s string) error {
	if !addressPattern.MatchString(strings.TrimSpace(s)) {
		return ErrInvalidAddress
	}
	return nil
}

// NormalizeAddress returns the canonical lowercase form used for every
// equality check in the pipeline.
func NormalizeAddress(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
