// Package common defines shared sentinel errors and small security helpers
// used across the PAM core and its terminal client. Callers should use
// errors.Is to match these values.
package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound = errors.New("not found")

	// Snapshot load errors.
	ErrParse = errors.New("invalid record format")

	// Envelope errors. Key-setup failures (base64/KDF stage) are kept
	// distinct from cipher failures (wrong password, corrupted blob) so the
	// client can suggest the right fix.
	ErrDecryptionFailed = errors.New("decryption failed, please try another password")
	ErrDecryptionSetup  = errors.New("decryption setup failed, please try another password")
	ErrMissingPassword  = errors.New("no password specified, please specify the password and try again")

	// Record edit errors.
	ErrValidation = errors.New("validation failed")

	// Configuration errors (e.g. an unrecognized duplicate-load strategy).
	ErrConfig = errors.New("configuration error")
)
