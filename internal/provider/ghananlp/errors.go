package ghananlp

import (
	"errors"
	"fmt"
)

// Precondition errors. These fail before any network call is made.
var (
	// ErrMissingText indicates the request carried no text.
	ErrMissingText = errors.New("ghananlp: missing text")
	// ErrNotConfigured indicates no API key is configured.
	ErrNotConfigured = errors.New("ghananlp: api key not configured")
)

// Transport errors. No retry is attempted; both are terminal for the
// request.
var (
	// ErrTimeout indicates the provider did not respond within the bound.
	ErrTimeout = errors.New("ghananlp: request timed out")
	// ErrConnection indicates the provider could not be reached.
	ErrConnection = errors.New("ghananlp: connection failed")
)

// Payload errors. The provider answered 200 but the body was unusable.
var (
	// ErrEmptyTranslation indicates a success response with an empty
	// translation field.
	ErrEmptyTranslation = errors.New("ghananlp: empty translation received")
	// ErrNoAudio indicates a success response with no recognizable
	// audio payload.
	ErrNoAudio = errors.New("ghananlp: no audio data in response")
)

// Access errors, mapped from specific upstream status codes.
var (
	// ErrAuthentication indicates the API key was rejected (401).
	ErrAuthentication = errors.New("ghananlp: authentication failed")
	// ErrForbidden indicates the key lacks access to the endpoint (403).
	ErrForbidden = errors.New("ghananlp: access forbidden")
)

// UnsupportedLanguageError indicates a synthesis request for a language
// outside the TTS-capable set.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("ghananlp: text-to-speech not available for %q", e.Language)
}

// UpstreamError carries a non-success provider response. StatusCode is
// the provider's original HTTP status, preserved so the boundary can
// propagate it unchanged.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ghananlp: upstream status %d: %s", e.StatusCode, e.Message)
}
