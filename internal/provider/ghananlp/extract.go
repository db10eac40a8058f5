package ghananlp

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// The provider has changed its response shapes over time. Extraction
// is an ordered list of strategies tried in sequence; the first match
// wins.

// translationFields are the legacy field names a translation may
// arrive under, in precedence order.
var translationFields = []string{"out", "translation", "translatedText"}

// extractTranslation pulls the translated text out of a 200 body.
// Accepts an object carrying one of the legacy field names, a bare
// JSON string, or any other JSON value (rendered as text). Returns ""
// when nothing usable is found.
func extractTranslation(body []byte) string {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err == nil {
		for _, field := range translationFields {
			raw, ok := obj[field]
			if !ok {
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				return s
			}
		}
		return ""
	}

	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return s
	}

	var v any
	if err := json.Unmarshal(body, &v); err == nil && v != nil {
		return fmt.Sprint(v)
	}
	return ""
}

// audioSizeThreshold: a 200 body larger than this is treated as raw
// audio even without a definitive content-type. TTS clips are tens of
// kilobytes; JSON error shells are not.
const audioSizeThreshold = 1000

// isBinaryAudio reports whether a response body is raw audio, by
// content-type or by size.
func isBinaryAudio(contentType string, body []byte) bool {
	ct := strings.ToLower(contentType)
	return strings.Contains(ct, "audio") ||
		strings.Contains(ct, "octet-stream") ||
		len(body) > audioSizeThreshold
}

// inline audio and redirect-URL field names, in precedence order.
var (
	audioDataFields = []string{"audio", "audio_content", "audio_base64"}
	audioURLFields  = []string{"audio_url", "url"}
)

// extractInlineAudio returns base64 audio embedded in a JSON body
// under one of the legacy field names.
func extractInlineAudio(body []byte) (string, bool) {
	return firstStringField(body, audioDataFields)
}

// extractAudioURL returns a redirect URL to fetch the audio from.
func extractAudioURL(body []byte) (string, bool) {
	return firstStringField(body, audioURLFields)
}

func firstStringField(body []byte, fields []string) (string, bool) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return "", false
	}
	for _, field := range fields {
		raw, ok := obj[field]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s, true
		}
	}
	return "", false
}

// encodeAudio converts raw audio bytes to the text-safe transport
// encoding used in the JSON envelope. base64.StdEncoding round-trips
// the exact original bytes.
func encodeAudio(audio []byte) string {
	return base64.StdEncoding.EncodeToString(audio)
}
