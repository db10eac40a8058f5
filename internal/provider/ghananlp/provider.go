package ghananlp

import "context"

// Translator is the interface the HTTP layer depends on for
// translation.
type Translator interface {
	Translate(ctx context.Context, req TranslationRequest) (*TranslationResult, error)
	Configured() bool
	Name() string
}

// Synthesizer is the interface the HTTP layer depends on for
// text-to-speech.
type Synthesizer interface {
	Synthesize(ctx context.Context, req SpeechRequest) (*SpeechResult, error)
	Configured() bool
	Name() string
}
