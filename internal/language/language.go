// Package language holds the static language tables for the proxy:
// the client-facing catalog, the client-code to GhanaNLP-code mappings
// for translation and synthesis, and the per-language speaker lists.
// Nothing here is mutated at runtime.
package language

// Host is the source language of the UI. It is the only language a
// browser's built-in speech engine can be expected to handle, so it is
// the only code for which the client-side TTS fallback applies.
const Host = "en"

// Descriptor describes one supported language as served to clients.
type Descriptor struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Native string `json:"native"`
	Flag   string `json:"flag"`
	TTS    bool   `json:"tts"`
}

var catalog = []Descriptor{
	{Code: "en", Name: "English", Native: "English", Flag: "🇬🇧", TTS: true},
	{Code: "tw", Name: "Twi (Asante)", Native: "Twi", Flag: "🇬🇭", TTS: true},
	{Code: "ewe", Name: "Ewe", Native: "Eʋegbe", Flag: "🇬🇭", TTS: true},
	{Code: "kikuyu", Name: "Kikuyu", Native: "Gĩkũyũ", Flag: "🇰🇪", TTS: true},
	{Code: "twi_akuapem", Name: "Twi (Akuapem)", Native: "Akuapem", Flag: "🇬🇭", TTS: false},
	{Code: "ga", Name: "Ga", Native: "Gã", Flag: "🇬🇭", TTS: false},
	{Code: "dagbani", Name: "Dagbani", Native: "Dagbanli", Flag: "🇬🇭", TTS: false},
	{Code: "fante", Name: "Fante", Native: "Mfantse", Flag: "🇬🇭", TTS: false},
}

// Catalog returns the client-facing language list. Callers must not
// modify the returned slice.
func Catalog() []Descriptor {
	return catalog
}

// translationCodes maps client-facing codes to GhanaNLP translation
// codes.
var translationCodes = map[string]string{
	"en":          "en",
	"tw":          "tw", // Asante Twi
	"twi_akuapem": "ak", // Akuapem Twi
	"ewe":         "ee",
	"ga":          "gaa",
	"dagbani":     "dag",
	"fante":       "fat",
	"kikuyu":      "ki",
}

// ProviderCode maps a client-facing language code to the GhanaNLP
// translation code. Unmapped codes pass through unchanged so that
// codes the provider adds later keep working without a deploy; the
// provider rejects pairs it does not know and that error is surfaced
// to the client verbatim.
func ProviderCode(code string) string {
	if mapped, ok := translationCodes[code]; ok {
		return mapped
	}
	return code
}

// synthesisCodes maps client-facing codes to GhanaNLP TTS codes. Only
// these languages have synthesis voices.
var synthesisCodes = map[string]string{
	"tw":     "tw",
	"ewe":    "ee",
	"kikuyu": "ki",
}

// SynthesisCode maps a client-facing code to the GhanaNLP TTS code.
// The second return is false when the language has no synthesis
// support.
func SynthesisCode(code string) (string, bool) {
	mapped, ok := synthesisCodes[code]
	return mapped, ok
}

// speakers lists the available GhanaNLP voices per language, best
// quality first.
var speakers = map[string][]string{
	"tw":     {"twi_speaker_4", "twi_speaker_5", "twi_speaker_6", "twi_speaker_7", "twi_speaker_8", "twi_speaker_9"},
	"ewe":    {"ewe_speaker_3", "ewe_speaker_4"},
	"kikuyu": {"kikuyu_speaker_1", "kikuyu_speaker_5"},
}

// DefaultSpeaker returns the default voice for a language: always the
// first entry of its speaker list, never randomized.
func DefaultSpeaker(code string) (string, bool) {
	list, ok := speakers[code]
	if !ok || len(list) == 0 {
		return "", false
	}
	return list[0], true
}

// Speakers returns every voice available for a language.
func Speakers(code string) []string {
	return speakers[code]
}
