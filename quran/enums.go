package quran

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
)

// Format represents the content format of an edition.
// ParseFormat accepts only text and audio, but decoded payloads keep
// whatever token the server sent, so unknown formats pass through verbatim.
type Format string

const (
	// FormatText is a written edition
	FormatText Format = "text"
	// FormatAudio is a recitation
	FormatAudio Format = "audio"
)

// String returns the API token for the format
func (f Format) String() string {
	return strings.ToLower(string(f))
}

// ParseFormat parses a format token, ignoring case
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatAudio:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (must be 'text' or 'audio')", s)
	}
}

// Language is a lowercase language code as served by the API.
// Any code is a valid Language; the constants below are the common ones.
type Language string

const (
	LanguageEn Language = "en" // English
	LanguageFr Language = "fr" // French
	LanguageAr Language = "ar" // Arabic
	LanguageUr Language = "ur" // Urdu
	LanguageID Language = "id" // Indonesian
	LanguageTr Language = "tr" // Turkish
	LanguageRu Language = "ru" // Russian
	LanguageDe Language = "de" // German
	LanguageEs Language = "es" // Spanish
	LanguageFa Language = "fa" // Persian
	LanguageBn Language = "bn" // Bengali
	LanguageMs Language = "ms" // Malay
)

// String returns the API token for the language
func (l Language) String() string {
	return strings.ToLower(string(l))
}

// ParseLanguage parses a language code, ignoring case
func ParseLanguage(s string) (Language, error) {
	code := strings.ToLower(strings.TrimSpace(s))
	if len(code) < 2 || len(code) > 3 {
		return "", fmt.Errorf("invalid language code %q", s)
	}
	for _, r := range code {
		if r < 'a' || r > 'z' {
			return "", fmt.Errorf("invalid language code %q", s)
		}
	}
	return Language(code), nil
}

// EditionType classifies an edition. Tokens the API adds later are carried
// verbatim as "other" edition types.
type EditionType string

const (
	EditionTypeVerseByVerse    EditionType = "versebyverse"
	EditionTypeTranslation     EditionType = "translation"
	EditionTypeTafsir          EditionType = "tafsir"
	EditionTypeQuran           EditionType = "quran"
	EditionTypeTransliteration EditionType = "transliteration"
)

var knownEditionTypes = []EditionType{
	EditionTypeVerseByVerse,
	EditionTypeTranslation,
	EditionTypeTafsir,
	EditionTypeQuran,
	EditionTypeTransliteration,
}

// OtherEditionType wraps a token that has no named constant
func OtherEditionType(token string) EditionType {
	return EditionType(token)
}

// ParseEditionType maps a token to a known edition type, ignoring case.
// Unknown tokens are returned verbatim.
func ParseEditionType(s string) EditionType {
	lower := strings.ToLower(s)
	for _, t := range knownEditionTypes {
		if string(t) == lower {
			return t
		}
	}
	return OtherEditionType(s)
}

// IsKnown reports whether t is one of the named edition types, ignoring
// case like ParseEditionType
func (t EditionType) IsKnown() bool {
	token := t.Token()
	for _, k := range knownEditionTypes {
		if token == string(k) {
			return true
		}
	}
	return false
}

// UnmarshalJSON decodes a token with ParseEditionType, so known types in
// any case become their constants
func (t *EditionType) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return fmt.Errorf("edition type: %w", err)
	}
	*t = ParseEditionType(token)
	return nil
}

// IsOther reports whether t carries a token without a named constant
func (t EditionType) IsOther() bool {
	return !t.IsKnown()
}

// String returns the token as carried, which for known types is lowercase
func (t EditionType) String() string {
	return string(t)
}

// Token returns the lowercase form used in request URLs
func (t EditionType) Token() string {
	return strings.ToLower(string(t))
}

// RevelationType tells where a surah was revealed
type RevelationType string

const (
	RevelationMeccan  RevelationType = "Meccan"
	RevelationMedinan RevelationType = "Medinan"
)
