package qurantest

import (
	"embed"
	"fmt"
)

//go:embed fixtures/*.json
var fixtures embed.FS

// Fixture names
const (
	EditionsFixture    = "editions.json"
	LanguagesFixture   = "languages.json"
	TypesFixture       = "types.json"
	FormatsFixture     = "formats.json"
	QuranTextFixture   = "quran_text.json"
	QuranAudioFixture  = "quran_audio.json"
	MissingDataFixture = "missing_data.json"
)

// Identifiers of the editions served by the text and audio fixtures
const (
	TextEdition  = "en.asad"
	AudioEdition = "ar.alafasy"
)

// Fixture returns the raw bytes of a named fixture. It panics on an unknown
// name, which is always a bug in the calling test.
func Fixture(name string) []byte {
	data, err := fixtures.ReadFile("fixtures/" + name)
	if err != nil {
		panic(fmt.Sprintf("qurantest: unknown fixture %q: %v", name, err))
	}
	return data
}

// DefaultRoutes maps endpoints, relative to the base URL, to fixtures
func DefaultRoutes() map[string][]byte {
	editions := Fixture(EditionsFixture)
	return map[string][]byte{
		"edition":                  editions,
		"edition/language":         Fixture(LanguagesFixture),
		"edition/type":             Fixture(TypesFixture),
		"edition/format":           Fixture(FormatsFixture),
		"edition/language/en":      editions,
		"edition/type/translation": editions,
		"edition/format/text":      editions,
		"quran/" + TextEdition:     Fixture(QuranTextFixture),
		"quran/" + AudioEdition:    Fixture(QuranAudioFixture),
	}
}
