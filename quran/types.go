package quran

import (
	"errors"
	"fmt"

	json "github.com/goccy/go-json"
)

// Response is the envelope shared by every API response.
// Code and Status are passed through as received.
type Response[T any] struct {
	Code   uint32 `json:"code" yaml:"code"`
	Status string `json:"status" yaml:"status"`
	Data   T      `json:"data" yaml:"data"`
}

// UnmarshalJSON decodes the envelope, requiring code, status and data
func (r *Response[T]) UnmarshalJSON(data []byte) error {
	var raw struct {
		Code   *uint32         `json:"code"`
		Status *string         `json:"status"`
		Data   json.RawMessage `json:"data"`
	}
	if isNull(data) {
		return errors.New("response: expected object, got null")
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("response: %w", err)
	}

	switch {
	case raw.Code == nil:
		return &MissingFieldError{Type: "response", Field: "code"}
	case raw.Status == nil:
		return &MissingFieldError{Type: "response", Field: "status"}
	case isNull(raw.Data):
		return &MissingFieldError{Type: "response", Field: "data"}
	}

	var payload T
	if err := json.Unmarshal(raw.Data, &payload); err != nil {
		return fmt.Errorf("response data: %w", err)
	}

	r.Code = *raw.Code
	r.Status = *raw.Status
	r.Data = payload
	return nil
}

type (
	// EditionsResponse lists editions
	EditionsResponse = Response[[]Edition]
	// LanguagesResponse lists language codes
	LanguagesResponse = Response[[]string]
	// EditionTypesResponse lists edition type tokens
	EditionTypesResponse = Response[[]string]
	// FormatsResponse lists format tokens
	FormatsResponse = Response[[]string]
	// QuranResponse holds a complete text edition
	QuranResponse = Response[QuranData]
	// QuranAudioResponse holds a complete audio edition
	QuranAudioResponse = Response[QuranAudioData]
)

// Edition describes one published edition (a translation, a recitation, ...)
type Edition struct {
	Identifier  string      `json:"identifier" yaml:"identifier"`
	Language    Language    `json:"language" yaml:"language"`
	Name        string      `json:"name" yaml:"name"`
	EnglishName string      `json:"englishName" yaml:"englishName"`
	Format      Format      `json:"format" yaml:"format"` // unknown tokens kept verbatim
	Type        EditionType `json:"type" yaml:"type"`
	Direction   *string     `json:"direction" yaml:"direction"`
}

// UnmarshalJSON decodes an edition; direction is the only optional field
func (e *Edition) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "edition",
		"identifier", "language", "name", "englishName", "format", "type"); err != nil {
		return err
	}
	type alias Edition
	return json.Unmarshal(data, (*alias)(e))
}

// IsRTL reports whether the edition is written right to left
func (e *Edition) IsRTL() bool {
	return e.Direction != nil && *e.Direction == "rtl"
}

// QuranEdition is the edition descriptor nested in text and audio payloads
type QuranEdition struct {
	Identifier  string      `json:"identifier" yaml:"identifier"`
	Language    Language    `json:"language" yaml:"language"`
	Name        string      `json:"name" yaml:"name"`
	EnglishName string      `json:"englishName" yaml:"englishName"`
	Format      Format      `json:"format" yaml:"format"` // unknown tokens kept verbatim
	Type        EditionType `json:"type" yaml:"type"`
}

func (e *QuranEdition) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "quran edition",
		"identifier", "language", "name", "englishName", "format", "type"); err != nil {
		return err
	}
	type alias QuranEdition
	return json.Unmarshal(data, (*alias)(e))
}

var ayahFields = []string{
	"number", "text", "numberInSurah", "juz", "manzil", "page", "ruku", "hizbQuarter", "sajda",
}

// Ayah is a single verse with its structural locators
type Ayah struct {
	Number        int       `json:"number" yaml:"number"`
	Text          string    `json:"text" yaml:"text"`
	NumberInSurah int       `json:"numberInSurah" yaml:"numberInSurah"`
	Juz           int       `json:"juz" yaml:"juz"`
	Manzil        int       `json:"manzil" yaml:"manzil"`
	Page          int       `json:"page" yaml:"page"`
	Ruku          int       `json:"ruku" yaml:"ruku"`
	HizbQuarter   int       `json:"hizbQuarter" yaml:"hizbQuarter"`
	Sajda         SajdaType `json:"sajda" yaml:"sajda"`
}

func (a *Ayah) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "ayah", ayahFields...); err != nil {
		return err
	}
	type alias Ayah
	return json.Unmarshal(data, (*alias)(a))
}

// AudioAyah is an ayah with its recitation URLs
type AudioAyah struct {
	Number         int       `json:"number" yaml:"number"`
	Text           string    `json:"text" yaml:"text"`
	NumberInSurah  int       `json:"numberInSurah" yaml:"numberInSurah"`
	Juz            int       `json:"juz" yaml:"juz"`
	Manzil         int       `json:"manzil" yaml:"manzil"`
	Page           int       `json:"page" yaml:"page"`
	Ruku           int       `json:"ruku" yaml:"ruku"`
	HizbQuarter    int       `json:"hizbQuarter" yaml:"hizbQuarter"`
	Audio          string    `json:"audio" yaml:"audio"`
	AudioSecondary []string  `json:"audioSecondary" yaml:"audioSecondary"`
	Sajda          SajdaType `json:"sajda" yaml:"sajda"`
}

func (a *AudioAyah) UnmarshalJSON(data []byte) error {
	fields := append(ayahFields[:len(ayahFields):len(ayahFields)], "audio", "audioSecondary")
	if err := requireFields(data, "audio ayah", fields...); err != nil {
		return err
	}
	type alias AudioAyah
	return json.Unmarshal(data, (*alias)(a))
}

var surahFields = []string{
	"number", "name", "englishName", "englishNameTranslation", "revelationType", "ayahs",
}

// Surah is a chapter of a text edition
type Surah struct {
	Number                 int            `json:"number" yaml:"number"`
	Name                   string         `json:"name" yaml:"name"`
	EnglishName            string         `json:"englishName" yaml:"englishName"`
	EnglishNameTranslation string         `json:"englishNameTranslation" yaml:"englishNameTranslation"`
	RevelationType         RevelationType `json:"revelationType" yaml:"revelationType"`
	Ayahs                  []Ayah         `json:"ayahs" yaml:"ayahs"`
}

func (s *Surah) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "surah", surahFields...); err != nil {
		return err
	}
	type alias Surah
	return json.Unmarshal(data, (*alias)(s))
}

// AyahCount returns the number of ayahs in the surah
func (s *Surah) AyahCount() int {
	return len(s.Ayahs)
}

// AudioSurah is a chapter of an audio edition
type AudioSurah struct {
	Number                 int            `json:"number" yaml:"number"`
	Name                   string         `json:"name" yaml:"name"`
	EnglishName            string         `json:"englishName" yaml:"englishName"`
	EnglishNameTranslation string         `json:"englishNameTranslation" yaml:"englishNameTranslation"`
	RevelationType         RevelationType `json:"revelationType" yaml:"revelationType"`
	Ayahs                  []AudioAyah    `json:"ayahs" yaml:"ayahs"`
}

func (s *AudioSurah) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "audio surah", surahFields...); err != nil {
		return err
	}
	type alias AudioSurah
	return json.Unmarshal(data, (*alias)(s))
}

// AyahCount returns the number of ayahs in the surah
func (s *AudioSurah) AyahCount() int {
	return len(s.Ayahs)
}

// QuranData is the payload of a text edition
type QuranData struct {
	Surahs  []Surah      `json:"surahs" yaml:"surahs"`
	Edition QuranEdition `json:"edition" yaml:"edition"`
}

func (d *QuranData) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "quran data", "surahs", "edition"); err != nil {
		return err
	}
	type alias QuranData
	return json.Unmarshal(data, (*alias)(d))
}

// AyahCount returns the number of ayahs across all surahs
func (d *QuranData) AyahCount() int {
	var n int
	for i := range d.Surahs {
		n += d.Surahs[i].AyahCount()
	}
	return n
}

// Surah returns the surah with the given number
func (d *QuranData) Surah(number int) (*Surah, bool) {
	for i := range d.Surahs {
		if d.Surahs[i].Number == number {
			return &d.Surahs[i], true
		}
	}
	return nil, false
}

// QuranAudioData is the payload of an audio edition
type QuranAudioData struct {
	Surahs  []AudioSurah `json:"surahs" yaml:"surahs"`
	Edition QuranEdition `json:"edition" yaml:"edition"`
}

func (d *QuranAudioData) UnmarshalJSON(data []byte) error {
	if err := requireFields(data, "quran audio data", "surahs", "edition"); err != nil {
		return err
	}
	type alias QuranAudioData
	return json.Unmarshal(data, (*alias)(d))
}

// AyahCount returns the number of ayahs across all surahs
func (d *QuranAudioData) AyahCount() int {
	var n int
	for i := range d.Surahs {
		n += d.Surahs[i].AyahCount()
	}
	return n
}

// Surah returns the surah with the given number
func (d *QuranAudioData) Surah(number int) (*AudioSurah, bool) {
	for i := range d.Surahs {
		if d.Surahs[i].Number == number {
			return &d.Surahs[i], true
		}
	}
	return nil, false
}
