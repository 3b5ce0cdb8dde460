package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/alquran/quran"
	"github.com/s0up4200/alquran/qurantest"
)

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", OutputTable, false},
		{"table", OutputTable, false},
		{"JSON", OutputJSON, false},
		{" yaml ", OutputYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOutputFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeJSON(t *testing.T) {
	stub := qurantest.NewStub()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, OutputJSON, stub.Editions[:1]))
	assert.JSONEq(t, `[{
		"identifier": "en.asad",
		"language": "en",
		"name": "Asad",
		"englishName": "Muhammad Asad",
		"format": "text",
		"type": "translation",
		"direction": "ltr"
	}]`, buf.String())
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestEncodeYAMLKeepsSajdaShape(t *testing.T) {
	audio := qurantest.NewStub().Audio[qurantest.AudioEdition]

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, OutputYAML, audio.Data.Surahs[0].Ayahs))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, false, decoded[0]["sajda"])
	assert.Equal(t, map[string]any{"id": 15, "recommended": false, "obligatory": true}, decoded[1]["sajda"])
	assert.Len(t, decoded[1]["audioSecondary"], 2)
}

func TestEncodeTableRejected(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Encode(&buf, OutputTable, []string{"en"}))
}

func TestFormatEditionList(t *testing.T) {
	f := NewConsoleFormatter(false)
	out := f.FormatEditionList(qurantest.NewStub().Editions)

	assert.Contains(t, out, "Editions (4):")
	assert.Contains(t, out, "├── en.asad  Muhammad Asad")
	assert.Contains(t, out, "╰── ar.alafasy  Alafasy")
	assert.Contains(t, out, "Language: ar | Format: text | Type: tafsir | Direction: rtl")
	assert.Contains(t, out, "Language: ar | Format: audio | Type: versebyverse\n")
	assert.NotContains(t, out, "\x1b[")

	assert.Equal(t, "No editions found\n", f.FormatEditionList(nil))
}

func TestFormatTokens(t *testing.T) {
	f := NewConsoleFormatter(false)
	out := f.FormatTokens("Formats", []string{"text", "audio"})
	assert.Contains(t, out, "Formats (2):")
	assert.Contains(t, out, "  • audio\n")
	assert.Equal(t, "No languages found\n", f.FormatTokens("Languages", nil))
}

func TestFormatSurahs(t *testing.T) {
	text := qurantest.NewStub().Text[qurantest.TextEdition]
	f := NewConsoleFormatter(false)

	summary := f.FormatSurahs(text.Data.Edition, text.Data.Surahs, false)
	assert.Contains(t, summary, "Muhammad Asad (en.asad)")
	assert.Contains(t, summary, "2 surahs, 8 ayahs, translation")
	assert.Contains(t, summary, "├── 108. Al-Kawthar (Abundance)  Meccan | 3 ayahs")
	assert.Contains(t, summary, "╰── 111. Al-Masad (The Palm Fibre)  Meccan | 5 ayahs")
	assert.NotContains(t, summary, "al-Kawthar.")

	full := f.FormatSurahs(text.Data.Edition, text.Data.Surahs, true)
	assert.Contains(t, full, "│     1 Indeed, We have granted you al-Kawthar.\n")
	assert.Contains(t, full, "      5 Around her neck is a rope of palm fibre.\n")
}

func TestFormatAudioSurahs(t *testing.T) {
	audio := qurantest.NewStub().Audio[qurantest.AudioEdition]
	f := NewConsoleFormatter(false)

	out := f.FormatAudioSurahs(audio.Data.Edition, audio.Data.Surahs, true)
	assert.Contains(t, out, "╰── 96. Al-Alaq (The Clot)  Meccan | 2 ayahs")
	assert.Contains(t, out, "ar.alafasy/6125.mp3 [sajda: obligatory]")
	assert.Contains(t, out, "+2 secondary")
}

func TestColor(t *testing.T) {
	f := NewConsoleFormatter(true)
	out := f.FormatTokens("Languages", []string{"en"})
	assert.Contains(t, out, ansiBold+"Languages"+ansiReset)

	assert.False(t, ColorEnabled(false, nil))
}

func TestSajdaNote(t *testing.T) {
	assert.Empty(t, sajdaNote(quran.SajdaFlag(false)))
	assert.Equal(t, " [sajda]", sajdaNote(quran.SajdaFlag(true)))
	assert.Equal(t, " [sajda: recommended]", sajdaNote(quran.SajdaObject(quran.SajdaDetail{Recommended: true})))
	assert.Empty(t, sajdaNote(quran.SajdaObject(quran.SajdaDetail{})))
}
