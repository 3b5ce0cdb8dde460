package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/s0up4200/alquran/config"
	"github.com/s0up4200/alquran/quran"
	"github.com/s0up4200/alquran/qurantest"
)

// isolate runs the test from an empty directory so only the config files it
// writes are loaded
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("ALQURAN_LOGGING_LEVEL", "error")
	t.Chdir(dir)
	return dir
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, stub *qurantest.Stub, args ...string) (string, error) {
	t.Helper()

	prev := newAPI
	newAPI = func(*config.Config, zerolog.Logger) (quran.API, error) { return stub, nil }
	t.Cleanup(func() { newAPI = prev })

	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	isolate(t)
	SetVersion("1.2.3", "2026-01-01")
	t.Cleanup(func() { SetVersion("dev", "unknown") })

	out, err := execute(t, qurantest.NewStub(), "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "alquran 1.2.3 (built 2026-01-01"))
}

func TestEditionsCommand(t *testing.T) {
	isolate(t)

	tests := []struct {
		name     string
		args     []string
		wantCall string
		contains []string
		excludes []string
	}{
		{
			name:     "all",
			args:     []string{"editions"},
			wantCall: "GetEditions",
			contains: []string{"Editions (4):", "en.asad", "ar.alafasy"},
		},
		{
			name:     "format only",
			args:     []string{"editions", "--format", "AUDIO"},
			wantCall: "GetEditionsByFormat",
			contains: []string{"Editions (1):", "ar.alafasy"},
			excludes: []string{"en.asad"},
		},
		{
			name:     "language only",
			args:     []string{"editions", "-l", "fr"},
			wantCall: "GetEditionsByLanguage",
			contains: []string{"fr.hamidullah"},
			excludes: []string{"en.asad"},
		},
		{
			name:     "type only",
			args:     []string{"editions", "-t", "Tafsir"},
			wantCall: "GetEditionsByType",
			contains: []string{"ar.muyassar"},
			excludes: []string{"ar.alafasy"},
		},
		{
			name:     "combined",
			args:     []string{"editions", "--format", "text", "-l", "ar"},
			wantCall: "GetEditions",
			contains: []string{"Editions (1):", "ar.muyassar"},
		},
		{
			name:     "local filter",
			args:     []string{"editions", "--filter", `mentions("muhammad") and language != "fr"`},
			wantCall: "GetEditions",
			contains: []string{"Editions (1):", "en.asad"},
			excludes: []string{"fr.hamidullah"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := qurantest.NewStub()
			out, err := execute(t, stub, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.wantCall}, stub.Calls())
			for _, s := range tt.contains {
				assert.Contains(t, out, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, out, s)
			}
		})
	}
}

func TestEditionsErrors(t *testing.T) {
	isolate(t)

	_, err := execute(t, qurantest.NewStub(), "editions", "--format", "video")
	assert.ErrorContains(t, err, "unknown format")

	_, err = execute(t, qurantest.NewStub(), "editions", "--language", "english")
	assert.ErrorContains(t, err, "invalid language code")

	_, err = execute(t, qurantest.NewStub(), "editions", "--filter", "isText(")
	assert.ErrorContains(t, err, "invalid filter expression")

	_, err = execute(t, qurantest.NewStub(), "editions", "--preset", "nope")
	assert.ErrorContains(t, err, "preset 'nope' not found")
}

func TestEditionsPresetJSON(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(`
filter:
  presets:
    RightToLeft: 'isRTL()'
`), 0o600))

	out, err := execute(t, qurantest.NewStub(), "editions", "--preset", "RightToLeft", "-o", "json")
	require.NoError(t, err)

	var editions []quran.Edition
	require.NoError(t, json.Unmarshal([]byte(out), &editions))
	require.Len(t, editions, 1)
	assert.Equal(t, "ar.muyassar", editions[0].Identifier)
}

func TestListCommands(t *testing.T) {
	isolate(t)

	out, err := execute(t, qurantest.NewStub(), "languages")
	require.NoError(t, err)
	assert.Contains(t, out, "Languages (6):")

	out, err = execute(t, qurantest.NewStub(), "types", "-o", "yaml")
	require.NoError(t, err)
	var types []string
	require.NoError(t, yaml.Unmarshal([]byte(out), &types))
	assert.Contains(t, types, "versebyverse")

	out, err = execute(t, qurantest.NewStub(), "formats")
	require.NoError(t, err)
	assert.Contains(t, out, "• audio")
}

func TestTextCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, qurantest.NewStub(), "text", qurantest.TextEdition)
	require.NoError(t, err)
	assert.Contains(t, out, "2 surahs, 8 ayahs")
	assert.NotContains(t, out, "palm fibre.")

	out, err = execute(t, qurantest.NewStub(), "text", qurantest.TextEdition, "--surah", "111", "--ayahs")
	require.NoError(t, err)
	assert.Contains(t, out, "1 surah, 5 ayahs")
	assert.Contains(t, out, "Around her neck is a rope of palm fibre.")
	assert.NotContains(t, out, "Al-Kawthar")

	out, err = execute(t, qurantest.NewStub(), "text", qurantest.TextEdition, "-s", "108", "-o", "json")
	require.NoError(t, err)
	var surah quran.Surah
	require.NoError(t, json.Unmarshal([]byte(out), &surah))
	assert.Equal(t, 108, surah.Number)
	assert.Len(t, surah.Ayahs, 3)

	_, err = execute(t, qurantest.NewStub(), "text", qurantest.TextEdition, "--surah", "2")
	assert.ErrorContains(t, err, "surah 2 not found")

	_, err = execute(t, qurantest.NewStub(), "text", qurantest.TextEdition, "--surah", "200")
	assert.ErrorContains(t, err, "between 1 and 114")

	_, err = execute(t, qurantest.NewStub(), "text", "xx.none")
	assert.ErrorIs(t, err, quran.ErrTransport)
}

func TestAudioCommand(t *testing.T) {
	isolate(t)

	out, err := execute(t, qurantest.NewStub(), "audio", qurantest.AudioEdition, "--ayahs")
	require.NoError(t, err)
	assert.Contains(t, out, "96. Al-Alaq")
	assert.Contains(t, out, "6124.mp3")
	assert.Contains(t, out, "[sajda: obligatory]")
}

func TestTestCommand(t *testing.T) {
	isolate(t)

	stub := qurantest.NewStub()
	out, err := execute(t, stub, "test")
	require.NoError(t, err)
	assert.Contains(t, out, "✓ languages: 6 entries")
	assert.Contains(t, out, "✓ formats: 2 entries")
	assert.Contains(t, out, "Connection successful")
	assert.ElementsMatch(t, []string{"GetLanguages", "GetEditionTypes", "GetFormats"}, stub.Calls())

	failing := qurantest.NewStub()
	failing.Err = &quran.Error{Kind: quran.KindTransport, Op: "GetFormats", StatusCode: 503}
	out, err = execute(t, failing, "test")
	assert.ErrorContains(t, err, "3 of 3 checks failed")
	assert.Contains(t, out, "✗ formats: transport")
}

func TestOutputFlagValidated(t *testing.T) {
	isolate(t)
	_, err := execute(t, qurantest.NewStub(), "formats", "-o", "xml")
	assert.ErrorContains(t, err, "unknown output format")
}

func TestCurrentVersion(t *testing.T) {
	_, err := currentVersion("dev")
	assert.ErrorContains(t, err, "development build")

	v, err := currentVersion("v1.4.0")
	require.NoError(t, err)
	assert.Equal(t, "1.4.0", v.String())
}

func TestSetupLogger(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	setupLogger(config.LoggingConfig{Level: "warn", Format: "json"}, os.Stderr)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())

	setupLogger(config.LoggingConfig{Level: "bogus", Format: "console"}, os.Stderr)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}
