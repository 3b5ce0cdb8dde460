package filter

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/alquran/quran"
	"github.com/s0up4200/alquran/qurantest"
)

func identifiers(editions []quran.Edition) []string {
	out := make([]string, len(editions))
	for i, e := range editions {
		out[i] = e.Identifier
	}
	return out
}

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{"field comparison", `language == "en"`, false},
		{"helpers", `isText() and not isRTL()`, false},
		{"mentions", `mentions("asad") or hasPrefix(identifier, "fr.")`, false},
		{"empty", "   ", true},
		{"syntax error", `language == "en`, true},
		{"unknown name", `year > 2000`, true},
		{"not boolean", `identifier`, true},
	}

	c := NewExprCompiler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := c.Compile(tt.expression)
			if tt.wantErr {
				var compErr *CompilationError
				require.ErrorAs(t, err, &compErr)
				assert.Nil(t, f)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestMatch(t *testing.T) {
	editions := qurantest.NewStub().Editions
	c := NewExprCompiler()

	tests := []struct {
		expression string
		want       []string
	}{
		{`language == "ar"`, []string{"ar.muyassar", "ar.alafasy"}},
		{`isAudio()`, []string{"ar.alafasy"}},
		{`isRTL()`, []string{"ar.muyassar"}},
		{`direction == ""`, []string{"ar.alafasy"}},
		{`editionType == "translation" and format == "text"`, []string{"en.asad", "fr.hamidullah"}},
		{`mentions("MUHAMMAD")`, []string{"en.asad", "fr.hamidullah"}},
		{`hasPrefix(englishName, "king")`, []string{"ar.muyassar"}},
		{`isKnownType() and language in ["en", "fr"]`, []string{"en.asad", "fr.hamidullah"}},
	}

	for _, tt := range tests {
		t.Run(tt.expression, func(t *testing.T) {
			f, err := c.Compile(tt.expression)
			require.NoError(t, err)

			var got []string
			for _, e := range editions {
				if f.Match(e) {
					got = append(got, e.Identifier)
				}
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOtherEditionType(t *testing.T) {
	c := NewExprCompiler()
	f, err := c.Compile(`editionType == "wordbyword" and not isKnownType()`)
	require.NoError(t, err)

	assert.True(t, f.Match(quran.Edition{Identifier: "en.wbw", Type: quran.OtherEditionType("WordByWord")}))
	assert.False(t, f.Match(quran.Edition{Identifier: "en.asad", Type: quran.EditionTypeTranslation}))
}

func TestCustomFunctions(t *testing.T) {
	c := NewExprCompiler(WithFunctions(map[string]any{
		"preferred": func(id string) bool { return id == "en.asad" },
	}))
	f, err := c.Compile(`preferred(identifier)`)
	require.NoError(t, err)

	assert.True(t, f.Match(quran.Edition{Identifier: "en.asad"}))
	assert.False(t, f.Match(quran.Edition{Identifier: "fr.hamidullah"}))
}

func TestRunError(t *testing.T) {
	c := NewExprCompiler(WithFunctions(map[string]any{
		"explode": func() (bool, error) { return false, errors.New("boom") },
	}))
	f, err := c.Compile(`explode()`)
	require.NoError(t, err)

	_, err = f.Run(quran.Edition{Identifier: "en.asad"})
	var evalErr *EvaluationError
	require.ErrorAs(t, err, &evalErr)
	assert.Equal(t, "en.asad", evalErr.Identifier)
	assert.False(t, f.Match(quran.Edition{Identifier: "en.asad"}))
}

func TestCompilerCache(t *testing.T) {
	c := NewExprCompiler(WithCache(2))

	first, err := c.Compile(`isText()`)
	require.NoError(t, err)
	again, err := c.Compile(` isText() `)
	require.NoError(t, err)
	assert.Same(t, first, again)
	assert.Equal(t, 1, c.Size())

	_, err = c.Compile(`isAudio()`)
	require.NoError(t, err)
	_, err = c.Compile(`isRTL()`)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Size())

	evicted, err := c.Compile(`isText()`)
	require.NoError(t, err)
	assert.NotSame(t, first, evicted)

	c.Clear()
	assert.Equal(t, 0, c.Size())
	assert.Equal(t, 0, NewExprCompiler().Size())
}

func TestConcurrentEvaluator(t *testing.T) {
	editions := make([]quran.Edition, 1000)
	for i := range editions {
		format := quran.FormatText
		if i%3 == 0 {
			format = quran.FormatAudio
		}
		editions[i] = quran.Edition{Identifier: fmt.Sprintf("xx.e%04d", i), Format: format}
	}

	f, err := NewExprCompiler().Compile(`isAudio()`)
	require.NoError(t, err)

	var want []string
	for _, e := range editions {
		if e.Format == quran.FormatAudio {
			want = append(want, e.Identifier)
		}
	}

	t.Run("chunked keeps order", func(t *testing.T) {
		ev := NewConcurrentEvaluator(WithWorkers(4), WithChunkSize(64))
		got, err := ev.Apply(context.Background(), f, editions)
		require.NoError(t, err)
		assert.Equal(t, want, identifiers(got))
	})

	t.Run("small list runs inline", func(t *testing.T) {
		ev := NewConcurrentEvaluator()
		got, err := ev.Apply(context.Background(), f, editions[:10])
		require.NoError(t, err)
		assert.Equal(t, []string{"xx.e0000", "xx.e0003", "xx.e0006", "xx.e0009"}, identifiers(got))
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := NewConcurrentEvaluator(WithChunkSize(64)).Apply(ctx, f, editions)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("evaluation error stops the run", func(t *testing.T) {
		bad, err := NewExprCompiler(WithFunctions(map[string]any{
			"explode": func() (bool, error) { return false, errors.New("boom") },
		})).Compile(`explode()`)
		require.NoError(t, err)

		_, err = NewConcurrentEvaluator(WithChunkSize(64)).Apply(context.Background(), bad, editions)
		var evalErr *EvaluationError
		assert.ErrorAs(t, err, &evalErr)
	})
}

func TestManager(t *testing.T) {
	ctx := context.Background()
	editions := qurantest.NewStub().Editions

	m := NewManager()
	require.NoError(t, m.RegisterAll(map[string]string{
		"arabic": `language == "ar"`,
		"audio":  `isAudio()`,
	}))
	assert.Equal(t, []string{"arabic", "audio"}, m.Names())

	got, err := m.ApplyPreset(ctx, "audio", editions)
	require.NoError(t, err)
	assert.Equal(t, []string{"ar.alafasy"}, identifiers(got))

	_, err = m.ApplyPreset(ctx, "missing", editions)
	assert.ErrorIs(t, err, ErrPresetNotFound)

	t.Run("bad preset registers nothing", func(t *testing.T) {
		m := NewManager()
		err := m.RegisterAll(map[string]string{
			"good": `isText()`,
			"bad":  `isText(`,
		})
		var compErr *CompilationError
		require.ErrorAs(t, err, &compErr)
		assert.Empty(t, m.Names())
	})

	t.Run("register replaces", func(t *testing.T) {
		require.NoError(t, m.Register("arabic", `language == "fr"`))
		f, ok := m.Preset("arabic")
		require.True(t, ok)
		assert.Equal(t, `language == "fr"`, f.Expression())

		adhoc, err := m.Compile(`isRTL()`)
		require.NoError(t, err)
		got, err := m.Apply(ctx, adhoc, editions)
		require.NoError(t, err)
		assert.Equal(t, []string{"ar.muyassar"}, identifiers(got))
	})
}
