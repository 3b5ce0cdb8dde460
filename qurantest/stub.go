package qurantest

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/s0up4200/alquran/quran"
)

// Stub is a fixed-response implementation of quran.API.
//
// Edition listings are filtered from Editions the way the server filters
// them. Text and Audio are keyed by edition identifier; an unknown
// identifier yields a 404 transport error. Err, when set, is returned by
// every operation.
type Stub struct {
	Editions     []quran.Edition
	Languages    []string
	EditionTypes []string
	Formats      []string
	Text         map[string]*quran.QuranResponse
	Audio        map[string]*quran.QuranAudioResponse
	Err          error

	mu    sync.Mutex
	calls []string
}

var _ quran.API = (*Stub)(nil)

// NewStub returns a Stub loaded with the package fixtures
func NewStub() *Stub {
	var (
		editions  quran.EditionsResponse
		languages quran.LanguagesResponse
		types     quran.EditionTypesResponse
		formats   quran.FormatsResponse
		text      quran.QuranResponse
		audio     quran.QuranAudioResponse
	)

	mustDecode(EditionsFixture, &editions)
	mustDecode(LanguagesFixture, &languages)
	mustDecode(TypesFixture, &types)
	mustDecode(FormatsFixture, &formats)
	mustDecode(QuranTextFixture, &text)
	mustDecode(QuranAudioFixture, &audio)

	return &Stub{
		Editions:     editions.Data,
		Languages:    languages.Data,
		EditionTypes: types.Data,
		Formats:      formats.Data,
		Text:         map[string]*quran.QuranResponse{TextEdition: &text},
		Audio:        map[string]*quran.QuranAudioResponse{AudioEdition: &audio},
	}
}

func mustDecode(name string, v any) {
	if err := json.Unmarshal(Fixture(name), v); err != nil {
		panic(fmt.Sprintf("qurantest: decode fixture %s: %v", name, err))
	}
}

// Calls returns the names of the operations invoked so far, in order
func (s *Stub) Calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.calls))
	copy(out, s.calls)
	return out
}

func (s *Stub) record(op string) error {
	s.mu.Lock()
	s.calls = append(s.calls, op)
	s.mu.Unlock()
	return s.Err
}

func ok[T any](data T) *quran.Response[T] {
	return &quran.Response[T]{Code: http.StatusOK, Status: "OK", Data: data}
}

func (s *Stub) filter(q quran.EditionQuery) []quran.Edition {
	out := make([]quran.Edition, 0, len(s.Editions))
	for _, e := range s.Editions {
		if q.Format != "" && e.Format.String() != q.Format.String() {
			continue
		}
		if q.Language != "" && e.Language.String() != q.Language.String() {
			continue
		}
		if q.Type != "" && e.Type.Token() != q.Type.Token() {
			continue
		}
		out = append(out, e)
	}
	return out
}

func notFound(op, endpoint string) error {
	return &quran.Error{
		Kind:       quran.KindTransport,
		Op:         op,
		Endpoint:   endpoint,
		StatusCode: http.StatusNotFound,
		Message:    "Not found.",
	}
}

func (s *Stub) GetEditions(ctx context.Context, query quran.EditionQuery) (*quran.EditionsResponse, error) {
	if err := s.record("GetEditions"); err != nil {
		return nil, err
	}
	return ok(s.filter(query)), nil
}

func (s *Stub) GetLanguages(ctx context.Context) (*quran.LanguagesResponse, error) {
	if err := s.record("GetLanguages"); err != nil {
		return nil, err
	}
	return ok(s.Languages), nil
}

func (s *Stub) GetEditionsByLanguage(ctx context.Context, language quran.Language) (*quran.EditionsResponse, error) {
	if err := s.record("GetEditionsByLanguage"); err != nil {
		return nil, err
	}
	return ok(s.filter(quran.EditionQuery{Language: language})), nil
}

func (s *Stub) GetEditionTypes(ctx context.Context) (*quran.EditionTypesResponse, error) {
	if err := s.record("GetEditionTypes"); err != nil {
		return nil, err
	}
	return ok(s.EditionTypes), nil
}

func (s *Stub) GetEditionsByType(ctx context.Context, editionType quran.EditionType) (*quran.EditionsResponse, error) {
	if err := s.record("GetEditionsByType"); err != nil {
		return nil, err
	}
	return ok(s.filter(quran.EditionQuery{Type: editionType})), nil
}

func (s *Stub) GetFormats(ctx context.Context) (*quran.FormatsResponse, error) {
	if err := s.record("GetFormats"); err != nil {
		return nil, err
	}
	return ok(s.Formats), nil
}

func (s *Stub) GetEditionsByFormat(ctx context.Context, format quran.Format) (*quran.EditionsResponse, error) {
	if err := s.record("GetEditionsByFormat"); err != nil {
		return nil, err
	}
	return ok(s.filter(quran.EditionQuery{Format: format})), nil
}

func (s *Stub) GetQuranText(ctx context.Context, edition string) (*quran.QuranResponse, error) {
	if err := s.record("GetQuranText"); err != nil {
		return nil, err
	}
	resp, found := s.Text[edition]
	if !found {
		return nil, notFound("GetQuranText", "quran/"+edition)
	}
	return resp, nil
}

func (s *Stub) GetQuranAudio(ctx context.Context, edition string) (*quran.QuranAudioResponse, error) {
	if err := s.record("GetQuranAudio"); err != nil {
		return nil, err
	}
	resp, found := s.Audio[edition]
	if !found {
		return nil, notFound("GetQuranAudio", "quran/"+edition)
	}
	return resp, nil
}
