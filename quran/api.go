package quran

import (
	"context"
)

// API defines the operations offered by the Quran editions API.
// Every failure is returned as an *Error.
type API interface {
	// GetEditions lists editions, filtered by the non-zero fields of query
	GetEditions(ctx context.Context, query EditionQuery) (*EditionsResponse, error)

	// GetLanguages lists the language codes editions exist in
	GetLanguages(ctx context.Context) (*LanguagesResponse, error)

	// GetEditionsByLanguage lists editions in one language
	GetEditionsByLanguage(ctx context.Context, language Language) (*EditionsResponse, error)

	// GetEditionTypes lists the edition type tokens
	GetEditionTypes(ctx context.Context) (*EditionTypesResponse, error)

	// GetEditionsByType lists editions of one type
	GetEditionsByType(ctx context.Context, editionType EditionType) (*EditionsResponse, error)

	// GetFormats lists the format tokens
	GetFormats(ctx context.Context) (*FormatsResponse, error)

	// GetEditionsByFormat lists editions in one format
	GetEditionsByFormat(ctx context.Context, format Format) (*EditionsResponse, error)

	// GetQuranText retrieves the complete text of an edition
	GetQuranText(ctx context.Context, edition string) (*QuranResponse, error)

	// GetQuranAudio retrieves the complete recitation of an audio edition
	GetQuranAudio(ctx context.Context, edition string) (*QuranAudioResponse, error)
}

// EditionQuery holds the optional filters of GetEditions.
// Zero-valued fields are left out of the request.
type EditionQuery struct {
	Format   Format
	Language Language
	Type     EditionType
}

// IsEmpty reports whether no filter is set
func (q EditionQuery) IsEmpty() bool {
	return q.Format == "" && q.Language == "" && q.Type == ""
}
