package quran

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public API root
	DefaultBaseURL = "https://api.alquran.cloud/v1"
	// DefaultTimeout applies to the HTTP client built by NewClient
	DefaultTimeout = 30 * time.Second

	defaultUserAgent = "alquran-go"
	maxErrorBody     = 512
)

// Client is the network-backed implementation of API.
// It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     zerolog.Logger
}

var _ API = (*Client)(nil)

// NewClient creates a new client for the API rooted at baseURL
func NewClient(baseURL string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("quran api base URL is required")
	}

	options := &clientOptions{userAgent: defaultUserAgent}
	for _, opt := range opts {
		opt(options)
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: options.buildHTTPClient(),
		userAgent:  options.userAgent,
		logger:     logger,
	}, nil
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// BuildURL joins the base URL and an endpoint
func (c *Client) BuildURL(endpoint string) string {
	return c.baseURL + "/" + endpoint
}

// editionsEndpoint builds the endpoint of GetEditions. Filters are added in
// the order format, language, type, each lowercased.
func editionsEndpoint(q EditionQuery) string {
	var params []string
	if q.Format != "" {
		params = append(params, "format="+url.QueryEscape(q.Format.String()))
	}
	if q.Language != "" {
		params = append(params, "language="+url.QueryEscape(q.Language.String()))
	}
	if q.Type != "" {
		params = append(params, "type="+url.QueryEscape(q.Type.Token()))
	}

	if len(params) == 0 {
		return "edition"
	}
	return "edition?" + strings.Join(params, "&")
}

// doRequest performs a GET and returns the body of a successful response
func (c *Client) doRequest(ctx context.Context, op, endpoint string) ([]byte, error) {
	requestURL := c.BuildURL(endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &Error{Kind: KindUnclassified, Op: op, Endpoint: endpoint, Message: "failed to create request", Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("op", op).Str("url", requestURL).Msg("Quran API request failed")
		return nil, transportError(op, endpoint, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().
		Str("op", op).
		Str("url", requestURL).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("Quran API request")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusBadRequest {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, statusError(op, endpoint, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(op, endpoint, fmt.Errorf("failed to read response body: %w", err))
	}

	return body, nil
}

// fetch runs a request and decodes the body into T
func fetch[T any](ctx context.Context, c *Client, op, endpoint string) (*T, error) {
	body, err := c.doRequest(ctx, op, endpoint)
	if err != nil {
		return nil, err
	}

	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		c.logger.Debug().Err(err).Str("op", op).Str("endpoint", endpoint).Msg("Failed to decode Quran API response")
		return nil, decodingError(op, endpoint, err)
	}
	return &out, nil
}

// GetEditions lists editions, optionally filtered by format, language and type
func (c *Client) GetEditions(ctx context.Context, query EditionQuery) (*EditionsResponse, error) {
	return fetch[EditionsResponse](ctx, c, "GetEditions", editionsEndpoint(query))
}

// GetLanguages lists the language codes editions exist in
func (c *Client) GetLanguages(ctx context.Context) (*LanguagesResponse, error) {
	return fetch[LanguagesResponse](ctx, c, "GetLanguages", "edition/language")
}

// GetEditionsByLanguage lists editions in one language
func (c *Client) GetEditionsByLanguage(ctx context.Context, language Language) (*EditionsResponse, error) {
	const op = "GetEditionsByLanguage"
	if language == "" {
		return nil, NewError(op, "language is required")
	}
	return fetch[EditionsResponse](ctx, c, op, "edition/language/"+url.PathEscape(language.String()))
}

// GetEditionTypes lists the edition type tokens
func (c *Client) GetEditionTypes(ctx context.Context) (*EditionTypesResponse, error) {
	return fetch[EditionTypesResponse](ctx, c, "GetEditionTypes", "edition/type")
}

// GetEditionsByType lists editions of one type
func (c *Client) GetEditionsByType(ctx context.Context, editionType EditionType) (*EditionsResponse, error) {
	const op = "GetEditionsByType"
	if editionType == "" {
		return nil, NewError(op, "edition type is required")
	}
	return fetch[EditionsResponse](ctx, c, op, "edition/type/"+url.PathEscape(editionType.Token()))
}

// GetFormats lists the format tokens
func (c *Client) GetFormats(ctx context.Context) (*FormatsResponse, error) {
	return fetch[FormatsResponse](ctx, c, "GetFormats", "edition/format")
}

// GetEditionsByFormat lists editions in one format
func (c *Client) GetEditionsByFormat(ctx context.Context, format Format) (*EditionsResponse, error) {
	const op = "GetEditionsByFormat"
	if format == "" {
		return nil, NewError(op, "format is required")
	}
	return fetch[EditionsResponse](ctx, c, op, "edition/format/"+url.PathEscape(format.String()))
}

// GetQuranText retrieves the complete text of an edition, e.g. "en.asad"
func (c *Client) GetQuranText(ctx context.Context, edition string) (*QuranResponse, error) {
	const op = "GetQuranText"
	if strings.TrimSpace(edition) == "" {
		return nil, NewError(op, "edition identifier is required")
	}
	return fetch[QuranResponse](ctx, c, op, "quran/"+url.PathEscape(edition))
}

// GetQuranAudio retrieves the complete recitation of an audio edition, e.g. "ar.alafasy"
func (c *Client) GetQuranAudio(ctx context.Context, edition string) (*QuranAudioResponse, error) {
	const op = "GetQuranAudio"
	if strings.TrimSpace(edition) == "" {
		return nil, NewError(op, "edition identifier is required")
	}
	return fetch[QuranAudioResponse](ctx, c, op, "quran/"+url.PathEscape(edition))
}
