package quran

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration collected before the Client is built.
type clientOptions struct {
	httpClient *http.Client
	timeout    time.Duration
	hasTimeout bool
	userAgent  string
}

// WithHTTPClient sets the HTTP client used for every request.
// The client must be safe for concurrent use. It is never modified; when
// combined with WithTimeout the Client works on a copy.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *clientOptions) {
		if httpClient != nil {
			o.httpClient = httpClient
		}
	}
}

// WithTimeout sets the HTTP client timeout, regardless of option order.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		o.timeout = timeout
		o.hasTimeout = true
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// buildHTTPClient returns the client a Client should use. A caller-supplied
// client is copied before its timeout is changed.
func (o *clientOptions) buildHTTPClient() *http.Client {
	if o.httpClient == nil {
		timeout := DefaultTimeout
		if o.hasTimeout {
			timeout = o.timeout
		}
		return &http.Client{Timeout: timeout}
	}

	if !o.hasTimeout {
		return o.httpClient
	}
	hc := *o.httpClient
	hc.Timeout = o.timeout
	return &hc
}
