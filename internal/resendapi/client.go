// Package resendapi wraps the Resend SDK calls rskeys makes.
package resendapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/resend/resend-go/v2"
)

// KeyLister is the part of the Resend API keys service used here.
// resend.ApiKeysSvc satisfies it.
type KeyLister interface {
	ListWithContext(ctx context.Context) (resend.ListApiKeysResponse, error)
}

// Options configures a Client.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

// Client is an authenticated handle on the Resend API.
type Client struct {
	keys KeyLister
}

// New builds a Client authenticated with apiKey. Each call gets its own SDK
// instance; nothing is shared through package state.
func New(apiKey string, opts Options) (*Client, error) {
	httpClient := &http.Client{Timeout: opts.Timeout}
	sdk := resend.NewCustomClient(httpClient, apiKey)

	if opts.BaseURL != "" {
		u, err := parseBaseURL(opts.BaseURL)
		if err != nil {
			return nil, err
		}
		sdk.BaseURL = u
	}
	if opts.UserAgent != "" {
		sdk.UserAgent = opts.UserAgent
	}

	return &Client{keys: sdk.ApiKeys}, nil
}

// NewWithLister wraps an existing lister, typically a test fake.
func NewWithLister(l KeyLister) *Client {
	return &Client{keys: l}
}

// RemoteError is any failure of a remote call: transport, auth, or decoding.
type RemoteError struct {
	Op  string
	Err error
}

// Error returns the SDK message unchanged.
func (e *RemoteError) Error() string { return e.Err.Error() }

func (e *RemoteError) Unwrap() error { return e.Err }

// Outcome is the result of listing keys: exactly one of Listing or Err is set.
type Outcome struct {
	Listing *resend.ListApiKeysResponse
	Err     *RemoteError
}

// OK reports whether the call succeeded.
func (o Outcome) OK() bool { return o.Err == nil }

// ListKeys fetches all API keys on the account.
func (c *Client) ListKeys(ctx context.Context) Outcome {
	resp, err := c.keys.ListWithContext(ctx)
	if err != nil {
		return Outcome{Err: &RemoteError{Op: "list api keys", Err: err}}
	}
	return Outcome{Listing: &resp}
}

func parseBaseURL(raw string) (*url.URL, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("api base url %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("api base url %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("api base url %q: missing host", raw)
	}
	// The SDK resolves relative endpoint paths against this URL.
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u, nil
}
