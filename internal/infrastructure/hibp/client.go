// Package hibp implements k-anonymity breach detection against a
// HaveIBeenPwned-style range API.
//
// Only the first 5 hex characters of the password's SHA-1 digest ever leave
// the process; the remaining 35 are matched locally against the returned
// range. SHA-1 is fixed by the range protocol — it is a public identifier
// scheme here, not key material.
package hibp

import (
	"bufio"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/securevault/security-service/internal/core/domain"
)

const (
	// DefaultBaseURL is the public Pwned Passwords range endpoint.
	DefaultBaseURL = "https://api.pwnedpasswords.com/range"

	// PrefixLength is the number of digest hex chars sent over the network.
	PrefixLength = 5

	defaultTimeout = 5 * time.Second
	userAgent      = "SecureVault/1.0"
)

// Client queries a range-lookup service. It holds no per-call state and is
// safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the range client.
type Option func(*Client)

// WithBaseURL points the client at a different range endpoint (tests, mirrors).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithTimeout bounds the outbound lookup. The default is 5 seconds.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient swaps the underlying HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a range client with a bounded-timeout HTTP client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// digestParts hashes the UTF-8 password with SHA-1 and splits the 40
// uppercase hex chars into the public prefix and the private suffix.
func digestParts(password string) (prefix, suffix string) {
	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(hex.EncodeToString(sum[:]))
	return digest[:PrefixLength], digest[PrefixLength:]
}

// Check reports whether the password appears in the breach corpus.
//
// A lookup that cannot complete — timeout, connection failure, non-success
// status — returns domain.ErrBreachServiceUnavailable. It never degrades to a
// false "not breached".
func (c *Client) Check(ctx context.Context, password string) (domain.BreachResult, error) {
	prefix, suffix := digestParts(password)

	// The request URL carries ONLY the prefix. The suffix and the plaintext
	// password must never appear anywhere in the outbound request.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+prefix, nil)
	if err != nil {
		return domain.BreachResult{}, fmt.Errorf("hibp: building range request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	// Pads the response set so traffic analysis can't infer the prefix bucket size.
	req.Header.Set("Add-Padding", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.BreachResult{}, fmt.Errorf("%w: %v", domain.ErrBreachServiceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.BreachResult{}, fmt.Errorf("%w: range API returned status %d", domain.ErrBreachServiceUnavailable, resp.StatusCode)
	}

	// Lazy line-by-line scan; the response is discarded after this single pass.
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		candidate, countStr, ok := strings.Cut(line, ":")
		if !ok {
			// Individual line corruption is skipped, not fatal — the range
			// format is semi-trusted.
			continue
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			continue
		}

		if strings.EqualFold(strings.TrimSpace(candidate), suffix) {
			return domain.BreachResult{Breached: true, Count: count}, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return domain.BreachResult{}, fmt.Errorf("%w: reading range response: %v", domain.ErrBreachServiceUnavailable, err)
	}

	return domain.BreachResult{Breached: false, Count: 0}, nil
}
