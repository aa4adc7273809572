package viacep

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"address-catalog/internal/models"

	"github.com/goccy/go-json"
	"github.com/karlseguin/ccache/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// DefaultBaseURL is the public ViaCEP endpoint.
const DefaultBaseURL = "https://viacep.com.br"

var (
	// ErrLookup matches every *LookupError.
	ErrLookup = errors.New("viacep: postal code lookup failed")

	ErrEmptyPostalCode = errors.New("postal code has no digits")
	ErrNotFound        = errors.New("postal code not found")
)

// LookupError reports a failed resolution of a postal code. Callers treat all causes alike.
type LookupError struct {
	PostalCode string
	Err        error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("viacep: lookup of %q failed: %v", e.PostalCode, e.Err)
}

func (e *LookupError) Unwrap() error { return e.Err }

func (e *LookupError) Is(target error) bool { return target == ErrLookup }

// response is the JSON body returned by ViaCEP.
// Unknown codes answer 200 with {"erro": true} (older API) or {"erro": "true"}.
type response struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       any    `json:"erro"`
}

func (r response) notFound() bool {
	switch v := r.Erro.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != "" && v != "false"
	default:
		return true
	}
}

// Client resolves Brazilian postal codes (CEP) through ViaCEP.
type Client struct {
	baseURL  string
	http     *http.Client
	cache    *ccache.Cache
	cacheTTL time.Duration
	group    singleflight.Group
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithCache keeps up to size successful lookups for ttl. A non-positive size disables caching.
func WithCache(size int64, ttl time.Duration) Option {
	return func(c *Client) {
		if size <= 0 || ttl <= 0 {
			c.cache = nil
			return
		}
		c.cache = ccache.New(ccache.Configure().MaxSize(size))
		c.cacheTTL = ttl
	}
}

// NewClient creates a new ViaCEP client
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NormalizePostalCode strips every non-digit character from raw.
func NormalizePostalCode(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Resolve looks up the address for postalCode. The code is normalized first.
func (c *Client) Resolve(ctx context.Context, postalCode string) (*models.AddressFragment, error) {
	code := NormalizePostalCode(postalCode)
	if code == "" {
		return nil, &LookupError{PostalCode: postalCode, Err: ErrEmptyPostalCode}
	}

	if c.cache != nil {
		if item := c.cache.Get(code); item != nil && !item.Expired() {
			fragment := item.Value().(models.AddressFragment)
			return &fragment, nil
		}
	}

	// The shared fetch outlives any single caller; the http.Client timeout
	// still bounds it.
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(code, func() (interface{}, error) {
		fragment, err := c.fetch(fetchCtx, code)
		if err != nil {
			return nil, err
		}
		if c.cache != nil {
			c.cache.Set(code, fragment, c.cacheTTL)
		}
		return fragment, nil
	})

	select {
	case <-ctx.Done():
		return nil, &LookupError{PostalCode: code, Err: ctx.Err()}
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		fragment := res.Val.(models.AddressFragment)
		return &fragment, nil
	}
}

func (c *Client) fetch(ctx context.Context, code string) (models.AddressFragment, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.AddressFragment{}, &LookupError{PostalCode: code, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return models.AddressFragment{}, &LookupError{PostalCode: code, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return models.AddressFragment{}, &LookupError{PostalCode: code, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.AddressFragment{}, &LookupError{PostalCode: code, Err: fmt.Errorf("decode response: %w", err)}
	}

	if body.notFound() || (body.Localidade == "" && body.UF == "") {
		return models.AddressFragment{}, &LookupError{PostalCode: code, Err: ErrNotFound}
	}

	log.Debug().Str("cep", code).Str("city", body.Localidade).Msg("postal code resolved")

	return models.AddressFragment{
		PostalCode:   body.CEP,
		Street:       body.Logradouro,
		Neighborhood: body.Bairro,
		City:         body.Localidade,
		Region:       body.UF,
	}, nil
}

// Close stops the cache janitor.
func (c *Client) Close() {
	if c.cache != nil {
		c.cache.Stop()
	}
}
