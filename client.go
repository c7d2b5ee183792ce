// Package youversion is a typed client for the YouVersion Developer API:
// Bible translations, verse of the day, and the artwork that goes with it.
package youversion

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/youversion-community/go-youversion/internal/api"
	"github.com/youversion-community/go-youversion/internal/retry"
	"github.com/youversion-community/go-youversion/internal/types"
)

// DefaultBaseURL is the production endpoint of the Developer API, v1.0.
const DefaultBaseURL = "https://developers.youversionapi.com/1.0"

const tokenHeader = "X-Youversion-Developer-Token"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client talks to the YouVersion Developer API. It holds the developer
// token (write-once), the selected language and translation, and a lazily
// populated cache of supported translations.
//
// A Client is not safe for concurrent mutation: the language and version
// setters and the version cache are unsynchronized. Callers that share a
// Client across goroutines must serialize access, or use one Client per
// goroutine.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
	retry   retry.Config

	language Language
	version  types.BibleVersion
	versions map[string]types.BibleVersion // abbreviation -> version, nil until first fetch
}

// New constructs a Client with the given developer token. Defaults:
// English, King James Version, 30 second HTTP timeout, production base
// URL. Additional knobs via functional options.
func New(token string, opts ...Option) (*Client, error) {
	if token == "" {
		return nil, errors.New("token cannot be empty")
	}

	c := &Client{
		baseURL:  DefaultBaseURL,
		token:    token,
		http:     &http.Client{Timeout: 30 * time.Second},
		language: LanguageEnglish,
		version:  types.KJV(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap the transport so every request carries the fixed headers.
	c.wrapTransport()

	return c, nil
}

// wrapTransport installs the header transport above whatever transport is
// currently configured, so debug logging (if any) sees the final request.
func (c *Client) wrapTransport() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &headerTransport{base: base, token: c.token}
}

// headerTransport attaches the developer token, the JSON accept header,
// and a fresh request id to every outgoing request.
type headerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	cloned := req.Clone(req.Context())
	cloned.Header.Set(tokenHeader, t.token)
	cloned.Header.Set("X-Request-Id", uuid.NewString())
	if cloned.Header.Get("Accept") == "" {
		cloned.Header.Set("Accept", "application/json")
	}
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Language selection
// --------------------------------------------------------------------

// Language returns the currently selected language.
func (c *Client) Language() Language { return c.language }

// SetLanguage selects the request language. It accepts either a language
// tag ("en") or a display name ("English") and normalizes to the tag;
// anything else fails with ErrUnsupportedLanguage.
func (c *Client) SetLanguage(codeOrName string) error {
	lang, err := ParseLanguage(codeOrName)
	if err != nil {
		return err
	}
	c.language = lang
	return nil
}

// --------------------------------------------------------------------
// Bible version selection
// --------------------------------------------------------------------

// BibleVersion returns the currently selected translation.
func (c *Client) BibleVersion() BibleVersion { return c.version }

// SetBibleVersion selects a translation directly. A value without a
// translation id fails with ErrInvalidBibleVersion.
func (c *Client) SetBibleVersion(v BibleVersion) error {
	if v.IsZero() {
		return invalidBibleVersionError(v.Abbreviation)
	}
	c.version = v
	return nil
}

// SetBibleVersionByAbbreviation selects a translation by its abbreviation
// ("KJV", "ASV"), resolved through the version cache. Unknown
// abbreviations fail with ErrInvalidBibleVersion.
func (c *Client) SetBibleVersionByAbbreviation(ctx context.Context, abbreviation string) error {
	v, err := c.GetBibleVersion(ctx, abbreviation)
	if err != nil {
		return err
	}
	c.version = v
	return nil
}

// BibleVersions returns the supported translations keyed by abbreviation.
// The first call fetches the versions resource and caches the result for
// the lifetime of the Client; later calls never touch the network. When
// the payload repeats an abbreviation the first occurrence wins.
func (c *Client) BibleVersions(ctx context.Context) (map[string]BibleVersion, error) {
	if len(c.versions) > 0 {
		versionCacheHitsTotal.Inc()
		return c.versions, nil
	}
	versionCacheMissesTotal.Inc()

	var list []types.BibleVersion
	err := retry.Do(ctx, c.retry, func(ctx context.Context) error {
		l, err := api.ListVersions(ctx, c.http, c.baseURL, string(c.language))
		if err == nil {
			list = l
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	m := make(map[string]BibleVersion, len(list))
	for _, v := range list {
		if _, ok := m[v.Abbreviation]; !ok {
			m[v.Abbreviation] = v
		}
	}
	c.versions = m
	return m, nil
}

// SupportsBibleVersion reports whether the abbreviation resolves to a
// supported translation. It never returns an error; lookup failures of
// any kind read as unsupported.
func (c *Client) SupportsBibleVersion(ctx context.Context, abbreviation string) bool {
	_, err := c.GetBibleVersion(ctx, abbreviation)
	return err == nil
}

// GetBibleVersion resolves an abbreviation through the version cache,
// triggering the lazy fetch when needed. Unknown abbreviations fail with
// ErrInvalidBibleVersion.
func (c *Client) GetBibleVersion(ctx context.Context, abbreviation string) (BibleVersion, error) {
	versions, err := c.BibleVersions(ctx)
	if err != nil {
		return BibleVersion{}, err
	}
	v, ok := versions[abbreviation]
	if !ok {
		return BibleVersion{}, invalidBibleVersionError(abbreviation)
	}
	return v, nil
}

// --------------------------------------------------------------------
// Verse of the day
// --------------------------------------------------------------------

// VerseOfTheDay fetches the verse for the given day of the year, rendered
// in the selected translation. Days outside 1..366 fail with
// ErrDayOutOfBounds before any network call.
func (c *Client) VerseOfTheDay(ctx context.Context, day int) (*VerseOfTheDay, error) {
	if err := types.CheckDay(day); err != nil {
		return nil, err
	}
	var out *types.VerseOfTheDay
	err := retry.Do(ctx, c.retry, func(ctx context.Context) error {
		v, err := api.GetVerseOfTheDay(ctx, c.http, c.baseURL, string(c.language), day, c.version)
		if err == nil {
			out = v
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// VerseOfTheDayToday fetches the verse for the current day of the year.
func (c *Client) VerseOfTheDayToday(ctx context.Context) (*VerseOfTheDay, error) {
	return c.VerseOfTheDay(ctx, CurrentDayOfYear())
}

// AllVersesOfTheDay fetches the bulk verse-of-the-day resource.
//
// limit and page are accepted for interface stability but are NOT sent to
// the server: the upstream API does not implement pagination yet (see
// lifechurch/youversion-public-api-docs issue 7). The response's paging
// fields are surfaced in the returned list so callers are ready when
// upstream ships it.
func (c *Client) AllVersesOfTheDay(ctx context.Context, limit, page int) (*VerseOfTheDayList, error) {
	_ = limit
	_ = page
	var out *types.VerseOfTheDayList
	err := retry.Do(ctx, c.retry, func(ctx context.Context) error {
		l, err := api.ListVerseOfTheDay(ctx, c.http, c.baseURL, string(c.language), c.version)
		if err == nil {
			out = l
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// --------------------------------------------------------------------
// Image download
// --------------------------------------------------------------------

// DownloadImage streams the image at the given dimensions to disk and
// returns the path written. An empty savePath derives the name from the
// verse reference (slugified, ".jpg") in the working directory.
// Dimensions above MaxImageSize fail with ErrInvalidImageSize.
func (c *Client) DownloadImage(ctx context.Context, img Image, width, height int, savePath string) (string, error) {
	u, err := img.URL(width, height)
	if err != nil {
		return "", err
	}
	if savePath == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		savePath = filepath.Join(wd, img.Filename())
	}

	path, err := api.DownloadImage(ctx, c.http, u, savePath)
	if err != nil {
		return "", err
	}
	imageDownloadsTotal.Inc()
	log.Debug().Str("url", u).Str("path", path).Msg("image downloaded")
	return path, nil
}
