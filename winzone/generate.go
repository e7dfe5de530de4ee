package winzone

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	appLog "ewscal/internal/log"
)

// FetchError reports a network/transport failure while fetching the upstream
// mapping document. It is deliberately distinct from ValidationError: callers
// that merely wanted to confirm freshness (test suites, offline environments)
// can tolerate it without treating it as a correctness failure.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: %v", redactURL(e.URL), e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// ValidationError reports a malformed upstream document. Fatal to the
// generation step only; the in-memory table is never touched.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid windowsZones document: " + e.Reason
}

// Result is the outcome of one generator run: the freshly built table, the
// upstream version tags, and any drift against the pinned versions.
type Result struct {
	TypeVersion  string
	OtherVersion string
	Table        *Table

	// Drift lists human-readable version mismatches against the pinned
	// snapshot versions. Non-empty drift is surfaced for manual review,
	// never treated as an error: upstream evolves on its own cadence.
	Drift []string
}

// Generator regenerates the mapping table from the upstream CLDR document.
// It is an offline maintenance path, invoked rarely and out-of-band from
// request serving; it never mutates the embedded Default table.
type Generator struct {
	client   *http.Client
	url      string
	cacheDir string
}

// cacheEntry holds HTTP cache metadata for the upstream document.
type cacheEntry struct {
	URL          string    `json:"url"`
	ETag         string    `json:"etag,omitempty"`
	LastModified string    `json:"last_modified,omitempty"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewGenerator creates a Generator. An empty url selects CLDRWinzoneURL; an
// empty cacheDir disables the disk cache.
func NewGenerator(url, cacheDir string) *Generator {
	if url == "" {
		url = CLDRWinzoneURL
	}
	return &Generator{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		url:      url,
		cacheDir: cacheDir,
	}
}

// SetClient replaces the HTTP client, mainly for tests.
func (g *Generator) SetClient(c *http.Client) { g.client = c }

// Generate fetches and parses the upstream document in one step.
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	raw, err := g.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return g.Parse(raw)
}

// Fetch retrieves the upstream document, honoring ETag and Last-Modified
// from the disk cache when one is configured. Any transport failure or
// non-2xx status is reported as a *FetchError.
func (g *Generator) Fetch(ctx context.Context) ([]byte, error) {
	cachePath, err := g.cachePath()
	if err != nil {
		return nil, err
	}

	var meta cacheEntry
	var cachedBody []byte
	if cachePath != "" {
		meta, _ = loadCacheMeta(cachePath)
		cachedBody, _ = loadCacheBody(cachePath)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.url, nil)
	if err != nil {
		return nil, &FetchError{URL: g.url, Err: err}
	}
	if meta.ETag != "" {
		req.Header.Set("If-None-Match", meta.ETag)
	}
	if meta.LastModified != "" {
		req.Header.Set("If-Modified-Since", meta.LastModified)
	}

	appLog.Info("winzone fetch start", "url", redactURL(g.url))

	resp, err := g.client.Do(req)
	if err != nil {
		// Network error; if we have a cached body, fall back to it.
		if len(cachedBody) > 0 {
			appLog.Error("winzone fetch network error, using cached body", err, "url", redactURL(g.url))
			return cachedBody, nil
		}
		return nil, &FetchError{URL: g.url, Err: err}
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return nil, &FetchError{URL: g.url, Err: readErr}
		}
		if cachePath != "" {
			newMeta := cacheEntry{
				URL:          g.url,
				ETag:         resp.Header.Get("ETag"),
				LastModified: resp.Header.Get("Last-Modified"),
				UpdatedAt:    time.Now().UTC(),
			}
			if err := saveCache(cachePath, newMeta, body); err != nil {
				// Log but still return the freshly fetched body.
				appLog.Error("winzone cache save failed", err, "url", redactURL(g.url))
			}
		}
		appLog.Info("winzone fetch success", "url", redactURL(g.url), "bytes", len(body))
		return body, nil

	case http.StatusNotModified:
		if len(cachedBody) == 0 {
			return nil, &FetchError{URL: g.url, Err: errors.New("received 304 Not Modified but no cached body available")}
		}
		appLog.Info("winzone fetch not modified; using cache", "url", redactURL(g.url))
		return cachedBody, nil

	default:
		if len(cachedBody) > 0 {
			appLog.Error("winzone fetch non-OK, using cached body", errors.New(resp.Status), "url", redactURL(g.url), "status", resp.StatusCode)
			return cachedBody, nil
		}
		return nil, &FetchError{URL: g.url, Err: errors.New(resp.Status)}
	}
}

// cldrDocument mirrors the windowsZones.xml layout: a mapTimezones element
// carrying the two version attributes and one mapZone per (Windows ID,
// territory) pair, with a space-separated list of IANA keys in "type".
type cldrDocument struct {
	XMLName      xml.Name `xml:"supplementalData"`
	WindowsZones struct {
		MapTimezones struct {
			TypeVersion  string `xml:"typeVersion,attr"`
			OtherVersion string `xml:"otherVersion,attr"`
			MapZones     []struct {
				Other     string `xml:"other,attr"`
				Territory string `xml:"territory,attr"`
				Type      string `xml:"type,attr"`
			} `xml:"mapZone"`
		} `xml:"mapTimezones"`
	} `xml:"windowsZones"`
}

// Parse builds a Result from a raw windowsZones document. Display names come
// from the static Windows display-name table; IDs without a known display
// name get an empty one, which EWS accepts.
func (g *Generator) Parse(raw []byte) (*Result, error) {
	var doc cldrDocument
	if err := xml.Unmarshal(raw, &doc); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	mt := doc.WindowsZones.MapTimezones
	if mt.TypeVersion == "" || mt.OtherVersion == "" {
		return nil, &ValidationError{Reason: "missing typeVersion/otherVersion attributes"}
	}
	if len(mt.MapZones) == 0 {
		return nil, &ValidationError{Reason: "document contains no mapZone elements"}
	}

	entries := make(map[string]WindowsZone)
	for _, mz := range mt.MapZones {
		if mz.Other == "" || mz.Type == "" {
			return nil, &ValidationError{Reason: fmt.Sprintf("mapZone with empty attributes (other=%q type=%q)", mz.Other, mz.Type)}
		}
		name := windowsDisplayNames[mz.Other]
		for _, key := range strings.Fields(mz.Type) {
			entries[key] = WindowsZone{ID: mz.Other, Name: name}
		}
	}

	res := &Result{
		TypeVersion:  mt.TypeVersion,
		OtherVersion: mt.OtherVersion,
		Table:        NewTable(mt.TypeVersion, mt.OtherVersion, entries),
	}
	if mt.TypeVersion != CLDRTypeVersion {
		res.Drift = append(res.Drift, fmt.Sprintf("typeVersion %q differs from pinned %q", mt.TypeVersion, CLDRTypeVersion))
	}
	if mt.OtherVersion != CLDROtherVersion {
		res.Drift = append(res.Drift, fmt.Sprintf("otherVersion %q differs from pinned %q", mt.OtherVersion, CLDROtherVersion))
	}
	return res, nil
}

func (g *Generator) cachePath() (string, error) {
	if g.cacheDir == "" {
		return "", nil
	}
	sum := sha256.Sum256([]byte(g.url))
	dir := filepath.Join(g.cacheDir, hex.EncodeToString(sum[:8]))
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

func loadCacheMeta(cachePath string) (cacheEntry, error) {
	var meta cacheEntry
	data, err := os.ReadFile(filepath.Join(cachePath, "meta.json"))
	if err != nil {
		return meta, err
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return cacheEntry{}, err
	}
	return meta, nil
}

func loadCacheBody(cachePath string) ([]byte, error) {
	return os.ReadFile(filepath.Join(cachePath, "body.xml"))
}

func saveCache(cachePath string, meta cacheEntry, body []byte) error {
	// Write body first so meta never points at a missing body.
	if err := os.WriteFile(filepath.Join(cachePath, "body.xml"), body, 0o600); err != nil {
		return err
	}
	meta.UpdatedAt = time.Now().UTC()
	data, err := json.MarshalIndent(&meta, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(cachePath, "meta.json"), data, 0o600)
}

// redactURL hides the path/query of a URL for logging purposes.
func redactURL(u string) string {
	const redactedSuffix = "/...(redacted)"

	i := strings.Index(u, "://")
	if i == -1 {
		return "url://...(redacted)"
	}
	j := i + 3
	for j < len(u) && u[j] != '/' {
		j++
	}
	return u[:j] + redactedSuffix
}
