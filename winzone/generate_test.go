package winzone

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDoc = `<?xml version="1.0" encoding="UTF-8"?>
<supplementalData>
 <windowsZones>
  <mapTimezones otherVersion="7e11800" typeVersion="2021a">
   <mapZone other="Romance Standard Time" territory="001" type="Europe/Paris"/>
   <mapZone other="Romance Standard Time" territory="DK" type="Europe/Copenhagen"/>
   <mapZone other="Romance Standard Time" territory="ES" type="Europe/Madrid Africa/Ceuta"/>
   <mapZone other="UTC" territory="001" type="Etc/UTC"/>
  </mapTimezones>
 </windowsZones>
</supplementalData>`

func Test_Generate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	gen := NewGenerator(srv.URL, "")
	res, err := gen.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "2021a", res.TypeVersion)
	assert.Equal(t, "7e11800", res.OtherVersion)
	assert.Empty(t, res.Drift)
	assert.Equal(t, 5, res.Table.Len())

	wz, ok := res.Table.Lookup("Europe/Copenhagen")
	require.True(t, ok)
	assert.Equal(t, "Romance Standard Time", wz.ID)

	// Space-separated key lists fan out into one entry each.
	wz, ok = res.Table.Lookup("Africa/Ceuta")
	require.True(t, ok)
	assert.Equal(t, "Romance Standard Time", wz.ID)

	// Golden zone wins the reverse index.
	key, ok := res.Table.LookupWindowsID("Romance Standard Time")
	require.True(t, ok)
	assert.Equal(t, "Europe/Paris", key)
}

func Test_Generate_Drift(t *testing.T) {
	doc := `<supplementalData><windowsZones>
 <mapTimezones otherVersion="7e11800" typeVersion="2024a">
  <mapZone other="UTC" territory="001" type="Etc/UTC"/>
 </mapTimezones>
</windowsZones></supplementalData>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(doc))
	}))
	defer srv.Close()

	res, err := NewGenerator(srv.URL, "").Generate(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Drift, 1)
	assert.Contains(t, res.Drift[0], "2024a")
	assert.Contains(t, res.Drift[0], CLDRTypeVersion)
}

func Test_Generate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewGenerator(srv.URL, "").Generate(context.Background())
	require.Error(t, err)

	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))

	// A failed generation never disturbs the embedded table.
	_, ok := Default().Lookup("Europe/Copenhagen")
	assert.True(t, ok)
}

func Test_Generate_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewGenerator(url, "").Generate(context.Background())
	var fe *FetchError
	require.True(t, errors.As(err, &fe))
}

func Test_Parse_Invalid(t *testing.T) {
	gen := NewGenerator("", "")

	_, err := gen.Parse([]byte("<not-even-xml"))
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))

	// Missing version attributes.
	_, err = gen.Parse([]byte(`<supplementalData><windowsZones><mapTimezones>
 <mapZone other="UTC" territory="001" type="Etc/UTC"/>
</mapTimezones></windowsZones></supplementalData>`))
	require.True(t, errors.As(err, &ve))

	// No mapZone elements.
	_, err = gen.Parse([]byte(`<supplementalData><windowsZones>
 <mapTimezones otherVersion="o" typeVersion="t"/>
</windowsZones></supplementalData>`))
	require.True(t, errors.As(err, &ve))

	// Empty attributes on a mapZone.
	_, err = gen.Parse([]byte(`<supplementalData><windowsZones>
 <mapTimezones otherVersion="o" typeVersion="t">
  <mapZone other="" territory="001" type="Etc/UTC"/>
 </mapTimezones>
</windowsZones></supplementalData>`))
	require.True(t, errors.As(err, &ve))
}

func Test_Fetch_ConditionalGet(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		if r.Header.Get("If-None-Match") == `"v1"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"v1"`)
		w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	gen := NewGenerator(srv.URL, t.TempDir())

	res1, err := gen.Generate(context.Background())
	require.NoError(t, err)

	// Second run revalidates and is served from the disk cache.
	res2, err := gen.Generate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(2), hits.Load())
	assert.Equal(t, res1.Table.Len(), res2.Table.Len())
	assert.Equal(t, res1.TypeVersion, res2.TypeVersion)
}

func Test_Fetch_CachedFallbackOnError(t *testing.T) {
	var failing atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if failing.Load() {
			http.Error(w, "down", http.StatusBadGateway)
			return
		}
		w.Write([]byte(sampleDoc))
	}))
	defer srv.Close()

	gen := NewGenerator(srv.URL, t.TempDir())

	_, err := gen.Generate(context.Background())
	require.NoError(t, err)

	// Upstream starts failing; the cached body keeps generation working.
	failing.Store(true)
	res, err := gen.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2021a", res.TypeVersion)
}

func Test_RedactURL(t *testing.T) {
	assert.Equal(t, "https://example.com/...(redacted)", redactURL("https://example.com/secret/path?token=x"))
	assert.Equal(t, "url://...(redacted)", redactURL("not a url"))
}
