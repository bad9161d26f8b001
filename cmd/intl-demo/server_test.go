package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/intl/pkg/intl"
	"github.com/dmitrymomot/intl/pkg/logger"
	"github.com/dmitrymomot/intl/pkg/userlang"
)

var testNow = time.Date(2024, time.January, 2, 15, 4, 5, 0, time.UTC)

func newTestServer(t *testing.T, cs checks) *server {
	t.Helper()

	catalog, err := catalogOption(context.Background(), intl.S3Config{})
	require.NoError(t, err)

	base, err := intl.NewConfig(
		intl.WithDefaultLocale("es"),
		intl.WithAvailableLocales("es", "en"),
		catalog,
	)
	require.NoError(t, err)

	return &server{
		base:        base,
		cache:       intl.NewFormatterCache(),
		store:       userlang.NewMemory(),
		log:         logger.NewNope(),
		now:         func() time.Time { return testNow },
		checks:      cs,
		userTimeout: time.Second,
	}
}

func get(t *testing.T, h http.Handler, target string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func postLanguage(t *testing.T, h http.Handler, lang string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/language", strings.NewReader(url.Values{"lang": {lang}}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCatalogOption(t *testing.T) {
	t.Parallel()

	catalog, err := catalogOption(context.Background(), intl.S3Config{})
	require.NoError(t, err)

	cfg, err := intl.NewConfig(catalog)
	require.NoError(t, err)

	for locale, paths := range map[string][]string{
		"en": {"greeting", "language.save"},
		"es": {"cart", "language.label"},
	} {
		for _, path := range paths {
			_, ok := intl.Lookup(cfg.Messages[locale], path)
			assert.True(t, ok, locale+":"+path)
		}
	}
}

func TestIndex(t *testing.T) {
	t.Parallel()

	t.Run("renders in the negotiated locale", func(t *testing.T) {
		t.Parallel()

		h := newTestServer(t, nil).routes()
		rec := get(t, h, "/?name=Ana", http.Header{"Accept-Language": {"en-US,en;q=0.9"}})

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		for _, want := range []string{
			`<html lang="en">`,
			"<h1>Intl demo</h1>",
			"Hello, Ana!",
			"Today is January 2, 2024",
			"3:04 PM",
			"1,234,567.891",
			"25%",
			"You have 3 items",
			"Last seen 3 hours ago",
			`<option value="en" selected>`,
		} {
			assert.Contains(t, body, want)
		}
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("falls back to the default locale", func(t *testing.T) {
		t.Parallel()

		h := newTestServer(t, nil).routes()
		rec := get(t, h, "/", http.Header{"Accept-Language": {"fr"}})

		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, `<html lang="es">`)
		assert.Contains(t, body, "Demo de intl")
		assert.Contains(t, body, "Hoy es 2 de enero de 2024")
		assert.Contains(t, body, "Tienes 3 artículos")
		assert.NotContains(t, body, "Hola")
	})

	t.Run("lang cookie beats Accept-Language", func(t *testing.T) {
		t.Parallel()

		h := newTestServer(t, nil).routes()
		rec := get(t, h, "/", http.Header{
			"Accept-Language": {"es"},
			"Cookie":          {"lang=en"},
		})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `<html lang="en">`)
	})

	t.Run("escapes user input", func(t *testing.T) {
		t.Parallel()

		h := newTestServer(t, nil).routes()
		rec := get(t, h, "/?name="+url.QueryEscape("<b>Ana</b>"), http.Header{"Accept-Language": {"en"}})

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Hello, &lt;b&gt;Ana&lt;/b&gt;!")
	})
}

func TestSetLanguage(t *testing.T) {
	t.Parallel()

	t.Run("anonymous visitors get a cookie", func(t *testing.T) {
		t.Parallel()

		h := newTestServer(t, nil).routes()
		rec := postLanguage(t, h, "en", nil)

		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/?saved=1", rec.Header().Get("Location"))

		cookies := rec.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, langCookie, cookies[0].Name)
		assert.Equal(t, "en", cookies[0].Value)
	})

	t.Run("identified users get a stored preference", func(t *testing.T) {
		t.Parallel()

		s := newTestServer(t, nil)
		h := s.routes()
		userID := uuid.New()
		header := http.Header{userIDHeader: {userID.String()}}

		rec := get(t, h, "/", http.Header{userIDHeader: {userID.String()}, "Accept-Language": {"es"}})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `<html lang="es">`)

		rec = postLanguage(t, h, "en", header)
		require.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Empty(t, rec.Result().Cookies())

		lang, err := s.store.Language(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, "en", lang.Code)

		rec = get(t, h, "/?saved=1", http.Header{
			"Cookie":          {userIDCookie + "=" + userID.String()},
			"Accept-Language": {"es"},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `<html lang="en">`)
		assert.Contains(t, rec.Body.String(), "Language preference saved")
	})

	t.Run("rejects unavailable languages", func(t *testing.T) {
		t.Parallel()

		h := newTestServer(t, nil).routes()
		rec := postLanguage(t, h, "fr", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Empty(t, rec.Result().Cookies())
	})

	t.Run("invalid user ids are treated as anonymous", func(t *testing.T) {
		t.Parallel()

		h := newTestServer(t, nil).routes()
		rec := postLanguage(t, h, "en", http.Header{userIDHeader: {"not-a-uuid"}})

		require.Equal(t, http.StatusSeeOther, rec.Code)
		require.Len(t, rec.Result().Cookies(), 1)
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()

		rec := get(t, newTestServer(t, nil).routes(), "/health/live", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"healthy"}`, rec.Body.String())
	})

	t.Run("readiness reports failing checks", func(t *testing.T) {
		t.Parallel()

		cs := checks{
			"postgres": func(context.Context) error { return nil },
			"redis":    func(context.Context) error { return errors.New("connection refused") },
		}
		rec := get(t, newTestServer(t, cs).routes(), "/health/ready", nil)
		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var resp healthResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "healthy", resp.Checks["postgres"].Status)
		assert.Equal(t, "connection refused", resp.Checks["redis"].Error)
	})

	t.Run("readiness without checks", func(t *testing.T) {
		t.Parallel()

		rec := get(t, newTestServer(t, checks{}).routes(), "/health/ready", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
