package localize_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	session := newTestSession(t)

	var got *localize.Session
	handler := localize.Middleware(session)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = localize.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Same(t, session, got)
}

func TestAvailableLocales(t *testing.T) {
	t.Parallel()

	t.Run("lists resource locales excluding the fallback", func(t *testing.T) {
		t.Parallel()
		locales := localize.AvailableLocales(testdataFS, "testdata/locales")
		require.Equal(t, []localize.Locale{
			{Language: "de"},
			{Language: "en"},
			{Language: "en", Region: "US"},
			{Language: "fr"},
		}, locales)
	})

	t.Run("unknown directory yields nothing", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, localize.AvailableLocales(testdataFS, "no/such/dir"))
	})
}

func TestMatchAcceptLanguage(t *testing.T) {
	t.Parallel()

	available := []localize.Locale{
		{Language: "de"},
		{Language: "en"},
		{Language: "en", Region: "US"},
		{Language: "fr"},
	}

	tests := []struct {
		name     string
		header   string
		expected localize.Locale
	}{
		{
			name:     "exact match",
			header:   "fr",
			expected: localize.Locale{Language: "fr"},
		},
		{
			name:     "region variant match",
			header:   "en-US,en;q=0.8",
			expected: localize.Locale{Language: "en", Region: "US"},
		},
		{
			name:     "base language matches regional request",
			header:   "fr-CA",
			expected: localize.Locale{Language: "fr"},
		},
		{
			name:     "quality ordering prefers the better match",
			header:   "ja;q=0.9,de;q=0.8",
			expected: localize.Locale{Language: "de"},
		},
		{
			name:     "empty header yields the first available",
			header:   "",
			expected: localize.Locale{Language: "de"},
		},
		{
			name:     "unmatched header yields the first available",
			header:   "ja",
			expected: localize.Locale{Language: "de"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			loc, ok := localize.MatchAcceptLanguage(tt.header, available)
			require.True(t, ok)
			require.Equal(t, tt.expected, loc)
		})
	}

	t.Run("no available locales", func(t *testing.T) {
		t.Parallel()
		_, ok := localize.MatchAcceptLanguage("en", nil)
		require.False(t, ok)
	})
}
