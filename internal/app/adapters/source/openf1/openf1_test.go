package openf1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pitwall/internal/app/infrastructure/config"
	"pitwall/pkg/logger"
)

func newTestManager(t *testing.T, url string) *config.Manager {
	t.Helper()

	manager, err := config.New(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	require.NoError(t, manager.Update(func(cfg *config.Config) {
		cfg.Source.OpenF1URL = url
	}))
	return manager
}

func TestFetch_DecodesBatch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "meeting_key%3E=latest", r.URL.RawQuery)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"date":"2024-05-26T13:03:29+00:00","message":"YELLOW IN TRACK SECTOR 7","category":"Flag","flag":"YELLOW","scope":"Sector"},
			{"date":"2024-05-26T13:05:02+00:00","message":"SAFETY CAR DEPLOYED","category":"SafetyCar"}
		]`))
	}))
	defer srv.Close()

	o := New(logger.New(), newTestManager(t, srv.URL), srv.Client())

	messages, err := o.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, "YELLOW IN TRACK SECTOR 7", messages[0].Text)
	assert.Equal(t, "Flag", messages[0].Category)
	assert.Equal(t, "YELLOW", messages[0].Flag)
	assert.Equal(t, "Sector", messages[0].Scope)
	assert.Equal(t, time.Date(2024, 5, 26, 13, 3, 29, 0, time.UTC), messages[0].Time.UTC())

	assert.Equal(t, "SafetyCar", messages[1].Category)
	assert.Empty(t, messages[1].Flag)
}

func TestFetch_ServerErrorSurfaces(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "upstream busy", http.StatusBadGateway)
	}))
	defer srv.Close()

	o := New(logger.New(), newTestManager(t, srv.URL), srv.Client())

	_, err := o.Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetch_BadPayloadSurfaces(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"detail":"not a list"}`))
	}))
	defer srv.Close()

	o := New(logger.New(), newTestManager(t, srv.URL), srv.Client())

	_, err := o.Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetch_MalformedDateKeepsMessage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"date":"not-a-date","message":"TRACK CLEAR","category":"Other"}]`))
	}))
	defer srv.Close()

	o := New(logger.New(), newTestManager(t, srv.URL), srv.Client())

	messages, err := o.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.True(t, messages[0].Time.IsZero())
}
