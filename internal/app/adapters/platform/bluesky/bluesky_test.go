package bluesky

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pitwall/internal/app/infrastructure/config"
	"pitwall/pkg/logger"
)

type recordedRequest struct {
	method string
	auth   string
	body   map[string]any
}

func newTestService(t *testing.T) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		method := r.URL.Path[len("/xrpc/"):]
		requests = append(requests, recordedRequest{
			method: method,
			auth:   r.Header.Get("Authorization"),
			body:   body,
		})

		w.Header().Set("Content-Type", "application/json")
		switch method {
		case "com.atproto.server.createSession":
			fmt.Fprint(w, `{"accessJwt":"jwt-123","did":"did:plc:abc","handle":"pitwall.test"}`)
		case "com.atproto.repo.createRecord":
			fmt.Fprintf(w, `{"uri":"at://did:plc:abc/app.bsky.feed.post/%d","cid":"cid-%d"}`, len(requests), len(requests))
		default:
			http.Error(w, "unknown method", http.StatusNotFound)
		}
	}))

	return srv, &requests
}

func newTestClient(t *testing.T, srv *httptest.Server) *Client {
	t.Helper()

	manager, err := config.New(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)
	require.NoError(t, manager.Update(func(cfg *config.Config) {
		cfg.Post.ServiceURL = srv.URL
	}))

	return New(logger.New(), manager, srv.Client())
}

func TestLogin(t *testing.T) {
	t.Parallel()

	srv, requests := newTestService(t)
	defer srv.Close()
	c := newTestClient(t, srv)

	require.NoError(t, c.Login(context.Background(), "pitwall.test", "app-password"))

	require.Len(t, *requests, 1)
	assert.Equal(t, "com.atproto.server.createSession", (*requests)[0].method)
	assert.Equal(t, "pitwall.test", (*requests)[0].body["identifier"])
	assert.Equal(t, "jwt-123", c.accessJwt)
	assert.Equal(t, "did:plc:abc", c.did)
}

func TestLogin_MissingCredentials(t *testing.T) {
	t.Parallel()

	srv, _ := newTestService(t)
	defer srv.Close()
	c := newTestClient(t, srv)

	assert.Error(t, c.Login(context.Background(), "", ""))
}

func TestPublishThread_LinearReplyChain(t *testing.T) {
	t.Parallel()

	srv, requests := newTestService(t)
	defer srv.Close()
	c := newTestClient(t, srv)
	require.NoError(t, c.Login(context.Background(), "pitwall.test", "app-password"))

	parts := []string{"part one...", "...part two...", "...part three\n\n#f1"}
	require.NoError(t, c.PublishThread(context.Background(), parts))

	posts := (*requests)[1:]
	require.Len(t, posts, 3)

	for i, post := range posts {
		assert.Equal(t, "com.atproto.repo.createRecord", post.method)
		assert.Equal(t, "Bearer jwt-123", post.auth)
		assert.Equal(t, "did:plc:abc", post.body["repo"])

		record := post.body["record"].(map[string]any)
		assert.Equal(t, parts[i], record["text"])

		if i == 0 {
			assert.Nil(t, record["reply"], "first chunk is the thread root")
			continue
		}

		reply := record["reply"].(map[string]any)
		root := reply["root"].(map[string]any)
		parent := reply["parent"].(map[string]any)
		assert.Equal(t, "at://did:plc:abc/app.bsky.feed.post/2", root["uri"], "all replies point at the root")
		assert.Equal(t, fmt.Sprintf("at://did:plc:abc/app.bsky.feed.post/%d", i+1), parent["uri"], "each reply points at the previous chunk")
	}

	// only the final chunk carries a hashtag, so only it gets a facet
	for i, post := range posts {
		record := post.body["record"].(map[string]any)
		if i < 2 {
			assert.Nil(t, record["facets"])
			continue
		}

		facets := record["facets"].([]any)
		require.Len(t, facets, 1)
		facet := facets[0].(map[string]any)
		index := facet["index"].(map[string]any)
		assert.Equal(t, float64(15), index["byteStart"])
		assert.Equal(t, float64(18), index["byteEnd"])
	}
}

func TestPublishThread_RequiresLogin(t *testing.T) {
	t.Parallel()

	srv, _ := newTestService(t)
	defer srv.Close()
	c := newTestClient(t, srv)

	assert.Error(t, c.PublishThread(context.Background(), []string{"text"}))
}

func TestPublishThread_ServiceErrorSurfaces(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/xrpc/com.atproto.server.createSession" {
			fmt.Fprint(w, `{"accessJwt":"jwt-123","did":"did:plc:abc","handle":"pitwall.test"}`)
			return
		}
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(t, srv)
	require.NoError(t, c.Login(context.Background(), "pitwall.test", "app-password"))

	assert.Error(t, c.PublishThread(context.Background(), []string{"text"}))
}
