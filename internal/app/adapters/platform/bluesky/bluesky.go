package bluesky

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"pitwall/internal/app/infrastructure/config"
	"pitwall/pkg/logger"
	"time"
)

// Client talks XRPC to a Bluesky-compatible service. Login happens once at
// startup; the session token is held for the life of the process (no refresh
// flow).
type Client struct {
	log     logger.Logger
	manager *config.Manager
	client  *http.Client

	accessJwt string
	did       string
}

func New(log logger.Logger, manager *config.Manager, client *http.Client) *Client {
	return &Client{
		log:     log,
		manager: manager,
		client:  client,
	}
}

func (c *Client) Login(ctx context.Context, identifier, password string) error {
	if identifier == "" || password == "" {
		return errors.New("identifier and password are required")
	}

	var session createSessionResponse
	err := c.doXRPC(ctx, "com.atproto.server.createSession",
		createSessionRequest{Identifier: identifier, Password: password}, &session)
	if err != nil {
		return err
	}

	c.accessJwt = session.AccessJwt
	c.did = session.Did
	c.log.Info("Logged in to posting service", slog.String("handle", session.Handle))
	return nil
}

// PublishThread posts the chunks as a linear reply chain: every chunk after
// the first replies to the previous one, all pointing at the first as root.
func (c *Client) PublishThread(ctx context.Context, parts []string) error {
	if c.accessJwt == "" {
		return errors.New("not logged in")
	}

	var root, parent PostRef
	for i, part := range parts {
		var reply *ReplyRef
		if i > 0 {
			reply = &ReplyRef{Root: root, Parent: parent}
		}

		ref, err := c.createPost(ctx, part, reply)
		if err != nil {
			return fmt.Errorf("post part %d/%d: %w", i+1, len(parts), err)
		}
		c.log.Debug("Posted part", slog.Int("part", i+1), slog.Int("of", len(parts)))

		if i == 0 {
			root = ref
		}
		parent = ref
	}
	return nil
}

func (c *Client) createPost(ctx context.Context, text string, reply *ReplyRef) (PostRef, error) {
	record := postRecord{
		Type:      "app.bsky.feed.post",
		Text:      text,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Facets:    facetsJSON(text),
		Reply:     reply,
	}

	var ref PostRef
	err := c.doXRPC(ctx, "com.atproto.repo.createRecord", createRecordRequest{
		Repo:       c.did,
		Collection: "app.bsky.feed.post",
		Record:     record,
	}, &ref)
	return ref, err
}

func (c *Client) doXRPC(ctx context.Context, method string, body any, target any) error {
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return err
	}

	endpoint := c.manager.Get().Post.ServiceURL + "/xrpc/" + method
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if c.accessJwt != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessJwt)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%s returned %s: %s", method, resp.Status, string(raw))
	}

	if target == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
