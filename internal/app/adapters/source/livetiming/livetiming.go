package livetiming

import (
	"context"
	"encoding/json"
	"fmt"
	"github.com/gorilla/websocket"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"pitwall/internal/app/adapters/metrics"
	"pitwall/internal/app/domain/racecontrol"
	"pitwall/internal/app/infrastructure/config"
	"pitwall/pkg/logger"
	"strings"
	"sync"
	"time"
)

// LiveTiming keeps a persistent SignalR connection to the F1 live timing
// hub and accumulates race control entries in an in-memory snapshot that the
// monitor polls. The connection is rebuilt after a fixed backoff whenever it
// drops or goes silent past the inactivity timeout.
type LiveTiming struct {
	log     logger.Logger
	manager *config.Manager
	client  *http.Client

	mu       sync.Mutex
	conn     *websocket.Conn
	snapshot []racecontrol.Message

	done      chan struct{}
	closeOnce sync.Once
}

func New(log logger.Logger, manager *config.Manager, client *http.Client) *LiveTiming {
	lt := &LiveTiming{
		log:     log,
		manager: manager,
		client:  client,
		done:    make(chan struct{}),
	}

	go lt.runFeedLoop()
	return lt
}

// Fetch returns a copy of the current snapshot. It never fails: a broken
// connection just means the snapshot stops growing until the reconnect
// succeeds.
func (lt *LiveTiming) Fetch(_ context.Context) ([]racecontrol.Message, error) {
	lt.mu.Lock()
	defer lt.mu.Unlock()

	out := make([]racecontrol.Message, len(lt.snapshot))
	copy(out, lt.snapshot)
	return out, nil
}

func (lt *LiveTiming) Close() {
	lt.closeOnce.Do(func() {
		close(lt.done)

		lt.mu.Lock()
		if lt.conn != nil {
			_ = lt.conn.Close()
		}
		lt.mu.Unlock()
	})
}

func (lt *LiveTiming) runFeedLoop() {
	for {
		select {
		case <-lt.done:
			return
		default:
		}

		if err := lt.connectAndStream(); err != nil {
			lt.log.Warn("Live timing connection lost, retrying...", slog.String("error", err.Error()))
			metrics.SourceReconnects.Inc()
		}

		select {
		case <-lt.done:
			return
		case <-time.After(lt.manager.Get().Source.ReconnectDelay):
		}
	}
}

func (lt *LiveTiming) connectAndStream() error {
	cfg := lt.manager.Get()

	token, err := lt.negotiate(cfg.Source.LiveTimingURL)
	if err != nil {
		return fmt.Errorf("negotiate: %w", err)
	}

	params := url.Values{}
	params.Set("transport", "webSockets")
	params.Set("clientProtocol", "1.5")
	params.Set("connectionToken", token)
	params.Set("connectionData", `[{"name":"Streaming"}]`)

	wsURL := toWebsocketURL(cfg.Source.LiveTimingURL) + "/connect?" + params.Encode()

	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	ws, resp, err := dialer.Dial(wsURL, nil)
	if err != nil {
		if resp != nil {
			if cerr := resp.Body.Close(); cerr != nil {
				lt.log.Error("Failed to close response body", cerr)
			}
		}
		return fmt.Errorf("websocket dial: %w", err)
	}

	lt.mu.Lock()
	lt.conn = ws
	lt.mu.Unlock()
	defer func() {
		_ = ws.Close()

		lt.mu.Lock()
		lt.conn = nil
		lt.mu.Unlock()
	}()

	subscribe := hubRequest{
		Hub:       "Streaming",
		Method:    "Subscribe",
		Arguments: []any{[]string{"RaceControlMessages"}},
		ID:        1,
	}
	if err := ws.WriteJSON(subscribe); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	lt.log.Info("Connected to live timing feed")
	metrics.SourceConnected.Set(1)
	defer metrics.SourceConnected.Set(0)

	for {
		select {
		case <-lt.done:
			return nil
		default:
		}

		// a feed that goes silent past the timeout counts as a dead connection
		if err := ws.SetReadDeadline(time.Now().Add(cfg.Source.InactivityTimeout)); err != nil {
			return err
		}

		_, raw, err := ws.ReadMessage()
		if err != nil {
			select {
			case <-lt.done:
				return nil
			default:
			}
			return fmt.Errorf("read feed: %w", err)
		}

		entries := extractMessages(raw)
		if len(entries) == 0 {
			continue
		}

		lt.log.Debug("Live timing entries received", slog.Int("count", len(entries)))
		lt.mu.Lock()
		lt.snapshot = append(lt.snapshot, entries...)
		lt.mu.Unlock()
	}
}

func (lt *LiveTiming) negotiate(base string) (string, error) {
	params := url.Values{}
	params.Set("connectionData", `[{"name":"Streaming"}]`)
	params.Set("clientProtocol", "1.5")

	resp, err := lt.client.Get(base + "/negotiate?" + params.Encode())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("livetiming returned %s: %s", resp.Status, string(raw))
	}

	var out struct {
		ConnectionToken string `json:"ConnectionToken"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode negotiate response: %w", err)
	}
	if out.ConnectionToken == "" {
		return "", fmt.Errorf("negotiate response has no connection token")
	}
	return out.ConnectionToken, nil
}

func toWebsocketURL(base string) string {
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://")
	}
	return base
}
