package openf1

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"pitwall/internal/app/domain/racecontrol"
	"pitwall/internal/app/infrastructure/config"
	"pitwall/pkg/logger"
	"time"
)

// OpenF1 polls the public REST endpoint for the latest meeting's race
// control messages. Stateless: every Fetch is one GET.
type OpenF1 struct {
	log     logger.Logger
	manager *config.Manager
	client  *http.Client
}

func New(log logger.Logger, manager *config.Manager, client *http.Client) *OpenF1 {
	return &OpenF1{
		log:     log,
		manager: manager,
		client:  client,
	}
}

func (o *OpenF1) Fetch(ctx context.Context) ([]racecontrol.Message, error) {
	cfg := o.manager.Get()

	// the filter operator must survive as %3E, url.Values would mangle it
	endpoint := fmt.Sprintf("%s?meeting_key%%3E=latest", cfg.Source.OpenF1URL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("openf1 returned %s: %s", resp.Status, string(raw))
	}

	var items []raceControlItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("decode openf1 response: %w", err)
	}

	messages := make([]racecontrol.Message, 0, len(items))
	for _, item := range items {
		messages = append(messages, item.toMessage())
	}
	return messages, nil
}

func (o *OpenF1) Close() {}

type raceControlItem struct {
	Date     string `json:"date"`
	Message  string `json:"message"`
	Category string `json:"category"`
	Flag     string `json:"flag"`
	Scope    string `json:"scope"`
}

func (i raceControlItem) toMessage() racecontrol.Message {
	ts, err := time.Parse(time.RFC3339, i.Date)
	if err != nil {
		ts = time.Time{}
	}

	return racecontrol.Message{
		Time:     ts,
		Text:     i.Message,
		Category: i.Category,
		Flag:     i.Flag,
		Scope:    i.Scope,
	}
}
