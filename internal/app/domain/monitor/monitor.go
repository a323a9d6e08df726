package monitor

import (
	"context"
	"github.com/prometheus/client_golang/prometheus"
	"log/slog"
	"pitwall/internal/app/adapters/metrics"
	"pitwall/internal/app/domain/racecontrol"
	"pitwall/internal/app/ports"
	"pitwall/pkg/logger"
	"time"
)

// Monitor drives the fetch -> dedup -> format -> publish pipeline on a fixed
// tick. Every error class short of a wiring failure is absorbed here: a bad
// fetch skips the tick, a bad publish drops that message, and only a
// cancelled context stops the loop.
type Monitor struct {
	log       logger.Logger
	source    ports.SourcePort
	publisher ports.PublisherPort
	formatter ports.FormatterPort
	dedup     *racecontrol.Dedup

	sourceName string
	interval   time.Duration
}

func New(log logger.Logger, source ports.SourcePort, publisher ports.PublisherPort,
	formatter ports.FormatterPort, dedup *racecontrol.Dedup, sourceName string, interval time.Duration) *Monitor {
	return &Monitor{
		log:        log,
		source:     source,
		publisher:  publisher,
		formatter:  formatter,
		dedup:      dedup,
		sourceName: sourceName,
		interval:   interval,
	}
}

func (m *Monitor) Run(ctx context.Context) {
	m.log.Info("Race control monitor started",
		slog.String("source", m.sourceName),
		slog.Duration("interval", m.interval),
	)

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.log.Info("Race control monitor stopped")
			return
		case <-ticker.C:
			m.tick(ctx)
		}
	}
}

func (m *Monitor) tick(ctx context.Context) {
	start := time.Now()

	batch, err := m.source.Fetch(ctx)
	if err != nil {
		m.log.Error("Failed to fetch race control messages, skipping tick", err)
		metrics.FetchErrors.With(prometheus.Labels{"source": m.sourceName}).Inc()
		return
	}
	metrics.BatchesFetched.With(prometheus.Labels{"source": m.sourceName}).Inc()

	for _, msg := range m.dedup.Filter(batch) {
		metrics.NewMessages.Inc()

		parts := m.formatter.Render(msg)
		if err := m.publisher.PublishThread(ctx, parts); err != nil {
			m.log.Error("Failed to publish message, dropping", err, slog.String("key", msg.Key()))
			metrics.PublishErrors.Inc()
			continue
		}

		metrics.PostsPublished.Add(float64(len(parts)))
		m.log.Info("Published race control message",
			slog.String("category", msg.Category),
			slog.String("flag", msg.Flag),
			slog.Int("parts", len(parts)),
		)
	}

	metrics.TickProcessingTime.Observe(float64(time.Since(start).Milliseconds()))
}
