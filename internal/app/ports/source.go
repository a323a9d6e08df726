package ports

import (
	"context"
	"pitwall/internal/app/domain/racecontrol"
)

// SourcePort returns the latest batch of race control messages. A transient
// failure surfaces as an error for the current tick, never as a panic or a
// stopped loop.
type SourcePort interface {
	Fetch(ctx context.Context) ([]racecontrol.Message, error)
	Close()
}
