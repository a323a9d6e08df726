package ports

import "pitwall/internal/app/domain/racecontrol"

type FormatterPort interface {
	Render(msg racecontrol.Message) []string
}
