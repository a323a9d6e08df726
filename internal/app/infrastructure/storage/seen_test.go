package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeenStore(t *testing.T) {
	t.Parallel()
	s := NewSeenStore(0, 0)

	assert.False(t, s.Has("2024-05-26T13:03:29Z|Flag|YELLOW|Sector 7|YELLOW IN SECTOR 7"))

	s.Add("2024-05-26T13:03:29Z|Flag|YELLOW|Sector 7|YELLOW IN SECTOR 7")
	assert.True(t, s.Has("2024-05-26T13:03:29Z|Flag|YELLOW|Sector 7|YELLOW IN SECTOR 7"))
	assert.False(t, s.Has("2024-05-26T13:03:30Z|Flag|YELLOW|Sector 7|YELLOW IN SECTOR 7"))

	s.Add("a")
	s.Add("b")
	s.Add("a")
	assert.Equal(t, 3, s.Len())
}
