package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManual(t *testing.T) {
	start := time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.UTC)
	c := NewManual(start)

	assert.Equal(t, start.Truncate(time.Millisecond), c.Now())

	c.Advance(time.Minute)
	assert.Equal(t, start.Truncate(time.Millisecond).Add(time.Minute), c.Now())

	c.Set(start.Add(time.Hour))
	assert.Equal(t, start.Add(time.Hour).Truncate(time.Millisecond), c.Now())
}

func TestSystem_MillisecondResolution(t *testing.T) {
	now := System().Now()
	assert.Equal(t, now, now.Truncate(time.Millisecond))
	assert.Equal(t, time.UTC, now.Location())
}
