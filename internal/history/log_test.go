package history

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLog_RecentNewestFirst(t *testing.T) {
	l := NewLog(10)
	l.Record("first")
	l.Record("second")
	l.Record("third")

	got := l.Recent(2)
	require.Len(t, got, 2)
	assert.Equal(t, "third", got[0].Description)
	assert.Equal(t, "second", got[1].Description)
}

func TestLog_RecentClampsToLength(t *testing.T) {
	l := NewLog(10)
	l.Record("only")

	assert.Len(t, l.Recent(100), 1)
	assert.Empty(t, l.Recent(0))
	assert.Empty(t, l.Recent(-1))
}

func TestLog_EvictsOldestBeyondCap(t *testing.T) {
	const capacity = 5
	l := NewLog(capacity)
	for i := 0; i < capacity*3; i++ {
		l.Record(fmt.Sprintf("event-%d", i))
	}

	require.Equal(t, capacity, l.Len())

	got := l.Recent(capacity)
	require.Len(t, got, capacity)
	assert.Equal(t, "event-14", got[0].Description)
	assert.Equal(t, "event-10", got[capacity-1].Description)
}

func TestLog_EntriesAreTimestamped(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	l := NewLog(10)
	l.now = func() time.Time { return fixed }

	l.Record("stamped")

	assert.Equal(t, fixed, l.Recent(1)[0].At)
}

func TestLog_ZeroCapFallsBackToDefault(t *testing.T) {
	l := NewLog(0)
	for i := 0; i < DefaultCap+5; i++ {
		l.Record("e")
	}

	assert.Equal(t, DefaultCap, l.Len())
}
