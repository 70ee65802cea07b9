package events

import (
	"log/slog"
	"testing"

	"smilelink/config"
	"smilelink/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJournal(capacity int) *Journal {
	cfg := &config.Config{}
	cfg.Notifications.EventBufferSize = capacity

	return NewJournal(cfg, slog.New(slog.DiscardHandler))
}

func TestJournalKeepsInsertionOrder(t *testing.T) {
	journal := newTestJournal(5)

	journal.Emit(entity.Event{EntityID: "E001"})
	journal.Emit(entity.Event{EntityID: "E002"})

	recent := journal.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "E001", recent[0].EntityID)
	assert.Equal(t, "E002", recent[1].EntityID)
}

func TestJournalEvictsOldestWhenFull(t *testing.T) {
	journal := newTestJournal(3)

	for _, id := range []string{"a", "b", "c", "d", "e"} {
		journal.Emit(entity.Event{EntityID: id})
	}

	recent := journal.Recent()
	require.Len(t, recent, 3)
	assert.Equal(t, "c", recent[0].EntityID)
	assert.Equal(t, "e", recent[2].EntityID)
}

func TestJournalRecentReturnsCopy(t *testing.T) {
	journal := newTestJournal(3)
	journal.Emit(entity.Event{EntityID: "a"})

	recent := journal.Recent()
	recent[0].EntityID = "mutated"

	assert.Equal(t, "a", journal.Recent()[0].EntityID)
}
