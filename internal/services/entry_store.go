package services

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/Vasanthadithya-mundrathi/AI-journal-COSC/internal/models"
	"github.com/google/uuid"
)

// ErrEntryNotFound is returned when no entry has the requested id.
var ErrEntryNotFound = errors.New("journal entry not found")

// EntryStore holds journal entries in memory for the lifetime of the process.
// All reads and writes go through a single lock; callers only ever see copies.
type EntryStore struct {
	mu      sync.RWMutex
	entries []models.JournalEntry
}

func NewEntryStore() *EntryStore {
	return &EntryStore{entries: make([]models.JournalEntry, 0)}
}

// NewEntryID returns a fresh identifier. UUIDv4 ids are never reused.
func NewEntryID() string {
	return uuid.NewString()
}

// Append inserts a fully formed entry. No validation is done here.
func (s *EntryStore) Append(entry models.JournalEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, entry)
}

// List returns every entry, newest first. Entries sharing a timestamp come
// out in reverse insertion order.
func (s *EntryStore) List() []models.JournalEntry {
	s.mu.RLock()
	out := make([]models.JournalEntry, 0, len(s.entries))
	for i := len(s.entries) - 1; i >= 0; i-- {
		out = append(out, s.entries[i])
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *EntryStore) Get(id string) (models.JournalEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return models.JournalEntry{}, ErrEntryNotFound
}

// Delete removes exactly one entry with the given id.
func (s *EntryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return nil
		}
	}
	return ErrEntryNotFound
}

func (s *EntryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// SeedSampleEntries adds the two demo entries shown by the web client on a fresh install.
func (s *EntryStore) SeedSampleEntries(now time.Time) {
	now = now.UTC()
	s.Append(models.JournalEntry{
		ID:        NewEntryID(),
		Title:     "A Great Day",
		Content:   "Today was a great day. I went to the park and had a picnic with my friends. The weather was perfect.",
		Mood:      "happy",
		Summary:   "A happy day spent with friends at the park.",
		CreatedAt: now,
	})
	s.Append(models.JournalEntry{
		ID:        NewEntryID(),
		Title:     "A Tough Day",
		Content:   "Today was a tough day. I had a lot of work to do and I felt overwhelmed. I hope tomorrow is better.",
		Mood:      "overwhelmed",
		Summary:   "A tough day with a lot of work.",
		CreatedAt: now,
	})
}
