package models

import "time"

// JournalEntry is a single journaling record. Mood and summary are filled in
// by the mood analyzer when the entry is created and never change afterwards.
type JournalEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      string    `json:"mood"`
	Summary   string    `json:"summary"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateEntryRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AnalyzeRequest is the body of the analyze-only preview endpoint
type AnalyzeRequest struct {
	Text string `json:"text"`
}
