package model

import "time"

// GenerationRecord is one row of the generation history. Only metadata is
// ever stored — the generated password itself never reaches the database.
type GenerationRecord struct {
	ID        int64
	Length    int
	Strength  string
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
	CreatedAt time.Time
}

// HistoryEntryResponse is a generation record in API responses.
type HistoryEntryResponse struct {
	ID        int64     `json:"id"`
	Length    int       `json:"length"`
	Strength  string    `json:"strength"`
	Uppercase bool      `json:"uppercase"`
	Lowercase bool      `json:"lowercase"`
	Numbers   bool      `json:"numbers"`
	Symbols   bool      `json:"symbols"`
	CreatedAt time.Time `json:"created_at"`
}

// ClearHistoryResponse reports how many records a clear removed.
type ClearHistoryResponse struct {
	Deleted int64 `json:"deleted"`
}
