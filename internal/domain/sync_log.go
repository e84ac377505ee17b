package domain

import "time"

type SyncStatus string

const (
	SyncStatusRunning   SyncStatus = "running"
	SyncStatusCompleted SyncStatus = "completed"
	SyncStatusPartial   SyncStatus = "partial"
	SyncStatusFailed    SyncStatus = "failed"
)

// SyncLog registra uma execução da sincronização com a plataforma
type SyncLog struct {
	ID             string     `json:"id"`
	Status         SyncStatus `json:"status"`
	DateFrom       string     `json:"date_from"`
	DateTo         string     `json:"date_to"`
	EntriesCreated int        `json:"entries_created"`
	EntriesUpdated int        `json:"entries_updated"`
	ErrorMessage   *string    `json:"error_message,omitempty"`
	StartedAt      time.Time  `json:"started_at"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}

// MergeResult é o resultado da mesclagem de resumos diários nos registros
type MergeResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// Status resolve o status final de uma sincronização que chegou ao fim.
// Falhas totais são marcadas como failed por quem executa a sincronização.
func (r MergeResult) Status() SyncStatus {
	if len(r.Errors) > 0 {
		return SyncStatusPartial
	}
	return SyncStatusCompleted
}
