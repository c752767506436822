package domain

import "time"

type RegenerationStatus string

const (
	RegenerationSucceeded RegenerationStatus = "succeeded"
	RegenerationFailed    RegenerationStatus = "failed"
)

// RegenerationRecord registra uma tentativa de regeneração do cronograma
type RegenerationRecord struct {
	ID        string             `json:"id"`
	Params    RegenerationParams `json:"params"`
	Status    RegenerationStatus `json:"status"`
	Entries   int                `json:"entries"`
	Error     string             `json:"error,omitempty"`
	CreatedAt time.Time          `json:"created_at"`
}
