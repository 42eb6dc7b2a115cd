package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	RequestID   string
	RunID       string
	LLMAPIKey   string
	DatabaseDSN string

	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
)

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x LLMAPIKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x LLMAPIKey) String() string {
	return "***********"
}

func (x DatabaseDSN) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x DatabaseDSN) String() string {
	return "***********"
}
