package services

import (
	"context"

	"mybiglambda/internal/models"
)

// TableService defines the operations that produce the sample payload
type TableService interface {
	// SampleTable returns a freshly built sample table
	SampleTable(ctx context.Context) (models.SampleTable, error)

	// EncodeBody serializes the table in split orientation and JSON-encodes
	// the result once more, yielding a response body string
	EncodeBody(ctx context.Context, table models.SampleTable) (string, error)
}

// GreetingService defines the per-invocation greeting
type GreetingService interface {
	// Greet logs the greeting for one invocation and returns its message
	Greet(ctx context.Context, requestID string) (string, error)
}
