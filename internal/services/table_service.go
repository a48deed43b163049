package services

import (
	"context"
	"fmt"

	"mybiglambda/internal/models"
)

// tableService implements TableService
type tableService struct{}

// NewTableService creates a new table service
func NewTableService() TableService {
	return &tableService{}
}

// SampleTable returns the fixed three-row sample
func (s *tableService) SampleTable(ctx context.Context) (models.SampleTable, error) {
	table := models.NewSampleTable()
	for i, p := range table {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return table, nil
}

// EncodeBody returns the split JSON of table encoded as a JSON string.
// The body is double-encoded: clients decode it twice to reach the frame.
func (s *tableService) EncodeBody(ctx context.Context, table models.SampleTable) (string, error) {
	frame, err := table.Split().MarshalCompact()
	if err != nil {
		return "", fmt.Errorf("failed to serialize table: %w", err)
	}

	body, err := models.EncodeJSON(string(frame))
	if err != nil {
		return "", fmt.Errorf("failed to encode body: %w", err)
	}

	return string(body), nil
}
