package contract

import (
	"context"

	"soulful-home-be/internal/entity"
)

type ReportRepository interface {
	// FindLatest returns ErrNotFound before the first report is saved.
	FindLatest(ctx context.Context) (*entity.ReportResult, error)
	// Save fully replaces any previous report.
	Save(ctx context.Context, report *entity.ReportResult) error
}
