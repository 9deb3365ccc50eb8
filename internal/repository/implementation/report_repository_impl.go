package implementation

import (
	"context"

	"soulful-home-be/internal/entity"
	"soulful-home-be/internal/repository/contract"
	"soulful-home-be/pkg/docstore"
)

type ReportRepositoryImpl struct {
	store docstore.Store
}

func NewReportRepository(store docstore.Store) contract.ReportRepository {
	return &ReportRepositoryImpl{store: store}
}

func (r *ReportRepositoryImpl) FindLatest(ctx context.Context) (*entity.ReportResult, error) {
	var report entity.ReportResult
	exists, err := docstore.GetJSON(ctx, r.store, ReportKey, &report)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, contract.ErrNotFound
	}
	return &report, nil
}

func (r *ReportRepositoryImpl) Save(ctx context.Context, report *entity.ReportResult) error {
	return docstore.PutJSON(ctx, r.store, ReportKey, report)
}
