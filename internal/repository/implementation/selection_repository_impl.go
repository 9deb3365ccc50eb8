package implementation

import (
	"context"

	"soulful-home-be/internal/entity"
	"soulful-home-be/internal/repository/contract"
	"soulful-home-be/pkg/docstore"
)

type SelectionRepositoryImpl struct {
	store docstore.Store
}

func NewSelectionRepository(store docstore.Store) contract.SelectionRepository {
	return &SelectionRepositoryImpl{store: store}
}

func (r *SelectionRepositoryImpl) FindAll(ctx context.Context) (entity.SelectionSet, error) {
	var set entity.SelectionSet
	if _, err := docstore.GetJSON(ctx, r.store, SelectionsKey, &set); err != nil {
		return nil, err
	}
	if set == nil {
		set = entity.SelectionSet{}
	}
	return set, nil
}

func (r *SelectionRepositoryImpl) Upsert(ctx context.Context, questionId string, selection entity.Selection) error {
	return docstore.UpdateJSON(ctx, r.store, SelectionsKey, func(set *entity.SelectionSet, exists bool) error {
		if *set == nil {
			*set = entity.SelectionSet{}
		}
		(*set)[questionId] = selection
		return nil
	})
}
