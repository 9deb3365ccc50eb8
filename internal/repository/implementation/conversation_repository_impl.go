package implementation

import (
	"context"

	"soulful-home-be/internal/entity"
	"soulful-home-be/internal/repository/contract"
	"soulful-home-be/pkg/docstore"
)

type ConversationRepositoryImpl struct {
	store docstore.Store
}

func NewConversationRepository(store docstore.Store) contract.ConversationRepository {
	return &ConversationRepositoryImpl{store: store}
}

func (r *ConversationRepositoryImpl) FindAll(ctx context.Context) (entity.ConversationLog, error) {
	var log entity.ConversationLog
	if _, err := docstore.GetJSON(ctx, r.store, ConversationKey, &log); err != nil {
		return nil, err
	}
	if log == nil {
		log = entity.ConversationLog{}
	}
	return log, nil
}

func (r *ConversationRepositoryImpl) Append(
	ctx context.Context,
	turn entity.ConversationTurn,
	startNew contract.StartNewRunFunc,
) (entity.ConversationLog, error) {
	var result entity.ConversationLog

	err := r.store.Update(ctx, ConversationKey, func(current []byte, exists bool) ([]byte, error) {
		log := entity.ConversationLog{}
		var decodeErr error
		if exists {
			decodeErr = docstore.Decode(ConversationKey, current, &log)
			if decodeErr != nil {
				log = nil
			} else if log == nil {
				log = entity.ConversationLog{}
			}
		}

		if startNew(log) {
			log = entity.ConversationLog{}
		} else if decodeErr != nil {
			return nil, decodeErr
		}

		log = append(log, turn)
		result = log
		return docstore.Encode(log)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *ConversationRepositoryImpl) Reset(ctx context.Context) error {
	return docstore.PutJSON(ctx, r.store, ConversationKey, entity.ConversationLog{})
}
