package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"soulful-home-be/internal/constant"
	"soulful-home-be/internal/dto"
	"soulful-home-be/internal/entity"
	"soulful-home-be/internal/pkg/logger"
	"soulful-home-be/internal/pkg/serverutils"
	"soulful-home-be/internal/repository/contract"
	"soulful-home-be/pkg/events"
	"soulful-home-be/pkg/llm"
	"soulful-home-be/pkg/prompt"
)

type IConversationService interface {
	Converse(ctx context.Context, req *dto.ConversationRequest) (*dto.ConversationResponse, error)
	Reset(ctx context.Context) (*dto.ResetConversationResponse, error)
	GetConversation(ctx context.Context) (entity.ConversationLog, error)
}

type conversationService struct {
	conversationRepo contract.ConversationRepository
	selectionRepo    contract.SelectionRepository
	llmProvider      llm.LLMProvider
	eventPublisher   EventPublisher
	logger           logger.ILogger
	firstQuestion    string
	now              func() time.Time
}

func NewConversationService(
	conversationRepo contract.ConversationRepository,
	selectionRepo contract.SelectionRepository,
	llmProvider llm.LLMProvider,
	eventPublisher EventPublisher,
	logger logger.ILogger,
	firstQuestion string,
) IConversationService {
	if firstQuestion == "" {
		firstQuestion = constant.FirstQuestion
	}
	return &conversationService{
		conversationRepo: conversationRepo,
		selectionRepo:    selectionRepo,
		llmProvider:      llmProvider,
		eventPublisher:   eventPublisher,
		logger:           logger,
		firstQuestion:    firstQuestion,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *conversationService) Converse(ctx context.Context, req *dto.ConversationRequest) (*dto.ConversationResponse, error) {
	if len(req.Messages) == 0 {
		return nil, serverutils.NewBadRequestError("messages must not be empty", nil)
	}

	selections, err := s.selectionRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load selections: %w", err)
	}

	history := make([]llm.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		history = append(history, llm.Message{Role: m.Role, Content: m.Content})
	}
	messages := prompt.InterviewMessages(selections, req.CurrentQuestion, history)

	reply, err := s.llmProvider.Chat(ctx, messages,
		llm.WithTemperature(constant.InterviewTemperature),
		llm.WithMaxTokens(constant.InterviewMaxTokens),
	)
	if err != nil {
		s.logger.Error("CONVERSATION", "Chat completion failed", map[string]interface{}{"error": err.Error()})
		return nil, serverutils.NewBadGatewayError("failed to process conversation message", err)
	}
	reply = strings.TrimSpace(reply)

	turn := entity.ConversationTurn{
		Timestamp:    s.now(),
		Question:     req.CurrentQuestion,
		UserResponse: req.Messages[len(req.Messages)-1].Content,
		AiResponse:   reply,
		SessionId:    req.SessionId,
	}

	log, err := s.conversationRepo.Append(ctx, turn, s.startsNewRun(req))
	if err != nil {
		return nil, fmt.Errorf("failed to save conversation: %w", err)
	}

	publishEvent(ctx, s.eventPublisher, s.logger, events.TurnAppended, map[string]interface{}{
		"question":     turn.Question,
		"userResponse": turn.UserResponse,
		"sessionId":    turn.SessionId,
		"turn":         len(log),
	})

	return &dto.ConversationResponse{
		Message:   reply,
		SessionId: req.SessionId,
		Turns:     len(log),
	}, nil
}

// startsNewRun opens a new log on the opening question, or when the caller's
// session differs from a readable stored log. An unreadable log is only
// discarded by the opening question.
func (s *conversationService) startsNewRun(req *dto.ConversationRequest) contract.StartNewRunFunc {
	return func(current entity.ConversationLog) bool {
		if req.CurrentQuestion == s.firstQuestion {
			return true
		}
		if current == nil || req.SessionId == "" || len(current) == 0 {
			return false
		}
		return current.SessionId() != req.SessionId
	}
}

func (s *conversationService) Reset(ctx context.Context) (*dto.ResetConversationResponse, error) {
	if err := s.conversationRepo.Reset(ctx); err != nil {
		return nil, fmt.Errorf("failed to reset conversation: %w", err)
	}

	sessionId := uuid.NewString()
	s.logger.Info("CONVERSATION", "Conversation reset", map[string]interface{}{"session_id": sessionId})
	publishEvent(ctx, s.eventPublisher, s.logger, events.SessionReset, map[string]interface{}{"sessionId": sessionId})

	return &dto.ResetConversationResponse{SessionId: sessionId}, nil
}

func (s *conversationService) GetConversation(ctx context.Context) (entity.ConversationLog, error) {
	return s.conversationRepo.FindAll(ctx)
}
