package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"agrimitra/internal/core"
	"agrimitra/internal/llm"
	"agrimitra/internal/models"
)

// ChatService answers farmer questions through the chat model.
type ChatService struct {
	llm    llm.Client
	logger *zap.Logger
}

// NewChatService creates a chat service backed by the given model client.
func NewChatService(client llm.Client, logger *zap.Logger) *ChatService {
	return &ChatService{llm: client, logger: logger}
}

// ProcessMessage builds the conversation context, asks the model, and
// attaches follow-up suggestions derived from the incoming message. Provider
// errors propagate unchanged; there is no retry or fallback answer.
func (s *ChatService) ProcessMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	messages := core.BuildConversation(req.Message, req.ConversationHistory, req.Language)

	start := time.Now()
	answer, err := s.llm.Complete(ctx, messages)
	if err != nil {
		s.logger.Error("chat completion failed", zap.Error(err))
		return nil, fmt.Errorf("chat completion: %w", err)
	}
	s.logger.Debug("chat completion",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("history_len", len(req.ConversationHistory)))

	return &models.ChatResponse{
		Response:         answer,
		ConversationID:   uuid.NewString(),
		SuggestedActions: core.SuggestActions(req.Message),
	}, nil
}
