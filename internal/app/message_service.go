package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/camptrack/internal/ports/primary"
	"github.com/example/camptrack/internal/ports/secondary"
)

// MessageServiceImpl implements the MessageService interface.
type MessageServiceImpl struct {
	messageRepo secondary.MessageRepository
	userRepo    secondary.UserRepository
	logger      *zap.Logger
}

// NewMessageService creates a new MessageService with injected dependencies.
func NewMessageService(messageRepo secondary.MessageRepository, userRepo secondary.UserRepository, logger *zap.Logger) *MessageServiceImpl {
	return &MessageServiceImpl{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		logger:      logger,
	}
}

// SendMessage sends a message from one user to another. Messages to
// disabled accounts are refused.
func (s *MessageServiceImpl) SendMessage(ctx context.Context, senderID, recipientID int64, body string) (int64, error) {
	if body == "" {
		return 0, fmt.Errorf("message body cannot be empty")
	}
	if senderID == recipientID {
		return 0, fmt.Errorf("cannot message yourself")
	}

	recipient, err := s.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		return 0, fmt.Errorf("failed to validate recipient: %w", err)
	}
	if recipient.IsDisabled {
		return 0, fmt.Errorf("user %s is disabled", recipient.Username)
	}

	return s.messageRepo.Create(ctx, senderID, recipientID, body)
}

// Conversation returns one page of the conversation between two users,
// newest page first with messages oldest-first inside the page, and
// marks the other party's messages as read.
func (s *MessageServiceImpl) Conversation(ctx context.Context, userID, otherID int64, page, pageSize int) (*primary.ConversationPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	total, err := s.messageRepo.CountConversation(ctx, userID, otherID)
	if err != nil {
		return nil, err
	}

	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	records, err := s.messageRepo.ConversationBetween(ctx, userID, otherID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	if err := s.messageRepo.MarkConversationRead(ctx, otherID, userID); err != nil {
		return nil, err
	}

	messages := make([]*primary.Message, 0, len(records))
	for _, record := range records {
		messages = append(messages, recordToMessage(record))
	}

	return &primary.ConversationPage{
		Messages:   messages,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
	}, nil
}

// Inbox lists messages addressed to a user, newest first.
func (s *MessageServiceImpl) Inbox(ctx context.Context, userID int64, unreadOnly bool) ([]*primary.Message, error) {
	records, err := s.messageRepo.Inbox(ctx, userID, unreadOnly)
	if err != nil {
		return nil, err
	}

	messages := make([]*primary.Message, 0, len(records))
	for _, record := range records {
		messages = append(messages, recordToMessage(record))
	}
	return messages, nil
}

// ChatPartners lists everyone the user has exchanged messages with.
func (s *MessageServiceImpl) ChatPartners(ctx context.Context, userID int64) ([]*primary.ChatPartner, error) {
	records, err := s.messageRepo.ChatPartners(ctx, userID)
	if err != nil {
		return nil, err
	}

	partners := make([]*primary.ChatPartner, 0, len(records))
	for _, record := range records {
		partners = append(partners, &primary.ChatPartner{
			PartnerID:       record.PartnerID,
			PartnerUsername: record.PartnerUsername,
			PartnerRole:     record.PartnerRole,
			LastMessage:     record.LastMessage,
			LastTimestamp:   record.LastTimestamp,
			UnreadCount:     record.UnreadCount,
		})
	}
	return partners, nil
}

func recordToMessage(record *secondary.MessageRecord) *primary.Message {
	return &primary.Message{
		ID:             record.ID,
		SenderID:       record.SenderID,
		SenderUsername: record.SenderUsername,
		RecipientID:    record.RecipientID,
		Body:           record.Body,
		IsRead:         record.IsRead,
		CreatedAt:      record.CreatedAt,
	}
}

var _ primary.MessageService = (*MessageServiceImpl)(nil)
