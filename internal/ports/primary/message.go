package primary

import "context"

// MessageService defines the primary port for direct messaging.
type MessageService interface {
	// SendMessage sends a message from one user to another.
	SendMessage(ctx context.Context, senderID, recipientID int64, body string) (int64, error)

	// Conversation returns one page of the conversation between two users
	// and marks the other party's messages as read.
	Conversation(ctx context.Context, userID, otherID int64, page, pageSize int) (*ConversationPage, error)

	// Inbox lists messages addressed to a user, newest first.
	Inbox(ctx context.Context, userID int64, unreadOnly bool) ([]*Message, error)

	// ChatPartners lists everyone the user has exchanged messages with,
	// most recent conversation first, with unread counts.
	ChatPartners(ctx context.Context, userID int64) ([]*ChatPartner, error)
}

// Message is a direct message as exposed to callers.
type Message struct {
	ID             int64
	SenderID       int64
	SenderUsername string
	RecipientID    int64
	Body           string
	IsRead         bool
	CreatedAt      string
}

// ConversationPage is one page of a two-party conversation, oldest first.
type ConversationPage struct {
	Messages   []*Message
	Page       int
	TotalPages int
	Total      int
}

// ChatPartner summarizes a conversation with one other user.
type ChatPartner struct {
	PartnerID       int64
	PartnerUsername string
	PartnerRole     string
	LastMessage     string
	LastTimestamp   string
	UnreadCount     int
}
