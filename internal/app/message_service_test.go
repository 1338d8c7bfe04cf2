package app

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/zap"

	"github.com/example/camptrack/internal/ports/secondary"
)

// mockMessageRepo keeps messages in insertion order.
type mockMessageRepo struct {
	messages []*secondary.MessageRecord
	nextID   int64
}

func newMockMessageRepo() *mockMessageRepo {
	return &mockMessageRepo{nextID: 1}
}

func (m *mockMessageRepo) Create(_ context.Context, senderID, recipientID int64, body string) (int64, error) {
	id := m.nextID
	m.nextID++
	m.messages = append(m.messages, &secondary.MessageRecord{
		ID: id, SenderID: senderID, RecipientID: recipientID, Body: body,
	})
	return id, nil
}

func (m *mockMessageRepo) between(userID, otherID int64) []*secondary.MessageRecord {
	var out []*secondary.MessageRecord
	for _, msg := range m.messages {
		if (msg.SenderID == userID && msg.RecipientID == otherID) ||
			(msg.SenderID == otherID && msg.RecipientID == userID) {
			out = append(out, msg)
		}
	}
	return out
}

func (m *mockMessageRepo) ConversationBetween(_ context.Context, userID, otherID int64, limit, offset int) ([]*secondary.MessageRecord, error) {
	conv := m.between(userID, otherID)
	// Page from the newest end, oldest-first inside the page.
	end := len(conv) - offset
	if end < 0 {
		end = 0
	}
	start := end - limit
	if start < 0 {
		start = 0
	}
	return conv[start:end], nil
}

func (m *mockMessageRepo) CountConversation(_ context.Context, userID, otherID int64) (int, error) {
	return len(m.between(userID, otherID)), nil
}

func (m *mockMessageRepo) Inbox(_ context.Context, recipientID int64, unreadOnly bool) ([]*secondary.MessageRecord, error) {
	var out []*secondary.MessageRecord
	for i := len(m.messages) - 1; i >= 0; i-- {
		msg := m.messages[i]
		if msg.RecipientID != recipientID {
			continue
		}
		if unreadOnly && msg.IsRead {
			continue
		}
		out = append(out, msg)
	}
	return out, nil
}

func (m *mockMessageRepo) MarkConversationRead(_ context.Context, senderID, recipientID int64) error {
	for _, msg := range m.messages {
		if msg.SenderID == senderID && msg.RecipientID == recipientID {
			msg.IsRead = true
		}
	}
	return nil
}

func (m *mockMessageRepo) ChatPartners(_ context.Context, userID int64) ([]*secondary.ChatPartnerRecord, error) {
	return nil, nil
}

var _ secondary.MessageRepository = (*mockMessageRepo)(nil)

func TestMessageService_SendMessage(t *testing.T) {
	messages := newMockMessageRepo()
	users := newMockUserRepo()
	alice := users.addUser("alice", "coordinator", "x", false)
	bob := users.addUser("bob", "leader", "x", false)
	mallory := users.addUser("mallory", "leader", "x", true)

	svc := NewMessageService(messages, users, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.SendMessage(ctx, alice, bob, "hello"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}

	if _, err := svc.SendMessage(ctx, alice, bob, ""); err == nil {
		t.Fatal("expected empty body to be rejected")
	}
	if _, err := svc.SendMessage(ctx, alice, alice, "note to self"); err == nil {
		t.Fatal("expected self-message to be rejected")
	}
	if _, err := svc.SendMessage(ctx, alice, mallory, "hello"); err == nil {
		t.Fatal("expected message to disabled account to be rejected")
	}
}

func TestMessageService_ConversationPagingAndRead(t *testing.T) {
	messages := newMockMessageRepo()
	users := newMockUserRepo()
	alice := users.addUser("alice", "coordinator", "x", false)
	bob := users.addUser("bob", "leader", "x", false)

	svc := NewMessageService(messages, users, zap.NewNop())
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		if _, err := svc.SendMessage(ctx, bob, alice, fmt.Sprintf("msg %d", i)); err != nil {
			t.Fatalf("SendMessage failed: %v", err)
		}
	}

	// Page 1 holds the newest two, oldest-first inside the page.
	page, err := svc.Conversation(ctx, alice, bob, 1, 2)
	if err != nil {
		t.Fatalf("Conversation failed: %v", err)
	}
	if page.Total != 5 || page.TotalPages != 3 {
		t.Errorf("unexpected paging: %+v", page)
	}
	if len(page.Messages) != 2 || page.Messages[0].Body != "msg 4" || page.Messages[1].Body != "msg 5" {
		t.Errorf("unexpected page content: %+v", page.Messages)
	}

	// Viewing the conversation marked bob's messages read.
	unread, err := svc.Inbox(ctx, alice, true)
	if err != nil {
		t.Fatalf("Inbox failed: %v", err)
	}
	if len(unread) != 0 {
		t.Errorf("expected conversation marked read, %d unread left", len(unread))
	}

	// A page past the end clamps to the last page.
	page, err = svc.Conversation(ctx, alice, bob, 99, 2)
	if err != nil {
		t.Fatalf("Conversation failed: %v", err)
	}
	if page.Page != 3 || len(page.Messages) != 1 || page.Messages[0].Body != "msg 1" {
		t.Errorf("unexpected clamped page: %+v", page)
	}
}
