package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"support-chat-backend/internal/chat"
	repo "support-chat-backend/internal/chat/repository"
	"support-chat-backend/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// mockRepo keeps conversations and messages in memory.
type mockRepo struct {
	mu            sync.Mutex
	conversations map[string]bool
	messages      []model.Message
	failInsert    bool
	lastLimit     int
}

func newMockRepo() *mockRepo {
	return &mockRepo{conversations: map[string]bool{}}
}

func (r *mockRepo) Migrate(ctx context.Context) error { return nil }

func (r *mockRepo) CreateConversation(ctx context.Context) (model.Conversation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := model.Conversation{ID: uuid.NewString(), CreatedAt: time.Now()}
	r.conversations[c.ID] = true
	return c, nil
}

func (r *mockRepo) ConversationExists(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.conversations[id], nil
}

func (r *mockRepo) CreateMessage(ctx context.Context, opt repo.CreateMessageOptions) (model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failInsert {
		return model.Message{}, repo.ErrFailedToInsert
	}
	m := model.Message{
		ID:             uuid.NewString(),
		ConversationID: opt.ConversationID,
		Sender:         opt.Sender,
		Text:           opt.Text,
		CreatedAt:      time.Now(),
	}
	r.messages = append(r.messages, m)
	return m, nil
}

func (r *mockRepo) ListRecentMessages(ctx context.Context, opt repo.ListMessagesOptions) ([]model.Message, error) {
	all, _ := r.ListMessages(ctx, opt.ConversationID)
	r.mu.Lock()
	r.lastLimit = opt.Limit
	r.mu.Unlock()
	if len(all) > opt.Limit {
		all = all[len(all)-opt.Limit:]
	}
	return all, nil
}

func (r *mockRepo) ListMessages(ctx context.Context, conversationID string) ([]model.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []model.Message{}
	for _, m := range r.messages {
		if m.ConversationID == conversationID {
			out = append(out, m)
		}
	}
	return out, nil
}

// mockResponder echoes the last message and records what it saw.
type mockResponder struct {
	seen [][]model.Message
	err  error
}

func (r *mockResponder) Generate(ctx context.Context, history []model.Message) (string, error) {
	r.seen = append(r.seen, history)
	if r.err != nil {
		return "", r.err
	}
	return "echo: " + history[len(history)-1].Text, nil
}

func TestSendMessage_NewSession(t *testing.T) {
	r := newMockRepo()
	resp := &mockResponder{}
	uc := New(r, resp, Config{}, &mockLogger{})

	out, err := uc.SendMessage(context.Background(), chat.SendMessageInput{Message: "  hello  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uuid.Parse(out.SessionID); err != nil {
		t.Errorf("expected a uuid session id, got %q", out.SessionID)
	}
	if out.Reply != "echo: hello" {
		t.Errorf("unexpected reply %q", out.Reply)
	}

	msgs, _ := r.ListMessages(context.Background(), out.SessionID)
	if len(msgs) != 2 {
		t.Fatalf("expected user and ai messages, got %d", len(msgs))
	}
	if msgs[0].Sender != model.SenderUser || msgs[0].Text != "hello" {
		t.Errorf("unexpected user message: %+v", msgs[0])
	}
	if msgs[1].Sender != model.SenderAI || msgs[1].Text != out.Reply {
		t.Errorf("unexpected ai message: %+v", msgs[1])
	}
}

func TestSendMessage_ExistingSessionUsesRecentHistory(t *testing.T) {
	r := newMockRepo()
	resp := &mockResponder{}
	uc := New(r, resp, Config{HistoryLimit: 3}, &mockLogger{})
	ctx := context.Background()

	first, err := uc.SendMessage(ctx, chat.SendMessageInput{Message: "one"})
	if err != nil {
		t.Fatalf("first message: %v", err)
	}
	if _, err := uc.SendMessage(ctx, chat.SendMessageInput{Message: "two", SessionID: first.SessionID}); err != nil {
		t.Fatalf("second message: %v", err)
	}

	last := resp.seen[len(resp.seen)-1]
	if len(last) != 3 {
		t.Fatalf("expected 3 history entries, got %d", len(last))
	}
	if last[0].Text != "one" || last[1].Text != "echo: one" || last[2].Text != "two" {
		t.Errorf("unexpected history window: %+v", last)
	}
	if r.lastLimit != 3 {
		t.Errorf("expected limit 3, got %d", r.lastLimit)
	}
}

func TestSendMessage_ConfiguredLengthLimit(t *testing.T) {
	r := newMockRepo()
	uc := New(r, &mockResponder{}, Config{MaxMessageLength: 2000}, &mockLogger{})
	ctx := context.Background()

	if _, err := uc.SendMessage(ctx, chat.SendMessageInput{Message: strings.Repeat("a", 1500)}); err != nil {
		t.Fatalf("message under the configured limit rejected: %v", err)
	}

	_, err := uc.SendMessage(ctx, chat.SendMessageInput{Message: strings.Repeat("a", 2001)})
	var tooLong *chat.MessageTooLongError
	if !errors.As(err, &tooLong) {
		t.Fatalf("expected MessageTooLongError, got %v", err)
	}
	if tooLong.Max != 2000 {
		t.Errorf("expected limit 2000 in error, got %d", tooLong.Max)
	}
	if !errors.Is(err, chat.ErrMessageTooLong) {
		t.Errorf("expected error to match ErrMessageTooLong")
	}
}

func TestSendMessage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   chat.SendMessageInput
		wantErr error
	}{
		{name: "blank message", input: chat.SendMessageInput{Message: " \t\n"}, wantErr: chat.ErrEmptyMessage},
		{name: "too long", input: chat.SendMessageInput{Message: strings.Repeat("a", 1001)}, wantErr: chat.ErrMessageTooLong},
		{name: "invalid session", input: chat.SendMessageInput{Message: "hi", SessionID: "not-a-uuid"}, wantErr: chat.ErrInvalidSessionID},
		{name: "unknown session", input: chat.SendMessageInput{Message: "hi", SessionID: uuid.NewString()}, wantErr: chat.ErrSessionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newMockRepo()
			uc := New(r, &mockResponder{}, Config{}, &mockLogger{})

			_, err := uc.SendMessage(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if len(r.messages) != 0 {
				t.Errorf("expected nothing persisted, got %d messages", len(r.messages))
			}
		})
	}
}

func TestSendMessage_LengthCountsCharacters(t *testing.T) {
	uc := New(newMockRepo(), &mockResponder{}, Config{}, &mockLogger{})

	// 1000 multi-byte characters are within the limit
	if _, err := uc.SendMessage(context.Background(), chat.SendMessageInput{Message: strings.Repeat("é", 1000)}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestSendMessage_ResponderFailure(t *testing.T) {
	cause := errors.New("deadline")
	r := newMockRepo()
	uc := New(r, &mockResponder{err: cause}, Config{}, &mockLogger{})

	_, err := uc.SendMessage(context.Background(), chat.SendMessageInput{Message: "hi"})
	if !errors.Is(err, chat.ErrReplyFailed) || !errors.Is(err, cause) {
		t.Errorf("expected ErrReplyFailed wrapping cause, got %v", err)
	}
}

func TestSendMessage_RepositoryFailure(t *testing.T) {
	r := newMockRepo()
	r.failInsert = true
	uc := New(r, &mockResponder{}, Config{}, &mockLogger{})

	_, err := uc.SendMessage(context.Background(), chat.SendMessageInput{Message: "hi"})
	if !errors.Is(err, repo.ErrFailedToInsert) {
		t.Errorf("expected ErrFailedToInsert, got %v", err)
	}
}

func TestHistory(t *testing.T) {
	r := newMockRepo()
	uc := New(r, &mockResponder{}, Config{}, &mockLogger{})
	ctx := context.Background()

	out, _ := uc.SendMessage(ctx, chat.SendMessageInput{Message: "hi"})

	h, err := uc.History(ctx, out.SessionID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.SessionID != out.SessionID || len(h.Messages) != 2 {
		t.Errorf("unexpected history: %+v", h)
	}

	if _, err := uc.History(ctx, uuid.NewString()); !errors.Is(err, chat.ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
	if _, err := uc.History(ctx, "abc"); !errors.Is(err, chat.ErrInvalidSessionID) {
		t.Errorf("expected ErrInvalidSessionID, got %v", err)
	}
}
