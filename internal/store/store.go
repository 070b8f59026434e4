package store

import (
	"sync"
	"time"

	"chatapp-backend/internal/models"
)

const timeFormat = "03:04 PM"

// ChatStore owns the two in-memory collections. All access goes
// through the mutex; handlers run on the server's connection
// goroutines, so unguarded slices would race.
type ChatStore struct {
	mu       sync.Mutex
	chats    []*models.Chat
	messages []*models.Message
	nextID   int64
	now      func() time.Time
}

func NewChatStore() *ChatStore {
	return &ChatStore{
		nextID: 1,
		now:    time.Now,
	}
}

// newID hands out process-unique ids for both chats and messages.
// Caller must hold the mutex.
func (s *ChatStore) newID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// ListChats returns a snapshot of the chat list, most recently active
// first.
func (s *ChatStore) ListChats() []*models.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Chat, len(s.chats))
	for i, c := range s.chats {
		cc := *c
		out[i] = &cc
	}
	return out
}

// ListMessages returns the messages for a chat in insertion order.
// An unknown chatID yields an empty slice, never an error.
func (s *ChatStore) ListMessages(chatID int64) []*models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Message, 0)
	for _, m := range s.messages {
		if m.ChatID == chatID {
			mm := *m
			out = append(out, &mm)
		}
	}
	return out
}

// CreateChat inserts a new chat at the front of the list.
func (s *ChatStore) CreateChat(name, chatType string) *models.Chat {
	s.mu.Lock()
	defer s.mu.Unlock()

	chat := &models.Chat{
		ID:          s.newID(),
		Name:        name,
		LastMessage: "",
		Unread:      0,
		Type:        chatType,
	}
	s.chats = append([]*models.Chat{chat}, s.chats...)

	c := *chat
	return &c
}

// AppendMessage records a message with a server-assigned id and
// timestamp. The chatID is not checked against the chat list.
func (s *ChatStore) AppendMessage(chatID int64, text, sender string) *models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := &models.Message{
		ID:     s.newID(),
		ChatID: chatID,
		Text:   text,
		Sender: sender,
		Time:   s.now().Format(timeFormat),
	}
	s.messages = append(s.messages, msg)

	m := *msg
	return &m
}

// TouchChat sets the chat's lastMessage and moves it to the front of
// the list. Unknown chats are skipped silently.
func (s *ChatStore) TouchChat(chatID int64, lastMessage string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.chats {
		if c.ID == chatID {
			c.LastMessage = lastMessage
			s.chats = append(s.chats[:i], s.chats[i+1:]...)
			s.chats = append([]*models.Chat{c}, s.chats...)
			return true
		}
	}
	return false
}

// ChatType reports the type of a chat, if it exists.
func (s *ChatStore) ChatType(chatID int64) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.chats {
		if c.ID == chatID {
			return c.Type, true
		}
	}
	return "", false
}

// UpdateFrontLastMessage sets lastMessage only when the chat is
// currently at the front of the list and the id matches. Used after an
// AI reply: the preceding TouchChat put the chat at index 0, but a
// create in between could have displaced it.
func (s *ChatStore) UpdateFrontLastMessage(chatID int64, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.chats) > 0 && s.chats[0].ID == chatID {
		s.chats[0].LastMessage = text
		return true
	}
	return false
}
