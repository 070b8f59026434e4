package store

import (
	"testing"

	"chatapp-backend/internal/models"
)

func TestCreateChatPrependsWithFreshID(t *testing.T) {
	s := NewChatStore()

	first := s.CreateChat("Alice", models.ChatTypePerson)
	second := s.CreateChat("Bob", models.ChatTypePerson)

	if first.ID == second.ID {
		t.Fatalf("expected unique ids, got %d twice", first.ID)
	}
	if first.LastMessage != "" || first.Unread != 0 {
		t.Errorf("new chat should start empty, got lastMessage=%q unread=%d", first.LastMessage, first.Unread)
	}

	chats := s.ListChats()
	if len(chats) != 2 {
		t.Fatalf("expected 2 chats, got %d", len(chats))
	}
	if chats[0].ID != second.ID {
		t.Errorf("newest chat should be at the front, got id %d", chats[0].ID)
	}
}

func TestListMessagesUnknownChat(t *testing.T) {
	s := NewChatStore()

	msgs := s.ListMessages(999)
	if msgs == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(msgs) != 0 {
		t.Fatalf("expected no messages, got %d", len(msgs))
	}
}

func TestAppendMessageKeepsInsertionOrder(t *testing.T) {
	s := NewChatStore()
	chat := s.CreateChat("Alice", models.ChatTypePerson)

	s.AppendMessage(chat.ID, "first", models.SenderMe)
	s.AppendMessage(999, "orphan", models.SenderMe) // no chat check
	s.AppendMessage(chat.ID, "second", models.SenderOther)

	msgs := s.ListMessages(chat.ID)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if msgs[0].Text != "first" || msgs[1].Text != "second" {
		t.Errorf("messages out of order: %q, %q", msgs[0].Text, msgs[1].Text)
	}
	if msgs[0].ID == msgs[1].ID {
		t.Errorf("expected unique message ids, got %d twice", msgs[0].ID)
	}
}

func TestTouchChatMovesToFront(t *testing.T) {
	s := NewChatStore()
	alice := s.CreateChat("Alice", models.ChatTypePerson)
	s.CreateChat("Bob", models.ChatTypePerson)

	if !s.TouchChat(alice.ID, "hello") {
		t.Fatal("expected TouchChat to find the chat")
	}

	chats := s.ListChats()
	if chats[0].ID != alice.ID {
		t.Errorf("expected chat %d at front, got %d", alice.ID, chats[0].ID)
	}
	if chats[0].LastMessage != "hello" {
		t.Errorf("expected lastMessage %q, got %q", "hello", chats[0].LastMessage)
	}
	if len(chats) != 2 {
		t.Errorf("TouchChat must not duplicate chats, got %d", len(chats))
	}
}

func TestTouchChatUnknownIsNoop(t *testing.T) {
	s := NewChatStore()
	s.CreateChat("Alice", models.ChatTypePerson)

	if s.TouchChat(999, "hello") {
		t.Error("expected false for unknown chat")
	}
	if got := s.ListChats()[0].LastMessage; got != "" {
		t.Errorf("unknown touch must not mutate, got lastMessage=%q", got)
	}
}

func TestUpdateFrontLastMessage(t *testing.T) {
	s := NewChatStore()
	alice := s.CreateChat("Alice", models.ChatTypePerson)
	bob := s.CreateChat("Bob", models.ChatTypePerson)

	// Bob is at the front; Alice's id must not match.
	if s.UpdateFrontLastMessage(alice.ID, "nope") {
		t.Error("expected false when chat is not at the front")
	}
	if !s.UpdateFrontLastMessage(bob.ID, "reply") {
		t.Error("expected true for the front chat")
	}
	if got := s.ListChats()[0].LastMessage; got != "reply" {
		t.Errorf("expected lastMessage %q, got %q", "reply", got)
	}
}

func TestSeedIDsDoNotCollide(t *testing.T) {
	s := NewChatStore()
	s.Seed()

	seen := map[int64]bool{}
	for _, c := range s.ListChats() {
		if seen[c.ID] {
			t.Fatalf("duplicate seeded chat id %d", c.ID)
		}
		seen[c.ID] = true
	}

	chat := s.CreateChat("Carol", models.ChatTypePerson)
	if seen[chat.ID] {
		t.Fatalf("new chat id %d collides with seed data", chat.ID)
	}

	msgs := s.ListMessages(2)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 seeded messages for the AI chat, got %d", len(msgs))
	}
}

func TestListChatsReturnsSnapshot(t *testing.T) {
	s := NewChatStore()
	s.CreateChat("Alice", models.ChatTypePerson)

	chats := s.ListChats()
	chats[0].LastMessage = "mutated"

	if got := s.ListChats()[0].LastMessage; got != "" {
		t.Errorf("caller mutation leaked into store: %q", got)
	}
}
