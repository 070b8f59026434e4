package services

import (
	"context"
	"log"
	"strings"

	"chatapp-backend/internal/models"
	"chatapp-backend/internal/store"
)

// Generator produces a completion for a prompt. Satisfied by
// *GeminiService; tests substitute a mock.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatService owns the chat/message operations. Sending to an "ai"
// chat additionally asks the Generator for a reply; that step is best
// effort and never fails the send.
type ChatService struct {
	store     *store.ChatStore
	generator Generator
}

func NewChatService(chatStore *store.ChatStore, generator Generator) *ChatService {
	return &ChatService{
		store:     chatStore,
		generator: generator,
	}
}

func (s *ChatService) ListChats(ctx context.Context) []*models.Chat {
	return s.store.ListChats()
}

func (s *ChatService) ListMessages(ctx context.Context, chatID int64) []*models.Message {
	return s.store.ListMessages(chatID)
}

// CreateChat validates the request and inserts the chat at the front
// of the list.
func (s *ChatService) CreateChat(ctx context.Context, name, chatType string) (*models.Chat, error) {
	fields := map[string]string{}
	if strings.TrimSpace(name) == "" {
		fields["name"] = "Name is required"
	}
	if strings.TrimSpace(chatType) == "" {
		fields["type"] = "Type is required"
	}
	if len(fields) > 0 {
		return nil, &ValidationError{Message: "Name and type are required", Fields: fields}
	}

	chat := s.store.CreateChat(name, chatType)
	log.Printf("Created chat %d (%s, type=%s)", chat.ID, chat.Name, chat.Type)
	return chat, nil
}

// SendMessage records the user's message and, for "ai" chats, appends
// a generated reply. The returned message is always the user's own:
// the AI step never changes the result, only the collections and the
// logs.
func (s *ChatService) SendMessage(ctx context.Context, chatID int64, text string) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, &ValidationError{
			Message: "Message text is required",
			Fields:  map[string]string{"text": "Message text is required"},
		}
	}

	userMsg := s.store.AppendMessage(chatID, text, models.SenderMe)

	// Unknown chats are skipped silently; the message stays orphaned.
	if s.store.TouchChat(chatID, text) {
		log.Printf("Updated last message for chat %d and moved to top", chatID)
	}

	chatType, ok := s.store.ChatType(chatID)
	if !ok || chatType != models.ChatTypeAI {
		return userMsg, nil
	}

	reply, err := s.generator.Generate(ctx, text)
	if err != nil {
		// Best effort: the user's message is already recorded, so the
		// send succeeds whether or not the AI reply does.
		log.Printf("AI reply for chat %d failed: %v", chatID, err)
		return userMsg, nil
	}

	s.store.AppendMessage(chatID, reply, models.SenderAI)
	if s.store.UpdateFrontLastMessage(chatID, reply) {
		log.Printf("Appended AI reply for chat %d", chatID)
	}

	return userMsg, nil
}
