package store

import "chatapp-backend/internal/models"

// Seed pre-populates the store with the demo conversations the app
// ships with. Must be called before the store serves requests.
func (s *ChatStore) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chats = []*models.Chat{
		{ID: 1, Name: "Alice", LastMessage: "Hey, how are you?", Unread: 2, Type: models.ChatTypePerson},
		{ID: 2, Name: "AI Assistant", LastMessage: "How can I help you today?", Unread: 0, Type: models.ChatTypeAI},
		{ID: 3, Name: "Bob", LastMessage: "See you later!", Unread: 0, Type: models.ChatTypePerson},
	}

	s.messages = []*models.Message{
		{ID: 4, ChatID: 1, Text: "Hello Alice!", Sender: models.SenderOther, Time: "10:00 AM"},
		{ID: 5, ChatID: 1, Text: "Hi there!", Sender: models.SenderMe, Time: "10:01 AM"},
		{ID: 6, ChatID: 1, Text: "How are you doing?", Sender: models.SenderOther, Time: "10:02 AM"},
		{ID: 7, ChatID: 1, Text: "I'm good, thanks! How about you?", Sender: models.SenderMe, Time: "10:03 AM"},
		{ID: 8, ChatID: 1, Text: "I'm doing well too.", Sender: models.SenderOther, Time: "10:04 AM"},
		{ID: 9, ChatID: 2, Text: "Hello AI!", Sender: models.SenderMe, Time: "10:05 AM"},
		{ID: 10, ChatID: 2, Text: "How can I help you today?", Sender: models.SenderAI, Time: "10:06 AM"},
		{ID: 11, ChatID: 3, Text: "Hey Bob!", Sender: models.SenderMe, Time: "10:07 AM"},
		{ID: 12, ChatID: 3, Text: "See you later!", Sender: models.SenderOther, Time: "10:08 AM"},
	}

	s.nextID = 13
}
