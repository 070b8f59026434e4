package models

// Chat types.
const (
	ChatTypePerson = "person"
	ChatTypeAI     = "ai"
)

// Message senders.
const (
	SenderMe    = "me"
	SenderOther = "other"
	SenderAI    = "ai"
)

// Chat is a conversation entry in the sidebar list. Chats are ordered
// most-recently-active first; sending a message moves its chat to the
// front of the list.
type Chat struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	LastMessage string `json:"lastMessage"`
	Unread      int    `json:"unread"` // reserved, never mutated
	Type        string `json:"type"`   // "person" | "ai"
}

// Message is a single entry in a chat's timeline. ChatID is not
// validated against chat existence; orphaned messages are accepted.
type Message struct {
	ID     int64  `json:"id"`
	ChatID int64  `json:"chatId"`
	Text   string `json:"text"`
	Sender string `json:"sender"` // "me" | "other" | "ai"
	Time   string `json:"time"`   // short wall-clock time, e.g. "10:05 AM"
}

// CreateChatRequest is the payload for POST /chats.
type CreateChatRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// SendMessageRequest is the payload for POST /chats/{chatID}/messages.
type SendMessageRequest struct {
	Text string `json:"text"`
}

// ErrorResponse is the flat error body the front end consumes.
type ErrorResponse struct {
	Error string `json:"error"`
}
