package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"chatapp-backend/internal/models"
	"chatapp-backend/internal/services"
)

type ChatHandler struct {
	chatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// ListChats handles GET /chats.
func (h *ChatHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	chats := h.chatService.ListChats(r.Context())
	writeJSON(w, http.StatusOK, chats)
}

// ListMessages handles GET /chats/{chatID}/messages. An unknown or
// unparsable chat id yields an empty list, not an error.
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	chatID := chatIDParam(r)
	messages := h.chatService.ListMessages(r.Context(), chatID)
	writeJSON(w, http.StatusOK, messages)
}

// SendMessage handles POST /chats/{chatID}/messages.
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	chatID := chatIDParam(r)

	var req models.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	msg, err := h.chatService.SendMessage(r.Context(), chatID, req.Text)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

// CreateChat handles POST /chats.
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	var req models.CreateChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	chat, err := h.chatService.CreateChat(r.Context(), req.Name, req.Type)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, chat)
}

// chatIDParam reads the {chatID} path segment. Unparsable values
// coerce to 0, which behaves as an unknown chat downstream.
func chatIDParam(r *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "chatID"), 10, 64)
	return id
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case *services.ValidationError:
		writeError(w, http.StatusBadRequest, e.Message)
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
