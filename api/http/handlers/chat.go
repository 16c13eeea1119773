package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/smarthealth/connect/api/http/presenter"
	"github.com/smarthealth/connect/pkg/triage"
)

// Degraded/error strings carry the [ADVICE] tag so the chat UI can style
// them like any other assistant reply. Internal detail is logged only.
const (
	unavailableResponse = "[ADVICE] The AI service is currently unavailable. Please check the API key configuration on the server."
	serverErrorResponse = "[ADVICE] A critical server error occurred while processing your request."
)

// ChatHandler relays one user message through the triage service.
// A nil service means the completion backend failed to initialize at
// startup; the handler then answers 503 without touching the backend.
type ChatHandler struct {
	svc triage.Service
}

func NewChatHandler(svc triage.Service) *ChatHandler { return &ChatHandler{svc: svc} }

type chatRequest struct {
	Message string `json:"message"`
}

type chatResponse struct {
	Response string `json:"response"`
}

// Chat handles one user message and returns the assistant's reply.
// @Summary Send a chat message to the triage assistant
// @Description Relays the message to the completion backend, resolving at most one round of hospital-locator tool calls.
// @Tags    chat
// @Accept  json
// @Produce json
// @Param   body body handlers.chatRequest true "User message"
// @Success 200 {object} handlers.chatResponse
// @Failure 400 {object} presenter.ErrorResponse "Missing or empty message"
// @Failure 500 {object} presenter.ErrorResponse "Completion backend failure"
// @Failure 503 {object} handlers.chatResponse "Backend not configured"
// @Router  /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	if h.svc == nil {
		return presenter.JSON(c, http.StatusServiceUnavailable, chatResponse{Response: unavailableResponse})
	}

	var req chatRequest
	if err := c.BodyParser(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		return presenter.Error(c, http.StatusBadRequest, "No message provided")
	}

	answer, err := h.svc.Chat(c.Context(), req.Message)
	if err != nil {
		if errors.Is(err, triage.ErrEmptyMessage) {
			return presenter.Error(c, http.StatusBadRequest, "No message provided")
		}
		reqID := uuid.New().String()
		log.Printf("chat %s: %v", reqID, err)
		return presenter.Error(c, http.StatusInternalServerError, serverErrorResponse)
	}
	return presenter.JSON(c, http.StatusOK, chatResponse{Response: answer})
}
