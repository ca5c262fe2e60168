package api

import (
	"errors"
	"net/http"
	"strings"

	app_errors "talky/backend/internal/errors"
	"talky/backend/internal/interfaces"
	"talky/backend/internal/model"
	"talky/backend/internal/service"
)

// ChatHandler handles the relay endpoints.
type ChatHandler struct {
	relay interfaces.RelayService
}

func NewChatHandler(relay interfaces.RelayService) *ChatHandler {
	return &ChatHandler{relay: relay}
}

// HandleChat godoc
// @Summary      Relay a conversation
// @Description  Forwards the full message history to the selected provider and returns its reply. An omitted model uses gemini; an unrecognised one uses openai.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        chatRequest  body      model.ChatRequest  true  "Conversation history"
// @Success      200          {object}  model.ChatResponse
// @Failure      400          {object}  ErrorResponse
// @Failure      500          {object}  ErrorResponse
// @Router       /chat [post]
func (h *ChatHandler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req model.ChatRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondWithError(w, chatDecodeError(err))
		return
	}
	if len(req.Messages) == 0 {
		respondWithError(w, app_errors.New(app_errors.ErrInvalidRequest, service.MessagesRequiredMessage))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	resp, err := h.relay.Relay(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// HandleGenerate godoc
// @Summary      Single-prompt generation
// @Description  Sends one prompt to the default provider and returns the generated text.
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Param        generateRequest  body      model.GenerateRequest  true  "Prompt"
// @Success      200              {object}  model.GenerateResponse
// @Failure      400              {object}  ErrorResponse
// @Failure      500              {object}  ErrorResponse
// @Router       /generate [post]
func (h *ChatHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondWithError(w, err)
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	resp, err := h.relay.Generate(r.Context(), req.Prompt)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

// chatDecodeError folds every shape problem involving the messages field,
// including an empty body, into the single "messages array is required" error.
func chatDecodeError(err error) error {
	var shapeErr *bodyShapeError
	if errors.As(err, &shapeErr) && (shapeErr.field == "" || strings.HasPrefix(shapeErr.field, "messages")) {
		return app_errors.New(app_errors.ErrInvalidRequest, service.MessagesRequiredMessage)
	}
	return err
}
