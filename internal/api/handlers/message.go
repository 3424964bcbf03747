package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arjunm-dev/cipherpost/internal/apperror"
	"github.com/arjunm-dev/cipherpost/internal/models"
	"github.com/arjunm-dev/cipherpost/internal/repositories"
	"github.com/arjunm-dev/cipherpost/internal/utils"
)

type MessageHandler struct {
	messages *repositories.MessageRepository
}

func NewMessageHandler(messages *repositories.MessageRepository) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// POST /message/send
// Send godoc
// @Summary Send an encrypted message from one user to another
// @Description Stores a message encrypted for the recipient. The server never sees the plaintext.
// @Tags Message
// @Accept json
// @Produce json
// @Param message body object{to=string,from=string,encrypted=string,encryptedKey=string} true "Encrypted message"
// @Success 200 {object} utils.Payload "Message sent successfully"
// @Failure 400 {object} utils.Payload "Missing or invalid fields"
// @Router /message/send [post]
func (h *MessageHandler) Send(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.ErrorResponse(w, apperror.NotAllowed("Method Not Allowed"))
		return
	}

	var input struct {
		To           string `json:"to"`
		From         string `json:"from"`
		Encrypted    string `json:"encrypted"`
		EncryptedKey string `json:"encryptedKey"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.ErrorResponse(w, apperror.BadRequest("Invalid input"))
		return
	}

	if input.To == "" || input.From == "" || input.Encrypted == "" || input.EncryptedKey == "" {
		utils.ErrorResponse(w, apperror.BadRequest("to, from, encrypted and encryptedKey are required"))
		return
	}

	message, err := h.messages.Create(models.Message{
		To:           input.To,
		From:         input.From,
		Encrypted:    input.Encrypted,
		EncryptedKey: input.EncryptedKey,
	})
	if err != nil {
		utils.ErrorResponse(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Message sent successfully",
		Data:    message,
	})
}

// GET /message/{username}
// GetMessages godoc
// @Summary Retrieve all messages sent to a specific user
// @Tags Message
// @Produce json
// @Param username path string true "The recipient's username"
// @Success 200 {object} utils.Payload "Messages retrieved successfully"
// @Router /message/{username} [get]
func (h *MessageHandler) GetMessages(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.ErrorResponse(w, apperror.NotAllowed("Method Not Allowed"))
		return
	}

	username := r.PathValue("username")
	if username == "" {
		utils.ErrorResponse(w, apperror.BadRequest("Missing username"))
		return
	}

	messages, err := h.messages.ReadByField("to", username)
	if err != nil {
		utils.ErrorResponse(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Messages retrieved successfully",
		Data:    messages,
	})
}
