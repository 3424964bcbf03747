package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arjunm-dev/cipherpost/internal/apperror"
	"github.com/arjunm-dev/cipherpost/internal/crypto"
	"github.com/arjunm-dev/cipherpost/internal/utils"
)

type PayloadHandler struct {
	crypto *crypto.Service
}

func NewPayloadHandler(svc *crypto.Service) *PayloadHandler {
	return &PayloadHandler{crypto: svc}
}

// POST /payload/encrypt
// Encrypt godoc
// @Summary Encrypt a message with the server's public key
// @Tags Payload
// @Accept json
// @Produce json
// @Param payload body object{message=string} true "Plaintext message"
// @Success 200 {object} utils.Payload "Message encrypted successfully"
// @Failure 400 {object} utils.Payload "Missing or invalid fields"
// @Router /payload/encrypt [post]
func (h *PayloadHandler) Encrypt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.ErrorResponse(w, apperror.NotAllowed("Method Not Allowed"))
		return
	}

	var input struct {
		Message string `json:"message"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.ErrorResponse(w, apperror.BadRequest("Invalid input"))
		return
	}

	if input.Message == "" {
		utils.ErrorResponse(w, apperror.BadRequest("message is required"))
		return
	}

	encrypted, err := h.crypto.Encrypt(input.Message)
	if err != nil {
		utils.ErrorResponse(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Message encrypted successfully",
		Data: map[string]string{
			"encryptedMessage": encrypted,
		},
	})
}

// POST /payload/decrypt
// Decrypt godoc
// @Summary Decrypt an encrypted message with the server's private key
// @Tags Payload
// @Accept json
// @Produce json
// @Param payload body object{encryptedMessage=string} true "Base64 ciphertext"
// @Success 200 {object} utils.Payload "Message decrypted successfully"
// @Failure 400 {object} utils.Payload "Missing or invalid fields"
// @Router /payload/decrypt [post]
func (h *PayloadHandler) Decrypt(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.ErrorResponse(w, apperror.NotAllowed("Method Not Allowed"))
		return
	}

	var input struct {
		EncryptedMessage string `json:"encryptedMessage"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.ErrorResponse(w, apperror.BadRequest("Invalid input"))
		return
	}

	if input.EncryptedMessage == "" {
		utils.ErrorResponse(w, apperror.BadRequest("encryptedMessage is required"))
		return
	}

	decrypted, err := h.crypto.Decrypt(input.EncryptedMessage)
	if err != nil {
		utils.ErrorResponse(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Message decrypted successfully",
		Data: map[string]string{
			"decryptedMessage": decrypted,
		},
	})
}
