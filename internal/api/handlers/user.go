package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/arjunm-dev/cipherpost/internal/apperror"
	"github.com/arjunm-dev/cipherpost/internal/models"
	"github.com/arjunm-dev/cipherpost/internal/repositories"
	"github.com/arjunm-dev/cipherpost/internal/utils"
)

type UserHandler struct {
	users *repositories.UserRepository
}

func NewUserHandler(users *repositories.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

// POST /user/register
// Register godoc
// @Summary Register a new user
// @Description Registers a username together with the RSA public key other users encrypt messages with.
// @Tags User
// @Accept json
// @Produce json
// @Param user body object{username=string,publicKey=string} true "Username and public key"
// @Success 201 {object} utils.Payload "User created successfully"
// @Failure 400 {object} utils.Payload "Missing or invalid fields"
// @Failure 409 {object} utils.Payload "Username already taken"
// @Router /user/register [post]
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		utils.ErrorResponse(w, apperror.NotAllowed("Method Not Allowed"))
		return
	}

	var input struct {
		Username  string `json:"username"`
		PublicKey string `json:"publicKey"`
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		utils.ErrorResponse(w, apperror.BadRequest("Invalid input"))
		return
	}

	if input.Username == "" || input.PublicKey == "" {
		utils.ErrorResponse(w, apperror.BadRequest("username and publicKey are required"))
		return
	}

	user, err := h.users.Create(models.User{
		Username:  input.Username,
		PublicKey: input.PublicKey,
	})
	if err != nil {
		utils.ErrorResponse(w, err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "User created successfully",
		Data:    user,
	})
}

// GET /user/{username}
// GetPublicKey godoc
// @Summary Retrieve a user's public key
// @Tags User
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} utils.Payload "Public key retrieved successfully"
// @Failure 404 {object} utils.Payload "User not found"
// @Router /user/{username} [get]
func (h *UserHandler) GetPublicKey(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		utils.ErrorResponse(w, apperror.NotAllowed("Method Not Allowed"))
		return
	}

	username := r.PathValue("username")
	if username == "" {
		utils.ErrorResponse(w, apperror.BadRequest("Missing username"))
		return
	}

	user, err := h.users.ReadByUsername(username)
	if err != nil {
		utils.ErrorResponse(w, err)
		return
	}
	if user == nil {
		utils.ErrorResponse(w, apperror.NotFound(fmt.Sprintf("User with username %s not found", username)))
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Public key retrieved successfully",
		Data: map[string]string{
			"publicKey": user.Doc.PublicKey,
		},
	})
}
