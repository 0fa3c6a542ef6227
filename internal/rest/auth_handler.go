package rest

import (
	"errors"
	"net/http"
	"strings"

	"cantina-be/internal/auth"
	"cantina-be/internal/user"
	"cantina-be/internal/utils"
)

type AuthHandler struct {
	users  user.Service
	tokens *auth.TokenManager
}

func NewAuthHandler(users user.Service, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens}
}

type registerRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	StudentID string `json:"studentId"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.WriteJSONError(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	var studentID *string
	if trimmed := strings.TrimSpace(req.StudentID); trimmed != "" {
		studentID = &trimmed
	}

	u, err := h.users.Register(r.Context(), req.Name, req.Email, req.Password, studentID)
	switch {
	case err == nil:
		utils.WriteJSON(w, http.StatusCreated, u)
	case errors.Is(err, user.ErrMissingFields):
		utils.WriteJSONError(w, "Name, email and password are required", http.StatusBadRequest)
	case errors.Is(err, user.ErrEmailExists):
		utils.WriteJSONError(w, "A user with this email already exists", http.StatusConflict)
	default:
		internalError(w, r, err)
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.WriteJSONError(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		utils.WriteJSONError(w, "Email and password are required", http.StatusBadRequest)
		return
	}

	u, err := h.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			utils.WriteJSONError(w, "Invalid credentials", http.StatusUnauthorized)
			return
		}
		internalError(w, r, err)
		return
	}

	token, err := h.tokens.Generate(u.ID, u.Role)
	if err != nil {
		internalError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  u,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	u, err := h.users.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			utils.WriteJSONError(w, "User not found", http.StatusNotFound)
			return
		}
		internalError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]any{"user": u})
}
