package rest

import (
	"errors"
	"net/http"

	"cantina-be/internal/user"
	"cantina-be/internal/utils"

	"github.com/shopspring/decimal"
)

type UserHandler struct {
	users user.Service
}

func NewUserHandler(users user.Service) *UserHandler {
	return &UserHandler{users: users}
}

type creditRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	if users == nil {
		users = []user.User{}
	}
	utils.WriteJSON(w, http.StatusOK, users)
}

func (h *UserHandler) Credit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.WriteJSONError(w, "Invalid user id", http.StatusBadRequest)
		return
	}

	var req creditRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.WriteJSONError(w, "Invalid credit amount", http.StatusBadRequest)
		return
	}

	u, err := h.users.Credit(r.Context(), id, req.Amount)
	switch {
	case err == nil:
		utils.WriteJSON(w, http.StatusOK, u)
	case errors.Is(err, user.ErrInvalidAmount):
		utils.WriteJSONError(w, "Invalid credit amount", http.StatusBadRequest)
	case errors.Is(err, user.ErrUserNotFound):
		utils.WriteJSONError(w, "User not found", http.StatusNotFound)
	default:
		internalError(w, r, err)
	}
}
