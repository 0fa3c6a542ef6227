package rest

import (
	"errors"
	"net/http"

	"cantina-be/internal/order"
	"cantina-be/internal/utils"
)

type OrderHandler struct {
	orders order.Service
}

func NewOrderHandler(orders order.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type placeOrderRequest struct {
	Items []order.RequestedItem `json:"items"`
}

type setStatusRequest struct {
	Status order.Status `json:"status"`
}

func (h *OrderHandler) Place(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	var req placeOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.WriteJSONError(w, "Items must be a non-empty array", http.StatusBadRequest)
		return
	}

	res, err := h.orders.Place(r.Context(), userID, req.Items)
	switch {
	case err == nil:
		utils.WriteJSON(w, http.StatusCreated, map[string]any{
			"order":      res.Order,
			"newBalance": res.NewBalance,
		})
	case errors.Is(err, order.ErrEmptyOrder):
		utils.WriteJSONError(w, "Items must be a non-empty array", http.StatusBadRequest)
	case errors.Is(err, order.ErrInvalidQuantity):
		utils.WriteJSONError(w, "Item quantities must be positive", http.StatusBadRequest)
	case errors.Is(err, order.ErrUnknownProduct):
		utils.WriteJSONError(w, "Some productId does not exist", http.StatusBadRequest)
	case errors.Is(err, order.ErrInsufficientBalance):
		utils.WriteJSONError(w, "Insufficient balance", http.StatusBadRequest)
	case errors.Is(err, order.ErrUserNotFound):
		utils.WriteJSONError(w, "User not found", http.StatusNotFound)
	default:
		internalError(w, r, err)
	}
}

func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	orders, err := h.orders.ListMine(r.Context(), userID)
	if err != nil {
		internalError(w, r, err)
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListAll(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

func (h *OrderHandler) GetOne(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())

	id, ok := pathID(r)
	if !ok {
		utils.WriteJSONError(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	o, err := h.orders.GetOne(r.Context(), userID, id)
	switch {
	case err == nil:
		utils.WriteJSON(w, http.StatusOK, o)
	case errors.Is(err, order.ErrOrderNotFound):
		utils.WriteJSONError(w, "Order not found", http.StatusNotFound)
	case errors.Is(err, order.ErrNotOrderOwner):
		utils.WriteJSONError(w, "Access to this order is denied", http.StatusForbidden)
	default:
		internalError(w, r, err)
	}
}

func (h *OrderHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.WriteJSONError(w, "Invalid order id", http.StatusBadRequest)
		return
	}

	var req setStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.WriteJSONError(w, "Invalid status", http.StatusBadRequest)
		return
	}

	o, err := h.orders.SetStatus(r.Context(), id, req.Status)
	switch {
	case err == nil:
		utils.WriteJSON(w, http.StatusOK, o)
	case errors.Is(err, order.ErrInvalidStatus):
		utils.WriteJSONError(w, "Invalid status", http.StatusBadRequest)
	case errors.Is(err, order.ErrOrderNotFound):
		utils.WriteJSONError(w, "Order not found", http.StatusNotFound)
	default:
		internalError(w, r, err)
	}
}
