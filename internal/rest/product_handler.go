package rest

import (
	"errors"
	"net/http"
	"strings"

	"cantina-be/internal/product"
	"cantina-be/internal/utils"

	"github.com/shopspring/decimal"
)

type ProductHandler struct {
	products product.Service
}

func NewProductHandler(products product.Service) *ProductHandler {
	return &ProductHandler{products: products}
}

type createProductRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	ImageURL    string          `json:"imageUrl"`
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		internalError(w, r, err)
		return
	}
	if products == nil {
		products = []product.Product{}
	}
	utils.WriteJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.WriteJSONError(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	p, err := h.products.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, product.ErrProductNotFound) {
			utils.WriteJSONError(w, "Product not found", http.StatusNotFound)
			return
		}
		internalError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, p)
}

func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		utils.WriteJSONError(w, "Invalid price", http.StatusBadRequest)
		return
	}

	params := product.CreateParams{
		Name:  req.Name,
		Price: req.Price,
	}
	if desc := strings.TrimSpace(req.Description); desc != "" {
		params.Description = &desc
	}
	if img := strings.TrimSpace(req.ImageURL); img != "" && img != "null" {
		params.ImageURL = &img
	}

	p, err := h.products.Create(r.Context(), params)
	switch {
	case err == nil:
		utils.WriteJSON(w, http.StatusCreated, p)
	case errors.Is(err, product.ErrNameRequired):
		utils.WriteJSONError(w, "Name and price are required", http.StatusBadRequest)
	case errors.Is(err, product.ErrInvalidPrice):
		utils.WriteJSONError(w, "Invalid price", http.StatusBadRequest)
	default:
		internalError(w, r, err)
	}
}

func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		utils.WriteJSONError(w, "Invalid product id", http.StatusBadRequest)
		return
	}

	err := h.products.Delete(r.Context(), id)
	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, product.ErrProductInUse):
		utils.WriteJSONError(w, "Product cannot be removed because it has been used in orders", http.StatusBadRequest)
	case errors.Is(err, product.ErrProductNotFound):
		utils.WriteJSONError(w, "Product not found", http.StatusNotFound)
	default:
		internalError(w, r, err)
	}
}
