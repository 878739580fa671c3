package customers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/bizdash/bizdash/internal/platform/httpx"
	"github.com/bizdash/bizdash/internal/platform/validate"
)

const (
	msgInvalidQuery = "Invalid query parameters"
	msgValidation   = "Validation error"
	msgInvalidID    = "Invalid customer ID"
	msgNotFound     = "Customer not found"
	msgEmailExists  = "Email already exists"

	msgCreated = "Customer created successfully"
	msgUpdated = "Customer updated successfully"
	msgDeleted = "Customer deleted successfully"
)

// Handler exposes the customer JSON API.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

func NewHandler(logger *slog.Logger, service *Service) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service}
}

type itemResponse struct {
	Data    *Customer `json:"data"`
	Message string    `json:"message,omitempty"`
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q, err := ParseListQuery(r.URL.Query())
	if err != nil {
		httpx.Invalid(w, msgInvalidQuery, validate.Fields(err))
		return
	}

	page, err := h.service.ListCustomers(r.Context(), q)
	if err != nil {
		httpx.Internal(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, page)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.Invalid(w, msgValidation, validate.Fields(err))
		return
	}
	if err := ValidateCreate(req); err != nil {
		httpx.Invalid(w, msgValidation, validate.Fields(err))
		return
	}

	customer, err := h.service.CreateCustomer(r.Context(), req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	h.logger.Info("customer created", slog.Int64("customer_id", customer.ID))
	httpx.JSON(w, http.StatusCreated, itemResponse{Data: customer, Message: msgCreated})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	customer, err := h.service.GetCustomer(r.Context(), id)
	if err != nil {
		httpx.Internal(w, r, h.logger, err)
		return
	}
	if customer == nil {
		httpx.Error(w, http.StatusNotFound, msgNotFound)
		return
	}
	httpx.JSON(w, http.StatusOK, itemResponse{Data: customer})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	var req UpdateCustomerRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		httpx.Invalid(w, msgValidation, validate.Fields(err))
		return
	}
	if err := ValidateUpdate(req); err != nil {
		httpx.Invalid(w, msgValidation, validate.Fields(err))
		return
	}

	customer, err := h.service.UpdateCustomer(r.Context(), id, req)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, itemResponse{Data: customer, Message: msgUpdated})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := httpx.ParseID(r, "id")
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	if err := h.service.DeleteCustomer(r.Context(), id); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.logger.Info("customer deleted", slog.Int64("customer_id", id))
	httpx.JSON(w, http.StatusOK, httpx.MessageBody{Message: msgDeleted})
}

// respondError maps domain errors to status codes; anything unknown is a 500.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, validate.ErrValidation):
		httpx.Invalid(w, msgValidation, validate.Fields(err))
	case errors.Is(err, ErrCustomerNotFound):
		httpx.Error(w, http.StatusNotFound, msgNotFound)
	case errors.Is(err, ErrEmailExists):
		httpx.Error(w, http.StatusConflict, msgEmailExists)
	default:
		httpx.Internal(w, r, h.logger, err)
	}
}
