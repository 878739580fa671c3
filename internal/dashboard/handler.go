package dashboard

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bizdash/bizdash/internal/platform/httpx"
	"github.com/bizdash/bizdash/internal/platform/validate"
)

const (
	msgInvalidQuery    = "Invalid query parameters"
	msgJobsUnavailable = "Background jobs unavailable"
	msgWarmupQueued    = "Dashboard warmup queued"
)

// Enqueuer schedules an asynchronous cache warmup and returns the task id.
type Enqueuer interface {
	EnqueueWarmup(ctx context.Context, reason string) (string, error)
}

// Handler exposes the dashboard and catalogue read endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *Service
	enqueuer Enqueuer
}

// NewHandler builds a Handler. enqueuer may be nil, in which case warmup
// requests are refused.
func NewHandler(logger *slog.Logger, service *Service, enqueuer Enqueuer) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{logger: logger, service: service, enqueuer: enqueuer}
}

type dataResponse struct {
	Data interface{} `json:"data"`
}

type warmupResponse struct {
	Message string `json:"message"`
	TaskID  string `json:"taskId"`
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		httpx.Internal(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dataResponse{Data: summary})
}

func (h *Handler) RecentSales(w http.ResponseWriter, r *http.Request) {
	q, ok := h.limit(w, r)
	if !ok {
		return
	}
	sales, err := h.service.RecentSales(r.Context(), q.Limit)
	if err != nil {
		httpx.Internal(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dataResponse{Data: sales})
}

func (h *Handler) TopCustomers(w http.ResponseWriter, r *http.Request) {
	q, ok := h.limit(w, r)
	if !ok {
		return
	}
	ranked, err := h.service.TopCustomers(r.Context(), q.Limit)
	if err != nil {
		httpx.Internal(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dataResponse{Data: ranked})
}

func (h *Handler) TopProducts(w http.ResponseWriter, r *http.Request) {
	q, ok := h.limit(w, r)
	if !ok {
		return
	}
	ranked, err := h.service.TopProducts(r.Context(), q.Limit)
	if err != nil {
		httpx.Internal(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dataResponse{Data: ranked})
}

func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	q, err := ParseProductQuery(r.URL.Query())
	if err != nil {
		httpx.Invalid(w, msgInvalidQuery, validate.Fields(err))
		return
	}
	page, err := h.service.Products(r.Context(), q)
	if err != nil {
		httpx.Internal(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, page)
}

func (h *Handler) Sales(w http.ResponseWriter, r *http.Request) {
	q, err := ParseSalesQuery(r.URL.Query())
	if err != nil {
		httpx.Invalid(w, msgInvalidQuery, validate.Fields(err))
		return
	}
	sales, err := h.service.Sales(r.Context(), q)
	if err != nil {
		httpx.Internal(w, r, h.logger, err)
		return
	}
	httpx.JSON(w, http.StatusOK, dataResponse{Data: sales})
}

func (h *Handler) Warmup(w http.ResponseWriter, r *http.Request) {
	if h.enqueuer == nil {
		httpx.Error(w, http.StatusServiceUnavailable, msgJobsUnavailable)
		return
	}
	taskID, err := h.enqueuer.EnqueueWarmup(r.Context(), "manual")
	if err != nil {
		httpx.Internal(w, r, h.logger, err)
		return
	}
	h.logger.Info("dashboard warmup queued", slog.String("task_id", taskID))
	httpx.JSON(w, http.StatusAccepted, warmupResponse{Message: msgWarmupQueued, TaskID: taskID})
}

func (h *Handler) limit(w http.ResponseWriter, r *http.Request) (LimitQuery, bool) {
	q, err := ParseLimitQuery(r.URL.Query())
	if err != nil {
		httpx.Invalid(w, msgInvalidQuery, validate.Fields(err))
		return LimitQuery{}, false
	}
	return q, true
}
