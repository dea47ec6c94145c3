package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/go-ddd-example/order-service/internal/domain"
	"github.com/go-ddd-example/order-service/internal/service"
	"github.com/go-ddd-example/order-service/pkg/utils"
)

type OrderService interface {
	CreateOrder(ctx context.Context, in service.CreateOrderInput) (domain.OrderSnapshot, error)
	AddItem(ctx context.Context, orderID string, in service.AddItemInput) (domain.OrderSnapshot, error)
	GetOrder(ctx context.Context, orderID string) (domain.OrderSnapshot, error)
	GetOrderTotal(ctx context.Context, orderID string) (service.OrderTotalOutput, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Post("/", h.CreateOrder)
		r.Get("/{order_id}", h.GetOrder)
		r.Get("/{order_id}/total", h.GetOrderTotal)
		r.Post("/{order_id}/items", h.AddItem)
	})
}

func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	snap, err := h.svc.CreateOrder(ctx, service.CreateOrderInput{
		CustomerID: req.CustomerID,
		Currency:   req.Currency,
	})
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderSnapshotToJSON(snap), http.StatusCreated)
}

func (h *HTTPHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	var req AddItemRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	snap, err := h.svc.AddItem(ctx, orderID, service.AddItemInput{
		Sku:       req.Sku,
		UnitPrice: req.UnitPrice,
		Currency:  req.Currency,
		Quantity:  req.Quantity,
	})
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderSnapshotToJSON(snap), http.StatusOK)
}

func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	snap, err := h.svc.GetOrder(ctx, orderID)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderSnapshotToJSON(snap), http.StatusOK)
}

func (h *HTTPHandler) GetOrderTotal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderID := chi.URLParam(r, "order_id")

	total, err := h.svc.GetOrderTotal(ctx, orderID)
	if err != nil {
		h.writeDomainError(ctx, w, err)
		return
	}

	utils.WriteJSON(w, OrderTotal{Currency: total.Currency, Total: total.Total}, http.StatusOK)
}

// writeDomainError maps domain failures to statuses: malformed input is
// a 400, business-rule rejections are a 409, a currency clash is a 422.
func (h *HTTPHandler) writeDomainError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", http.StatusNotFound)
		return
	}

	switch domain.KindOf(err) {
	case domain.ErrDuplicateSku, domain.ErrItemLimitExceeded:
		utils.WriteError(w, err.Error(), http.StatusConflict)
	case domain.ErrCurrencyMismatch:
		utils.WriteError(w, err.Error(), http.StatusUnprocessableEntity)
	case domain.ErrInvalidCurrency, domain.ErrInvalidAmount, domain.ErrInvalidSku,
		domain.ErrInvalidQuantity, domain.ErrInvalidIdentifier,
		domain.ErrInvalidFactor, domain.ErrNegativeResult:
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}
