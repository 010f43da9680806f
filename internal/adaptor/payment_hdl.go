package adaptor

import (
	"encoding/json"
	"net/http"

	"restaurant-ordering/internal/data/entity"
	"restaurant-ordering/internal/dto/request"
	"restaurant-ordering/internal/usecase"
	"restaurant-ordering/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	report  usecase.ReportService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, report usecase.ReportService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		report:  report,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// CreatePayment handles POST /api/payments (protected)
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	payment, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		respondServiceError(h.log, w, err, "create payment")
		return
	}

	utils.ResponseCreated(w, "success", payment)
}

// ListPayments handles GET /api/payments?status= (protected)
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	var status *entity.PaymentStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		switch entity.PaymentStatus(raw) {
		case entity.PaymentStatusPending, entity.PaymentStatusCompleted, entity.PaymentStatusFailed:
			s := entity.PaymentStatus(raw)
			status = &s
		default:
			utils.ResponseBadRequest(w, "Invalid status filter", nil)
			return
		}
	}

	payments, err := h.service.List(r.Context(), status)
	if err != nil {
		respondServiceError(h.log, w, err, "list payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// GetPayment handles GET /api/payments/{id} (protected)
func (h *PaymentHandler) GetPayment(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	payment, err := h.service.GetByID(r.Context(), paymentID)
	if err != nil {
		respondServiceError(h.log, w, err, "get payment")
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}

// UpdatePayment handles PUT /api/payments/{id} (protected).
// The body is either a content patch or a status patch; which one decides
// whether the edit path or the transition path runs.
func (h *PaymentHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	var req request.UpdatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	switch {
	case req.IsStatusPatch() && req.IsContentPatch():
		utils.ResponseBadRequest(w, "Body must be either a content patch or a status patch, not both", nil)
		return

	case req.IsStatusPatch():
		payment, err := h.service.UpdateStatus(r.Context(), actor, paymentID, entity.PaymentStatus(*req.Status))
		if err != nil {
			respondServiceError(h.log, w, err, "update payment status")
			return
		}
		utils.ResponseSuccess(w, "success", payment)

	case req.IsContentPatch():
		payment, err := h.service.UpdateContent(r.Context(), actor, paymentID, &req)
		if err != nil {
			respondServiceError(h.log, w, err, "update payment content")
			return
		}
		utils.ResponseSuccess(w, "success", payment)

	default:
		utils.ResponseBadRequest(w, "Body must contain fields to update", nil)
	}
}

// DeletePayment handles DELETE /api/payments/{id} (protected)
func (h *PaymentHandler) DeletePayment(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.GetActorFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), actor, paymentID); err != nil {
		respondServiceError(h.log, w, err, "delete payment")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CompletedReport handles GET /api/payments/report/completed (manager/admin)
func (h *PaymentHandler) CompletedReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.report.BuildCompletedReport(r.Context())
	if err != nil {
		respondServiceError(h.log, w, err, "build completed report")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}
