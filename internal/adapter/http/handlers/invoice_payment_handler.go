package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "lims_service/internal/adapter/http/dto/response"
	"lims_service/internal/usecase"
	"lims_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoicePaymentHandler handles HTTP requests for invoice payments.
type InvoicePaymentHandler struct {
	usecase  usecase.IInvoicePaymentUseCase
	mockMode bool
	logger   *zap.Logger
}

func NewInvoicePaymentHandler(uc usecase.IInvoicePaymentUseCase, mockMode bool, logger *zap.Logger) *InvoicePaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoicePaymentHandler{usecase: uc, mockMode: mockMode, logger: logger}
}

// CreatePaymentByInvoiceID charges an issued invoice using invoice_id in path.
//
// @Summary  Pay an invoice through Mercado Pago
// @Tags     payments
// @Accept   json
// @Param    invoice_id  path  string                               true  "invoice id"
// @Param    body        body  request.InvoicePaymentCreateRequest  true  "Mercado Pago payload"
// @Success  200  {object}  response.InvoicePaymentResponse
// @Failure  400  {object}  pkg.HTTPError
// @Failure  404  {object}  pkg.HTTPError
// @Failure  409  {object}  pkg.HTTPError
// @Router   /payments/{invoice_id} [post]
func (h *InvoicePaymentHandler) CreatePaymentByInvoiceID(c *gin.Context) {
	invoiceID := c.Param("invoice_id")
	log := h.logger.With(zap.String("invoice_id", invoiceID))
	log.Info("[payment][handler] create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Warn("[payment][handler] invalid payload", zap.Error(err))
			abortWithError(c, errInvalidRequest)
			return
		}
		log.Info("[payment][handler] payload invalid in mock mode; fallback to empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), invoiceID, mpPayload)
	if err != nil {
		log.Warn("[payment][handler] create failed", zap.Error(err))
		abortWithError(c, mapInvoicePaymentError(err))
		return
	}
	log.Info("[payment][handler] create success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))

	c.JSON(http.StatusOK, response.FromInvoicePayment(created))
}

// GetPaymentByInvoiceID returns the latest payment for an invoice.
//
// @Summary  Latest payment of an invoice
// @Tags     payments
// @Param    invoice_id  path  string  true  "invoice id"
// @Success  200  {object}  response.InvoicePaymentResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /payments/{invoice_id} [get]
func (h *InvoicePaymentHandler) GetPaymentByInvoiceID(c *gin.Context) {
	invoiceID := c.Param("invoice_id")

	payments, err := h.usecase.ListByInvoiceID(c.Request.Context(), invoiceID)
	if err != nil {
		h.logger.Warn("[payment][handler] get-by-invoice failed", zap.String("invoice_id", invoiceID), zap.Error(err))
		abortWithError(c, mapInvoicePaymentError(err))
		return
	}
	if len(payments) == 0 {
		abortWithError(c, pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound))
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}
	c.JSON(http.StatusOK, response.FromInvoicePayment(latest))
}

// readMPPayload accepts either {"mp_payload": {...}} or a bare Mercado Pago body.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if v := strings.TrimSpace(string(wrapped)); v == "" || v == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapInvoicePaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentInvoiceID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvoicePaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
