package handlers

import (
	"errors"
	"net/http"

	request "lims_service/internal/adapter/http/dto/request"
	response "lims_service/internal/adapter/http/dto/response"
	"lims_service/internal/usecase"
	"lims_service/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)

// InvoiceHandler handles invoice candidates, previews and issued invoices.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	logger  *zap.Logger
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase, logger *zap.Logger) *InvoiceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &InvoiceHandler{usecase: uc, logger: logger}
}

// ListOrders godoc
// @Summary      Uninvoiced work orders
// @Tags         invoices
// @Param        company_id  query  int     false  "company id"
// @Param        date_from   query  string  false  "MM-DD-YYYY, needs date_to"
// @Param        date_to     query  string  false  "MM-DD-YYYY, needs date_from"
// @Success      200  {array}  response.WorkOrderResponse
// @Router       /invoices/orders [get]
func (h *InvoiceHandler) ListOrders(c *gin.Context) {
	var q request.InvoiceOrdersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortWithError(c, errInvalidQuery)
		return
	}
	orders := h.usecase.GetFilteredOrders(h.usecase.GetUninvoicedOrders(), q.ToFilter())
	c.JSON(http.StatusOK, response.FromWorkOrders(orders))
}

// PreviewInvoice godoc
// @Summary      Totals and validation for a selection, without issuing
// @Tags         invoices
// @Accept       json
// @Param        body  body  request.InvoicePreviewRequest  true  "selection"
// @Success      200  {object}  response.InvoicePreviewResponse
// @Router       /invoices/preview [post]
func (h *InvoiceHandler) PreviewInvoice(c *gin.Context) {
	var payload request.InvoicePreviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidInvoicePayload)
		return
	}
	c.JSON(http.StatusOK, response.FromInvoicePreview(h.usecase.PreviewInvoice(payload.ToFilter(), payload.WorkOrderIDs)))
}

// ValidateInvoice reports whether the given orders can go on one invoice.
//
// @Summary  Validate a selection
// @Tags     invoices
// @Param    body  body  request.InvoiceValidateRequest  true  "selection"
// @Success  200  {object}  response.InvoiceValidationResponse
// @Router   /invoices/validate [post]
func (h *InvoiceHandler) ValidateInvoice(c *gin.Context) {
	var payload request.InvoiceValidateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, errInvalidInvoicePayload)
		return
	}

	res := response.InvoiceValidationResponse{Valid: true}
	var err error
	if len(payload.WorkOrderIDs) == 0 {
		err = h.usecase.ValidateInvoiceGeneration(nil)
	} else {
		p := h.usecase.PreviewInvoice(usecase.InvoiceFilter{}, payload.WorkOrderIDs)
		if !p.Valid {
			err = errors.New(p.Reason)
		}
	}
	if err != nil {
		res = response.InvoiceValidationResponse{Valid: false, Reason: err.Error()}
	}
	c.JSON(http.StatusOK, res)
}

// @Summary  Reserve the next invoice number
// @Tags     invoices
// @Success  200  {object}  response.InvoiceNumberResponse
// @Router   /invoices/number [post]
func (h *InvoiceHandler) GenerateInvoiceNumber(c *gin.Context) {
	number, err := h.usecase.GenerateInvoiceNumber(c.Request.Context())
	if err != nil {
		h.logger.Error("[invoice][handler] invoice number failed", zap.Error(err))
		abortWithError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.InvoiceNumberResponse{InvoiceNumber: number})
}

// IssueInvoice godoc
// @Summary      Issue an invoice and mark its orders Invoiced
// @Tags         invoices
// @Accept       json
// @Param        body  body  request.IssueInvoiceRequest  true  "invoice"
// @Success      201  {object}  response.InvoiceResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      422  {object}  pkg.HTTPError
// @Router       /invoices [post]
func (h *InvoiceHandler) IssueInvoice(c *gin.Context) {
	var payload request.IssueInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Warn("[invoice][handler] invalid payload", zap.Error(err))
		abortWithError(c, errInvalidInvoicePayload)
		return
	}

	inv, err := h.usecase.IssueInvoice(c.Request.Context(), payload.ToCommand())
	if err != nil {
		h.logger.Warn("[invoice][handler] issue failed", zap.Error(err))
		abortWithError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInvoice(inv))
}

// ListCompanies godoc
// @Summary      Active companies for the invoicing company picker
// @Tags         invoices
// @Success      200  {array}  response.CompanyResponse
// @Router       /invoices/companies [get]
func (h *InvoiceHandler) ListCompanies(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCompanies(h.usecase.ListActiveCompanies()))
}

// @Summary  Issued invoices, newest first
// @Tags     invoices
// @Success  200  {array}  response.InvoiceResponse
// @Router   /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	list, err := h.usecase.ListInvoices(c.Request.Context())
	if err != nil {
		h.logger.Error("[invoice][handler] list failed", zap.Error(err))
		abortWithError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(list))
}

// @Summary  One issued invoice
// @Tags     invoices
// @Param    id  path  string  true  "invoice id"
// @Success  200  {object}  response.InvoiceResponse
// @Failure  404  {object}  pkg.HTTPError
// @Router   /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, mapInvoiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func mapInvoiceError(err error) *pkg.AppError {
	var verr *usecase.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewDomainError("INVOICE_VALIDATION_FAILED", verr.Reason, err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidIssuedBy):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNumbersNotAvailable):
		return pkg.NewDomainErrorSimple("INVOICE_NUMBERS_UNAVAILABLE", "Invoice numbering is not configured", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}
