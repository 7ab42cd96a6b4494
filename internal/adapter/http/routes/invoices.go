package routes

import (
	"lims_service/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
	PathPayments = "/payments"
)

func addInvoiceRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, paymentHandler *handlers.InvoicePaymentHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("/orders", invoiceHandler.ListOrders)
		invoices.GET("/companies", invoiceHandler.ListCompanies)
		invoices.POST("/preview", invoiceHandler.PreviewInvoice)
		invoices.POST("/validate", invoiceHandler.ValidateInvoice)
		invoices.POST("/number", invoiceHandler.GenerateInvoiceNumber)
		invoices.POST("", invoiceHandler.IssueInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:invoice_id", paymentHandler.CreatePaymentByInvoiceID)
		payments.GET("/:invoice_id", paymentHandler.GetPaymentByInvoiceID)
	}
}
