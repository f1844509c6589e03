package routes

import (
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotations = "/quotations"
	PathPayments   = "/payments"
	PathShipments  = "/shipments"
	PathDrafts     = "/drafts"
	PathWizard     = "/wizard"
)

func addSourcingRoutes(
	rg *gin.RouterGroup,
	quotationHandler *handlers.QuotationHandler,
	paymentHandler *handlers.PaymentHandler,
	shipmentHandler *handlers.ShipmentHandler,
	draftHandler *handlers.DraftHandler,
	wizardHandler *handlers.WizardHandler,
) {
	quotations := rg.Group(PathQuotations)
	{
		quotations.GET("/:quotation_id", quotationHandler.GetQuotation)
		quotations.GET("/user/:user_id", quotationHandler.ListQuotationsByUser)
		quotations.PATCH("/:quotation_id/select", quotationHandler.SelectPriceOption)
		quotations.PUT("/:quotation_id/options", quotationHandler.SetPriceOptions)
		quotations.PUT("/:quotation_id/receiver", quotationHandler.SubmitQuotationReceiver)
		quotations.PATCH("/:quotation_id/reject", quotationHandler.RejectQuotation)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("", paymentHandler.CreatePayment)
		payments.GET("/overview", paymentHandler.PaymentsOverview)
		payments.GET("/:payment_id", paymentHandler.GetPayment)
		payments.GET("/user/:user_id", paymentHandler.ListPaymentsByUser)
		payments.PATCH("/:payment_id/approve", paymentHandler.ApprovePayment)
		payments.PATCH("/:payment_id/reject", paymentHandler.RejectPayment)
	}

	shipments := rg.Group(PathShipments)
	{
		shipments.GET("/overview", shipmentHandler.ShipmentsOverview)
		shipments.GET("/:shipment_id", shipmentHandler.GetShipment)
		shipments.GET("/user/:user_id", shipmentHandler.ListShipmentsByUser)
		shipments.PATCH("/:shipment_id/status", shipmentHandler.SetShipmentStatus)
		shipments.PUT("/:shipment_id/receiver", shipmentHandler.SubmitReceiverInfo)
		shipments.PATCH("/:shipment_id/tracking", shipmentHandler.UpdateTracking)
	}

	drafts := rg.Group(PathDrafts)
	{
		drafts.GET("/:quotation_id", draftHandler.LoadDraft)
		drafts.PUT("/:quotation_id", draftHandler.SaveDraft)
		drafts.DELETE("/:quotation_id", draftHandler.ClearDraft)
	}

	wizard := rg.Group(PathWizard)
	{
		wizard.GET("/:user_id", wizardHandler.LoadWizard)
		wizard.POST("/:user_id/advance", wizardHandler.AdvanceWizard)
		wizard.POST("/:user_id/back", wizardHandler.BackWizard)
		wizard.POST("/:user_id/submit", wizardHandler.SubmitWizard)
		wizard.DELETE("/:user_id", wizardHandler.CancelWizard)
	}
}
