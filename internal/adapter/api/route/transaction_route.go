package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/controller"
)

// RegisterTransactionRoutes registra as rotas de compras
func RegisterTransactionRoutes(r *gin.RouterGroup, transactionController *controller.TransactionController) {
	transactions := r.Group("/transactions")
	{
		transactions.POST("", transactionController.Create)
		transactions.GET("", transactionController.List)
		transactions.GET("/:id", transactionController.Get)
		transactions.PATCH("/:id/payment-status", transactionController.UpdatePaymentStatus)

		// Reprocessa itens sem ciclo de vida
		transactions.POST("/:id/schedule", transactionController.RetrySchedule)
	}
}
