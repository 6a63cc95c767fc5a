package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/controller"
)

// RegisterLifecycleRoutes registra as rotas de agenda e clientes-produtos
func RegisterLifecycleRoutes(r *gin.RouterGroup, lifecycleController *controller.LifecycleController) {
	r.POST("/lifecycle/preview", lifecycleController.Preview)

	customerProducts := r.Group("/customer-products")
	{
		customerProducts.GET("/:id", lifecycleController.GetCustomerProduct)
		customerProducts.GET("/:id/touchpoints", lifecycleController.Touchpoints)
	}
}

// RegisterTouchpointRoutes registra as rotas de tarefas agendadas
func RegisterTouchpointRoutes(r *gin.RouterGroup, touchpointController *controller.TouchpointController) {
	touchpoints := r.Group("/touchpoints")
	{
		touchpoints.GET("", touchpointController.List)
		touchpoints.PATCH("/:id/status", touchpointController.UpdateStatus)
	}
}
