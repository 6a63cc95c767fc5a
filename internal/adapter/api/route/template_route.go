package route

import (
	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/erp-servicos/internal/adapter/api/controller"
)

// RegisterTemplateRoutes registra as rotas de templates de mensagem
func RegisterTemplateRoutes(r *gin.RouterGroup, templateController *controller.TemplateController) {
	templates := r.Group("/message-templates")
	{
		templates.POST("", templateController.Create)
		templates.GET("", templateController.List)
		templates.GET("/:id", templateController.Get)
		templates.PUT("/:id", templateController.Update)
		templates.POST("/:id/render", templateController.Render)
	}
}
