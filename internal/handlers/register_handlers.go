package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/expense_tracker/cmd/docs"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/platform/config"
	"github.com/SscSPs/expense_tracker/internal/web"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) error {
	tmpl, err := web.Templates()
	if err != nil {
		return fmt.Errorf("failed to parse page templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.StaticFS("/static", http.FS(web.Static()))
	registerPageRoutes(r)

	api := r.Group("/api")
	RegisterTransactionRoutes(api, services.Transaction)
	RegisterSummaryRoutes(api, services.Summary)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupSwaggerRoutes serves the API documentation outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
