package app

import (
	"net/http"

	"github.com/hotspoon/full-stack-todo-app/internal/config"
	"github.com/hotspoon/full-stack-todo-app/internal/handlers"
	"github.com/hotspoon/full-stack-todo-app/internal/repo"
	"github.com/hotspoon/full-stack-todo-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/swaggo/swag"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool) {
	todoRepo := repo.NewPGTodoRepo(db)
	todoSvc := service.NewTodoService(todoRepo)
	todoHandler := handlers.NewTodoHandler(todoSvc)
	registerRoutes(r, cfg, todoHandler)
}

func registerRoutes(r *gin.Engine, cfg config.Config, h *handlers.TodoHandler) {
	r.HandleMethodNotAllowed = true
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not Found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method Not Allowed"})
	})

	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/swagger-doc.json", swaggerDocHandler())
	r.GET("/swagger", func(c *gin.Context) { c.Redirect(302, "/swagger/index.html") })
	r.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/swagger-doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))

	r.GET("/ping", h.Ping)
	r.POST("/todos", h.Create)
	r.GET("/todos", h.List)
	r.GET("/todos/:id", h.GetByID)
	r.PUT("/todos/:id", h.Update)
	r.DELETE("/todos/:id", h.Delete)
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Todo API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"docs":    "/swagger/index.html",
			"spec":    "/swagger-doc.json",
			"health":  "/health",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func swaggerDocHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, err := swag.ReadDoc("swagger")
		if err != nil {
			c.JSON(500, gin.H{"message": "Internal Server Error"})
			return
		}
		c.Data(200, "application/json; charset=utf-8", []byte(doc))
	}
}
