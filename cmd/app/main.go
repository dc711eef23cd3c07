package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"localexplorer/cmd/fx/ai_fx"
	"localexplorer/cmd/fx/catalog_fx"
	"localexplorer/cmd/fx/chat_fx"
	"localexplorer/cmd/fx/memcache_fx"
	"localexplorer/internal/api/controllers"
	"localexplorer/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		catalog_fx.Module,
		ai_fx.Module,
		memcache_fx.Module,
		chat_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(chatController *controllers.ChatController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, chatController)

	return r
}

func RegisterRoutes(r *gin.Engine, chatController *controllers.ChatController) {

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	chatGroup := r.Group("/chat")
	chatGroup.POST("", chatController.ChatHandler)
	chatGroup.GET("/:id/recommendations", chatController.RecommendationsHandler)
}
