package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	chatfx "aarav/cmd/fx/chat_fx"
	"aarav/cmd/fx/controllers_fx"
	datafx "aarav/cmd/fx/data_fx"
	llmfx "aarav/cmd/fx/llm_fx"
	routingfx "aarav/cmd/fx/routing_fx"
	sessionfx "aarav/cmd/fx/session_fx"
	"aarav/internal/api/controllers"
	"aarav/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	app := fx.New(
		datafx.Module,
		sessionfx.Module,
		llmfx.Module,
		routingfx.Module,
		chatfx.Module,
		controllers_fx.Module,

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

func ProvideRouter(
	chatController *controllers.ChatController,
	placesController *controllers.PlacesController,
	exportController *controllers.ExportController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, chatController, placesController, exportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	chatController *controllers.ChatController,
	placesController *controllers.PlacesController,
	exportController *controllers.ExportController) {

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	api.POST("/chat", chatController.Chat)
	api.GET("/pois", placesController.ListPois)
	api.GET("/pois/:id", placesController.GetPoi)
	api.GET("/export/:sessionId", exportController.ExportTrip)
}
