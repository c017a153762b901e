/*
Copyright © 2025 b5-ai
*/
package cmd

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/b5-ai/study-companion-be/config"
	"github.com/b5-ai/study-companion-be/handler"
	"github.com/b5-ai/study-companion-be/logger"
	"github.com/b5-ai/study-companion-be/service"
	"github.com/b5-ai/study-companion-be/store"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startServerCmd represents the start command
var startServerCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the study companion server",
	Long:  `Starts the server that ingests PDF study material and answers questions against it`,
	Run: func(cmd *cobra.Command, args []string) {
		cfgPath, _ := cmd.Flags().GetString("config")
		debug, _ := cmd.Flags().GetBool("debug")

		cfg, err := config.LoadConfig(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		zlog := logger.New(cfg.LogFile, debug)
		defer zlog.Sync()

		// Session state shared by every request
		session := store.NewSession(zlog)

		// Initialize services
		pdfService := service.NewPDFService(os.TempDir(), zlog)
		fileService, err := service.NewFileService(cfg.UploadDir, session, pdfService, zlog)
		if err != nil {
			zlog.Fatal("failed to initialize file service", zap.Error(err))
		}

		var aiService service.AIService
		switch cfg.Provider {
		case "gemini":
			gemini, err := service.NewGeminiService(context.Background(), cfg.GeminiAPIKey, cfg.Model)
			if err != nil {
				zlog.Fatal("failed to create Gemini client", zap.Error(err))
			}
			aiService = gemini
		default:
			if cfg.GroqAPIKey == "" {
				zlog.Warn("GROQ_API_KEY not set, completion calls will fail")
			}
			aiService = service.NewOpenAIService(cfg.AIEndpoint, cfg.GroqAPIKey, cfg.Model)
		}

		assistant := service.NewAssistantService(
			session,
			aiService,
			cfg.ImageServiceBase,
			time.Duration(cfg.AskTimeoutSec)*time.Second,
			zlog,
		)
		wsService := service.NewWebSocketService(assistant, zlog)

		// Initialize handlers
		corsHandler := handler.NewCorsHandler()
		uploadHandler := handler.NewUploadHandler(fileService)
		fileHandler := handler.NewFileHandler(session, fileService)
		sessionHandler := handler.NewSessionHandler(session)
		askHandler := handler.NewAskHandler(assistant)
		healthHandler := handler.NewHealthHandler()

		// Setup Gin router
		if !debug {
			gin.SetMode(gin.ReleaseMode)
		}
		router := gin.Default()

		// Apply global middleware
		router.Use(corsHandler.CorsMiddleware)

		router.POST("/upload", uploadHandler.HandleUpload)
		router.GET("/files", fileHandler.HandleList)
		router.DELETE("/delete/:filename", fileHandler.HandleDelete)
		router.POST("/clear", sessionHandler.HandleClear)
		router.POST("/clear-all", sessionHandler.HandleClearAll)
		router.POST("/ask", askHandler.HandleAsk)
		router.GET("/ws", func(c *gin.Context) {
			wsService.Handle(c.Writer, c.Request)
		})
		router.GET("/health", healthHandler.HandleHealth)

		// Frontend assets at the root path
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.StaticDir))))

		zlog.Info("starting server", zap.String("port", cfg.Port))
		if err := router.Run(":" + cfg.Port); err != nil {
			zlog.Fatal("server error", zap.Error(err))
		}
	},
}

func init() {
	rootCmd.AddCommand(startServerCmd)
	startServerCmd.Flags().StringP("config", "c", "config/config.yaml", "config file")
	startServerCmd.Flags().Bool("debug", false, "enable debug logging")
}
