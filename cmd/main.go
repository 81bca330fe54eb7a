package main

import (
	"context"
	"os"

	"github.com/Omar8345/readright-backend/application/services"
	"github.com/Omar8345/readright-backend/config"
	"github.com/Omar8345/readright-backend/infrastructure/adapters"
	"github.com/Omar8345/readright-backend/infrastructure/gin_interface/controllers"
	"github.com/Omar8345/readright-backend/middleware"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

func main() {
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	sess := session.Must(session.NewSessionWithOptions(session.Options{
		Config:            aws.Config{Region: aws.String(cfg.S3.Region)},
		SharedConfigState: session.SharedConfigEnable,
	}))

	geminiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:  cfg.Gemini.ApiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create gemini client")
	}

	contentFetcher := adapters.NewContentFetcher(cfg.Diffbot.Timeout)

	extractor := adapters.NewDiffbotExtractor(contentFetcher, cfg.Diffbot)
	rewriter := adapters.NewGeminiRewriter(geminiClient, cfg.Gemini)
	narrator := adapters.NewElevenLabsAudioGenerator(contentFetcher, cfg.ElevenLabs)

	audioStore := adapters.NewS3AudioStore(s3.New(sess), cfg.S3)
	repository := adapters.NewDynamoResultRepository(dynamodb.New(sess), cfg.Dynamo)

	pipeline := services.NewArticlePipeline(extractor, rewriter, narrator, audioStore, repository)

	articleController := controllers.NewArticleController(pipeline)

	router := gin.Default()

	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies!")
	}

	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))

	if cfg.Server.JwksUrl != "" {
		authHandler, err := middleware.NewAuthHandler(cfg.Server.JwksUrl)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create auth handler!")
		}
		router.Use(authHandler.AuthMiddleware())
	}

	articleController.RegisterRoutes(router)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server!")
	}
}
