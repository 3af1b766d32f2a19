package main

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/panjf2000/ants/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/JovialSquirrel/local-news-podcast/application/ports/outbound"
	"github.com/JovialSquirrel/local-news-podcast/application/services"
	"github.com/JovialSquirrel/local-news-podcast/config"
	"github.com/JovialSquirrel/local-news-podcast/domain"
	"github.com/JovialSquirrel/local-news-podcast/infrastructure/adapters"
	"github.com/JovialSquirrel/local-news-podcast/infrastructure/gin_interface/controllers"
	"github.com/JovialSquirrel/local-news-podcast/infrastructure/gin_interface/views"
	"github.com/JovialSquirrel/local-news-podcast/middleware"
)

func main() {
	_ = godotenv.Load()

	newsConfig, err := config.GetNewsConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get news config")
	}

	llmConfig, err := config.GetLLMConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get llm config")
	}

	ttsConfig, err := config.GetElevenLabsConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get eleven labs config")
	}

	mailConfig, err := config.GetMailConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get mail config")
	}

	authConfig, err := config.GetAuthConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get auth config")
	}

	serverConfig, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get server config")
	}

	storeConfig, err := config.GetStoreConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to get store config")
	}

	zeroLogger := adapters.NewZerologWrapper()

	panicHandler := func(p interface{}) {
		zeroLogger.Error(fmt.Errorf("%v", p), "Panic in worker pool")
	}

	workerPool, err := ants.NewPool(8, ants.WithPanicHandler(panicHandler))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create worker pool")
	}
	defer workerPool.Release()

	candidateStore, stopStore, err := buildCandidateStore(storeConfig, workerPool, zeroLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create candidate store")
	}
	defer stopStore()

	newsFetcher := adapters.NewNewsdataFetcher(
		adapters.NewContentFetcher(zeroLogger, newsConfig.Timeout), newsConfig, zeroLogger)
	scriptGenerator := adapters.NewOpenRouterScriptGenerator(
		adapters.NewContentFetcher(zeroLogger, llmConfig.Timeout), llmConfig, zeroLogger)
	speechSynthesizer := adapters.NewElevenLabsSynthesizer(
		adapters.NewContentFetcher(zeroLogger, ttsConfig.Timeout), ttsConfig, zeroLogger)
	mailer := adapters.NewSMTPMailer(mailConfig, zeroLogger)
	verifier := adapters.NewStaticCredentialVerifier(authConfig)

	sessionManager := middleware.NewSessionManager(authConfig, zeroLogger)

	pipeline := services.NewPodcastPipeline(zeroLogger, scriptGenerator, speechSynthesizer)
	selection := services.NewNewsSelection(zeroLogger, newsFetcher, candidateStore)

	location := domain.Location{City: serverConfig.City, State: serverConfig.State}

	router := gin.Default()
	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatal().Err(err).Msg("Failed to set trusted proxies")
	}
	router.SetHTMLTemplate(views.Templates())

	controllers.NewAuthController(zeroLogger, verifier, sessionManager).RegisterRoutes(router)
	controllers.NewPodcastController(zeroLogger, pipeline, newsFetcher, mailer, sessionManager, serverConfig.DirectLimit).RegisterRoutes(router)
	controllers.NewSelectionController(zeroLogger, selection, pipeline, sessionManager, location, serverConfig.CandidateLimit).RegisterRoutes(router)

	if err := router.Run(":" + serverConfig.Port); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}
}

// buildCandidateStore returns the configured store and a stop function
// releasing its resources (janitor worker, redis connection).
func buildCandidateStore(storeConfig *config.StoreConfig, workerPool outbound.TaskDispatcher, logger outbound.LoggerPort) (outbound.CandidateStorePort, func(), error) {
	switch storeConfig.Backend {
	case config.StoreBackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     storeConfig.RedisAddr,
			Password: storeConfig.RedisPassword,
			DB:       storeConfig.RedisDB,
		})
		stop := func() {
			if err := rdb.Close(); err != nil {
				logger.Error(err, "failed to close redis client")
			}
		}
		return adapters.NewRedisCandidateStore(logger, rdb, storeConfig.TTL), stop, nil
	case config.StoreBackendDynamo:
		sess := session.Must(session.NewSessionWithOptions(session.Options{
			SharedConfigState: session.SharedConfigEnable,
		}))
		store := adapters.NewDynamoCandidateStore(logger, dynamodb.New(sess), storeConfig.DynamoTable, storeConfig.TTL)
		return store, func() {}, nil
	default:
		store, err := adapters.NewMemoryCandidateStore(logger, storeConfig.TTL, storeConfig.SweepInterval, workerPool)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Stop, nil
	}
}
