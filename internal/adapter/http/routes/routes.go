package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "hpp_gateway/docs" // generated by swag init
	"hpp_gateway/internal/adapter/http/handlers"
	"hpp_gateway/internal/adapter/persistence/repository"
	"hpp_gateway/internal/infrastructure/awsconfig"
	"hpp_gateway/internal/infrastructure/cache"
	"hpp_gateway/internal/infrastructure/config"
	"hpp_gateway/internal/infrastructure/database"
	"hpp_gateway/internal/infrastructure/logger"
	"hpp_gateway/internal/infrastructure/messaging"
	"hpp_gateway/internal/infrastructure/payments"
	"hpp_gateway/internal/usecase"
	"hpp_gateway/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers groups everything the router serves.
type Handlers struct {
	Payment      *handlers.PaymentHandler
	Result       *handlers.ResultHandler
	Notification *handlers.NotificationHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	h, err := getHandlers(context.Background(), cfg, log)
	if err != nil {
		log.Fatal("Failed to wire the application", zap.Error(err))
	}

	router := NewRouter(h, log, cfg.CORSAllowedOrigins)
	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to startup the application", zap.Error(err))
	}
}

// NewRouter registers middlewares and the /v1 routes on a new engine. CORS
// is only enabled when allowedOrigins is not empty.
func NewRouter(h Handlers, log *zap.Logger, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log, allowedOrigins)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRoutes(v1, h.Payment, h.Result)
	addNotificationRoutes(v1, h.Notification)
	return router
}

func getHandlers(ctx context.Context, cfg *config.Config, log *zap.Logger) (Handlers, error) {
	awsCfg, err := awsconfig.Load(ctx, awsconfig.Settings{
		Region:           cfg.AWS.Region,
		Endpoint:         cfg.AWS.Endpoint,
		DynamoDBEndpoint: cfg.AWS.DynamoDBEndpoint,
	})
	if err != nil {
		return Handlers{}, fmt.Errorf("aws config: %w", err)
	}
	ddb := database.NewDynamoDBClient(awsCfg)

	paymentRepo := repository.NewPaymentDynamoRepository(ddb)
	resultRepo := repository.NewPaymentResultDynamoRepository(ddb)
	notificationRepo := repository.NewPaymentNotificationDynamoRepository(ddb)

	if cfg.AWS.CreateTables {
		err := database.EnsureTables(ctx, ddb, database.TableNames{
			Payments:             paymentRepo.TableName(),
			PaymentResults:       resultRepo.TableName(),
			PaymentNotifications: notificationRepo.TableName(),
		})
		if err != nil {
			return Handlers{}, err
		}
		log.Info("dynamodb tables ready")
	}

	var credentials interfaces.ICredentialStore
	if cfg.HPP.SecretName != "" {
		credentials = payments.NewSecretsCredentialStoreFromConfig(awsCfg, cfg.HPP.SecretName, cfg.HPP.SecretCacheTTL)
		log.Info("credentials from secrets manager", zap.String("secret_id", cfg.HPP.SecretName))
	} else {
		credentials = cfg.StaticCredentials()
		if cfg.HPP.SkinCode == "" {
			log.Warn("no skin configured; payment sessions will fail")
		}
	}

	var publisher interfaces.IPaymentEventPublisher
	if cfg.Notifications.TopicARN != "" {
		publisher = messaging.NewSNSPaymentEventPublisherFromConfig(awsCfg, cfg.Notifications.TopicARN, log)
	} else {
		log.Warn("PAYMENT_EVENTS_TOPIC_ARN not set; payment events are only logged")
		publisher = messaging.NewLogPaymentEventPublisher(log)
	}

	var locker interfaces.ILocker = cache.NoopLocker{}
	if cfg.Redis.Addr != "" {
		locker = cache.NewRedisLocker(cache.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB), cfg.Redis.LockTTL)
	} else {
		log.Warn("REDIS_ADDR not set; notification processing is not locked across instances")
	}

	paymentUseCase := usecase.NewPaymentUseCase(paymentRepo, credentials, usecase.PaymentSettings{
		PublicBaseURL: cfg.PublicBaseURL,
		ResultPath:    "/v1" + PathPaymentResults,
		CountryCode:   cfg.HPP.CountryCode,
		ShopperLocale: cfg.HPP.ShopperLocale,
	}, log)
	resultUseCase := usecase.NewResultUseCase(resultRepo, paymentRepo, notificationRepo, credentials, log)
	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, credentials, publisher, locker, int32(cfg.Notifications.BatchSize), log)

	return Handlers{
		Payment:      handlers.NewPaymentHandler(paymentUseCase, log),
		Result:       handlers.NewResultHandler(resultUseCase, log),
		Notification: handlers.NewNotificationHandler(notificationUseCase, log),
	}, nil
}

func setMiddlewares(router *gin.Engine, log *zap.Logger, allowedOrigins []string) {
	router.Use(logger.RequestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Error("Recovered from panic", zap.Any("panic", recovered), zap.String("request_id", logger.RequestID(c)))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))

	if len(allowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:  allowedOrigins,
			AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
			ExposeHeaders: []string{"Content-Length", "X-Request-ID", "Location"},
			MaxAge:        12 * time.Hour,
		}))
	}
}
