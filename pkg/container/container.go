package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"crowdfund-backoffice/internal/config"
	approvalRepo "crowdfund-backoffice/internal/domains/approval/repository"
	campaignHandler "crowdfund-backoffice/internal/domains/campaign/handler"
	campaignRepo "crowdfund-backoffice/internal/domains/campaign/repository"
	campaignService "crowdfund-backoffice/internal/domains/campaign/service"
	"crowdfund-backoffice/internal/domains/dashboard"
	dashboardHandler "crowdfund-backoffice/internal/domains/dashboard/handler"
	dashboardRepo "crowdfund-backoffice/internal/domains/dashboard/repository"
	"crowdfund-backoffice/internal/domains/workflow"
	infraCache "crowdfund-backoffice/internal/infrastructure/cache"
	"crowdfund-backoffice/internal/infrastructure/database"
	"crowdfund-backoffice/internal/infrastructure/queue"
	"crowdfund-backoffice/pkg/cache"
	"crowdfund-backoffice/pkg/jwt"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa dependencies của API process.
// Thứ tự init: config → infrastructure → repositories → services → handlers
type Container struct {
	// INFRASTRUCTURE
	Config      *config.Config
	DB          *database.PostgresDB
	Redis       *infraCache.RedisClient
	Cache       cache.Cache // Redis, hoặc MemoryCache khi Redis lỗi
	AsynqClient *asynq.Client
	JWTManager  *jwt.Manager
	Events      workflow.EventPublisher

	// REPOSITORIES
	CampaignRepo campaignRepo.Repository
	ApprovalRepo workflow.ApprovalStore

	// SERVICES
	CampaignService    *campaignService.Service
	SummaryCoordinator *workflow.Coordinator[dashboard.Summary]
	InfoCoordinator    *workflow.Coordinator[dashboard.Info]
	SocialsCoordinator *workflow.Coordinator[dashboard.Socials]

	// HANDLERS
	CampaignHandler *campaignHandler.CampaignHandler
	SummaryHandler  *dashboardHandler.Handler[dashboard.Summary]
	InfoHandler     *dashboardHandler.Handler[dashboard.Info]
	SocialsHandler  *dashboardHandler.Handler[dashboard.Socials]
}

// ========================================
// CONSTRUCTOR
// ========================================

func NewContainer() (*Container, error) {
	log.Info().Msg("Initializing DI container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Info().Str("environment", cfg.App.Environment).Msg("Config loaded")

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// ========================================
	// STEP 3: INITIALIZE REDIS + QUEUE
	// ========================================
	c.Redis = infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Redis.Connect(ctx); err != nil {
		// Redis lỗi không critical: cache trong process, TTL ngắn
		log.Warn().Err(err).Msg("Redis unavailable, falling back to in-process cache")
		c.Cache = infraCache.NewMemoryCache(infraCache.MemoryCacheTTL)
	} else {
		c.Cache = infraCache.NewRedisCache(c.Redis.Client)
	}

	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Host,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	c.Events = queue.NewEventPublisher(c.AsynqClient)

	c.JWTManager = jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute)

	// ========================================
	// STEP 4: REPOSITORIES + SERVICES + HANDLERS
	// ========================================
	c.initCampaign()
	c.initDashboard()

	log.Info().Msg("DI container initialized")
	return c, nil
}

func (c *Container) initCampaign() {
	c.CampaignRepo = campaignRepo.NewPostgresRepository(c.DB.Pool)
	c.CampaignService = campaignService.NewService(c.CampaignRepo)
	c.CampaignHandler = campaignHandler.NewCampaignHandler(c.CampaignService)
}

func (c *Container) initDashboard() {
	pool := c.DB.Pool
	c.ApprovalRepo = approvalRepo.NewPostgresRepository(pool)

	c.SummaryCoordinator = newCoordinator(c, pool, dashboard.SummaryDescriptor, dashboardRepo.SummaryTables, dashboardRepo.SummaryColumns)
	c.InfoCoordinator = newCoordinator(c, pool, dashboard.InfoDescriptor, dashboardRepo.InfoTables, dashboardRepo.InfoColumns)
	c.SocialsCoordinator = newCoordinator(c, pool, dashboard.SocialsDescriptor, dashboardRepo.SocialsTables, dashboardRepo.SocialsColumns)

	c.SummaryHandler = dashboardHandler.NewHandler[dashboard.Summary](c.SummaryCoordinator, dashboard.SummaryDescriptor.Label)
	c.InfoHandler = dashboardHandler.NewHandler[dashboard.Info](c.InfoCoordinator, dashboard.InfoDescriptor.Label)
	c.SocialsHandler = dashboardHandler.NewHandler[dashboard.Socials](c.SocialsCoordinator, dashboard.SocialsDescriptor.Label)
}

// newCoordinator: draft repo + canonical repo (bọc cache) + approval repo dùng chung
func newCoordinator[C workflow.Content[C]](
	c *Container,
	pool *pgxpool.Pool,
	desc workflow.Descriptor,
	tables dashboardRepo.Tables,
	cols dashboardRepo.Columns[C],
) *workflow.Coordinator[C] {
	drafts := dashboardRepo.NewDraftRepository(pool, tables.Draft, cols)
	canonical := dashboardRepo.NewCachedPublicationStore(
		dashboardRepo.NewPublicationRepository(pool, tables.Canonical, cols),
		c.Cache,
		desc.EntityType,
	)
	return workflow.NewCoordinator(desc, drafts, c.ApprovalRepo, canonical, c.CampaignService, c.Events)
}

// HealthCheck: database bắt buộc, redis chỉ báo trạng thái
func (c *Container) HealthCheck(ctx context.Context) map[string]string {
	status := map[string]string{"database": "ok", "redis": "ok"}

	if err := c.DB.HealthCheck(ctx); err != nil {
		status["database"] = err.Error()
	}
	if err := c.Redis.Client.Ping(ctx).Err(); err != nil {
		status["redis"] = err.Error()
	}
	return status
}

// Cleanup dọn dẹp resources khi shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("Cleaning up container resources...")

	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close asynq client")
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
