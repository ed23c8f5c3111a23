package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	departmentApp "campusvoice/internal/application/department"
	issueApp "campusvoice/internal/application/issue"
	notificationApp "campusvoice/internal/application/notification"
	userApp "campusvoice/internal/application/user"
	"campusvoice/internal/domain/notification"
	"campusvoice/internal/domain/shared/events"
	"campusvoice/internal/infrastructure/auth"
	"campusvoice/internal/infrastructure/config"
	"campusvoice/internal/infrastructure/permission"
	"campusvoice/internal/infrastructure/pubsub"
	"campusvoice/internal/infrastructure/ratelimit"
	"campusvoice/internal/infrastructure/repository"
	"campusvoice/internal/infrastructure/telemetry"
	"campusvoice/internal/interfaces/http/handlers"
	"campusvoice/internal/interfaces/http/middleware"
	"campusvoice/internal/shared/db"
	"campusvoice/internal/shared/logger"
	"campusvoice/internal/shared/services/markdown"
)

// Container holds the infrastructure components, application services,
// handlers and middlewares. It wires everything together and releases the
// external resources on Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client
	clock  func() time.Time

	// dispatcher runs inside the issue transaction; committed only sees
	// events whose transaction committed.
	dispatcher *events.InMemoryEventDispatcher
	committed  *events.InMemoryEventDispatcher
	enforcer   *permission.Enforcer
	jwtSvc     *auth.JWTService
	metrics    *telemetry.LifecycleMetrics

	// Application services
	issueService        *issueApp.ServiceDDD
	userService         *userApp.ServiceDDD
	departmentService   *departmentApp.ServiceDDD
	notificationService *notificationApp.ServiceDDD

	// Handlers
	issueHandler        *handlers.IssueHandler
	userHandler         *handlers.UserHandler
	departmentHandler   *handlers.DepartmentHandler
	notificationHandler *handlers.NotificationHandler
	healthHandler       *handlers.HealthHandler

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter // nil when disabled
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
		clock:  func() time.Time { return time.Now().UTC() },
	}

	// Section 1: Infrastructure - Redis, casbin, JWT, metrics
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Application services and event subscriptions
	if err := c.initServices(); err != nil {
		return nil, err
	}

	// Section 3: Handlers and middlewares
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	if c.cfg.Redis.Enabled {
		c.redis = redis.NewClient(&redis.Options{
			Addr:     c.cfg.Redis.GetAddr(),
			Password: c.cfg.Redis.Password,
			DB:       c.cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		c.log.Infow("redis connected", "addr", c.cfg.Redis.GetAddr())
	}

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := permission.SeedDefaultPolicies(enforcer, c.log); err != nil {
		return fmt.Errorf("failed to seed permissions: %w", err)
	}
	c.enforcer = enforcer

	c.jwtSvc = auth.NewJWTService(
		c.cfg.Auth.JWT.Secret,
		c.cfg.Auth.JWT.Issuer,
		c.cfg.Auth.JWT.AccessExpMinutes,
		c.clock,
	)

	metrics, err := telemetry.NewLifecycleMetrics(nil)
	if err != nil {
		return fmt.Errorf("failed to register lifecycle metrics: %w", err)
	}
	c.metrics = metrics

	c.dispatcher = events.NewInMemoryEventDispatcher()
	c.committed = events.NewInMemoryEventDispatcher()
	return nil
}

func (c *Container) initServices() error {
	userRepo := repository.NewUserRepository(c.db, c.log)
	departmentRepo := repository.NewDepartmentRepository(c.db, c.log)
	notificationRepo := repository.NewNotificationRepository(c.db, c.log)

	txManager := db.NewTransactionManager(c.db, db.WithMaxRetries(c.cfg.Database.MaxRetries))

	c.issueService = issueApp.NewServiceDDD(
		issueApp.Repositories{
			Issues:    repository.NewIssueRepository(c.db, c.log),
			Supports:  repository.NewSupportRepository(c.db, c.log),
			Contests:  repository.NewContestRepository(c.db, c.log),
			Votes:     repository.NewRevalidationVoteRepository(c.db, c.log),
			Timeline:  repository.NewTimelineRepository(c.db, c.log),
			Comments:  repository.NewCommentRepository(c.db, c.log),
			Proposals: repository.NewProposalRepository(c.db, c.log),
		},
		userRepo,
		departmentRepo,
		txManager,
		c.dispatcher,
		c.committed,
		markdown.NewMarkdownService(),
		c.clock,
		c.log.Named("issue"),
	)
	c.userService = userApp.NewServiceDDD(userRepo, departmentRepo, c.clock, c.log.Named("user"))
	c.departmentService = departmentApp.NewServiceDDD(departmentRepo, c.clock, c.log.Named("department"))
	c.notificationService = notificationApp.NewServiceDDD(
		notificationRepo,
		notification.DefaultCatalog(),
		c.clock,
		c.log.Named("notification"),
	)

	if err := c.notificationService.SubscribeTo(c.dispatcher); err != nil {
		return fmt.Errorf("failed to subscribe notifications: %w", err)
	}
	if err := c.committed.Subscribe(events.WildcardEventType, c.metrics); err != nil {
		return fmt.Errorf("failed to subscribe lifecycle metrics: %w", err)
	}
	if c.redis != nil {
		bus := pubsub.NewRedisIssueEventBus(c.redis, c.log.Named("pubsub"))
		if err := c.committed.Subscribe(events.WildcardEventType, bus); err != nil {
			return fmt.Errorf("failed to subscribe lifecycle feed: %w", err)
		}
	}
	return nil
}

func (c *Container) initHandlers() {
	c.issueHandler = handlers.NewIssueHandler(c.issueService, c.log)
	c.userHandler = handlers.NewUserHandler(c.userService, c.log)
	c.departmentHandler = handlers.NewDepartmentHandler(c.departmentService, c.log)
	c.notificationHandler = handlers.NewNotificationHandler(c.notificationService, c.log)
	c.healthHandler = handlers.NewHealthHandler(c.db, c.redis)

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, c.log)

	if c.cfg.RateLimit.Enabled {
		window := time.Duration(c.cfg.RateLimit.WindowSeconds) * time.Second
		var limiter ratelimit.RateLimiter
		if c.redis != nil {
			limiter = ratelimit.NewRedisRateLimiter(c.redis, c.cfg.RateLimit.Limit, window)
		} else {
			limiter = ratelimit.NewMemoryRateLimiter(c.cfg.RateLimit.Limit, window, c.clock)
		}
		c.rateLimiter = middleware.NewRateLimiter(limiter, c.log)
	}
}

// Shutdown releases the external connections held by the container.
func (c *Container) Shutdown(ctx context.Context) {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
	telemetry.Shutdown(ctx)
}
