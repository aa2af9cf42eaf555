// container.go
package main

import (
	"context"
	"fmt"

	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/talenta-pe/talenta/pkg/ai/llm"
	aiopenai "github.com/talenta-pe/talenta/pkg/ai/providers/openai"
	"github.com/talenta-pe/talenta/pkg/config"
	"github.com/talenta-pe/talenta/pkg/fsx"
	"github.com/talenta-pe/talenta/pkg/fsx/fsxlocal"
	"github.com/talenta-pe/talenta/pkg/fsx/fsxs3"
	"github.com/talenta-pe/talenta/pkg/hr/employee/employeeapi"
	"github.com/talenta-pe/talenta/pkg/hr/employee/employeeinfra"
	"github.com/talenta-pe/talenta/pkg/hr/employee/employeesrv"
	"github.com/talenta-pe/talenta/pkg/hr/leave/leaveinfra"
	"github.com/talenta-pe/talenta/pkg/iam/account/accountinfra"
	"github.com/talenta-pe/talenta/pkg/iam/auth"
	"github.com/talenta-pe/talenta/pkg/iam/auth/authapi"
	"github.com/talenta-pe/talenta/pkg/iam/auth/authinfra"
	"github.com/talenta-pe/talenta/pkg/iam/auth/authsrv"
	"github.com/talenta-pe/talenta/pkg/logx"
	"github.com/talenta-pe/talenta/pkg/recruiting/application/applicationinfra"
	"github.com/talenta-pe/talenta/pkg/recruiting/candidate/candidateapi"
	"github.com/talenta-pe/talenta/pkg/recruiting/candidate/candidateinfra"
	"github.com/talenta-pe/talenta/pkg/recruiting/candidate/candidatesrv"
	"github.com/talenta-pe/talenta/pkg/recruiting/hiring/hiringapi"
	"github.com/talenta-pe/talenta/pkg/recruiting/hiring/hiringsrv"
	"github.com/talenta-pe/talenta/pkg/recruiting/interview/interviewapi"
	"github.com/talenta-pe/talenta/pkg/recruiting/interview/interviewinfra"
	"github.com/talenta-pe/talenta/pkg/recruiting/interview/interviewsrv"
	"github.com/talenta-pe/talenta/pkg/recruiting/position/positionapi"
	"github.com/talenta-pe/talenta/pkg/recruiting/position/positioninfra"
	"github.com/talenta-pe/talenta/pkg/recruiting/position/positionsrv"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB         *sqlx.DB
	Redis      *redis.Client
	FileSystem fsx.FileSystem
	S3Client   *s3.Client

	// Domain Services
	AuthService      *authsrv.AuthService
	PositionService  *positionsrv.PositionService
	CandidateService *candidatesrv.CandidateService
	InterviewService *interviewsrv.InterviewService
	HiringService    *hiringsrv.HiringService
	EmployeeService  *employeesrv.EmployeeService
	TokenService     auth.TokenService

	// API Handlers
	AuthHandlers      *authapi.AuthHandlers
	PositionHandlers  *positionapi.PositionHandlers
	CandidateHandlers *candidateapi.CandidateHandlers
	InterviewHandlers *interviewapi.InterviewHandlers
	HiringHandlers    *hiringapi.HiringHandlers
	EmployeeHandlers  *employeeapi.EmployeeHandlers

	// Middleware
	AuthMiddleware *auth.TokenMiddleware
}

// NewContainer initializes the dependency injection container
func NewContainer(cfg *config.Config) *Container {
	logx.Info("🔧 Initializing dependency container...")

	c := &Container{
		Config: cfg,
	}

	c.initInfrastructure()
	c.initServices()

	logx.Info("✅ Container initialized successfully")
	return c
}

func (c *Container) initInfrastructure() {
	logx.Info("🏗️ Initializing infrastructure...")

	// 1. Database Connection
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Config.Database.Host,
		c.Config.Database.Port,
		c.Config.Database.User,
		c.Config.Database.Password,
		c.Config.Database.Name,
		c.Config.Database.SSLMode,
	)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		logx.Fatalf("Failed to connect to database: %v", err)
	}
	db.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
	db.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
	db.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)
	c.DB = db
	logx.Info("✅ Database connected")

	// 2. Redis Connection (candidate detail cache)
	c.Redis = redis.NewClient(&redis.Options{
		Addr:     c.Config.Redis.Address(),
		Password: c.Config.Redis.Password,
		DB:       c.Config.Redis.DB,
	})
	if _, err := c.Redis.Ping(context.Background()).Result(); err != nil {
		logx.Fatalf("Failed to connect to Redis: %v (Redis is required for the detail cache)", err)
	} else {
		logx.Info("✅ Redis connected")
	}

	// 3. File Storage Configuration (Local or S3)
	c.initFileStorage()

	logx.Info("✅ Infrastructure initialized")
}

func (c *Container) initFileStorage() {
	switch c.Config.Storage.Mode {
	case "s3":
		awsCfg, err := awsConfig.LoadDefaultConfig(context.TODO(), awsConfig.WithRegion(c.Config.Storage.AWSRegion))
		if err != nil {
			logx.Fatalf("Unable to load AWS SDK config: %v", err)
		}
		c.S3Client = s3.NewFromConfig(awsCfg)
		c.FileSystem = fsxs3.NewS3FileSystem(c.S3Client, c.Config.Storage.AWSBucket, "")
		logx.Infof("✅ S3 file system configured (bucket: %s, region: %s)", c.Config.Storage.AWSBucket, c.Config.Storage.AWSRegion)

	case "local":
		localFS, err := fsxlocal.NewLocalFileSystem(c.Config.Storage.LocalPath)
		if err != nil {
			logx.Fatalf("Failed to initialize local file system: %v", err)
		}
		c.FileSystem = localFS
		logx.Infof("✅ Local file system configured (path: %s)", localFS.GetBasePath())

	default:
		logx.Fatalf("Unknown STORAGE_MODE: %s (use 'local' or 's3')", c.Config.Storage.Mode)
	}
}

func (c *Container) initServices() {
	logx.Info("🗄️  Initializing repositories and services...")

	// --- Repositories ---
	accountRepo := accountinfra.NewPostgresAccountRepository(c.DB)
	roleRepo := accountinfra.NewPostgresRoleRepository(c.DB)
	positionRepo := positioninfra.NewPostgresPositionRepository(c.DB)
	candidateRepo := candidateinfra.NewPostgresCandidateRepository(c.DB)
	applicationRepo := applicationinfra.NewPostgresApplicationRepository(c.DB)
	interviewRepo := interviewinfra.NewPostgresInterviewRepository(c.DB)
	employeeRepo := employeeinfra.NewPostgresEmployeeRepository(c.DB)
	leaveRepo := leaveinfra.NewPostgresBalanceRepository(c.DB)

	// --- Infrastructure Services ---
	detailCache := candidateinfra.NewRedisDetailCache(c.Redis)
	passwordSvc := authinfra.NewBcryptPasswordService(c.Config.Auth.Password.BcryptCost)
	c.TokenService = auth.NewJWTServiceFromConfig(&c.Config.Auth.JWT)

	// LLM client is optional; interviews fall back to a business error when
	// feedback drafting is requested with AI disabled
	var llmClient *llm.Client
	if c.Config.AI.Enabled {
		llmClient = llm.NewClient(aiopenai.NewOpenAIProvider(c.Config.AI.APIKey))
		logx.Infof("✅ AI feedback drafting enabled (model: %s)", c.Config.AI.Model)
	}

	// --- Domain Services ---
	c.AuthService = authsrv.NewAuthService(
		accountRepo,
		roleRepo,
		passwordSvc,
		c.TokenService,
	)

	c.PositionService = positionsrv.NewPositionService(positionRepo)

	c.CandidateService = candidatesrv.NewCandidateService(
		candidateRepo,
		applicationRepo,
		interviewRepo,
		positionRepo,
		detailCache,
		c.Config.Redis.CacheTTL,
		c.FileSystem,
	)

	c.InterviewService = interviewsrv.NewInterviewService(
		interviewRepo,
		applicationRepo,
		candidateRepo,
		detailCache,
		llmClient,
		&c.Config.AI,
	)

	c.HiringService = hiringsrv.NewHiringService(
		candidateRepo,
		applicationRepo,
		interviewRepo,
		positionRepo,
		accountRepo,
		roleRepo,
		passwordSvc,
		employeeRepo,
		leaveRepo,
		detailCache,
		&c.Config.Hiring,
	)

	c.EmployeeService = employeesrv.NewEmployeeService(employeeRepo, leaveRepo)

	// --- API Handlers ---
	c.AuthHandlers = authapi.NewAuthHandlers(c.AuthService)
	c.PositionHandlers = positionapi.NewPositionHandlers(c.PositionService)
	c.CandidateHandlers = candidateapi.NewCandidateHandlers(c.CandidateService)
	c.InterviewHandlers = interviewapi.NewInterviewHandlers(c.InterviewService)
	c.HiringHandlers = hiringapi.NewHiringHandlers(c.HiringService)
	c.EmployeeHandlers = employeeapi.NewEmployeeHandlers(c.EmployeeService)

	// --- Middleware ---
	c.AuthMiddleware = auth.NewTokenMiddleware(c.TokenService)

	logx.Info("✅ All services and handlers initialized")
}

// Cleanup closes all connections
func (c *Container) Cleanup() {
	logx.Info("🧹 Cleaning up resources...")

	// Close database connection
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			logx.Errorf("Error closing database: %v", err)
		} else {
			logx.Info("✅ Database connection closed")
		}
	}

	// Close Redis connection
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			logx.Errorf("Error closing Redis: %v", err)
		} else {
			logx.Info("✅ Redis connection closed")
		}
	}

	logx.Info("✅ Cleanup completed")
}
