package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"resumeiq-backend/internal/ai"
	"resumeiq-backend/internal/ai/groq"
	googleauth "resumeiq-backend/internal/auth"
	"resumeiq-backend/internal/reports"
	"resumeiq-backend/internal/resumes"
	"resumeiq-backend/internal/shared/config"
	"resumeiq-backend/internal/shared/server"
	"resumeiq-backend/internal/shared/storage/db"
	"resumeiq-backend/internal/shared/storage/object"
	localstore "resumeiq-backend/internal/shared/storage/object/local"
	s3store "resumeiq-backend/internal/shared/storage/object/s3"
	"resumeiq-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	DB             *sql.DB
	Store          object.ObjectStore
	AI             ai.Client
	ResumesRepo    resumes.ResumesRepo
	ReportsRepo    reports.ReportsRepo
	UsersRepo      users.Repo
	ResumesService *resumes.Service
	ReportsService *reports.Service
	UsersService   *users.Service
	ResumeHandler  *resumes.Handler
	ReportHandler  *reports.Handler
	UsersHandler   *users.Handler
	GoogleAuth     *googleauth.GoogleService
}

// Build prepares shared dependencies and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = "local"
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	aiClient, err := buildAI(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		AI:     aiClient,
	}
	buildServices(app)

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		ResumeHandler: app.ResumeHandler,
		ReportHandler: app.ReportHandler,
		UserHandler:   app.UsersHandler,
		GoogleAuth:    app.GoogleAuth,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return sqlDB, nil
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	switch cfg.ObjectStoreType {
	case "s3":
		if strings.TrimSpace(cfg.S3Bucket) == "" {
			return nil, fmt.Errorf("OBJECT_STORE=s3 requires S3_BUCKET")
		}
		return s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
	default:
		return localstore.New(cfg.LocalStoreDir), nil
	}
}

func buildAI(cfg config.Config) (ai.Client, error) {
	if strings.TrimSpace(cfg.GroqAPIKey) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: GROQ_API_KEY empty; report generation will fail until configured")
			return unconfiguredAI{}, nil
		}
		return nil, fmt.Errorf("GROQ_API_KEY is required")
	}
	return groq.NewClient(cfg.GroqAPIKey, cfg.GroqModel)
}

func buildServices(app *App) {
	if app.DB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.ReportsRepo = &reports.PGRepo{DB: app.DB}
		app.UsersRepo = &users.PGRepo{DB: app.DB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.ReportsRepo = reports.NewMemoryRepo()
		app.UsersRepo = users.NewMemoryRepo()
	}

	app.ResumesService = resumes.NewService(app.Store, app.ResumesRepo)
	quota := &reports.QuotaGuard{
		Repo:  app.ReportsRepo,
		Limit: app.Config.DailyReportLimit,
		Scope: app.Config.QuotaScope,
	}
	app.ReportsService = reports.NewService(quota, app.ResumesRepo, app.Store, app.AI, app.ReportsRepo)
	app.UsersService = users.NewService(app.UsersRepo)

	app.ResumeHandler = resumes.NewHandler(app.ResumesService)
	app.ReportHandler = reports.NewHandler(app.ReportsService)
	app.UsersHandler = users.NewHandler(app.UsersService)
	app.GoogleAuth = googleauth.NewGoogleService(
		app.Config.GoogleClientID,
		app.Config.GoogleClientSecret,
		app.Config.GoogleRedirectURL,
		app.Config.UIRedirectURL,
		app.UsersService,
	)
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

// unconfiguredAI fails every assessment with a clear message. Used in dev when
// no API key is set so the rest of the API still works.
type unconfiguredAI struct{}

func (unconfiguredAI) AssessForRole(ctx context.Context, resumeText, role string) (ai.RoleAssessment, error) {
	return ai.RoleAssessment{}, fmt.Errorf("%w: GROQ_API_KEY not configured", ai.ErrUnavailable)
}

func (unconfiguredAI) AssessForJD(ctx context.Context, resumeText, jobDescription string) (ai.JDAssessment, error) {
	return ai.JDAssessment{}, fmt.Errorf("%w: GROQ_API_KEY not configured", ai.ErrUnavailable)
}
