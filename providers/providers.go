package providers

import (
	"context"
	"net/http"
	"time"

	"assetflow/models"
	"assetflow/policy"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type AuthMiddlewareService interface {
	JWTAuthMiddleware() func(http.Handler) http.Handler
	RequireCapability(action policy.Action) func(http.Handler) http.Handler
	GetIdentityFromContext(r *http.Request) (models.Identity, error)
}

// AppConfig is populated from the environment by the config provider.
type AppConfig struct {
	AppEnv     string `envconfig:"APP_ENV" default:"development"`
	ServerPort string `envconfig:"SERVER_PORT" default:"8080"`

	DBUser     string `envconfig:"DB_USER" default:"postgres"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"postgres"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBName     string `envconfig:"DB_NAME" default:"assetflow"`
	DBSSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	MigrationsPath string `envconfig:"MIGRATIONS_PATH" default:"file://database/migrations"`
	RedisAddr      string `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`

	JWTSecret        string        `envconfig:"JWT_SECRET" required:"true"`
	JWTRefreshSecret string        `envconfig:"JWT_REFRESH_SECRET" required:"true"`
	AccessTokenTTL   time.Duration `envconfig:"ACCESS_TOKEN_TTL" default:"15m"`
	RefreshTokenTTL  time.Duration `envconfig:"REFRESH_TOKEN_TTL" default:"168h"`

	UploadDir      string `envconfig:"UPLOAD_DIR" default:"uploads"`
	MaxUploadBytes int64  `envconfig:"MAX_UPLOAD_BYTES" default:"16777216"`

	TicketAssetLinkage string        `envconfig:"TICKET_ASSET_LINKAGE" default:"manual"`
	DashboardCacheTTL  time.Duration `envconfig:"DASHBOARD_CACHE_TTL" default:"5m"`

	RateLimitPerMinute      int      `envconfig:"RATE_LIMIT_PER_MINUTE" default:"300"`
	LoginRateLimitPerMinute int      `envconfig:"LOGIN_RATE_LIMIT_PER_MINUTE" default:"20"`
	CORSAllowedOrigins      []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`

	WorkerConcurrency      int    `envconfig:"WORKER_CONCURRENCY" default:"2"`
	DashboardWarmSchedule  string `envconfig:"DASHBOARD_WARM_SCHEDULE" default:"@every 10m"`
	WarrantyScanSchedule   string `envconfig:"WARRANTY_SCAN_SCHEDULE" default:"0 6 * * *"`
	WarrantyScanDays       int    `envconfig:"WARRANTY_SCAN_DAYS" default:"30"`

	BootstrapAdminUsername string `envconfig:"BOOTSTRAP_ADMIN_USERNAME"`
	BootstrapAdminEmail    string `envconfig:"BOOTSTRAP_ADMIN_EMAIL"`
	BootstrapAdminPassword string `envconfig:"BOOTSTRAP_ADMIN_PASSWORD"`
}

func (c AppConfig) IsProduction() bool {
	return c.AppEnv == "production"
}

type ConfigProvider interface {
	LoadEnv() error
	GetDatabaseString() string
	GetServerPort() string
	GetRedisAddr() string
	Get() AppConfig
}

// ChangeNotifier is told when data behind the dashboard aggregates changes.
type ChangeNotifier interface {
	Invalidate(ctx context.Context)
}

type DBProvider interface {
	DB() *sqlx.DB
	Close() error
}

type ZapLoggerProvider interface {
	InitLogger()
	SyncLogger()
	GetLogger() *zap.Logger
}

type RedisProvider interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Incr(ctx context.Context, key string) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// TokenClaims is the verified content of an access or refresh token.
type TokenClaims struct {
	ID       string
	UserID   int64
	Role     models.Role
	IssuedAt time.Time
}

type TokenProvider interface {
	GenerateAccessToken(identity models.Identity) (string, error)
	GenerateRefreshToken(userID int64) (string, error)
	ParseAccessToken(tokenStr string) (TokenClaims, error)
	ParseRefreshToken(tokenStr string) (TokenClaims, error)
}
