package formd

import (
	"github.com/emmydush/businessos/core/server"
	"github.com/emmydush/businessos/integration/database/pg"
	"github.com/emmydush/businessos/integration/database/redis"
	"github.com/emmydush/businessos/integration/storage/s3"
	"github.com/emmydush/businessos/pkg/ratelimiter"
)

// Config is the formd environment. Postgres, Redis and S3 are optional:
// without them submissions, rate limits and uploads stay in memory.
type Config struct {
	Server     server.Config
	DB         pg.Config
	Redis      redis.Config
	S3         s3.Config
	SubmitRate ratelimiter.Config `envPrefix:"SUBMIT_RATE_"`

	AppName         string   `env:"APP_NAME" envDefault:"formd"`
	Env             string   `env:"APP_ENV" envDefault:"development"`
	LogLevel        string   `env:"LOG_LEVEL" envDefault:"info"`
	DefaultLanguage string   `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	AllowOrigins    []string `env:"CORS_ALLOW_ORIGINS" envSeparator:","`
	TrustedProxies  []string `env:"TRUSTED_PROXIES" envSeparator:","`
	MaxBodySize     int64    `env:"MAX_BODY_SIZE" envDefault:"1048576"`
	MaxUploadSize   int64    `env:"MAX_UPLOAD_SIZE" envDefault:"20971520"`
	BcryptCost      int      `env:"BCRYPT_COST" envDefault:"10"`
}
