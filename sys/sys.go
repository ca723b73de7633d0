// Package sys holds the process configuration and the shared resources.
// Both are built once in main and passed by reference; nothing here is global.
package sys

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// Config contains all the configs gathered from env vars at startup.
type Config struct {
	Http struct {
		Port            string
		ShutdownTimeout time.Duration
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
	}
	Cors struct {
		AllowedOrigins []string
	}
	Swagger struct {
		Protocol string
		Host     string
	}
	Database struct {
		ConnectionURL    string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
	}
	Cache struct {
		ConnectionURL    string
		User             string
		Pass             string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
		CacheTTL         time.Duration
	}
	Messaging struct {
		QueueURL        string
		MaxWorkers      int
		WaitTime        time.Duration
		ShutdownTimeout time.Duration
	}
	NewRelic struct {
		AppName           string
		Licence           string
		Enabled           bool
		ConnectionTimeout time.Duration
		ShutdownTimeout   time.Duration
	}
}

// Resources bundles the static resources a request needs to be served.
type Resources struct {
	Log      *zap.SugaredLogger
	Database *sqlx.DB
	Cache    *redis.Client
	Configs  *Config
}
