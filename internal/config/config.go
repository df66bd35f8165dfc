package config

import (
	"errors"
	"io/fs"
	"log"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultPort            = 3000
	defaultShutdownTimeout = 10 * time.Second
)

type (
	Config struct {
		HTTP
		Database
		GinMode         string
		ShutdownTimeout time.Duration
	}

	HTTP struct {
		Host string
		Port int
	}

	Database struct {
		URL  string // mongodb://, postgres:// or sqlite:// connection string
		Name string // Mongo database; empty means the one named in URL
	}
)

// Load reads configuration from the environment, after merging in the env
// file named by ENV_FILE (default ".env") when it exists. Variables already
// set in the process win over the file.
func Load() *Config {
	envFile := getenv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("warning: could not load %s: %v", envFile, err)
		}
	} else {
		log.Printf("loaded %s", envFile)
	}

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("port", defaultPort)
	v.SetDefault("host", "")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("mongodb_url", "mongodb://localhost:27017/books")
	v.SetDefault("database_name", "")
	v.SetDefault("shutdown_timeout", defaultShutdownTimeout.String())

	// DATABASE_URL takes precedence; MONGODB_URL is kept for existing deployments.
	url := v.GetString("DATABASE_URL")
	if url == "" {
		url = v.GetString("MONGODB_URL")
	}

	return &Config{
		HTTP: HTTP{
			Host: v.GetString("HOST"),
			Port: port(v.GetString("PORT")),
		},
		Database: Database{
			URL:  url,
			Name: v.GetString("DATABASE_NAME"),
		},
		GinMode:         v.GetString("GIN_MODE"),
		ShutdownTimeout: shutdownTimeout(v.GetString("SHUTDOWN_TIMEOUT")),
	}
}

func (c *Config) Addr() string {
	return net.JoinHostPort(c.HTTP.Host, strconv.Itoa(c.HTTP.Port))
}

func port(s string) int {
	p, err := strconv.Atoi(s)
	if err != nil || p < 0 || p > 65535 {
		log.Printf("warning: invalid PORT %q, using %d", s, defaultPort)
		return defaultPort
	}
	return p
}

func shutdownTimeout(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		log.Printf("warning: invalid SHUTDOWN_TIMEOUT %q, using %s", s, defaultShutdownTimeout)
		return defaultShutdownTimeout
	}
	return d
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
