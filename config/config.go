package config

import (
	"errors"
	"net"
	"regexp"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Host string `env:"HOST" envDefault:"0.0.0.0"`
	Port int    `env:"PORT" envDefault:"3000"`

	SecretKey string `env:"SECRET_KEY,required"`

	MongoURI            string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDB             string        `env:"MONGO_DB" envDefault:"vip25"`
	MongoConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"5s"`

	AdminUsername     string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPasswordHash string `env:"ADMIN_PASSWORD_HASH,required"`

	// Rate limits, per client address.
	DailyLimit  int `env:"RATE_LIMIT_DAILY" envDefault:"200"`
	HourlyLimit int `env:"RATE_LIMIT_HOURLY" envDefault:"50"`
	SubmitLimit int `env:"RATE_LIMIT_SUBMIT_PER_MINUTE" envDefault:"5"`
	ExportLimit int `env:"RATE_LIMIT_EXPORT_PER_MINUTE" envDefault:"10"`

	SecureCookies bool `env:"SECURE_COOKIES" envDefault:"false"`
	Debug         bool `env:"DEBUG" envDefault:"false"`
}

// Load reads the .env file if present, then parses the environment.
func Load() (cfg Config, err error) {
	_ = godotenv.Load()

	if err = env.Parse(&cfg); err != nil {
		return cfg, errors.Join(errors.New("config: parse environment"), err)
	}
	return cfg, nil
}

func (cfg Config) Addr() string {
	return net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr()
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}
