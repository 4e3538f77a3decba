package config

import (
	"errors"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	API     API
	Logger  Logger
	Storage Storage
	Redis   Redis
	Account Account
	Sync    Sync
	HTTP    HTTP
	Kafka   Kafka
}

type API struct {
	BaseURL       string        `env:"HALADESK_API_URL"`
	Timeout       time.Duration `env:"HALADESK_API_TIMEOUT"        envDefault:"0s"`
	RetryAttempts int           `env:"HALADESK_API_RETRY_ATTEMPTS" envDefault:"0"`
}

type Logger struct {
	Level string `env:"LOG_LEVEL" envDefault:"info"`
}

type StorageDriver string

const (
	StorageDriverFile  StorageDriver = "file"
	StorageDriverRedis StorageDriver = "redis"
)

type Storage struct {
	Driver StorageDriver `env:"STORAGE_DRIVER" envDefault:"file"`
	Path   string        `env:"STORAGE_PATH"   envDefault:"./haladesk.store"`
	Secret string        `env:"STORAGE_SECRET"`
}

type Redis struct {
	Addr     string `env:"REDIS_ADDR"     envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB"       envDefault:"0"`
}

// Account holds optional credentials used when no session was rehydrated.
type Account struct {
	Email    string `env:"HALADESK_EMAIL"    envDefault:""`
	Password string `env:"HALADESK_PASSWORD" envDefault:""`
}

type Sync struct {
	Interval time.Duration `env:"SYNC_INTERVAL" envDefault:"5m"`
	Users    bool          `env:"SYNC_USERS"    envDefault:"false"`
}

type HTTP struct {
	Port int `env:"HTTP_PORT" envDefault:"8085"`
}

type Kafka struct {
	Brokers []string `env:"KAFKA_BROKERS" envDefault:"" envSeparator:","`
	Topic   string   `env:"KAFKA_TOPIC"   envDefault:"haladesk.state"`
}

var ErrUnknownStorageDriver = errors.New("unknown storage driver")

func New(envPath string) (Config, error) {
	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	c, err := env.ParseAsWithOptions[Config](env.Options{
		RequiredIfNoDef: true,
	})
	if err != nil {
		return Config{}, err
	}

	switch c.Storage.Driver {
	case StorageDriverFile, StorageDriverRedis:
	default:
		return Config{}, ErrUnknownStorageDriver
	}

	return c, nil
}

// KafkaEnabled reports whether state changes should be published.
func (c Config) KafkaEnabled() bool {
	return len(c.Kafka.Brokers) > 0 && c.Kafka.Brokers[0] != ""
}
