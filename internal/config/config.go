package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Redis   RedisConfig
	Session SessionConfig
	Logger  LoggerConfig
	Quiz    QuizConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DBConfig struct {
	Path string // SQLite database file
}

type RedisConfig struct {
	Address  string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret   string
	TokenTTL time.Duration
}

type LoggerConfig struct {
	Level string
	Env   string
}

type QuizConfig struct {
	MaxQuestionCount   int
	RecentResultsLimit int
	TrendWindowDays    int
	StatsCacheTTL      time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../configs")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.AutomaticEnv()

	viper.SetDefault("server.port", 8090)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 20)
	viper.SetDefault("db.path", "exam-prep.db")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("session.token_ttl", 720) // minutes
	viper.SetDefault("quiz.max_question_count", 80)
	viper.SetDefault("quiz.recent_results_limit", 10)
	viper.SetDefault("quiz.trend_window_days", 30)
	viper.SetDefault("quiz.stats_cache_ttl", 300) // seconds

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
		},
		DB: DBConfig{
			Path: viper.GetString("db.path"),
		},
		Redis: RedisConfig{
			Address:  viper.GetString("redis.address"),
			Password: viper.GetString("redis.password"),
			DB:       viper.GetInt("redis.db"),
		},
		Session: SessionConfig{
			Secret:   viper.GetString("session.secret"),
			TokenTTL: viper.GetDuration("session.token_ttl") * time.Minute,
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
		Quiz: QuizConfig{
			MaxQuestionCount:   viper.GetInt("quiz.max_question_count"),
			RecentResultsLimit: viper.GetInt("quiz.recent_results_limit"),
			TrendWindowDays:    viper.GetInt("quiz.trend_window_days"),
			StatsCacheTTL:      viper.GetDuration("quiz.stats_cache_ttl") * time.Second,
		},
	}

	// Environment overrides for deployment
	if path := os.Getenv("DB_PATH"); path != "" {
		config.DB.Path = path
	}
	if addr := os.Getenv("REDIS_ADDRESS"); addr != "" {
		config.Redis.Address = addr
	}
	if password := os.Getenv("REDIS_PASSWORD"); password != "" {
		config.Redis.Password = password
	}
	if secret := os.Getenv("SESSION_SECRET"); secret != "" {
		config.Session.Secret = secret
	}

	return config, nil
}
