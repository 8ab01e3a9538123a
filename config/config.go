package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Mediator MediatorConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// MediatorConfig tunes the domain mirror layer.
// SignupTriggerWait is how long SignUp waits for the backend trigger that
// materializes the profile row before refreshing the user mirror.
type MediatorConfig struct {
	SignupTriggerWait  time.Duration
	SessionEventBuffer int
	RefreshTimeout     time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = 15 * time.Minute
	}

	refreshExpiry, err := time.ParseDuration(viper.GetString("JWT_REFRESH_EXPIRY"))
	if err != nil {
		refreshExpiry = 7 * 24 * time.Hour
	}

	triggerWait, err := time.ParseDuration(viper.GetString("SIGNUP_TRIGGER_WAIT"))
	if err != nil {
		triggerWait = 2 * time.Second
	}

	refreshTimeout, err := time.ParseDuration(viper.GetString("MIRROR_REFRESH_TIMEOUT"))
	if err != nil {
		refreshTimeout = 15 * time.Second
	}

	eventBuffer := viper.GetInt("SESSION_EVENT_BUFFER")
	if eventBuffer <= 0 {
		eventBuffer = 16
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:        viper.GetString("JWT_SECRET"),
			AccessExpiry:  accessExpiry,
			RefreshExpiry: refreshExpiry,
		},
		Mediator: MediatorConfig{
			SignupTriggerWait:  triggerWait,
			SessionEventBuffer: eventBuffer,
			RefreshTimeout:     refreshTimeout,
		},
	}

	return config, nil
}
