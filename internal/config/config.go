package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	DB      DBConfig      `mapstructure:"db"`
	Storage StorageConfig `mapstructure:"storage"`
	Admin   AdminConfig   `mapstructure:"admin"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DBConfig struct {
	// DSN may be empty, in which case the in-memory document store is
	// used instead of MySQL/TiDB.
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"maxOpenConns"`
}

type StorageConfig struct {
	CloudinaryURL string `mapstructure:"cloudinary_url"`
	Folder        string `mapstructure:"folder"`
}

type AdminConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

// LoadConfig loads configuration from config.yaml and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.framecraft/")
	v.AddConfigPath("/etc/framecraft/")

	// Enable environment variable override with FRAMECRAFT_ prefix
	v.SetEnvPrefix("FRAMECRAFT")
	v.AutomaticEnv()
	v.BindEnv("admin.email", "FRAMECRAFT_ADMIN_EMAIL")
	v.BindEnv("admin.password", "FRAMECRAFT_ADMIN_PASSWORD")
	v.BindEnv("db.dsn", "FRAMECRAFT_DB_DSN")
	v.BindEnv("storage.cloudinary_url", "FRAMECRAFT_CLOUDINARY_URL")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("db.maxOpenConns", 10)
	v.SetDefault("storage.folder", "framecraft")

	// A missing config file is fine, the environment can carry everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate rejects configurations the server must not start with. The
// admin credentials are the only authentication the panel has, so their
// absence is a startup error, not a silently open door.
func (c *Config) Validate() error {
	if c.Admin.Email == "" || c.Admin.Password == "" {
		return fmt.Errorf("admin credentials not configured: set admin.email and admin.password (or FRAMECRAFT_ADMIN_EMAIL / FRAMECRAFT_ADMIN_PASSWORD)")
	}
	return nil
}
