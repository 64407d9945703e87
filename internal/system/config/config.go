/*
 * Copyright (c) 2025, WSO2 LLC. (https://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

// Package config provides structures and functions for loading and managing server configurations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	yaml "gopkg.in/yaml.v3"

	"github.com/moonwalkers/moonmap/internal/system/log"
)

// ServerConfig holds the server configuration details.
type ServerConfig struct {
	Hostname string `yaml:"hostname"`
	Port     int    `yaml:"port" validate:"gte=0,lte=65535"`
}

// IdentityProviderConfig holds the Discord OAuth client and guild gate configuration.
type IdentityProviderConfig struct {
	APIBase        string   `yaml:"api_base" validate:"required,url"`
	ClientID       string   `yaml:"client_id" validate:"required"`
	ClientSecret   string   `yaml:"client_secret" validate:"required"`
	RedirectURI    string   `yaml:"redirect_uri" validate:"required,url"`
	GuildID        string   `yaml:"guild_id" validate:"required"`
	RoleID         string   `yaml:"role_id" validate:"required"`
	Scopes         []string `yaml:"scopes"`
	TimeoutSeconds int      `yaml:"timeout_seconds" validate:"gte=0"`
}

// QuoteConfig holds the real-time quote API configuration.
type QuoteConfig struct {
	BaseURL         string `yaml:"base_url" validate:"required,url"`
	Token           string `yaml:"token" validate:"required"`
	TimeoutSeconds  int    `yaml:"timeout_seconds" validate:"gte=0"`
	CacheTTLSeconds int    `yaml:"cache_ttl_seconds" validate:"gte=0"`
}

// ChainConfig holds the options-chain API configuration.
type ChainConfig struct {
	BaseURL        string `yaml:"base_url" validate:"required,url"`
	Token          string `yaml:"token" validate:"required"`
	TimeoutSeconds int    `yaml:"timeout_seconds" validate:"gte=0"`
}

// MarketConfig holds the market-hours configuration used by the freshness policy.
type MarketConfig struct {
	TimeZone      string `yaml:"time_zone" validate:"required"`
	FreezeStart   string `yaml:"freeze_start" validate:"required"`
	FreezeEnd     string `yaml:"freeze_end" validate:"required"`
	DefaultSymbol string `yaml:"default_symbol" validate:"required"`
}

// DataSource holds the individual database connection details.
type DataSource struct {
	Type            string `yaml:"type"`
	Hostname        string `yaml:"hostname"`
	Port            int    `yaml:"port"`
	Name            string `yaml:"name"`
	Username        string `yaml:"username"`
	Password        string `yaml:"password"`
	SSLMode         string `yaml:"sslmode"`
	Path            string `yaml:"path"`
	Options         string `yaml:"options"`
	MaxOpenConns    int    `yaml:"max_open_conns"`
	MaxIdleConns    int    `yaml:"max_idle_conns"`
	ConnMaxLifetime int    `yaml:"conn_max_lifetime"`
}

// RedisConfig holds the redis connection details.
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// SnapshotConfig selects and configures the snapshot store backend.
type SnapshotConfig struct {
	Type      string      `yaml:"type" validate:"oneof=file database redis"`
	Directory string      `yaml:"directory"`
	Database  DataSource  `yaml:"database"`
	Redis     RedisConfig `yaml:"redis"`
}

// SessionConfig holds the visitor session configuration.
type SessionConfig struct {
	CookieName     string `yaml:"cookie_name" validate:"required"`
	ValidityPeriod int64  `yaml:"validity_period" validate:"gt=0"`
	SecureCookie   bool   `yaml:"secure_cookie"`
}

// Config holds the complete configuration details of the server.
type Config struct {
	Server           ServerConfig           `yaml:"server"`
	IdentityProvider IdentityProviderConfig `yaml:"identity_provider"`
	Quote            QuoteConfig            `yaml:"quote"`
	Chain            ChainConfig            `yaml:"chain"`
	Market           MarketConfig           `yaml:"market"`
	Snapshot         SnapshotConfig         `yaml:"snapshot"`
	Session          SessionConfig          `yaml:"session"`
}

// LoadConfig loads the configurations from the specified YAML file.
// Variables from envFile (when present) are loaded into the environment first, and
// ${VAR} references in the YAML are expanded from the environment before decoding.
func LoadConfig(path, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("load env file: %w", err)
		}
	}

	content, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	return ParseConfig(content)
}

// ParseConfig expands, decodes, defaults and validates raw YAML configuration.
func ParseConfig(content []byte) (*Config, error) {
	expanded := os.ExpandEnv(string(content))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return &cfg, nil
}

// validateConfig checks struct constraints and the backend-specific snapshot settings.
func validateConfig(cfg *Config) error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	if err := validate.Struct(cfg); err != nil {
		return err
	}

	switch cfg.Snapshot.Type {
	case SnapshotTypeFile:
		if cfg.Snapshot.Directory == "" {
			return errors.New("snapshot.directory is required for the file snapshot store")
		}
	case SnapshotTypeDatabase:
		if cfg.Snapshot.Database.Type != DataSourceTypeSQLite && cfg.Snapshot.Database.Type != DataSourceTypePostgres {
			return fmt.Errorf("unsupported snapshot database type: %q", cfg.Snapshot.Database.Type)
		}
	case SnapshotTypeRedis:
		if cfg.Snapshot.Redis.Address == "" {
			return errors.New("snapshot.redis.address is required for the redis snapshot store")
		}
	}
	return nil
}

// applyDefaults fills optional settings that were left empty.
func applyDefaults(cfg *Config) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.IdentityProvider.APIBase == "" {
		cfg.IdentityProvider.APIBase = DefaultDiscordAPIBase
	}
	if len(cfg.IdentityProvider.Scopes) == 0 {
		cfg.IdentityProvider.Scopes = []string{ScopeIdentify, ScopeGuildMembersRead}
	}
	if cfg.Quote.BaseURL == "" {
		cfg.Quote.BaseURL = DefaultQuoteBaseURL
	}
	if cfg.Quote.TimeoutSeconds == 0 {
		cfg.Quote.TimeoutSeconds = DefaultQuoteTimeoutSeconds
	}
	if cfg.Quote.CacheTTLSeconds == 0 {
		cfg.Quote.CacheTTLSeconds = DefaultQuoteCacheTTLSeconds
	}
	if cfg.Chain.BaseURL == "" {
		cfg.Chain.BaseURL = DefaultChainBaseURL
	}
	if cfg.Market.TimeZone == "" {
		cfg.Market.TimeZone = DefaultMarketTimeZone
	}
	if cfg.Market.FreezeStart == "" {
		cfg.Market.FreezeStart = DefaultFreezeStart
	}
	if cfg.Market.FreezeEnd == "" {
		cfg.Market.FreezeEnd = DefaultFreezeEnd
	}
	if cfg.Market.DefaultSymbol == "" {
		cfg.Market.DefaultSymbol = DefaultSymbol
	}
	if cfg.Snapshot.Type == "" {
		cfg.Snapshot.Type = SnapshotTypeFile
	}
	if cfg.Snapshot.Type == SnapshotTypeFile && cfg.Snapshot.Directory == "" {
		cfg.Snapshot.Directory = DefaultSnapshotDirectory
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = DefaultSessionCookieName
	}
	if cfg.Session.ValidityPeriod == 0 {
		cfg.Session.ValidityPeriod = DefaultSessionValidityPeriod
	}
}

// LogSummary writes the non-secret parts of the configuration at debug level.
func (c *Config) LogSummary() {
	logger := log.GetLogger().With(log.String(log.LoggerKeyComponentName, "Config"))
	logger.Debug("Loaded configuration",
		log.String("identityProvider", c.IdentityProvider.APIBase),
		log.String("clientId", log.MaskString(c.IdentityProvider.ClientID)),
		log.String("snapshotStore", c.Snapshot.Type),
		log.String("marketTimeZone", c.Market.TimeZone))
}
