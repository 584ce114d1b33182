package config

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}
	return Parse(content, path)
}

// Parse decodes YAML content; source only labels error messages.
func Parse(content []byte, source string) (*AppConfig, error) {
	cfg := defaultAppConfig()
	raw := rawAppConfig{}
	if len(bytes.TrimSpace(content)) > 0 {
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&raw); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", source, err)
		}
	}

	if err := applyRawAppConfig(&cfg, raw); err != nil {
		return nil, fmt.Errorf("config %q: %w", source, err)
	}
	applyEnvOverrides(&cfg)
	finalize(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", source, err)
	}
	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	cfg := AppConfig{
		Port: defaultPort,
		Env:  defaultEnv,
		Database: DatabaseRuntimeConfig{
			Driver:    defaultDBDriver,
			Host:      defaultDBHost,
			Port:      defaultDBPort,
			User:      defaultDBUser,
			Password:  defaultDBPassword,
			Name:      defaultDBName,
			Charset:   defaultDBCharset,
			ParseTime: true,
			Loc:       defaultDBLoc,
		},
		Redis: RedisRuntimeConfig{
			Host: defaultRedisHost,
			Port: defaultRedisPort,
			DB:   defaultRedisDB,
		},
		Mail: MailRuntimeConfig{
			Timeout: defaultMailTimeout,
			SMTP:    SMTPConfig{Port: defaultSMTPPort},
		},
		Storage: StorageRuntimeConfig{Driver: StorageLocal},
		Contact: ContactRuntimeConfig{
			RateLimit:  defaultContactLimit,
			RateWindow: defaultContactSpan,
		},
	}
	finalize(&cfg)
	return cfg
}

func finalize(cfg *AppConfig) {
	cfg.Database = normalizeDatabaseConfig(cfg.Database)
	cfg.Redis = normalizeRedisConfig(cfg.Redis)
	cfg.Mail = normalizeMailConfig(cfg.Mail)
	cfg.Storage = normalizeStorageConfig(cfg.Storage)
	cfg.Paths = normalizeRuntimePaths(cfg.Paths)
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.DSN = cfg.Database.DSNValue()
	cfg.RedisURL = cfg.Redis.URLValue()
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) error {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	cfg.Database = applyRawDatabaseConfig(cfg.Database, raw)
	cfg.Redis = applyRawRedisConfig(cfg.Redis, raw)
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.Paths.Logs); v != "" {
		cfg.Paths.Logs = v
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.Paths.Logs = v
	}
	if v := strings.TrimSpace(raw.Paths.Media); v != "" {
		cfg.Paths.Media = v
	}
	if v := strings.TrimSpace(raw.MediaDir); v != "" {
		cfg.Paths.Media = v
	}

	switch {
	case raw.AllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.AllowedOrigins)
	case raw.CORSAllowedOrigins != nil:
		cfg.AllowedOrigins = normalizeOrigins(raw.CORSAllowedOrigins)
	}

	if v := strings.TrimSpace(raw.JWTSecret); v != "" {
		cfg.JWTSecret = v
	}
	if v := strings.TrimSpace(raw.Timezone); v != "" {
		cfg.Timezone = v
	}
	if v := strings.TrimSpace(raw.TZ); v != "" {
		cfg.Timezone = v
	}

	mail, err := applyRawMailConfig(cfg.Mail, raw.Mail)
	if err != nil {
		return err
	}
	cfg.Mail = mail
	cfg.Storage = applyRawStorageConfig(cfg.Storage, raw.Storage)

	if raw.Contact.RateLimit != nil {
		cfg.Contact.RateLimit = *raw.Contact.RateLimit
	}
	if v := strings.TrimSpace(raw.Contact.RateWindow); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid contact.rate_window %q: %w", v, err)
		}
		cfg.Contact.RateWindow = d
	}
	return nil
}

func applyRawDatabaseConfig(current DatabaseRuntimeConfig, raw rawAppConfig) DatabaseRuntimeConfig {
	cfg := current

	if v := strings.TrimSpace(raw.Database.Driver); v != "" {
		cfg.Driver = v
	}
	if v := strings.TrimSpace(raw.DBDriver); v != "" {
		cfg.Driver = v
	}
	if v := strings.TrimSpace(raw.Database.DSN); v != "" {
		cfg.DSN = v
	}
	if v := strings.TrimSpace(raw.Database.URL); v != "" {
		cfg.DSN = v
	}
	if v := strings.TrimSpace(raw.DSN); v != "" {
		cfg.DSN = v
	}
	if v := strings.TrimSpace(raw.DatabaseURL); v != "" {
		cfg.DSN = v
	}
	if v := strings.TrimSpace(raw.Database.Host); v != "" {
		cfg.Host = v
	}
	if v := strings.TrimSpace(raw.DBHost); v != "" {
		cfg.Host = v
	}
	if raw.Database.Port != 0 {
		cfg.Port = raw.Database.Port
	}
	if raw.DBPort != 0 {
		cfg.Port = raw.DBPort
	}
	if v := strings.TrimSpace(raw.Database.User); v != "" {
		cfg.User = v
	}
	if v := strings.TrimSpace(raw.Database.Username); v != "" {
		cfg.User = v
	}
	if v := strings.TrimSpace(raw.DBUser); v != "" {
		cfg.User = v
	}
	if v := strings.TrimSpace(raw.Database.Password); v != "" {
		cfg.Password = v
	}
	if v := strings.TrimSpace(raw.DBPassword); v != "" {
		cfg.Password = v
	}
	if v := strings.TrimSpace(raw.Database.Name); v != "" {
		cfg.Name = v
	}
	if v := strings.TrimSpace(raw.Database.DBName); v != "" {
		cfg.Name = v
	}
	if v := strings.TrimSpace(raw.DBName); v != "" {
		cfg.Name = v
	}
	if v := strings.TrimSpace(raw.Database.Charset); v != "" {
		cfg.Charset = v
	}
	if raw.Database.ParseTime != nil {
		cfg.ParseTime = *raw.Database.ParseTime
	}
	if v := strings.TrimSpace(raw.Database.Loc); v != "" {
		cfg.Loc = v
	}
	if raw.Database.Params != nil {
		cfg.Params = copyStringMap(raw.Database.Params)
	}
	if v := strings.TrimSpace(raw.Database.Path); v != "" {
		cfg.Path = v
	}
	return cfg
}

func applyRawRedisConfig(current RedisRuntimeConfig, raw rawAppConfig) RedisRuntimeConfig {
	cfg := current

	if raw.Redis.Enable != nil {
		cfg.Enable = *raw.Redis.Enable
	}
	if v := strings.TrimSpace(raw.Redis.URL); v != "" {
		cfg.URL = v
		if raw.Redis.Enable == nil {
			cfg.Enable = true
		}
	}
	if v := strings.TrimSpace(raw.RedisURL); v != "" {
		cfg.URL = v
		if raw.Redis.Enable == nil {
			cfg.Enable = true
		}
	}
	if v := strings.TrimSpace(raw.Redis.Host); v != "" {
		cfg.Host = v
	}
	if raw.Redis.Port != 0 {
		cfg.Port = raw.Redis.Port
	}
	if v := strings.TrimSpace(raw.Redis.Username); v != "" {
		cfg.Username = v
	}
	if v := strings.TrimSpace(raw.Redis.Password); v != "" {
		cfg.Password = v
	}
	if raw.Redis.DB != nil {
		cfg.DB = *raw.Redis.DB
	}
	if raw.Redis.TLS != nil {
		cfg.TLS = *raw.Redis.TLS
	}
	if v := strings.TrimSpace(raw.Redis.Scheme); v != "" {
		cfg.Scheme = v
	}
	if raw.Redis.Params != nil {
		cfg.Params = copyStringMap(raw.Redis.Params)
	}
	return cfg
}

func applyRawMailConfig(current MailRuntimeConfig, raw rawMailConfig) (MailRuntimeConfig, error) {
	cfg := current
	if raw.Enable != nil {
		cfg.Enable = *raw.Enable
	}
	if v := strings.TrimSpace(raw.From); v != "" {
		cfg.From = v
	}
	if raw.Admins != nil {
		cfg.Admins = normalizeOrigins(raw.Admins)
	}
	if v := strings.TrimSpace(raw.Timeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid mail.timeout %q: %w", v, err)
		}
		cfg.Timeout = d
	}
	if v := strings.TrimSpace(raw.SMTP.Host); v != "" {
		cfg.SMTP.Host = v
	}
	if raw.SMTP.Port != 0 {
		cfg.SMTP.Port = raw.SMTP.Port
	}
	if v := strings.TrimSpace(raw.SMTP.User); v != "" {
		cfg.SMTP.User = v
	}
	if v := strings.TrimSpace(raw.SMTP.Username); v != "" {
		cfg.SMTP.User = v
	}
	if raw.SMTP.Pass != "" {
		cfg.SMTP.Pass = raw.SMTP.Pass
	}
	if raw.SMTP.Password != "" {
		cfg.SMTP.Pass = raw.SMTP.Password
	}
	if v := strings.TrimSpace(raw.Resend.APIKey); v != "" {
		cfg.Resend.APIKey = v
	}
	return cfg, nil
}

func applyRawStorageConfig(current StorageRuntimeConfig, raw rawStorageConfig) StorageRuntimeConfig {
	cfg := current
	if v := strings.TrimSpace(raw.Driver); v != "" {
		cfg.Driver = v
	}
	s3 := raw.S3
	if v := strings.TrimSpace(s3.Endpoint); v != "" {
		cfg.S3.Endpoint = v
	}
	if v := strings.TrimSpace(s3.Region); v != "" {
		cfg.S3.Region = v
	}
	if v := strings.TrimSpace(s3.Bucket); v != "" {
		cfg.S3.Bucket = v
	}
	if v := strings.TrimSpace(s3.AccessKeyID); v != "" {
		cfg.S3.AccessKeyID = v
	}
	if v := strings.TrimSpace(s3.SecretAccessKey); v != "" {
		cfg.S3.SecretAccessKey = v
	}
	if s3.PathStyleAccess != nil {
		cfg.S3.PathStyleAccess = *s3.PathStyleAccess
	}
	if v := strings.TrimSpace(s3.CustomDomain); v != "" {
		cfg.S3.CustomDomain = v
	}
	if v := strings.TrimSpace(s3.Prefix); v != "" {
		cfg.S3.Prefix = v
	}
	return cfg
}

func (c *AppConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d, expected 1-65535", c.Port)
	}
	switch c.Database.Driver {
	case DriverMySQL:
		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database.port %d, expected 1-65535", c.Database.Port)
		}
		if err := validateMySQLDSN(c.DSN); err != nil {
			return err
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unsupported database.driver %q, expected mysql or sqlite", c.Database.Driver)
	}
	if c.Redis.Port < 1 || c.Redis.Port > 65535 {
		return fmt.Errorf("invalid redis.port %d, expected 1-65535", c.Redis.Port)
	}
	if c.Redis.DB < 0 {
		return fmt.Errorf("invalid redis.db %d, expected >= 0", c.Redis.DB)
	}
	if c.Mail.Timeout <= 0 {
		return fmt.Errorf("invalid mail.timeout %s, expected > 0", c.Mail.Timeout)
	}
	switch c.Storage.Driver {
	case StorageLocal:
	case StorageS3:
		s3 := c.Storage.S3
		if s3.Bucket == "" || s3.Region == "" || s3.AccessKeyID == "" || s3.SecretAccessKey == "" {
			return fmt.Errorf("incomplete storage.s3 config: bucket/region/access_key_id/secret_access_key are required")
		}
	default:
		return fmt.Errorf("unsupported storage.driver %q, expected local or s3", c.Storage.Driver)
	}
	if c.Contact.RateLimit < 0 {
		return fmt.Errorf("invalid contact.rate_limit %d, expected >= 0", c.Contact.RateLimit)
	}
	return nil
}

func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(c.Env, defaultEnv)
}
