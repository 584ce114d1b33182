package config

import (
	"os"
	"strconv"
	"strings"
)

// EnvPrefix namespaces environment overrides, e.g. PORTFOLIO_JWT_SECRET.
const EnvPrefix = "PORTFOLIO_"

// applyEnvOverrides lets secrets stay out of the YAML file. Values are read
// after .env has been loaded by the entrypoint.
func applyEnvOverrides(cfg *AppConfig) {
	if v := lookupEnv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := lookupEnv("ENV"); v != "" {
		cfg.Env = v
	}
	if v := lookupEnv("JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := lookupEnv("DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := lookupEnv("DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := lookupEnv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := lookupEnv("DB_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := lookupEnv("REDIS_URL"); v != "" {
		cfg.Redis.URL = v
		cfg.Redis.Enable = true
	}
	if v := lookupEnv("SMTP_PASS"); v != "" {
		cfg.Mail.SMTP.Pass = v
	}
	if v := lookupEnv("RESEND_API_KEY"); v != "" {
		cfg.Mail.Resend.APIKey = v
	}
	if v := lookupEnv("S3_ACCESS_KEY_ID"); v != "" {
		cfg.Storage.S3.AccessKeyID = v
	}
	if v := lookupEnv("S3_SECRET_ACCESS_KEY"); v != "" {
		cfg.Storage.S3.SecretAccessKey = v
	}
}

func lookupEnv(key string) string {
	return strings.TrimSpace(os.Getenv(EnvPrefix + key))
}
