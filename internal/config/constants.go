package config

import "time"

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 2333
	defaultEnv        = "development"

	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	defaultDBDriver     = DriverMySQL
	defaultDBHost       = "127.0.0.1"
	defaultDBPort       = 3306
	defaultDBUser       = "root"
	defaultDBPassword   = "password"
	defaultDBName       = "portfolio"
	defaultDBCharset    = "utf8mb4"
	defaultDBLoc        = "Local"
	defaultSQLitePath   = "data/portfolio.db"
	defaultRedisHost    = "localhost"
	defaultRedisPort    = 6379
	defaultRedisDB      = 0
	defaultMailTimeout  = 10 * time.Second
	defaultSMTPPort     = 587
	defaultContactLimit = 5
	defaultContactSpan  = 10 * time.Minute

	StorageLocal = "local"
	StorageS3    = "s3"
)
