package common

import (
	"flag"
	"os"
	"strconv"
)

var Version = "v0.1.0"

// Command-line flags. Defaults are taken from the environment so that the
// service can be configured either way (flags win when both are given).
var (
	Port             = flag.Int("port", envInt("PORT", 5000), "port to listen on")
	SQLitePath       = flag.String("sqlite-path", envString("SQLITE_PATH", "data/files-manager.db"), "path to the SQLite database (used when SQL_DSN is not set)")
	SQLDsn           = flag.String("sql-dsn", envString("SQL_DSN", ""), "MySQL DSN; when set it takes precedence over SQLite")
	RedisConnString  = flag.String("redis-conn-string", envString("REDIS_CONN_STRING", ""), "Redis connection URL, e.g. redis://localhost:6379/0")
	FolderPath       = flag.String("folder-path", envString("FOLDER_PATH", "/tmp/files_manager"), "root directory for stored file content")
	PrintVersion     = flag.Bool("version", false, "print version and exit")
	PrintHelpFlag    = flag.Bool("help", false, "print help and exit")
	RequestRateLimit = flag.Int("rate-limit", envInt("RATE_LIMIT", 100), "requests per second allowed across the API")
)

func envString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func PrintHelp() {
	println("Files Manager " + Version)
	flag.Usage()
}
