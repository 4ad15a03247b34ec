// Package config exposes process configuration for prime-cms, read from
// environment variables with sensible defaults for local development.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strconv"
	"strings"
)

//go:embed version
var version string

//go:embed name
var name string

type LogLevel string

const (
	Debug  LogLevel = "debug"
	Info   LogLevel = "info"
	Notice LogLevel = "notice"
	Warn   LogLevel = "warn"
	Error  LogLevel = "error"
)

func GetVersion() string {
	return strings.TrimSpace(version)
}

func GetName() string {
	return strings.TrimSpace(name)
}

func GetLogLevel() LogLevel {
	if IsDebug() {
		return Debug
	}
	logLevel := os.Getenv("PCMS_LOG_LEVEL")
	if logLevel == "" {
		return Info
	}
	return LogLevel(logLevel)
}

func IsDebug() bool {
	return os.Getenv("PCMS_DEBUG") == "true"
}

func GetListen() string {
	return os.Getenv("PCMS_LISTEN")
}

func GetPort() int {
	port, err := strconv.Atoi(os.Getenv("PCMS_PORT"))
	if err != nil || port <= 0 || port > 65535 {
		return 8080
	}
	return port
}

// GetWebDomain returns the expected Host header value, empty to accept any.
func GetWebDomain() string {
	return os.Getenv("PCMS_WEB_DOMAIN")
}

func GetDBFolderPath() string {
	dbFolderPath := os.Getenv("PCMS_DB_FOLDER")
	if dbFolderPath == "" {
		if IsDebug() {
			return "db"
		}
		return "/etc/prime-cms"
	}
	return dbFolderPath
}

func GetDBPath() string {
	return fmt.Sprintf("%s/%s.db", GetDBFolderPath(), GetName())
}

func GetLogFolder() string {
	logFolderPath := os.Getenv("PCMS_LOG_FOLDER")
	if logFolderPath == "" {
		return "/var/log"
	}
	return logFolderPath
}

// GetJWTSecret returns the key used to sign session tokens. An empty
// secret is rejected at startup outside debug mode.
func GetJWTSecret() string {
	secret := os.Getenv("PCMS_JWT_SECRET")
	if secret == "" && IsDebug() {
		return "dev-secret"
	}
	return secret
}

func GetBlobEndpoint() string {
	return os.Getenv("PCMS_BLOB_ENDPOINT")
}

func GetBlobRegion() string {
	region := os.Getenv("PCMS_BLOB_REGION")
	if region == "" {
		return "auto"
	}
	return region
}

func GetBlobBucket() string {
	return os.Getenv("PCMS_BLOB_BUCKET")
}

func GetBlobAccessKey() string {
	return os.Getenv("PCMS_BLOB_ACCESS_KEY")
}

func GetBlobSecretKey() string {
	return os.Getenv("PCMS_BLOB_SECRET_KEY")
}

// GetBlobPublicBaseURL is the public URL prefix under which uploaded
// object keys are served to site visitors.
func GetBlobPublicBaseURL() string {
	return os.Getenv("PCMS_BLOB_PUBLIC_URL")
}

// GetBlobCacheTTL returns the Cache-Control max-age, in seconds, set on
// uploaded objects. Keys are never reused, so a year is safe.
func GetBlobCacheTTL() int {
	ttl, err := strconv.Atoi(os.Getenv("PCMS_BLOB_CACHE_TTL"))
	if err != nil || ttl <= 0 {
		return 60 * 60 * 24 * 365
	}
	return ttl
}
