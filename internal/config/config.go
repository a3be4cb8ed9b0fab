// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string

	Server ServerConfig
	Batch  BatchConfig

	// Defaults for CLI flags
	ConcreteGrade string
	SteelGrade    string
	Seismic       string
}

type ServerConfig struct {
	Addr      string
	RateLimit float64 // requests per second per client
	RateBurst int
}

type BatchConfig struct {
	Workers int
}

// Load reads .env (if present) and the GOCIVIL_* variables.
func Load() *Config {
	_ = godotenv.Load()

	env := firstNonEmpty(strings.TrimSpace(os.Getenv("GOCIVIL_ENV")), "local")

	return &Config{
		Env:           env,
		LogLevel:      firstNonEmpty(strings.TrimSpace(os.Getenv("GOCIVIL_LOG_LEVEL")), defaultLogLevel(env)),
		ConcreteGrade: firstNonEmpty(strings.TrimSpace(os.Getenv("GOCIVIL_CONCRETE")), "K-250"),
		SteelGrade:    firstNonEmpty(strings.TrimSpace(os.Getenv("GOCIVIL_STEEL")), "BjTS-420"),
		Seismic:       firstNonEmpty(strings.TrimSpace(os.Getenv("GOCIVIL_SEISMIC")), "moderate"),
		Server: ServerConfig{
			Addr:      resolveAddr(),
			RateLimit: floatEnv("GOCIVIL_RATE_LIMIT", 5),
			RateBurst: intEnv("GOCIVIL_RATE_BURST", 10),
		},
		Batch: BatchConfig{
			Workers: intEnv("GOCIVIL_BATCH_WORKERS", runtime.NumCPU()),
		},
	}
}

func resolveAddr() string {
	if addr := strings.TrimSpace(os.Getenv("GOCIVIL_ADDR")); addr != "" {
		return addr
	}
	if port := strings.TrimSpace(os.Getenv("PORT")); port != "" {
		if strings.HasPrefix(port, ":") {
			return port
		}
		return ":" + port
	}
	return ":8080"
}

func defaultLogLevel(env string) string {
	if strings.EqualFold(env, "production") {
		return "info"
	}
	return "warn"
}

func intEnv(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func floatEnv(key string, def float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
