// Package config reads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

const DefaultOrderServiceURL = "https://burger-back-production.up.railway.app"

type Config struct {
	AppEnv      string
	HTTPAddr    string
	CORSOrigins []string

	SessionSecret string
	DatabaseURL   string

	OrderServiceURL     string
	OrderServiceTimeout time.Duration

	KafkaBrokers string
	KafkaTopic   string

	R2 R2Config
}

// R2Config is only needed for asset publishing and public asset URLs.
type R2Config struct {
	Endpoint      string
	AccessKey     string
	SecretKey     string
	Bucket        string
	PublicBaseURL string
}

func (r R2Config) Enabled() bool {
	return r.Endpoint != "" && r.Bucket != ""
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func csvenv(key, def string) []string {
	var out []string
	for _, part := range strings.Split(getenv(key, def), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Load collects configuration from the environment. SESSION_SECRET is
// the only required key.
func Load() (Config, error) {
	cfg := Config{
		AppEnv:              getenv("APP_ENV", "development"),
		HTTPAddr:            getenv("HTTP_ADDR", ":8000"),
		CORSOrigins:         csvenv("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		SessionSecret:       getenv("SESSION_SECRET", ""),
		DatabaseURL:         getenv("DATABASE_URL", ""),
		OrderServiceURL:     strings.TrimRight(getenv("ORDER_SERVICE_URL", DefaultOrderServiceURL), "/"),
		OrderServiceTimeout: time.Duration(atoienv("ORDER_SERVICE_TIMEOUT_MS", 8000)) * time.Millisecond,
		KafkaBrokers:        getenv("KAFKA_BROKERS", ""),
		KafkaTopic:          getenv("KAFKA_TOPIC", "orders.submitted"),
		R2:                  loadR2(),
	}

	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET is required")
	}

	return cfg, nil
}

func loadR2() R2Config {
	return R2Config{
		Endpoint:      getenv("R2_ENDPOINT", ""),
		AccessKey:     getenv("R2_ACCESS_KEY", ""),
		SecretKey:     getenv("R2_SECRET_KEY", ""),
		Bucket:        getenv("R2_BUCKET_NAME", ""),
		PublicBaseURL: strings.TrimRight(getenv("R2_PUBLIC_BASE_URL", ""), "/"),
	}
}

// LoadR2 reads only the bucket settings and requires all of them.
func LoadR2() (R2Config, error) {
	r2 := loadR2()

	required := map[string]string{
		"R2_ENDPOINT":        r2.Endpoint,
		"R2_ACCESS_KEY":      r2.AccessKey,
		"R2_SECRET_KEY":      r2.SecretKey,
		"R2_BUCKET_NAME":     r2.Bucket,
		"R2_PUBLIC_BASE_URL": r2.PublicBaseURL,
	}
	var missing []string
	for k, v := range required {
		if v == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return R2Config{}, fmt.Errorf("missing env vars: %s", strings.Join(missing, ", "))
	}

	return r2, nil
}
