// Package config handles configuration for the server component,
// including defaults, JSON overlay, command-line flags, and the provider
// API key from the environment.
package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the AI PrivacyCheck server.
//
// Fields:
//   - EndpointAddrHTTP: bind address for the HTTP API.
//   - DataDir: directory for the flat-file credential and session stores.
//   - DatabaseDSN: optional PostgreSQL DSN; when set, storage moves to Postgres.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use test defaults in prod.
//   - TokenValidityDuration: access token lifetime.
//   - HashScheme: password hasher, "sha256" (legacy files) or "argon2id".
//   - GeminiAPIKey / GeminiBaseURL / GeminiModel / ProviderTimeout: model call settings.
//     The API key comes from the GEMINI_API_KEY environment variable.
//   - S3BaseEndpoint etc.: optional S3-compatible storage for uploaded screenshots;
//     uploads are discarded when the endpoint is empty.
type Config struct {
	EndpointAddrHTTP      string
	DataDir               string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	HashScheme            string
	GeminiAPIKey          string
	GeminiBaseURL         string
	GeminiModel           string
	ProviderTimeout       time.Duration
	S3RootUser            string
	S3RootPassword        string
	S3Bucket              string
	S3Region              string
	S3BaseEndpoint        string
}

// LoadDefaults populates Config with sensible development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":8080"
	c.DataDir = "chat_histories"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 60 * time.Minute
	c.HashScheme = "sha256"
	c.GeminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	c.GeminiModel = "gemini-1.5-flash"
	c.ProviderTimeout = 60 * time.Second
	c.S3Bucket = "screenshots"
	c.S3Region = "us-east-1"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, command-line flags, and finally the
// environment (provider API key).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	return cfg
}
