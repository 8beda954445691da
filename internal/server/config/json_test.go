package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr_http":      ":9090",
		"data_dir":                "store",
		"database_dsn":            "postgres://localhost/privacycheck",
		"secret_key":              "my_secret_key",
		"token_validity_duration": "30m",
		"hash_scheme":             "argon2id",
		"gemini_base_url":         "http://localhost:1234",
		"gemini_model":            "gemini-test",
		"provider_timeout":        "15s",
		"s3_root_user":            "user",
		"s3_root_password":        "password",
		"s3_bucket":               "bucket",
		"s3_region":               "region",
		"s3_base_endpoint":        "base_endpoint",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, ":9090", cfg.EndpointAddrHTTP)
		assert.Equal(t, "store", cfg.DataDir)
		assert.Equal(t, "postgres://localhost/privacycheck", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
		assert.Equal(t, "argon2id", cfg.HashScheme)
		assert.Equal(t, "http://localhost:1234", cfg.GeminiBaseURL)
		assert.Equal(t, "gemini-test", cfg.GeminiModel)
		assert.Equal(t, 15*time.Second, cfg.ProviderTimeout)
		assert.Equal(t, "user", cfg.S3RootUser)
		assert.Equal(t, "password", cfg.S3RootPassword)
		assert.Equal(t, "bucket", cfg.S3Bucket)
		assert.Equal(t, "region", cfg.S3Region)
		assert.Equal(t, "base_endpoint", cfg.S3BaseEndpoint)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{EndpointAddrHTTP: ":1111", SecretKey: "key"}
		parseJson(cfg)

		assert.Equal(t, ":1111", cfg.EndpointAddrHTTP)
		assert.Equal(t, "key", cfg.SecretKey)
	})
}
