package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/flagx"
	"github.com/AditiGusain-14/AI-PrivacyCheck/internal/timex"
)

// JsonConfig is an intermediate DTO for reading JSON configuration files.
// Duration fields accept either strings such as "30s" or integer
// nanoseconds; after unmarshalling, values are copied into the runtime
// Config struct.
type JsonConfig struct {
	EndpointAddrHTTP      string         `json:"endpoint_addr_http"`
	DataDir               string         `json:"data_dir"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	HashScheme            string         `json:"hash_scheme"`
	GeminiBaseURL         string         `json:"gemini_base_url"`
	GeminiModel           string         `json:"gemini_model"`
	ProviderTimeout       timex.Duration `json:"provider_timeout"`
	S3RootUser            string         `json:"s3_root_user"`
	S3RootPassword        string         `json:"s3_root_password"`
	S3Bucket              string         `json:"s3_bucket"`
	S3Region              string         `json:"s3_region"`
	S3BaseEndpoint        string         `json:"s3_base_endpoint"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. If no file is named, nothing
// is loaded. If the file cannot be read or contains invalid JSON, the
// function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddrHTTP = c.EndpointAddrHTTP
	config.DataDir = c.DataDir
	config.DatabaseDSN = c.DatabaseDSN
	config.SecretKey = c.SecretKey
	config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	config.HashScheme = c.HashScheme
	config.GeminiBaseURL = c.GeminiBaseURL
	config.GeminiModel = c.GeminiModel
	config.ProviderTimeout = time.Duration(c.ProviderTimeout.Duration)
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
}
