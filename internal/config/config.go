package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/ytmusic-cli/internal/constants"
	"github.com/oshokin/ytmusic-cli/internal/logger"
)

// Config holds all configuration settings.
type Config struct {
	// AuthMode selects the authentication mode ("browser" or "oauth").
	AuthMode string `mapstructure:"auth_mode"`
	// Cookie is the raw Cookie header captured from a logged-in browser
	// session. Required in browser mode.
	Cookie string `mapstructure:"cookie"`
	// UserAgent is the User-Agent header sent with every request. In
	// browser mode it should match the browser the cookie came from.
	UserAgent string `mapstructure:"user_agent"`
	// OAuthAccessToken is the current OAuth access token.
	OAuthAccessToken string `mapstructure:"oauth_access_token"`
	// OAuthRefreshToken is the long-lived OAuth refresh token.
	// Required in oauth mode.
	OAuthRefreshToken string `mapstructure:"oauth_refresh_token"`
	// OAuthTokenType is the OAuth token type, normally "Bearer".
	OAuthTokenType string `mapstructure:"oauth_token_type"`
	// OAuthExpiresAt is the access token expiry instant in RFC 3339 form.
	OAuthExpiresAt string `mapstructure:"oauth_expires_at"`
	// ClientVersion overrides the web client version the requests
	// impersonate. Empty uses the built-in default.
	ClientVersion string `mapstructure:"client_version"`
	// Language is the interface language hint (hl), e.g. "en".
	Language string `mapstructure:"language"`
	// Region is the region hint (gl), e.g. "US".
	Region string `mapstructure:"region"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// RequestTimeout is the per-request timeout (e.g., "30s", "1m").
	RequestTimeout string `mapstructure:"request_timeout"`
	// MaxLogLength sets the maximum size of logged request/response dumps
	// (e.g., "64KB", "1MB").
	MaxLogLength string `mapstructure:"max_log_length"`
	// RequestsPerSecond throttles outgoing API requests.
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
	// ParsedRequestTimeout is the parsed per-request timeout.
	ParsedRequestTimeout time.Duration
	// ParsedMaxLogLength is the parsed maximum log dump size in bytes.
	ParsedMaxLogLength uint64
	// ParsedOAuthExpiresAt is the parsed access token expiry instant.
	ParsedOAuthExpiresAt time.Time
}

// Authentication modes accepted in auth_mode.
const (
	// AuthModeBrowser authorizes requests with a captured browser cookie.
	AuthModeBrowser = "browser"
	// AuthModeOAuth authorizes requests with OAuth device flow tokens.
	AuthModeOAuth = "oauth"
)

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".ytmusic-cli.yaml"

	// DefaultMaxLogLength is the default maximum size (in bytes) for logged request/response dumps.
	DefaultMaxLogLength = 1 * 1024 * 1024 // 1 MB

	// DefaultRequestTimeout is the per-request timeout used when the
	// configuration does not set one.
	DefaultRequestTimeout = 60 * time.Second
)

// Static error definitions for better error handling.
var (
	// ErrUnknownAuthMode indicates that auth_mode is not recognized.
	ErrUnknownAuthMode = errors.New("auth_mode must be 'browser' or 'oauth'")
	// ErrEmptyCookie indicates that browser mode is selected without a cookie.
	ErrEmptyCookie = errors.New("cookie cannot be empty in browser mode")
	// ErrEmptyRefreshToken indicates that oauth mode is selected without a refresh token.
	ErrEmptyRefreshToken = errors.New("oauth_refresh_token cannot be empty in oauth mode")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrInvalidRequestsPerSecond indicates that the request rate is invalid.
	ErrInvalidRequestsPerSecond = errors.New("requests_per_second cannot be negative")
)

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	viper.SetConfigFile(configFilename)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
//
//nolint:cyclop // Validation functions naturally have high complexity due to sequential checks.
func ValidateConfig(cfg *Config) error {
	var err error

	switch strings.TrimSpace(cfg.AuthMode) {
	case AuthModeBrowser:
		if strings.TrimSpace(cfg.Cookie) == "" {
			return ErrEmptyCookie
		}
	case AuthModeOAuth:
		if strings.TrimSpace(cfg.OAuthRefreshToken) == "" {
			return ErrEmptyRefreshToken
		}
	default:
		return fmt.Errorf("%w: '%s'", ErrUnknownAuthMode, cfg.AuthMode)
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedRequestTimeout = DefaultRequestTimeout

	if cfg.RequestTimeout != "" {
		cfg.ParsedRequestTimeout, err = time.ParseDuration(cfg.RequestTimeout)
		if err != nil {
			return fmt.Errorf("failed to parse request timeout: %w", err)
		}

		if cfg.ParsedRequestTimeout <= 0 {
			return ErrInvalidRequestTimeout
		}
	}

	cfg.ParsedMaxLogLength = DefaultMaxLogLength

	maxLogLength := strings.TrimSpace(cfg.MaxLogLength)
	if maxLogLength != "" && maxLogLength != "0" {
		cfg.ParsedMaxLogLength, err = humanize.ParseBytes(maxLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max log length: %w", err)
		}
	}

	if cfg.RequestsPerSecond < 0 {
		return ErrInvalidRequestsPerSecond
	}

	if cfg.OAuthExpiresAt != "" {
		cfg.ParsedOAuthExpiresAt, err = time.Parse(time.RFC3339, cfg.OAuthExpiresAt)
		if err != nil {
			return fmt.Errorf("failed to parse oauth_expires_at: %w", err)
		}
	}

	return nil
}

// SaveConfig saves the configuration to the file while preserving the
// original format and order. Only the mutable values are rewritten: the
// captured cookie and the OAuth token material.
func SaveConfig(cfg *Config) error {
	configFile := getConfigFilePath()

	updates := map[string]string{
		"auth_mode":           cfg.AuthMode,
		"cookie":              cfg.Cookie,
		"oauth_access_token":  cfg.OAuthAccessToken,
		"oauth_refresh_token": cfg.OAuthRefreshToken,
		"oauth_token_type":    cfg.OAuthTokenType,
		"oauth_expires_at":    cfg.OAuthExpiresAt,
	}

	// Read the original file content.
	originalContent, err := os.ReadFile(configFile)
	if err != nil {
		return handleMissingConfigFile(configFile, updates, err)
	}

	// Parse YAML while preserving order using yaml.Node.
	var node yaml.Node
	if err = yaml.Unmarshal(originalContent, &node); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	// Update the mutable values in the node tree.
	updateValuesInNode(&node, updates)

	// Marshal back to YAML (preserves order).
	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	// Write the file back with preserved order.
	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// getConfigFilePath returns the config file path from viper or the default.
func getConfigFilePath() string {
	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		return DefaultConfigFilename
	}

	return configFile
}

// handleMissingConfigFile creates a new config file if it doesn't exist.
func handleMissingConfigFile(configFile string, updates map[string]string, err error) error {
	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// File doesn't exist, create it with viper.
	for key, value := range updates {
		viper.Set(key, value)
	}

	if err = viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	return nil
}

// updateValuesInNode updates scalar values in the YAML node tree, keeping
// the order and style of the original document. Keys absent from the
// document are appended so new token material is never dropped.
func updateValuesInNode(node *yaml.Node, updates map[string]string) {
	// The root node is a document node, content[0] is the actual map.
	if len(node.Content) == 0 || node.Content[0].Kind != yaml.MappingNode {
		return
	}

	mapNode := node.Content[0]
	seen := make(map[string]bool, len(updates))

	// Iterate through key-value pairs (stored as alternating nodes).
	for i := 0; i < len(mapNode.Content); i += 2 {
		keyNode := mapNode.Content[i]
		valueNode := mapNode.Content[i+1]

		value, ok := updates[keyNode.Value]
		if !ok {
			continue
		}

		seen[keyNode.Value] = true

		// Update the value while preserving style.
		valueNode.Value = value
		valueNode.Tag = "!!str"

		// Ensure it's quoted if it contains special characters.
		if valueNode.Style == 0 {
			valueNode.Style = yaml.DoubleQuotedStyle
		}
	}

	for key, value := range updates {
		if seen[key] || value == "" {
			continue
		}

		mapNode.Content = append(mapNode.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: yaml.DoubleQuotedStyle})
	}
}
