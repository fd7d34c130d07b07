package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultLearnedStore          = "postgres"
	defaultEvalTimeout           = 2 * time.Second
	defaultInferenceProvider     = "none"
	defaultInferenceTimeout      = 8 * time.Second
	defaultInferenceMaxRetries   = 2
	defaultInferenceRPS          = 5.0
	defaultBreakerMaxRequests    = 1
	defaultBreakerInterval       = time.Minute
	defaultBreakerTimeout        = 30 * time.Second
	defaultBreakerMinRequests    = 5
	defaultBreakerFailureRatio   = 0.6
	defaultMaxMatches            = 10
	defaultMinScore              = 0.1
	defaultProTierThreshold      = 20000.0
	defaultBusinessTierThreshold = 50000.0
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Redis backs the learned location store when resolver.learnedStore is "redis"
	Redis *RedisConfig `json:"redis" yaml:"redis"`

	// Resolver configures the three-tier location resolver
	Resolver *ResolverConfig `json:"resolver" yaml:"resolver"`

	// Matching configures scoring and ranking
	Matching *MatchingConfig `json:"matching" yaml:"matching"`

	// TestRoutes configuration for testing endpoints
	TestRoutes *TestRoutesConfig `json:"testRoutes" yaml:"testRoutes"`

	// PubSub configuration for event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RedisConfig defines the Redis connection
type RedisConfig struct {
	Address   string `json:"address" yaml:"address"`
	Password  string `json:"password" yaml:"password"`
	DB        int    `json:"db" yaml:"db"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// ResolverConfig defines location resolver configuration
type ResolverConfig struct {
	// LearnedStore selects the backend: "postgres", "redis" or "memory"
	LearnedStore string `json:"learnedStore" yaml:"learnedStore"`

	// DefaultLocation is returned with low confidence when inference fails
	DefaultLocation DefaultLocationConfig `json:"defaultLocation" yaml:"defaultLocation"`

	// EvalTimeout bounds the write of one evaluation record
	EvalTimeout time.Duration `json:"evalTimeout" yaml:"evalTimeout"`

	Inference *InferenceConfig `json:"inference" yaml:"inference"`
}

// DefaultLocationConfig is the fallback place
type DefaultLocationConfig struct {
	City      string  `json:"city" yaml:"city"`
	Province  string  `json:"province" yaml:"province"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// InferenceConfig defines the structured inference provider
type InferenceConfig struct {
	// Provider type: "openai" or "none"
	Provider          string        `json:"provider" yaml:"provider"`
	BaseURL           string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey            string        `json:"apiKey" yaml:"apiKey"`
	Model             string        `json:"model" yaml:"model"`
	Timeout           time.Duration `json:"timeout" yaml:"timeout"`
	MaxRetries        int           `json:"maxRetries" yaml:"maxRetries"`
	RequestsPerSecond float64       `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Breaker           BreakerConfig `json:"breaker" yaml:"breaker"`
}

// BreakerConfig defines circuit breaker thresholds
type BreakerConfig struct {
	// MaxRequests allowed through while half-open
	MaxRequests uint32 `json:"maxRequests" yaml:"maxRequests"`
	// Interval after which closed-state counts reset
	Interval time.Duration `json:"interval" yaml:"interval"`
	// Timeout before an open breaker moves to half-open
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
	// MinRequests before the failure ratio is considered
	MinRequests uint32 `json:"minRequests" yaml:"minRequests"`
	// FailureRatio that trips the breaker
	FailureRatio float64 `json:"failureRatio" yaml:"failureRatio"`
}

// MatchingConfig defines scoring configuration
type MatchingConfig struct {
	MaxMatches     int                  `json:"maxMatches" yaml:"maxMatches"`
	MinScore       float64              `json:"minScore" yaml:"minScore"`
	TierThresholds TierThresholdsConfig `json:"tierThresholds" yaml:"tierThresholds"`
}

// TierThresholdsConfig are the lower budget bounds (ZAR) of the pro and business tiers
type TierThresholdsConfig struct {
	Pro      float64 `json:"pro" yaml:"pro"`
	Business float64 `json:"business" yaml:"business"`
}

// TestRoutesConfig defines configuration for testing endpoints
type TestRoutesConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Topic for match requests consumed by the match worker
	TopicID string `json:"topicId" yaml:"topicId"`

	// Topic for matches-ready notifications, optional
	ResultsTopicID string `json:"resultsTopicId" yaml:"resultsTopicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	applyDefaults(cfg)

	return cfg, nil
}

// applyDefaults fills resolver and matching settings left empty in the file.
func applyDefaults(cfg *Config) {
	if cfg.Resolver == nil {
		cfg.Resolver = &ResolverConfig{}
	}

	r := cfg.Resolver
	if r.LearnedStore == "" {
		r.LearnedStore = defaultLearnedStore
	}

	if r.DefaultLocation.City == "" {
		r.DefaultLocation = DefaultLocationConfig{
			City:      "Johannesburg",
			Province:  "Gauteng",
			Latitude:  -26.2041,
			Longitude: 28.0473,
		}
	}

	if r.EvalTimeout <= 0 {
		r.EvalTimeout = defaultEvalTimeout
	}

	if r.Inference == nil {
		r.Inference = &InferenceConfig{}
	}

	inf := r.Inference
	if inf.Provider == "" {
		inf.Provider = defaultInferenceProvider
	}

	if inf.Timeout <= 0 {
		inf.Timeout = defaultInferenceTimeout
	}

	if inf.MaxRetries <= 0 {
		inf.MaxRetries = defaultInferenceMaxRetries
	}

	if inf.RequestsPerSecond <= 0 {
		inf.RequestsPerSecond = defaultInferenceRPS
	}

	b := &inf.Breaker
	if b.MaxRequests == 0 {
		b.MaxRequests = defaultBreakerMaxRequests
	}

	if b.Interval <= 0 {
		b.Interval = defaultBreakerInterval
	}

	if b.Timeout <= 0 {
		b.Timeout = defaultBreakerTimeout
	}

	if b.MinRequests == 0 {
		b.MinRequests = defaultBreakerMinRequests
	}

	if b.FailureRatio <= 0 || b.FailureRatio > 1 {
		b.FailureRatio = defaultBreakerFailureRatio
	}

	if cfg.Matching == nil {
		cfg.Matching = &MatchingConfig{}
	}

	m := cfg.Matching
	if m.MaxMatches <= 0 {
		m.MaxMatches = defaultMaxMatches
	}

	if m.MinScore <= 0 {
		m.MinScore = defaultMinScore
	}

	if m.TierThresholds.Pro <= 0 {
		m.TierThresholds.Pro = defaultProTierThreshold
	}

	if m.TierThresholds.Business <= m.TierThresholds.Pro {
		m.TierThresholds.Business = max(defaultBusinessTierThreshold, m.TierThresholds.Pro)
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
