// Package constants contains well-known configuration values.
package constants

const (
	// EnvDevelop is the env.env value for local development.
	EnvDevelop = "develop"

	// PubSubProviderGoogle publishes through Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
	// PubSubProviderLocal pushes messages straight to a local worker over HTTP.
	PubSubProviderLocal = "local"

	// LearnedStorePostgres keeps learned aliases in the relational store.
	LearnedStorePostgres = "postgres"
	// LearnedStoreRedis keeps learned aliases in Redis.
	LearnedStoreRedis = "redis"
	// LearnedStoreMemory keeps learned aliases in process memory.
	LearnedStoreMemory = "memory"

	// InferenceProviderOpenAI talks to an OpenAI-compatible Responses API.
	InferenceProviderOpenAI = "openai"
	// InferenceProviderNone disables AI inference.
	InferenceProviderNone = "none"
)
