package constants

// Pub/Sub providers
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Environments
const (
	EnvDevelop    = "develop"
	EnvLocal      = "local"
	EnvProduction = "production"
)
