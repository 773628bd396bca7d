package constants

// Deployment environments.
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers for lifecycle events.
const (
	PubSubProviderNone   = ""
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Cookie names used by the session layer.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)
