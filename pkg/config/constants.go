package config

const (
	EnvPrefix = "ECOMVOYAGE"

	AppEnvDev  = "development"
	AppEnvProd = "production"

	EnvAppEnv       = "ECOMVOYAGE_APP_ENV"
	EnvRedisURL     = "ECOMVOYAGE_REDIS_URL"
	EnvGCPProjectID = "ECOMVOYAGE_GCP_PROJECT_ID"
	EnvGenAIAPIKey  = "ECOMVOYAGE_GENAI_API_KEY"
)
