package config

const (
	KeyGeminiAPIKey      = "gemini_api_key"
	KeyGeminiImageModel  = "gemini_image_model"
	KeyGeminiAPIEndpoint = "gemini_api_endpoint"
	KeyLogLevel          = "log_level"
	KeyTransport         = "transport"
	KeyHost              = "host"
	KeyPort              = "port"
	KeyEndpointPath      = "endpoint_path"
	KeyEnvFile           = "env_file"
)
