package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultImageModel   = "gemini-2.5-flash-image-preview"
	DefaultEnvFile      = ".env"
	DefaultEndpointPath = "/mcp"

	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Init wires environment variables, the optional .env file (ENV_FILE, default
// .env) and the root command's persistent flags into the global viper store.
// Flags are spelled with dashes and keys with underscores, so --gemini-api-key
// and GEMINI_API_KEY both resolve gemini_api_key.
func Init(root *cobra.Command) {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = godotenv.Load(envFile())
	if root != nil {
		root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
			_ = viper.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f)
		})
	}
	setDefaults()
}

func envFile() string {
	if v := viper.GetString(KeyEnvFile); v != "" {
		return v
	}
	return DefaultEnvFile
}

func setDefaults() {
	viper.SetDefault(KeyGeminiImageModel, DefaultImageModel)
	viper.SetDefault(KeyLogLevel, "info")
	viper.SetDefault(KeyTransport, TransportStdio)
	viper.SetDefault(KeyHost, "0.0.0.0")
	viper.SetDefault(KeyPort, 8000)
	viper.SetDefault(KeyEndpointPath, DefaultEndpointPath)
}

func GeminiImageModel() string  { return viper.GetString(KeyGeminiImageModel) }
func GeminiAPIEndpoint() string { return viper.GetString(KeyGeminiAPIEndpoint) }
func LogLevel() string          { return viper.GetString(KeyLogLevel) }
func Transport() string         { return strings.ToLower(viper.GetString(KeyTransport)) }
func Host() string              { return viper.GetString(KeyHost) }
func Port() int                 { return viper.GetInt(KeyPort) }
func EndpointPath() string      { return viper.GetString(KeyEndpointPath) }

// Lookup returns the raw value stored under key and whether it is set to a
// non-blank string.
func Lookup(key string) (string, bool) {
	v := strings.TrimSpace(viper.GetString(key))
	return v, v != ""
}
