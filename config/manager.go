package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const (
	defaultAppURL         = "https://app.endorlabs.com"
	defaultPort           = "8080"
	defaultLogLevel       = "info"
	defaultHTTPTimeout    = 30 * time.Second
	defaultRequestTimeout = 30 * time.Second
)

type IConfigureManager interface {
	GetWebConfig() WebConfig
	GetLanguageConfig() LanguageConfig
	GetEndorConfig() EndorConfig
	GetLogstashConfig() LogstashConfig
	GetOpenSearchConfig() OpenSearchConfig
}

type configureManager struct {
	Web        WebConfig
	Language   LanguageConfig
	Endor      EndorConfig
	Logstash   LogstashConfig
	OpenSearch OpenSearchConfig
}

func NewConfigureManager() IConfigureManager {
	// .env is optional; real deployments inject the environment directly.
	_ = godotenv.Load()

	configPath := "./"

	if os.Getenv("GO_VAULT_PATH") != "" {
		configPath = os.Getenv("GO_VAULT_PATH")
	}

	return newConfigureManager(viper.New(), fmt.Sprintf("%sconfig-%s.json", configPath, os.Getenv("golang_env")))
}

func newConfigureManager(v *viper.Viper, configFile string) *configureManager {
	v.SetConfigFile(configFile)
	v.SetConfigType("json")
	v.AutomaticEnv()

	v.SetDefault("PORT", defaultPort)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("ENDOR_APP_URL", defaultAppURL)
	v.SetDefault("ENDOR_HTTP_TIMEOUT", defaultHTTPTimeout)
	v.SetDefault("ENDOR_REQUEST_TIMEOUT", defaultRequestTimeout)

	_ = v.ReadInConfig()

	return &configureManager{
		Web:        loadWebConfig(v),
		Language:   loadLanguageConfig(),
		Endor:      loadEndorConfig(v),
		Logstash:   loadLogstashConfig(v),
		OpenSearch: loadOpenSearchConfig(v),
	}
}

func loadWebConfig(v *viper.Viper) WebConfig {
	return WebConfig{
		AppName:  v.GetString("APP_NAME"),
		Port:     v.GetString("PORT"),
		Env:      v.GetString("ENV"),
		Version:  v.GetString("VERSION"),
		LogLevel: v.GetString("LOG_LEVEL"),
	}
}

func loadLanguageConfig() LanguageConfig {
	return LanguageConfig{
		Default: language.English,
		Languages: []language.Tag{
			language.English,
		},
	}
}

func loadEndorConfig(v *viper.Viper) EndorConfig {
	return EndorConfig{
		APIURL:         v.GetString("ENDOR_API_URL"),
		APIKey:         v.GetString("ENDOR_API_KEY"),
		APISecret:      v.GetString("ENDOR_API_SECRET"),
		Namespace:      v.GetString("ENDOR_NAMESPACE"),
		AppURL:         v.GetString("ENDOR_APP_URL"),
		HTTPTimeout:    v.GetDuration("ENDOR_HTTP_TIMEOUT"),
		RequestTimeout: v.GetDuration("ENDOR_REQUEST_TIMEOUT"),
	}
}

func loadLogstashConfig(v *viper.Viper) LogstashConfig {
	return LogstashConfig{
		Host: v.GetString("LOGSTASH_HOST"),
		Port: v.GetInt("LOGSTASH_PORT"),
	}
}

func loadOpenSearchConfig(v *viper.Viper) OpenSearchConfig {
	return OpenSearchConfig{
		Addresses: v.GetStringSlice("OPENSEARCH_ADDRESSES"),
		Username:  v.GetString("OPENSEARCH_USERNAME"),
		Password:  v.GetString("OPENSEARCH_PASSWORD"),
		Index:     v.GetString("OPENSEARCH_INDEX"),
		Insecure:  v.GetBool("OPENSEARCH_INSECURE"),
	}
}

func (c *configureManager) GetWebConfig() WebConfig {
	return c.Web
}

func (c *configureManager) GetLanguageConfig() LanguageConfig {
	return c.Language
}

func (c *configureManager) GetEndorConfig() EndorConfig {
	return c.Endor
}

func (c *configureManager) GetLogstashConfig() LogstashConfig {
	return c.Logstash
}

func (c *configureManager) GetOpenSearchConfig() OpenSearchConfig {
	return c.OpenSearch
}
