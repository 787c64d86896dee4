package config

import (
	"errors"
	"time"

	"golang.org/x/text/language"
)

const (
	productionEnv = "production"
)

type WebConfig struct {
	AppName  string
	Port     string
	Env      string
	Version  string
	LogLevel string
}

type LanguageConfig struct {
	Default   language.Tag
	Languages []language.Tag
}

// EndorConfig carries the upstream credentials and the defaults used when a
// request does not name its own namespace.
type EndorConfig struct {
	APIURL         string
	APIKey         string
	APISecret      string
	Namespace      string
	AppURL         string
	HTTPTimeout    time.Duration
	RequestTimeout time.Duration
}

type LogstashConfig struct {
	Host string
	Port int
}

type OpenSearchConfig struct {
	Addresses []string
	Username  string
	Password  string
	Index     string
	Insecure  bool
}

func (w WebConfig) IsProductionEnv() bool {
	return w.Env == productionEnv
}

func (e EndorConfig) Validate() error {
	var errs []error
	if e.APIURL == "" {
		errs = append(errs, errors.New("ENDOR_API_URL is required"))
	}
	if e.APIKey == "" {
		errs = append(errs, errors.New("ENDOR_API_KEY is required"))
	}
	if e.APISecret == "" {
		errs = append(errs, errors.New("ENDOR_API_SECRET is required"))
	}

	return errors.Join(errs...)
}
