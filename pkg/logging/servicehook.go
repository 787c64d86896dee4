package logging

import (
	"github.com/sirupsen/logrus"
)

type ServiceConfig struct {
	Env     string
	AppName string
	Version string
}

// ServiceHook stamps every entry with the deployment it came from.
type ServiceHook struct {
	Env     string
	Service string
	Version string
}

func (s *ServiceHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (s *ServiceHook) Fire(entry *logrus.Entry) error {
	entry.Data["env"] = s.Env
	entry.Data["serviceName"] = s.Service
	if s.Version != "" {
		entry.Data["version"] = s.Version
	}

	return nil
}

func NewServiceHook(config ServiceConfig) *ServiceHook {
	return &ServiceHook{
		Env:     config.Env,
		Service: config.AppName,
		Version: config.Version,
	}
}
