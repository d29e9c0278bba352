package config

import "time"

const (
	defaultTimeoutSeconds = 10
	defaultReadAttempts   = 3
)

type APIConfig struct {
	URL            string `yaml:"base-url"`
	Token          string `yaml:"token"`
	Email          string `yaml:"email"`
	Password       string `yaml:"password"`
	TimeoutSeconds int64  `yaml:"timeout-seconds"`
	Attempts       uint   `yaml:"read-attempts"`
	Strict         bool   `yaml:"strict-identifiers"`
}

func (s *APIConfig) BaseURL() string {
	return s.URL
}

func (s *APIConfig) StaticToken() string {
	return s.Token
}

func (s *APIConfig) Credentials() (email, password string) {
	return s.Email, s.Password
}

func (s *APIConfig) Timeout() time.Duration {
	if s.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(s.TimeoutSeconds) * time.Second
}

func (s *APIConfig) ReadAttempts() uint {
	if s.Attempts == 0 {
		return defaultReadAttempts
	}
	return s.Attempts
}

func (s *APIConfig) StrictIdentifiers() bool {
	return s.Strict
}
