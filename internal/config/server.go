package config

import "time"

const (
	defaultListenAddr    = ":5000"
	defaultTokenTTLHours = 24
)

type ServerConfig struct {
	Addr          string   `yaml:"listen-addr"`
	Secret        string   `yaml:"jwt-secret"`
	TokenTTLHours int64    `yaml:"token-ttl-hours"`
	Origins       []string `yaml:"allowed-origins"`
	AdminEmail    string   `yaml:"admin-email"`
	AdminPassword string   `yaml:"admin-password"`
}

func (s *ServerConfig) ListenAddr() string {
	if s.Addr == "" {
		return defaultListenAddr
	}
	return s.Addr
}

func (s *ServerConfig) JWTSecret() string {
	return s.Secret
}

func (s *ServerConfig) TokenTTL() time.Duration {
	if s.TokenTTLHours <= 0 {
		return defaultTokenTTLHours * time.Hour
	}
	return time.Duration(s.TokenTTLHours) * time.Hour
}

func (s *ServerConfig) AllowedOrigins() []string {
	return s.Origins
}

// Admin is the account created on startup, empty when none is configured.
func (s *ServerConfig) Admin() (email, password string) {
	return s.AdminEmail, s.AdminPassword
}
