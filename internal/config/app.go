package config

import "time"

type AppConfig struct {
	RefreshIntervalMinutes int64  `yaml:"refresh-interval-minutes"`
	DefaultPeriod          string `yaml:"default-report-period"`
	Metrics                string `yaml:"metrics-addr"`
}

// RefreshInterval is zero when periodic refresh is disabled.
func (s *AppConfig) RefreshInterval() time.Duration {
	return time.Duration(s.RefreshIntervalMinutes) * time.Minute
}

func (s *AppConfig) DefaultReportPeriod() string {
	return s.DefaultPeriod
}

// MetricsAddr is where /metrics is served, empty disables it.
func (s *AppConfig) MetricsAddr() string {
	return s.Metrics
}
