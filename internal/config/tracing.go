package config

type TracingConfig struct {
	Service string `yaml:"service-name"`
	Agent   string `yaml:"agent-host-port"`
}

func (s *TracingConfig) ServiceName() string {
	return s.Service
}

func (s *TracingConfig) AgentHostPort() string {
	return s.Agent
}
