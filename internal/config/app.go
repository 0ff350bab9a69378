package config

type AppConfig struct {
	HomeCurrencyName string `yaml:"home-currency"`
	MetricsPortNum   int    `yaml:"metrics-port"`
}

func (s *AppConfig) HomeCurrency() string {
	return s.HomeCurrencyName
}

func (s *AppConfig) MetricsPort() int {
	return s.MetricsPortNum
}
