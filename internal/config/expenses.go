package config

const (
	defaultBaseURL        = "http://localhost:3000/api/v1"
	defaultTimeoutSeconds = 5
)

type ExpensesConfig struct {
	ApiBaseURL     string `yaml:"base-url"`
	TimeoutSeconds int64  `yaml:"timeout-seconds"`
}

func (e *ExpensesConfig) BaseURL() string {
	if e.ApiBaseURL == "" {
		return defaultBaseURL
	}
	return e.ApiBaseURL
}

func (e *ExpensesConfig) Timeout() int64 {
	if e.TimeoutSeconds == 0 {
		return defaultTimeoutSeconds
	}
	return e.TimeoutSeconds
}
