package tracing

import (
	"github.com/pkg/errors"
	"github.com/uber/jaeger-client-go/config"
)

// Init installs a const-sampled global Jaeger tracer for the given service.
func Init(serviceName string) error {
	cfg := config.Configuration{
		ServiceName: serviceName,
		Sampler: &config.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
	}

	_, err := cfg.InitGlobalTracer(serviceName)
	if err != nil {
		return errors.Wrap(err, "cannot init tracing")
	}
	return nil
}
