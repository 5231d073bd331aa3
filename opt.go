package openai

import (
	"log"

	// Packages
	client "github.com/mutablelogic/go-client"
	transport "github.com/mutablelogic/go-openai/pkg/transport"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for a client
type Opt func(*opts) error

// set of options
type opts struct {
	transport  transport.Transport
	clientOpts []client.ClientOpt
	configOpts []ConfigOpt
	tracer     trace.Tracer
	logger     *log.Logger
	threshold  uint64
}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

func applyOpts(o ...Opt) (*opts, error) {
	opts := &opts{
		tracer:    noop.NewTracerProvider().Tracer(""),
		logger:    log.Default(),
		threshold: CostThreshold,
	}
	for _, opt := range o {
		if err := opt(opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithTransport replaces the default go-client transport
func WithTransport(t transport.Transport) Opt {
	return func(o *opts) error {
		if t == nil {
			return ErrBadParameter.With("transport is required")
		}
		o.transport = t
		return nil
	}
}

// WithClientOpts passes options to the default go-client transport, for
// example client.OptTrace or client.OptTimeout. They are ignored when
// WithTransport is also used.
func WithClientOpts(v ...client.ClientOpt) Opt {
	return func(o *opts) error {
		o.clientOpts = append(o.clientOpts, v...)
		return nil
	}
}

// WithTracer sets the OpenTelemetry tracer used for request spans
func WithTracer(tracer trace.Tracer) Opt {
	return func(o *opts) error {
		if tracer == nil {
			return ErrBadParameter.With("tracer is required")
		}
		o.tracer = tracer
		o.clientOpts = append(o.clientOpts, client.OptTracer(tracer))
		return nil
	}
}

// WithLogger sets the logger used for usage alerts
func WithLogger(logger *log.Logger) Opt {
	return func(o *opts) error {
		if logger == nil {
			return ErrBadParameter.With("logger is required")
		}
		o.logger = logger
		return nil
	}
}

// WithCostThreshold sets the total token count above which a usage alert
// is logged
func WithCostThreshold(tokens uint64) Opt {
	return func(o *opts) error {
		o.threshold = tokens
		return nil
	}
}

// WithEndpoint replaces the base endpoint of the configuration created by
// New. It has no effect on NewClient, which takes an existing Config.
func WithEndpoint(endpoint string) Opt {
	return func(o *opts) error {
		o.configOpts = append(o.configOpts, WithConfigEndpoint(endpoint))
		return nil
	}
}
