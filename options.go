package fishtext

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/fishtext/client"
)

// Option is a functional option for [New] and [NewJSON].
type Option func(*options) error
type options struct {
	endpoint   string
	textType   TextType
	httpClient *client.Client
	clientOpts []client.Option
	logger     *slog.Logger
	tracer     trace.Tracer
}

var errHTTPClientSet = errors.New("http client already provided; configure it directly")

// WithEndpoint overrides [DefaultEndpoint].
func WithEndpoint(endpoint string) Option {
	return func(o *options) error {
		o.endpoint = endpoint
		return nil
	}
}

// WithTextType overrides the default [Sentence] text type.
func WithTextType(tt TextType) Option {
	return func(o *options) error {
		o.textType = tt
		return nil
	}
}

// WithHTTPClient injects a prebuilt HTTP core. It cannot be combined with
// the options that configure one.
func WithHTTPClient(c *client.Client) Option {
	return func(o *options) error {
		if c == nil {
			return errors.New("http client must not be nil")
		}
		if len(o.clientOpts) > 0 {
			return errHTTPClientSet
		}
		o.httpClient = c
		return nil
	}
}

// WithTransport sets the [http.RoundTripper] requests go through. It must be
// safe for concurrent use if the client is shared.
func WithTransport(rt http.RoundTripper) Option {
	return withClientOption(client.WithTransport(rt))
}

// WithTimeout bounds every request, including reading the body.
func WithTimeout(d time.Duration) Option {
	return withClientOption(client.WithTimeout(d))
}

// WithUserAgent sets the User-Agent header of outgoing requests.
func WithUserAgent(ua string) Option {
	return withClientOption(client.WithUserAgent(ua))
}

// WithThrottle paces requests client side. The service answers with
// [ErrCallLimitExceeded] and eventually [ErrBannedForever] when called too
// often.
func WithThrottle(rps, burst int) Option {
	return withClientOption(client.WithThrottle(rps, burst))
}

// WithLogger injects a custom [slog.Logger].
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		o.logger = logger
		return nil
	}
}

// WithTracer sets the tracer spans are started with. A no-op tracer is used
// otherwise.
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		if tracer == nil {
			return errors.New("tracer must not be nil")
		}
		o.tracer = tracer
		return nil
	}
}

func withClientOption(opt client.Option) Option {
	return func(o *options) error {
		if o.httpClient != nil {
			return errHTTPClientSet
		}
		o.clientOpts = append(o.clientOpts, opt)
		return nil
	}
}
