package fishtext

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/adamwoolhether/fishtext/client"
)

const (
	// DefaultEndpoint is the public fish-text generation endpoint.
	DefaultEndpoint = "https://fish-text.ru/get"
	// DocsURL documents the service's parameters and error codes.
	DocsURL = "https://fish-text.ru/api"
	// DefaultNumber is the number of units requested when Get is called with 0.
	DefaultNumber = 100
)

// TextType is the unit size of the generated text.
type TextType string

const (
	// Sentence requests sentences. It is the default.
	Sentence TextType = "sentence"
	// Paragraph requests paragraphs of several sentences.
	Paragraph TextType = "paragraph"
	// Title requests short headlines.
	Title TextType = "title"
)

// TextFormat is the wire representation the service answers with.
type TextFormat string

const (
	// FormatJSON is the structured answer decoded into [Response].
	FormatJSON TextFormat = "json"
	// FormatHTML is the service's plain text mode.
	FormatHTML TextFormat = "html"
)

// Response is a decoded JSON answer. A missing errorCode key and an explicit
// null both leave ErrorCode nil.
type Response struct {
	Status    any    `json:"status"`
	Text      string `json:"text"`
	ErrorCode *int   `json:"errorCode"`
}

// API is the capability set shared by every client variant. Implementations
// hold no per-call state and are safe for concurrent use as long as the
// underlying transport is.
type API interface {
	// Get requests number units of text, DefaultNumber if number is 0.
	Get(ctx context.Context, number int) (Response, error)
	// Format reports the text format the client requests.
	Format() TextFormat

	classify(resp Response) error
}

// config is the validated, immutable configuration shared by the variants.
type config struct {
	Endpoint string     `query:"endpoint" validate:"required,url"`
	TextType TextType   `query:"type" validate:"required,oneof=sentence paragraph title"`
	Format   TextFormat `query:"format" validate:"required,oneof=json html"`
}

// base carries what every variant needs to talk to the service.
type base struct {
	cfg    config
	http   *client.Client
	logger *slog.Logger
	tracer trace.Tracer
}

// New constructs the client for format. It fails with [ErrTextFormatRequired]
// if format is empty, whatever the options. Every construction failure
// matches [ErrConfiguration]. [FormatJSON] yields a [*JSONClient], [FormatHTML] an
// [*HTMLClient] whose operations are not implemented.
func New(format TextFormat, opts ...Option) (API, error) {
	b, err := newBase(format, opts)
	if err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON:
		return &JSONClient{base: b}, nil
	default:
		return &HTMLClient{base: b}, nil
	}
}

func newBase(format TextFormat, optFns []Option) (base, error) {
	if format == "" {
		return base{}, &ConfigError{
			Fields: []FieldError{{Field: "format", Err: "this field is required"}},
			Err:    ErrTextFormatRequired,
		}
	}

	opts := options{
		endpoint: DefaultEndpoint,
		textType: Sentence,
	}
	for _, opt := range optFns {
		if err := opt(&opts); err != nil {
			return base{}, &ConfigError{Err: fmt.Errorf("%w: applying option: %w", ErrConfiguration, err)}
		}
	}

	cfg := config{
		Endpoint: opts.endpoint,
		TextType: opts.textType,
		Format:   format,
	}
	if err := validateConfig(cfg); err != nil {
		return base{}, err
	}

	hc := opts.httpClient
	if hc == nil {
		clientOpts := append([]client.Option{client.WithTracePropagation()}, opts.clientOpts...)
		if opts.logger != nil {
			clientOpts = append(clientOpts, client.WithLogger(opts.logger))
		}

		var err error
		if hc, err = client.Build(clientOpts...); err != nil {
			return base{}, &ConfigError{Err: fmt.Errorf("%w: building http client: %w", ErrConfiguration, err)}
		}
	}

	logger := opts.logger
	if logger == nil {
		logger = hc.Logger()
	}

	tracer := opts.tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("fishtext")
	}

	b := base{
		cfg:    cfg,
		http:   hc,
		logger: logger,
		tracer: tracer,
	}

	return b, nil
}

// Format reports the text format the client requests.
func (b base) Format() TextFormat {
	return b.cfg.Format
}

// Endpoint reports the URL requests are sent to.
func (b base) Endpoint() string {
	return b.cfg.Endpoint
}

// TextType reports the unit size requested.
func (b base) TextType() TextType {
	return b.cfg.TextType
}
