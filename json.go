package fishtext

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/adamwoolhether/fishtext/client"
)

// JSONClient requests text in [FormatJSON] and classifies the error codes
// embedded in the answers.
type JSONClient struct {
	base
}

// NewJSON constructs a [JSONClient]. The format is fixed, so with default
// options construction cannot fail.
func NewJSON(opts ...Option) (*JSONClient, error) {
	b, err := newBase(FormatJSON, opts)
	if err != nil {
		return nil, err
	}

	return &JSONClient{base: b}, nil
}

// Get issues a single GET to the endpoint and decodes the answer. A known
// service error code is returned as a [*ServiceError] together with a zero
// Response. Unknown codes are passed through in the returned Response.
// Transport and decoding failures are returned wrapped, unclassified;
// statuses outside 2xx additionally match [ErrInternalServer].
func (c *JSONClient) Get(ctx context.Context, number int) (Response, error) {
	if number == 0 {
		number = DefaultNumber
	}

	ctx, span := c.tracer.Start(ctx, "fishtext.get",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("fishtext.format", string(c.cfg.Format)),
			attribute.String("fishtext.type", string(c.cfg.TextType)),
			attribute.Int("fishtext.number", number),
		),
	)
	defer span.End()

	requestID := span.SpanContext().TraceID().String()
	if !span.SpanContext().TraceID().IsValid() {
		requestID = uuid.New().String()
	}

	resp, err := c.get(ctx, number)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return Response{}, err
	}

	if resp.ErrorCode != nil {
		span.SetAttributes(attribute.Int("fishtext.error_code", *resp.ErrorCode))
	}

	if err := c.classify(resp); err != nil {
		c.logger.Info("fishtext service error", "request_id", requestID, "error", err)
		span.SetStatus(codes.Error, err.Error())
		return Response{}, err
	}

	if resp.ErrorCode != nil {
		c.logger.Warn("fishtext unknown error code passed through", "request_id", requestID, "code", *resp.ErrorCode, "docs", DocsURL)
	}

	return resp, nil
}

func (c *JSONClient) get(ctx context.Context, number int) (Response, error) {
	query := url.Values{
		"format": {string(c.cfg.Format)},
		"number": {strconv.Itoa(number)},
		"type":   {string(c.cfg.TextType)},
	}

	u, err := client.ParseURL(c.cfg.Endpoint, client.WithQuery(query))
	if err != nil {
		return Response{}, fmt.Errorf("building url: %w", err)
	}

	req, err := client.Request(ctx, u, http.MethodGet)
	if err != nil {
		return Response{}, fmt.Errorf("building request: %w", err)
	}

	var resp Response
	if err := c.http.Do(req, http.StatusOK, client.WithDestination(&resp)); err != nil {
		var statusErr *client.UnexpectedStatusError
		if errors.As(err, &statusErr) && !statusErr.Successful() {
			return Response{}, fmt.Errorf("get: %w", errors.Join(ErrInternalServer, err))
		}

		return Response{}, fmt.Errorf("get: %w", err)
	}

	return resp, nil
}

// classify looks the error code up in the service error table.
func (c *JSONClient) classify(resp Response) error {
	if resp.ErrorCode == nil {
		return nil
	}

	sentinel, ok := serviceErrors[*resp.ErrorCode]
	if !ok {
		return nil
	}

	return &ServiceError{
		Code: *resp.ErrorCode,
		Text: resp.Text,
		Err:  sentinel,
	}
}
