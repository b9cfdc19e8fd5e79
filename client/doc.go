// Package client provides the HTTP core the fishtext service client is built
// on, a thin configurable layer over [net/http].
//
// # Building a Client
//
// Use [Build] to create a [Client] with functional options:
//
//	c, err := client.Build(
//		client.WithTimeout(10 * time.Second),
//		client.WithUserAgent("myapp/1.0"),
//		client.WithThrottle(2, 1),
//	)
//
// # Making Requests
//
// Parse a configured endpoint with [ParseURL], build a [Request], then
// execute with [Client.Do]:
//
//	u, err := client.ParseURL("https://fish-text.ru/get",
//		client.WithQuery(url.Values{"format": {"json"}}),
//	)
//	req, err := client.Request(ctx, u, http.MethodGet)
//	err = c.Do(req, http.StatusOK, client.WithDestination(&result))
//
// A response whose status differs from the expected one yields an
// [*UnexpectedStatusError] carrying up to 4KB of the body.
//
// # Tracing
//
// [WithTracePropagation] writes the trace context of each request's context
// into the outgoing headers through the global otel propagator.
//
// For client-side rate limiting see the
// [github.com/adamwoolhether/fishtext/client/throttle] package.
package client
