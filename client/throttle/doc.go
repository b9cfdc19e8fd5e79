// Package throttle provides an [http.RoundTripper] that paces
// outbound HTTP requests using a token-bucket algorithm from
// [golang.org/x/time/rate].
//
// Wrap an existing transport with [NewRoundTripper]:
//
//	rt, err := throttle.NewRoundTripper(
//		2, // requests per second
//		1, // burst capacity
//		func() *slog.Logger { return slog.Default() },
//		http.DefaultTransport,
//	)
//	httpClient := &http.Client{Transport: rt}
//
// When the bucket is empty, outbound requests block until a token becomes
// available or the request context ends. Nothing is retried; a request that
// gives up waiting fails with [ErrWaitingFailed].
package throttle
