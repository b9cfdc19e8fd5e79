// Package fishtext is a client for the fish-text.ru filler text service.
//
// # Requesting text
//
// [NewJSON] builds a client with sensible defaults: the public endpoint,
// [Sentence] granularity and [FormatJSON]:
//
//	c, err := fishtext.NewJSON(
//		fishtext.WithTextType(fishtext.Paragraph),
//		fishtext.WithThrottle(2, 1),
//	)
//	resp, err := c.Get(ctx, 3)
//
// Each call to Get issues exactly one GET request with the query parameters
// format, number and type. Nothing is retried or cached.
//
// # Errors
//
// The service reports failures as an errorCode inside an otherwise valid
// answer. Known codes are returned as a [*ServiceError] wrapping one of
// [ErrTooManyContent], [ErrCallLimitExceeded] or [ErrBannedForever]:
//
//	resp, err := c.Get(ctx, 1000)
//	switch {
//	case errors.Is(err, fishtext.ErrTooManyContent):
//		// ask for less
//	case errors.Is(err, fishtext.ErrBannedForever):
//		// give up
//	}
//
// Codes the client does not know are passed through in [Response.ErrorCode].
// Construction errors are a [*ConfigError] matching [ErrConfiguration].
// See [DocsURL] for the service's documentation.
package fishtext
