package fishtext

import (
	"context"
	"fmt"
)

// HTMLClient is the plain text counterpart of [JSONClient]. The service's
// html mode is not supported yet and every operation fails with
// [ErrNotImplemented].
type HTMLClient struct {
	base
}

// Get always fails with [ErrNotImplemented].
func (c *HTMLClient) Get(context.Context, int) (Response, error) {
	return Response{}, fmt.Errorf("%s get: %w", c.cfg.Format, ErrNotImplemented)
}

func (c *HTMLClient) classify(Response) error {
	return fmt.Errorf("%s classify: %w", c.cfg.Format, ErrNotImplemented)
}
