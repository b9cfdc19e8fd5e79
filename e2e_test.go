package fishtext_test

import (
	"errors"
	"testing"

	"github.com/adamwoolhether/fishtext"
	"github.com/adamwoolhether/fishtext/fishtexttest"
)

func newFakeClient(t *testing.T, srv *fishtexttest.Server, opts ...fishtext.Option) *fishtext.JSONClient {
	t.Helper()

	opts = append([]fishtext.Option{fishtext.WithEndpoint(srv.Endpoint())}, opts...)
	c, err := fishtext.NewJSON(opts...)
	if err != nil {
		t.Fatalf("creating client: %v", err)
	}

	return c
}

func TestE2E_Success(t *testing.T) {
	srv := fishtexttest.NewServer()
	defer srv.Close()

	srv.Respond(map[string]any{"status": "success", "text": "Lorem ipsum", "errorCode": nil})

	resp, err := newFakeClient(t, srv).Get(t.Context(), 0)
	if err != nil {
		t.Fatalf("exp nil err, got: %v", err)
	}
	if resp.Text != "Lorem ipsum" {
		t.Errorf("exp %q, got %q", "Lorem ipsum", resp.Text)
	}
}

func TestE2E_BannedForever(t *testing.T) {
	srv := fishtexttest.NewServer()
	defer srv.Close()

	srv.Respond(map[string]any{"status": "error", "text": nil, "errorCode": 22})

	resp, err := newFakeClient(t, srv).Get(t.Context(), 0)
	if !errors.Is(err, fishtext.ErrBannedForever) {
		t.Fatalf("exp ErrBannedForever, got: %v", err)
	}
	if resp != (fishtext.Response{}) {
		t.Errorf("exp no response, got %+v", resp)
	}
}

func TestE2E_EmulatedService(t *testing.T) {
	srv := fishtexttest.NewServer(fishtexttest.WithCallLimit(3))
	defer srv.Close()

	c := newFakeClient(t, srv, fishtext.WithTextType(fishtext.Paragraph), fishtext.WithThrottle(100, 10))

	resp, err := c.Get(t.Context(), 2)
	if err != nil {
		t.Fatalf("exp nil err, got: %v", err)
	}
	if exp := fishtexttest.Generate("paragraph", 2); resp.Text != exp {
		t.Errorf("exp %q, got %q", exp, resp.Text)
	}

	_, err = c.Get(t.Context(), fishtexttest.Limits["paragraph"]+1)
	if !errors.Is(err, fishtext.ErrTooManyContent) {
		t.Errorf("exp ErrTooManyContent, got: %v", err)
	}

	// The default of 100 paragraphs is exactly the limit.
	if _, err := c.Get(t.Context(), 0); err != nil {
		t.Errorf("exp nil err at the limit, got: %v", err)
	}

	_, err = c.Get(t.Context(), 1)
	if !errors.Is(err, fishtext.ErrCallLimitExceeded) {
		t.Errorf("exp ErrCallLimitExceeded, got: %v", err)
	}

	if got := srv.Calls(); got != 4 {
		t.Errorf("exp 4 calls, got %d", got)
	}
}
