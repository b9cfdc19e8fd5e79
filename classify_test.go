package fishtext

import (
	"errors"
	"testing"
)

func TestJSONClient_classify(t *testing.T) {
	code := func(c int) *int { return &c }

	testCases := map[string]struct {
		resp   Response
		expErr error
	}{
		"noCode":             {resp: Response{Status: "success", Text: "hello"}},
		"tooManyContent":     {resp: Response{Text: "X", ErrorCode: code(11)}, expErr: ErrTooManyContent},
		"callLimitExceeded":  {resp: Response{Text: "X", ErrorCode: code(21)}, expErr: ErrCallLimitExceeded},
		"bannedForever":      {resp: Response{Text: "X", ErrorCode: code(22)}, expErr: ErrBannedForever},
		"bannedServerReason": {resp: Response{Text: "X", ErrorCode: code(31)}, expErr: ErrBannedForever},
		"unknownCode":        {resp: Response{Text: "X", ErrorCode: code(99)}},
		"zeroCode":           {resp: Response{ErrorCode: code(0)}},
	}

	var c JSONClient
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := c.classify(tc.resp)
			if tc.expErr == nil {
				if err != nil {
					t.Fatalf("exp nil err, got: %v", err)
				}
				return
			}

			if !errors.Is(err, tc.expErr) {
				t.Fatalf("exp err %v, got: %v", tc.expErr, err)
			}

			var svcErr *ServiceError
			if !errors.As(err, &svcErr) {
				t.Fatalf("exp *ServiceError, got %T", err)
			}
			if svcErr.Text != tc.resp.Text {
				t.Errorf("exp text %q, got %q", tc.resp.Text, svcErr.Text)
			}
			if svcErr.Code != *tc.resp.ErrorCode {
				t.Errorf("exp code %d, got %d", *tc.resp.ErrorCode, svcErr.Code)
			}
		})
	}
}

func TestHTMLClient_classify(t *testing.T) {
	var c HTMLClient
	if err := c.classify(Response{}); !errors.Is(err, ErrNotImplemented) {
		t.Errorf("exp ErrNotImplemented, got: %v", err)
	}
}

func TestValidateConfig(t *testing.T) {
	valid := config{Endpoint: DefaultEndpoint, TextType: Sentence, Format: FormatJSON}

	testCases := map[string]struct {
		mutate    func(c *config)
		expErr    error
		expFields []string
	}{
		"valid":           {mutate: func(*config) {}},
		"missingFormat":   {mutate: func(c *config) { c.Format = "" }, expErr: ErrTextFormatRequired, expFields: []string{"format"}},
		"unknownFormat":   {mutate: func(c *config) { c.Format = "xml" }, expErr: ErrConfiguration, expFields: []string{"format"}},
		"unknownType":     {mutate: func(c *config) { c.TextType = "word" }, expErr: ErrConfiguration, expFields: []string{"type"}},
		"relativeURL":     {mutate: func(c *config) { c.Endpoint = "/get" }, expErr: ErrConfiguration, expFields: []string{"endpoint"}},
		"everythingWrong": {mutate: func(c *config) { *c = config{} }, expErr: ErrTextFormatRequired, expFields: []string{"endpoint", "type", "format"}},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)

			err := validateConfig(cfg)
			if tc.expErr == nil {
				if err != nil {
					t.Fatalf("exp nil err, got: %v", err)
				}
				return
			}

			if !errors.Is(err, tc.expErr) {
				t.Fatalf("exp err %v, got: %v", tc.expErr, err)
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("exp *ConfigError, got %T", err)
			}
			if len(cfgErr.Fields) != len(tc.expFields) {
				t.Fatalf("exp %d field errors, got %v", len(tc.expFields), cfgErr.Fields)
			}
			for i, f := range cfgErr.Fields {
				if f.Field != tc.expFields[i] {
					t.Errorf("field %d: exp %q, got %q", i, tc.expFields[i], f.Field)
				}
				if f.Err == "" {
					t.Errorf("field %d: exp message", i)
				}
			}
		})
	}
}
