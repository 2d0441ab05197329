package naver

import "errors"

// Upstream parse errors. The siseJson payload is a brittle, best-effort
// external format; these distinguish "the whole payload is garbage" from
// "a required column disappeared", both of which the caller may retry later.
var (
	// ErrMalformedPayload indicates the response text could not be parsed as
	// the expected bracketed array literal at all.
	ErrMalformedPayload = errors.New("naver: malformed payload")

	// ErrMissingColumn indicates a required column label is absent from the
	// header row. Wrapped with the missing label.
	ErrMissingColumn = errors.New("naver: missing column")
)
