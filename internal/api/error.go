package api

import "fmt"

type Kind string

const (
	KindNetwork Kind = "network"
	KindAuth    Kind = "auth"
	KindBackend Kind = "backend"
	KindDecode  Kind = "decode"
)

// Error is the single failure shape returned by every remote call.
// Callers switch on Kind instead of probing optional response fields.
type Error struct {
	Kind    Kind
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// errorBody is the duck-typed failure payload the backend returns.
// Some routes use "error", others "message".
type errorBody struct {
	Err     string `json:"error"`
	Message string `json:"message"`
}

func (b errorBody) best(fallback string) string {
	if b.Err != "" {
		return b.Err
	}
	if b.Message != "" {
		return b.Message
	}
	return fallback
}
