package domain

import "fmt"

// ResolutionErrorKind classifies failures to resolve a model string.
type ResolutionErrorKind string

const (
	UnknownProvider      ResolutionErrorKind = "unknown provider"
	MalformedModelString ResolutionErrorKind = "malformed model string"
)

// ResolutionError reports a model string that could not be resolved. It is
// fatal to the invocation and raised before any network call.
type ResolutionError struct {
	Kind  ResolutionErrorKind
	Input string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("%s: %q (expected provider/model, a legacy alias, or \"local\")", e.Kind, e.Input)
}

// PreconditionError reports a missing API key for a provider that requires
// one. Raised before any network call.
type PreconditionError struct {
	Provider Provider
	EnvVar   string
}

func (e *PreconditionError) Error() string {
	if e.EnvVar == "" {
		return fmt.Sprintf("missing API key for %s", e.Provider)
	}
	return fmt.Sprintf("missing API key for %s: set %s or add it to the config file", e.Provider, e.EnvVar)
}

// ProviderError reports a failed provider call: a non-2xx HTTP status, a
// malformed response body, or a transport failure.
type ProviderError struct {
	Provider Provider
	Status   int
	Message  string
	Err      error
}

func (e *ProviderError) Error() string {
	switch {
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("%s: HTTP %d: %s", e.Provider, e.Status, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("%s: HTTP %d", e.Provider, e.Status)
	case e.Message != "":
		return fmt.Sprintf("%s: %s", e.Provider, e.Message)
	default:
		return fmt.Sprintf("%s: request failed: %v", e.Provider, e.Err)
	}
}

func (e *ProviderError) Unwrap() error { return e.Err }
