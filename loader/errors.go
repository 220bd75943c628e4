package loader

import "fmt"

// AssertionError reports an equality constraint that could not be imposed or
// satisfied. It is the only error surfaced to callers; any other failure
// during circuit construction indicates a construction-time bug and panics.
type AssertionError struct {
	Annotation string
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion failure: %s", e.Annotation)
}

// NewAssertionError wraps an annotation into an *AssertionError.
func NewAssertionError(annotation string) error {
	return &AssertionError{Annotation: annotation}
}
