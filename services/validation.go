package services

// ValidationError reports a single rejected input field. Parse failures at the
// controller boundary and range checks inside the calculator both use it, so
// the handler only has one error shape to render.
type ValidationError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Reason
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
