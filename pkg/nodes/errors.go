package nodes

import "fmt"

// ValidationError reports malformed input: a missing required field, a bad
// role, a non-positive version number.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field string, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

// Validate checks the structural invariants of a node record.
func (n *Node) Validate() error {
	if n == nil {
		return NewValidationError("node", "node is nil")
	}
	if n.ID.IsNil() {
		return NewValidationError("id", "node id is not set")
	}
	if n.Title == "" {
		return NewValidationError("title", "title cannot be empty")
	}
	for i, msg := range n.Content {
		if msg.Role != RoleUser && msg.Role != RoleAssistant {
			return NewValidationError("content", "message %d has unknown role %q", i, msg.Role)
		}
	}
	// numbers increase by exactly one per snapshot: no gaps, no reuse
	last := 0
	for i, v := range n.Versions {
		if v.Version < 1 {
			return NewValidationError("versions", "version %d has non-positive number %d", i, v.Version)
		}
		if v.Version != last+1 {
			return NewValidationError("versions", "version numbers must increase by one, got %d after %d", v.Version, last)
		}
		last = v.Version
	}
	return nil
}
