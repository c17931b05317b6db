package envs

// valueState is the discriminant for Value.
type valueState uint8

const (
	stateAbsent valueState = iota
	stateKnown
	stateOpaque
)

// Value is one variable's state in one store. It is a tagged union with
// three cases:
//
//   - absent: the key does not exist in the store (the zero Value)
//   - known: the key exists and its content was retrieved
//   - opaque: the key exists but its content could not be retrieved,
//     typically because the remote listing redacts values
//
// Opaque carries no content at all. Any code that needs the real content of
// an opaque value must re-fetch it from the owning store.
type Value struct {
	state   valueState
	content string
}

// Known returns a Value whose content was successfully retrieved. An empty
// content string is legal and is treated as absent for presence checks.
func Known(content string) Value {
	return Value{state: stateKnown, content: content}
}

// Opaque returns a Value that exists remotely but whose content is redacted.
func Opaque() Value {
	return Value{state: stateOpaque}
}

// Absent returns the zero Value, meaning the key does not exist.
func Absent() Value {
	return Value{}
}

// IsKnown reports whether the value's content was retrieved.
func (v Value) IsKnown() bool {
	return v.state == stateKnown
}

// IsOpaque reports whether the value exists but its content is redacted.
func (v Value) IsOpaque() bool {
	return v.state == stateOpaque
}

// IsAbsent reports whether the key does not exist in the store.
func (v Value) IsAbsent() bool {
	return v.state == stateAbsent
}

// Present reports whether the key meaningfully exists: an opaque value is
// present, a known value is present only when its content is non-empty.
// A known empty string counts as absent so that blank lines in env files do
// not produce phantom variables.
func (v Value) Present() bool {
	switch v.state {
	case stateOpaque:
		return true
	case stateKnown:
		return v.content != ""
	default:
		return false
	}
}

// Content returns the retrieved content and whether it is known. Opaque and
// absent values return ("", false).
func (v Value) Content() (string, bool) {
	if v.state != stateKnown {
		return "", false
	}
	return v.content, true
}

// String renders the value for logs. Known content is shown verbatim;
// opaque and absent values render as placeholders.
func (v Value) String() string {
	switch v.state {
	case stateKnown:
		return v.content
	case stateOpaque:
		return "<opaque>"
	default:
		return "<absent>"
	}
}
