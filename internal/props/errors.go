package props

import "fmt"

// InvalidValueError reports a user-supplied value that cannot be encoded for
// its target property type. Raised locally, before any remote call.
type InvalidValueError struct {
	PropertyType string
	Value        string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for property type %q", e.Value, e.PropertyType)
}

// UnsupportedTypeError reports a property type the write-direction codec has
// no encoding for (relation, people, formula, rollup and friends). Callers
// skip these with a warning rather than abort.
type UnsupportedTypeError struct {
	PropertyType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("property type %q cannot be written", e.PropertyType)
}
