package validate

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind names the exact JSON type a field must decode to. Numbers arrive
// from encoding/json as float64, so a numeric string never passes a Number
// check.
type Kind int

const (
	String Kind = iota
	Number
	Bool
	Array
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Number:
		return "number"
	case Bool:
		return "boolean"
	case Array:
		return "array"
	}
	return "unknown"
}

// typeOK checks the type alone; empty strings and arrays pass.
func (k Kind) typeOK(v any) bool {
	switch k {
	case String:
		_, ok := v.(string)
		return ok
	case Number:
		_, ok := v.(float64)
		return ok
	case Bool:
		_, ok := v.(bool)
		return ok
	case Array:
		_, ok := v.([]any)
		return ok
	}
	return false
}

// matches is the required-field check; empty strings and arrays count as
// missing.
func (k Kind) matches(v any) bool {
	if !k.typeOK(v) {
		return false
	}
	switch k {
	case String:
		return v.(string) != ""
	case Array:
		return len(v.([]any)) > 0
	}
	return true
}

// Field describes one payload field. Check, when set, runs after the kind
// check passes and returns an extra error message or "". Custom replaces
// the standard required/kind checks entirely and reports its own messages
// at this field's position.
type Field struct {
	Name     string
	Kind     Kind
	Optional bool
	Check    func(v any) string
	Custom   func(payload map[string]any) []string
}

// Schema is an ordered field list; order determines the order of reported
// errors so every run lists violations the same way.
type Schema []Field

// Check validates an untyped payload against the schema. All fields are
// checked independently and every violation is reported.
func (s Schema) Check(payload map[string]any) []string {
	var errs []string
	for _, f := range s {
		if f.Custom != nil {
			errs = append(errs, f.Custom(payload)...)
			continue
		}
		v, present := payload[f.Name]
		if !present || v == nil {
			if !f.Optional {
				errs = append(errs, fmt.Sprintf("%s is required (%s)", f.Name, f.Kind))
			}
			continue
		}
		if f.Optional {
			if !f.Kind.typeOK(v) {
				errs = append(errs, fmt.Sprintf("%s must be a %s if provided", f.Name, f.Kind))
				continue
			}
		} else if !f.Kind.matches(v) {
			errs = append(errs, fmt.Sprintf("%s is required (%s)", f.Name, f.Kind))
			continue
		}
		if f.Check != nil {
			if msg := f.Check(v); msg != "" {
				errs = append(errs, msg)
			}
		}
	}
	return errs
}

// ObjectIDString returns a Check for fields that must hold a hex ObjectID.
func ObjectIDString(name string) func(v any) string {
	return func(v any) string {
		s, _ := v.(string)
		if !IsObjectID(s) {
			return name + " must be a valid ObjectId string"
		}
		return ""
	}
}

// IsObjectID reports whether s is a well-formed hex ObjectID.
func IsObjectID(s string) bool {
	_, err := primitive.ObjectIDFromHex(s)
	return err == nil
}
