package config

import "sort"

// Validate checks a parsed file against the schema and returns a copy whose
// value shapes all match their option's shape. A single assignment of a
// multi-value option is wrapped into a one-element list; every other shape
// mismatch and every name absent from the schema fails with an *Error.
// Profile bodies are validated with the same schema.
func Validate(file *File, schema *Schema) (*File, error) {
	options, err := validateValues(file.Options, schema)
	if err != nil {
		return nil, err
	}

	out := &File{
		Options:  options,
		Profiles: make(map[string]Values, len(file.Profiles)),
	}
	for _, name := range sortedNames(file.Profiles) {
		profile, err := validateValues(file.Profiles[name], schema)
		if err != nil {
			return nil, err
		}
		out.Profiles[name] = profile
	}
	return out, nil
}

func validateValues(values Values, schema *Schema) (Values, error) {
	out := make(Values, len(values))
	for _, name := range sortedNames(values) {
		opt, ok := schema.Option(name)
		if !ok {
			return nil, &Error{Name: name, Reason: ReasonUnknownOption}
		}
		value, err := checkShape(name, values[name], opt.Kind())
		if err != nil {
			return nil, err
		}
		out[name] = value
	}
	return out, nil
}

func checkShape(name string, value Value, want Kind) (Value, error) {
	if value.mixed {
		// A bare flag was later assigned text in the same scope.
		reason := ReasonInvalidValue
		if want == KindFlag {
			reason = ReasonAssignment
		}
		return Value{}, &Error{Name: name, Value: value.String(), Reason: reason}
	}

	switch {
	case value.kind == want:
		return value, nil
	case want == KindList && value.kind == KindString:
		// One assignment of an option that may be given multiple times.
		return ListValue(value.str), nil
	case want == KindString && value.kind == KindList:
		return Value{}, &Error{Name: name, Value: value.String(), Reason: ReasonMultipleValues}
	case want == KindFlag:
		return Value{}, &Error{Name: name, Value: value.String(), Reason: ReasonAssignment}
	default:
		return Value{}, &Error{Name: name, Value: value.String(), Reason: ReasonInvalidValue}
	}
}

// sortedNames keeps validation failures deterministic regardless of map
// iteration order.
func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
