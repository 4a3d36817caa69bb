package config

import (
	"fmt"
	"strings"
)

// Kind identifies the shape of a configuration value: a boolean presence
// flag, a single string, or an ordered list of strings.
type Kind int

const (
	KindFlag Kind = iota
	KindString
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is a tagged union holding one configuration value. The zero Value is
// a flag that is switched off.
type Value struct {
	kind Kind
	flag bool
	str  string
	list []string

	// mixed marks a key that was declared as a bare flag and later assigned
	// text in the same scope. Validation always rejects mixed values.
	mixed bool
}

// FlagValue returns a presence-flag value.
func FlagValue(on bool) Value { return Value{kind: KindFlag, flag: on} }

// StringValue returns a single-string value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// ListValue returns an ordered multi-string value.
func ListValue(items ...string) Value {
	list := make([]string, len(items))
	copy(list, items)
	return Value{kind: KindList, list: list}
}

func mixedValue(items ...string) Value {
	v := ListValue(items...)
	v.mixed = true
	return v
}

// Kind reports the shape of the value.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the flag payload. It is false for non-flag values.
func (v Value) Bool() bool { return v.kind == KindFlag && v.flag }

// Str returns the string payload. It is empty for non-string values.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.str
}

// List returns a copy of the list payload. It is nil for non-list values.
func (v Value) List() []string {
	if v.kind != KindList {
		return nil
	}
	out := make([]string, len(v.list))
	copy(out, v.list)
	return out
}

// Equal reports whether two values have the same shape and payload.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind || v.mixed != other.mixed {
		return false
	}
	switch v.kind {
	case KindFlag:
		return v.flag == other.flag
	case KindString:
		return v.str == other.str
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if v.list[i] != other.list[i] {
				return false
			}
		}
	}
	return true
}

// String renders the value for error messages and machine-readable output.
// List items are quoted and comma separated.
func (v Value) String() string {
	switch v.kind {
	case KindFlag:
		if v.flag {
			return "true"
		}
		return "false"
	case KindString:
		return v.str
	case KindList:
		quoted := make([]string, len(v.list))
		for i, item := range v.list {
			quoted[i] = fmt.Sprintf("%q", item)
		}
		return strings.Join(quoted, ", ")
	default:
		return ""
	}
}

// Values maps option names to values. It is used for the top level of a
// parsed file, for profile bodies, for explicit command-line values, and for
// the final resolved configuration.
type Values map[string]Value

// File is the two-level result of parsing a configuration file: top-level
// options plus named profiles holding option overrides. Profiles never nest.
type File struct {
	Options  Values
	Profiles map[string]Values
}
