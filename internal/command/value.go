package command

import "image/color"

// Kind tags the payload type of an argument value.
type Kind int

const (
	// KindNone marks an absent or unparsed value.
	KindNone Kind = iota
	// KindString holds verbatim text.
	KindString
	// KindInt holds a decimal integer.
	KindInt
	// KindBool holds a flag value.
	KindBool
	// KindColor holds a parsed RGBA color.
	KindColor
)

// String returns the catalog spelling of the kind.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindColor:
		return "color"
	default:
		return "none"
	}
}

// kindFromString parses a catalog type spelling.
func kindFromString(s string) (Kind, bool) {
	switch s {
	case "string":
		return KindString, true
	case "int":
		return KindInt, true
	case "bool":
		return KindBool, true
	case "color":
		return KindColor, true
	}
	return KindNone, false
}

// Value is one parsed argument: a name plus exactly one payload selected
// by its kind. Accessors report false when asked for the wrong kind, so a
// mismatched read can never observe another payload.
type Value struct {
	name string
	kind Kind

	str string
	num int
	b   bool
	col color.RGBA
}

// Name returns the argument name as spelled in the spec table.
func (v Value) Name() string { return v.name }

// Kind returns the payload kind.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload.
func (v Value) Str() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.str, true
}

// Int returns the integer payload.
func (v Value) Int() (int, bool) {
	if v.kind != KindInt {
		return 0, false
	}
	return v.num, true
}

// Bool returns the flag payload.
func (v Value) Bool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Color returns the color payload.
func (v Value) Color() (color.RGBA, bool) {
	if v.kind != KindColor {
		return color.RGBA{}, false
	}
	return v.col, true
}

func stringValue(name, s string) Value {
	return Value{name: name, kind: KindString, str: s}
}

func intValue(name string, n int) Value {
	return Value{name: name, kind: KindInt, num: n}
}

func boolValue(name string, b bool) Value {
	return Value{name: name, kind: KindBool, b: b}
}

func colorValue(name string, c color.RGBA) Value {
	return Value{name: name, kind: KindColor, col: c}
}
