package inspect

import (
	"math"
	"strconv"
)

// Kind discriminates the payload of a [Value].
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
	KindFunction
	KindOpaque
	KindContainer
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindFunction:
		return "function"
	case KindOpaque:
		return "opaque"
	case KindContainer:
		return "container"
	default:
		return "invalid"
	}
}

// Value is a tagged union over the closed set of kinds an inspected
// environment can produce. Exactly one payload field is meaningful,
// selected by Kind; functions and opaque handles carry no payload at all
// (they are never invoked or introspected, only labeled).
type Value struct {
	Kind Kind
	Bool bool      // valid when Kind == KindBool
	Num  float64   // valid when Kind == KindNumber
	Str  string    // valid when Kind == KindString
	Box  Container // valid when Kind == KindContainer
}

// NilValue returns the nil value.
func NilValue() Value { return Value{Kind: KindNil} }

// BoolValue returns a boolean value.
func BoolValue(b bool) Value { return Value{Kind: KindBool, Bool: b} }

// NumberValue returns a numeric value.
func NumberValue(n float64) Value { return Value{Kind: KindNumber, Num: n} }

// StringValue returns a string value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// FuncValue returns a callable marker value.
// The callable itself is not retained.
func FuncValue() Value { return Value{Kind: KindFunction} }

// OpaqueValue returns an opaque/unmanaged-handle marker value.
func OpaqueValue() Value { return Value{Kind: KindOpaque} }

// ContainerValue wraps a container. A nil container yields the nil value.
func ContainerValue(c Container) Value {
	if c == nil {
		return NilValue()
	}

	return Value{Kind: KindContainer, Box: c}
}

// Key identifies one entry of a [Container]. Keys are a two-way sum over
// numbers and strings; they are never compared cross-type beyond the
// numeric-first ordering rule applied by [SortKeys].
type Key struct {
	Num   float64
	Str   string
	IsNum bool
}

// NumKey returns a numeric key.
func NumKey(n float64) Key { return Key{Num: n, IsNum: true} }

// StrKey returns a string key.
func StrKey(s string) Key { return Key{Str: s} }

// Label returns the display form of the key: numeric keys as "[N]",
// string keys as their literal name.
func (k Key) Label() string {
	if k.IsNum {
		return "[" + formatNumber(k.Num) + "]"
	}

	return k.Str
}

func (k Key) equal(o Key) bool {
	if k.IsNum != o.IsNum {
		return false
	}

	if k.IsNum {
		return k.Num == o.Num
	}

	return k.Str == o.Str
}

// formatNumber renders a float the way Lua prints numbers: integral
// values without a fraction, everything else with up to 14 significant
// digits.
func formatNumber(n float64) string {
	if n == math.Trunc(n) && math.Abs(n) < 1e15 {
		return strconv.FormatInt(int64(n), 10)
	}

	return strconv.FormatFloat(n, 'g', 14, 64)
}
