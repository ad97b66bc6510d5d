package inspect

import (
	"fmt"
	"reflect"
)

// Container is a lazy view over an aggregate value held by an inspected
// environment. Implementations convert children on access so cyclic
// graphs can be represented without eager expansion.
type Container interface {
	// Identity returns a comparable token that is stable for the
	// container's lifetime and unique among live containers. The
	// renderer keys its visited set on this token, so two views of the
	// same underlying aggregate must return equal tokens.
	Identity() any

	// Keys returns the container's key set in no particular order.
	Keys() []Key

	// Index returns the child at the given key, or the nil value when
	// the key is absent.
	Index(Key) Value

	// Len returns the number of entries.
	Len() int
}

// List is an ordered native container with 1-based numeric keys. The
// resolver uses it to package multi-value call results.
type List struct {
	items []Value
}

// NewList returns a list over the given values.
func NewList(items ...Value) *List {
	return &List{items: items}
}

// Identity implements [Container].
func (l *List) Identity() any { return l }

// Len implements [Container].
func (l *List) Len() int { return len(l.items) }

// Keys implements [Container]. List keys are 1-based, matching the
// indexing convention of the inspected Lua environment.
func (l *List) Keys() []Key {
	keys := make([]Key, len(l.items))
	for i := range l.items {
		keys[i] = NumKey(float64(i + 1))
	}

	return keys
}

// Index implements [Container].
func (l *List) Index(k Key) Value {
	if !k.IsNum {
		return NilValue()
	}

	i := int(k.Num)
	if float64(i) != k.Num || i < 1 || i > len(l.items) {
		return NilValue()
	}

	return l.items[i-1]
}

// FromGo converts an arbitrary Go value into an inspectable [Value].
//
// Maps and slices become containers backed by reflection; their children
// are converted on access. Pointers and interfaces are dereferenced.
// Booleans, numbers, and strings map to their scalar kinds, funcs to the
// callable marker, and everything else (structs, channels, unsafe
// pointers) to the opaque marker.
func FromGo(v any) Value {
	if v == nil {
		return NilValue()
	}

	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Invalid:
		return NilValue()

	case reflect.Bool:
		return BoolValue(rv.Bool())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64:
		return NumberValue(float64(rv.Int()))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return NumberValue(float64(rv.Uint()))

	case reflect.Float32, reflect.Float64:
		return NumberValue(rv.Float())

	case reflect.String:
		return StringValue(rv.String())

	case reflect.Func:
		return FuncValue()

	case reflect.Map, reflect.Slice:
		if rv.IsNil() {
			return NilValue()
		}

		return ContainerValue(&goContainer{rv: rv})

	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return NilValue()
		}

		return fromReflect(rv.Elem())

	default:
		return OpaqueValue()
	}
}

// goContainer adapts a Go map or slice to [Container] via reflection.
type goContainer struct {
	rv reflect.Value
}

// goIdentity is the visited-set token for reflection-backed containers.
// Pointer alone is not sufficient: a map and a slice could in principle
// share an address, so the reflect kind participates in identity.
type goIdentity struct {
	kind reflect.Kind
	ptr  uintptr
}

func (g *goContainer) Identity() any {
	return goIdentity{kind: g.rv.Kind(), ptr: g.rv.Pointer()}
}

func (g *goContainer) Len() int { return g.rv.Len() }

func (g *goContainer) Keys() []Key {
	switch g.rv.Kind() {
	case reflect.Slice:
		keys := make([]Key, g.rv.Len())
		for i := range keys {
			keys[i] = NumKey(float64(i + 1))
		}

		return keys

	case reflect.Map:
		keys := make([]Key, 0, g.rv.Len())
		for _, mk := range g.rv.MapKeys() {
			keys = append(keys, goKey(mk))
		}

		return keys

	default:
		return nil
	}
}

func (g *goContainer) Index(k Key) Value {
	switch g.rv.Kind() {
	case reflect.Slice:
		if !k.IsNum {
			return NilValue()
		}

		i := int(k.Num)
		if float64(i) != k.Num || i < 1 || i > g.rv.Len() {
			return NilValue()
		}

		return fromReflect(g.rv.Index(i - 1))

	case reflect.Map:
		for _, mk := range g.rv.MapKeys() {
			if goKey(mk).equal(k) {
				return fromReflect(g.rv.MapIndex(mk))
			}
		}

		return NilValue()

	default:
		return NilValue()
	}
}

// goKey converts a reflect map key to a [Key]. Numeric key types keep
// their numeric identity; every other type keys by its string form.
func goKey(mk reflect.Value) Key {
	if mk.Kind() == reflect.Interface {
		mk = mk.Elem()
	}

	switch mk.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Int64:
		return NumKey(float64(mk.Int()))

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		return NumKey(float64(mk.Uint()))

	case reflect.Float32, reflect.Float64:
		return NumKey(mk.Float())

	case reflect.String:
		return StrKey(mk.String())

	default:
		return StrKey(fmt.Sprint(mk.Interface()))
	}
}
