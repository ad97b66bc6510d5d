package inspect

import (
	"fmt"
	"strconv"
	"strings"
)

// Default traversal bounds. Together they guarantee that a render run
// terminates on any well-formed container graph, including cyclic and
// adversarially deep or wide ones.
const (
	DefaultMaxDepth = 12
	DefaultMaxKeys  = 500
	DefaultIndent   = "  "
)

// Sentinel lines emitted by the renderer for designed truncations.
// None of these are errors.
const (
	CircularMark = "<circular reference>"
	MaxDepthMark = "<max depth>"
	FunctionMark = "function()"
	OpaqueMark   = "<userdata>"
)

// Policy bounds one render traversal. The zero value is not useful;
// start from [DefaultPolicy] and adjust.
type Policy struct {
	MaxDepth int
	MaxKeys  int
	Indent   string
}

// DefaultPolicy returns the standard traversal bounds.
func DefaultPolicy() Policy {
	return Policy{
		MaxDepth: DefaultMaxDepth,
		MaxKeys:  DefaultMaxKeys,
		Indent:   DefaultIndent,
	}
}

// class partitions rendered text for decoration purposes.
type class int

const (
	classNil class = iota
	classBool
	classNumber
	classString
	classFunction
	classOpaque
	classKey
	classBrace
	classSentinel
)

// decorator is the single dispatch point that distinguishes the
// decorated variant from the plain one. Both variants share the same
// traversal; only this function differs.
type decorator func(c class, text string) string

func plainDecorator(_ class, text string) string { return text }

// Decorated renders the value as color-decorated lines starting at the
// given indent depth. Each call owns a fresh visited set.
func (p Policy) Decorated(v Value, depth int) []string {
	return p.render(v, depth, colorDecorator)
}

// Plain renders the value as undecorated lines starting at the given
// indent depth, suitable for clipboard export. Structurally identical to
// the decorated variant line for line.
func (p Policy) Plain(v Value, depth int) []string {
	return p.render(v, depth, plainDecorator)
}

func (p Policy) render(v Value, depth int, deco decorator) []string {
	var lines []string

	p.walk(v, depth, make(map[any]struct{}), &lines, deco)

	return lines
}

// walk appends the rendering of v at the given depth. The visited set is
// keyed by container identity and entries are never removed: a container
// reached a second time by any path within one traversal short-circuits
// to the circular sentinel.
func (p Policy) walk(
	v Value,
	depth int,
	visited map[any]struct{},
	out *[]string,
	deco decorator,
) {
	pad := strings.Repeat(p.Indent, depth)

	if v.Kind != KindContainer {
		*out = append(*out, pad+scalarText(v, deco))

		return
	}

	id := v.Box.Identity()
	if _, seen := visited[id]; seen {
		*out = append(*out, pad+deco(classSentinel, CircularMark))

		return
	}

	if depth >= p.MaxDepth {
		*out = append(*out, pad+deco(classSentinel, MaxDepthMark))

		return
	}

	visited[id] = struct{}{}

	keys := SortKeys(v.Box.Keys())
	if len(keys) == 0 {
		*out = append(*out, pad+deco(classBrace, "{}"))

		return
	}

	*out = append(*out, pad+deco(classBrace, "{"))

	inner := pad + p.Indent

	for i, k := range keys {
		if i >= p.MaxKeys {
			more := fmt.Sprintf("... (%d more keys)", len(keys)-p.MaxKeys)
			*out = append(*out, inner+deco(classSentinel, more))

			break
		}

		label := deco(classKey, k.Label())

		child := v.Box.Index(k)
		if child.Kind == KindContainer {
			*out = append(*out, inner+label+" =")
			p.walk(child, depth+1, visited, out, deco)
		} else {
			*out = append(*out, inner+label+" = "+scalarText(child, deco))
		}
	}

	*out = append(*out, pad+deco(classBrace, "}"))
}

// scalarText formats a non-container value. Strings are quoted with
// escape-meaningful characters escaped, so embedded control or markup
// characters in string content cannot break the rendering of either
// variant.
func scalarText(v Value, deco decorator) string {
	switch v.Kind {
	case KindBool:
		return deco(classBool, strconv.FormatBool(v.Bool))

	case KindNumber:
		return deco(classNumber, formatNumber(v.Num))

	case KindString:
		return deco(classString, strconv.Quote(v.Str))

	case KindFunction:
		return deco(classFunction, FunctionMark)

	case KindOpaque:
		return deco(classOpaque, OpaqueMark)

	default:
		return deco(classNil, "nil")
	}
}
