// Package luaenv adapts a gopher-lua state to the [inspect.Env]
// capability. It is the primary backend: the inspected environment is a
// Lua global namespace populated by loading addon sources or
// saved-variables files.
package luaenv

import (
	"io"

	lua "github.com/yuin/gopher-lua"

	"github.com/FrancisEgan/turtledebug/inspect"
)

// Env wraps a Lua state. It is not safe for concurrent use; the
// inspector is single-user by design.
type Env struct {
	state *lua.LState
}

// New creates an environment with the default Lua libraries opened.
func New() *Env {
	return &Env{state: lua.NewState()}
}

// Close releases the underlying Lua state.
func (e *Env) Close() {
	e.state.Close()
}

// Load executes a Lua chunk from r into the global namespace. The name
// is used in Lua error messages.
func (e *Env) Load(name string, r io.Reader) error {
	fn, err := e.state.Load(r, name)
	if err != nil {
		return err
	}

	e.state.Push(fn)

	return e.state.PCall(0, 0, nil)
}

// LoadString executes Lua source from a string.
func (e *Env) LoadString(src string) error {
	return e.state.DoString(src)
}

// Lookup implements [inspect.Env]. A global holding an explicit nil is
// indistinguishable from an absent one, matching Lua semantics.
func (e *Env) Lookup(name string) (inspect.Value, bool) {
	lv := e.state.GetGlobal(name)
	if lv == lua.LNil {
		return inspect.NilValue(), false
	}

	return fromLua(lv), true
}

// Eval implements [inspect.Env]: the expression is compiled as
// "return <expr>" and called protected, capturing every returned value.
// Compile and runtime errors are returned, never raised.
func (e *Env) Eval(expr string) ([]inspect.Value, error) {
	fn, err := e.state.LoadString("return " + expr)
	if err != nil {
		return nil, err
	}

	base := e.state.GetTop()
	e.state.Push(fn)

	if err := e.state.PCall(0, lua.MultRet, nil); err != nil {
		e.state.SetTop(base)

		return nil, err
	}

	top := e.state.GetTop()

	vals := make([]inspect.Value, 0, top-base)
	for i := base + 1; i <= top; i++ {
		vals = append(vals, fromLua(e.state.Get(i)))
	}

	e.state.SetTop(base)

	return vals, nil
}

// Globals returns the string-keyed names of the global namespace, for
// completion. Order is unspecified.
func (e *Env) Globals() []string {
	var names []string

	tbl := e.state.G.Global

	key := lua.LValue(lua.LNil)
	for {
		k, _ := tbl.Next(key)
		if k == lua.LNil {
			break
		}

		if s, ok := k.(lua.LString); ok {
			names = append(names, string(s))
		}

		key = k
	}

	return names
}

// fromLua maps an LValue onto the closed inspect kind set. Tables become
// lazy containers; userdata, channels, and coroutines are opaque.
func fromLua(lv lua.LValue) inspect.Value {
	if lv == lua.LNil {
		return inspect.NilValue()
	}

	switch v := lv.(type) {
	case lua.LBool:
		return inspect.BoolValue(bool(v))

	case lua.LNumber:
		return inspect.NumberValue(float64(v))

	case lua.LString:
		return inspect.StringValue(string(v))

	case *lua.LFunction:
		return inspect.FuncValue()

	case *lua.LTable:
		return inspect.ContainerValue(&table{tbl: v})

	default:
		return inspect.OpaqueValue()
	}
}

// table adapts an LTable to [inspect.Container]. Identity is the table
// pointer itself, which is what Lua table equality is.
type table struct {
	tbl *lua.LTable
}

func (t *table) Identity() any { return t.tbl }

func (t *table) Len() int {
	n := 0

	key := lua.LValue(lua.LNil)
	for {
		k, _ := t.tbl.Next(key)
		if k == lua.LNil {
			break
		}

		n++
		key = k
	}

	return n
}

func (t *table) Keys() []inspect.Key {
	var keys []inspect.Key

	key := lua.LValue(lua.LNil)
	for {
		k, _ := t.tbl.Next(key)
		if k == lua.LNil {
			break
		}

		switch kv := k.(type) {
		case lua.LNumber:
			keys = append(keys, inspect.NumKey(float64(kv)))
		default:
			keys = append(keys, inspect.StrKey(k.String()))
		}

		key = k
	}

	return keys
}

func (t *table) Index(k inspect.Key) inspect.Value {
	var lv lua.LValue
	if k.IsNum {
		lv = t.tbl.RawGet(lua.LNumber(k.Num))
	} else {
		lv = t.tbl.RawGetString(k.Str)
	}

	return fromLua(lv)
}
