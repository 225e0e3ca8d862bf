// Package script exposes display metrics to Lua scripts, so that layouts
// written in Lua can size themselves in dp.
package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/noteui/androidutil"
	"github.com/noteui/androidutil/text"
)

// Register installs the functions below as globals of L, bound to d.
//
//	dp(value)          -> px, rounded up
//	lerp(a, b, f)      -> a + f*(b-a)
//	isrtl(text)        -> true if text has a Hebrew or Arabic letter, nil is false
//	direction(text)    -> "LTR", "RTL" or "Neutral"
//	display_size()     -> width, height in px
//	density()          -> px per dp
func Register(L *lua.LState, d *androidutil.Display) {
	b := binding{display: d}
	for name, fn := range map[string]lua.LGFunction{
		"dp":           b.dp,
		"lerp":         lerp,
		"isrtl":        isRTL,
		"direction":    direction,
		"display_size": b.displaySize,
		"density":      b.density,
	} {
		L.SetGlobal(name, L.NewFunction(fn))
	}
}

type binding struct {
	display *androidutil.Display
}

func (b binding) dp(L *lua.LState) int {
	v := L.CheckNumber(1)
	L.Push(lua.LNumber(b.display.Dp(float32(v))))
	return 1
}

func (b binding) displaySize(L *lua.LState) int {
	s := b.display.Metrics().DisplaySize
	L.Push(lua.LNumber(s.X))
	L.Push(lua.LNumber(s.Y))
	return 2
}

func (b binding) density(L *lua.LState) int {
	L.Push(lua.LNumber(b.display.Density()))
	return 1
}

func lerp(L *lua.LState) int {
	a := L.CheckNumber(1)
	b := L.CheckNumber(2)
	f := L.CheckNumber(3)
	L.Push(lua.LNumber(androidutil.Lerp(float32(a), float32(b), float32(f))))
	return 1
}

func isRTL(L *lua.LState) int {
	if L.Get(1) == lua.LNil {
		L.Push(lua.LFalse)
		return 1
	}
	L.Push(lua.LBool(androidutil.IsRTL(L.CheckString(1))))
	return 1
}

func direction(L *lua.LState) int {
	L.Push(lua.LString(text.Direction(L.CheckString(1)).String()))
	return 1
}
