package script

import (
	"image"
	"testing"

	lua "github.com/yuin/gopher-lua"

	"github.com/noteui/androidutil"
)

func newState(t *testing.T, m androidutil.Metrics) *lua.LState {
	L := lua.NewState()
	t.Cleanup(L.Close)
	Register(L, androidutil.NewDisplay(m))
	return L
}

func TestRegister(t *testing.T) {
	L := newState(t, androidutil.Metrics{Density: 2, DisplaySize: image.Pt(720, 1280)})
	for _, tt := range []struct {
		expr string
		want lua.LValue
	}{
		{"dp(1.1)", lua.LNumber(3)},
		{"dp(0)", lua.LNumber(0)},
		{"dp(-1.5)", lua.LNumber(-3)},
		{"lerp(0, 10, 0.5)", lua.LNumber(5)},
		{"lerp(0, 10, 2)", lua.LNumber(20)},
		{"isrtl(nil)", lua.LFalse},
		{`isrtl("")`, lua.LFalse},
		{`isrtl("abc")`, lua.LFalse},
		{`isrtl("ab\216\167")`, lua.LTrue}, // U+0627 in utf-8
		{`direction("abc")`, lua.LString("LTR")},
		{`direction("123")`, lua.LString("Neutral")},
		{"density()", lua.LNumber(2)},
		{"select(2, display_size())", lua.LNumber(1280)},
	} {
		if err := L.DoString("return " + tt.expr); err != nil {
			t.Errorf("%s: %v", tt.expr, err)
			continue
		}
		got := L.Get(-1)
		L.Pop(1)
		if got != tt.want {
			t.Errorf("%s = %v, want %v", tt.expr, got, tt.want)
		}
	}
}

func TestRegisterArgError(t *testing.T) {
	L := newState(t, androidutil.DefaultMetrics())
	if err := L.DoString(`return dp("wide")`); err == nil {
		t.Error("dp with non number should raise error")
	}
	if err := L.DoString(`return lerp(1, 2)`); err == nil {
		t.Error("lerp with missing argument should raise error")
	}
}
