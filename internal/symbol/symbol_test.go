package symbol

import (
	"testing"

	"github.com/cstarlang/cstar/internal/source"
)

func TestDefineRejectsRedefinition(t *testing.T) {
	root := New(nil)
	if !root.Define("x", 1, source.InvalidRange(), Variable) {
		t.Fatalf("first define should succeed")
	}
	if root.Define("x", 2, source.InvalidRange(), Variable) {
		t.Fatalf("redefinition in the same scope should fail")
	}
}

func TestFindWalksEnclosingScopes(t *testing.T) {
	root := New(nil)
	root.Define("x", 1, source.InvalidRange(), Variable)
	child := New(root)

	sym := child.Find("x", MaxLookupDepth)
	if !sym.IsPresent() || sym.Value != 1 {
		t.Fatalf("expected to find x=1 in enclosing scope, got %+v", sym)
	}

	if sym := child.Find("missing", MaxLookupDepth); sym.IsPresent() {
		t.Fatalf("expected absent sentinel for missing name")
	}
}

func TestFindRespectsDepthLimit(t *testing.T) {
	root := New(nil)
	root.Define("x", 1, source.InvalidRange(), Variable)
	child := New(root)

	if sym := child.Find("x", 0); sym.IsPresent() {
		t.Fatalf("depth 0 should not reach the enclosing scope")
	}
}

func TestAssignAdvancesThroughEnclosingScopes(t *testing.T) {
	root := New(nil)
	root.Define("x", 1, source.InvalidRange(), Variable)
	child := New(root)
	grandchild := New(child)

	if !grandchild.Assign("x", 42) {
		t.Fatalf("assign should walk up to the defining scope")
	}
	sym := root.Find("x", MaxLookupDepth)
	if sym.Value != 42 {
		t.Fatalf("expected root's x to be mutated to 42, got %v", sym.Value)
	}
}

func TestAssignFailsWhenUndefined(t *testing.T) {
	root := New(nil)
	if root.Assign("nope", 1) {
		t.Fatalf("assign on an undefined name should fail")
	}
}

func TestScopePushPop(t *testing.T) {
	s := NewScope(New(nil))
	root := s.Table()
	s.Push()
	if s.Table() == root {
		t.Fatalf("push should create a new current table")
	}
	s.Pop()
	if s.Table() != root {
		t.Fatalf("pop should restore the enclosing table")
	}
}

func TestLookupTypedCast(t *testing.T) {
	root := New(nil)
	root.Define("x", "hello", source.InvalidRange(), Variable)

	v, sym, ok := Lookup[string](root, "x", MaxLookupDepth)
	if !ok || v != "hello" || !sym.IsPresent() {
		t.Fatalf("expected typed lookup to succeed, got %q %v %v", v, sym, ok)
	}

	if _, _, ok := Lookup[int](root, "x", MaxLookupDepth); ok {
		t.Fatalf("expected typed lookup with mismatched type to fail")
	}
}
