package store

import (
	"testing"

	"github.com/espira-lang/espira/source/values"
)

func TestRedeclarationReplaces(t *testing.T) {
	s := New()
	s.Set("x", Variable{values.Int(7), values.INT_TYPE})
	s.Set("x", Variable{values.Text("seven"), values.STRING_TYPE})
	got, ok := s.Get("x")
	if !ok {
		t.Fatalf("x should be bound")
	}
	if got.Declared != values.STRING_TYPE || !got.Value.Equal(values.Text("seven")) {
		t.Fatalf("redeclaration left residual state: %v %s", got.Declared, got.Value.Describe())
	}
	if s.Len() != 1 {
		t.Fatalf("expected one variable, got %d", s.Len())
	}
}

func TestLookup(t *testing.T) {
	s := New()
	if _, ok := s.Lookup("nope"); ok {
		t.Fatalf("unbound variable found")
	}
	s.Set("b", Variable{values.TRUE, values.BOOL_TYPE})
	if v, ok := s.Lookup("b"); !ok || !v.Equal(values.TRUE) {
		t.Fatalf("expected b to be true, got %s", v.Describe())
	}
}

func TestEntriesAndClear(t *testing.T) {
	s := New()
	s.Set("zeta", Variable{values.Int(1), values.INT_TYPE})
	s.Set("alpha", Variable{values.Float(2), values.FLOAT_TYPE})
	entries := s.Entries()
	if len(entries) != 2 || entries[0].Name != "alpha" || entries[1].Name != "zeta" {
		t.Fatalf("entries not sorted: %v", entries)
	}
	s.Clear()
	if s.Len() != 0 {
		t.Fatalf("store not cleared")
	}
}

func TestStoresAreIndependent(t *testing.T) {
	a, b := New(), New()
	a.Set("x", Variable{values.Int(1), values.INT_TYPE})
	if _, ok := b.Get("x"); ok {
		t.Fatalf("stores share state")
	}
}
