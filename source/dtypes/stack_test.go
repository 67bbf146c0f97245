package dtypes

import "testing"

func TestStack(t *testing.T) {
	s := NewStack[string]()
	if !s.IsEmpty() {
		t.Fatalf("new stack should be empty")
	}
	if _, ok := s.Pop(); ok {
		t.Fatalf("popping an empty stack should fail")
	}
	s.Push("a")
	s.Push("b")
	if head, _ := s.HeadValue(); head != "b" {
		t.Fatalf("expected head 'b', got %q", head)
	}
	if s.Len() != 2 {
		t.Fatalf("expected length 2, got %d", s.Len())
	}
	for _, want := range []string{"b", "a"} {
		got, ok := s.Pop()
		if !ok || got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
	if _, ok := s.HeadValue(); ok {
		t.Fatalf("head of empty stack should fail")
	}
}
