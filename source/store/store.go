package store

import (
	"sort"

	"github.com/espira-lang/espira/source/values"
)

// A Variable pairs a value with the type it was declared as. The store doesn't check that the
// two agree: that's done by the declaration before anything gets here.
type Variable struct {
	Value    values.Value
	Declared values.DeclaredType
}

type Entry struct {
	Name string
	Variable
}

// The Store is a flat namespace: no scopes, and a redeclaration simply replaces what was there.
type Store struct {
	vars map[string]Variable
}

func New() *Store {
	return &Store{vars: map[string]Variable{}}
}

func (s *Store) Get(name string) (Variable, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// Lookup returns the stored value of a variable.
func (s *Store) Lookup(name string) (values.Value, bool) {
	v, ok := s.vars[name]
	return v.Value, ok
}

func (s *Store) Set(name string, v Variable) {
	s.vars[name] = v
}

func (s *Store) Len() int {
	return len(s.vars)
}

func (s *Store) Clear() {
	clear(s.vars)
}

// Entries returns the variables sorted by name.
func (s *Store) Entries() []Entry {
	result := make([]Entry, 0, len(s.vars))
	for k, v := range s.vars {
		result = append(result, Entry{Name: k, Variable: v})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
