package recipes

import (
	"cmp"
	"fmt"
	"go/ast"
	"go/token"
	"maps"
	"slices"
	"sync"

	"github.com/sirkon/fluentify/internal/argkind"
	"github.com/sirkon/fluentify/internal/constraint"
	"github.com/sirkon/fluentify/internal/fluentrules"
)

// Call is a read-only view of a recognized classic assertion call.
type Call struct {
	Dialect  Dialect
	Method   string
	Args     []argkind.Argument
	TypeArgs []ast.Expr
	Pos      token.Pos

	// Resolver answers static type questions about the operands.
	Resolver argkind.Resolver
}

// Result of a successful recipe.
type Result struct {
	// Subject is the value checked by the constraint.
	Subject ast.Expr

	// Constraint is the predicate applied to the subject.
	Constraint constraint.Expression

	// Consumed is the number of leading arguments the recipe took. The rest are
	// message arguments.
	Consumed int

	// Passthrough marks message-only assertions like Fail: the call keeps its callee
	// and only its message is converted.
	Passthrough bool
}

// Recipe turns a call into a constraint assertion. It returns false when the call shape
// is not supported.
type Recipe func(c *Call) (Result, bool)

// Entry is a recipe with its metadata.
type Entry struct {
	Key    Key
	Rule   fluentrules.Rule
	Arity  int
	Recipe Recipe

	// Example shows what the recipe produces, for listings.
	Example string
}

// Table maps (dialect, method) pairs to recipes. A table is never modified after it is
// built, so it is safe for concurrent use.
type Table struct {
	entries map[Key]Entry
}

var defaultTable = sync.OnceValue(func() *Table {
	t := &Table{entries: map[Key]Entry{}}
	registerClassic(t)
	registerCollection(t)
	registerString(t)
	registerFile(t)
	return t
})

// Default returns the table of all predefined recipes.
func Default() *Table {
	return defaultTable()
}

// register adds recipe under every listed method. A key can only be registered once.
func (t *Table) register(d Dialect, rule fluentrules.Rule, arity int, example string, recipe Recipe, methods ...string) {
	for _, m := range methods {
		key := Key{Dialect: d, Method: m}
		if _, ok := t.entries[key]; ok {
			panic(fmt.Errorf("recipe %s is already registered", key))
		}

		t.entries[key] = Entry{
			Key:     key,
			Rule:    rule,
			Arity:   arity,
			Recipe:  recipe,
			Example: example,
		}
	}
}

// Lookup returns the recipe of the method.
func (t *Table) Lookup(d Dialect, method string) (Entry, bool) {
	e, ok := t.entries[Key{Dialect: d, Method: method}]
	return e, ok
}

// Without returns a copy of the table lacking the given keys.
func (t *Table) Without(keys ...Key) *Table {
	res := &Table{entries: maps.Clone(t.entries)}
	for _, k := range keys {
		delete(res.entries, k)
	}

	return res
}

// With returns a copy of the table extended with the given entries. Keys already
// present panic the same way duplicate registrations do.
func (t *Table) With(entries ...Entry) *Table {
	res := &Table{entries: maps.Clone(t.entries)}
	for _, e := range entries {
		res.register(e.Key.Dialect, e.Rule, e.Arity, e.Example, e.Recipe, e.Key.Method)
	}

	return res
}

// Len returns the number of recipes.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns all recipes ordered by dialect and method.
func (t *Table) Entries() []Entry {
	res := slices.Collect(maps.Values(t.entries))
	slices.SortFunc(res, func(a, b Entry) int {
		if c := cmp.Compare(a.Key.Dialect, b.Key.Dialect); c != 0 {
			return c
		}
		return cmp.Compare(a.Key.Method, b.Key.Method)
	})

	return res
}
