// Package rewrite turns a single classic assertion call into its constraint form.
//
// A call goes through a fixed sequence of states:
//
//	Scanning → Classified → RecipeFound → Built → Reconstructed
//
// with Unchanged as the exit for anything that is not recognized or cannot be rewritten
// without changing runtime behavior. The rewriter never modifies the tree it is given,
// the replacement shares no nodes with it.
//
// Example:
//
//	rw := rewrite.New()
//	out := rw.Rewrite(call, rewrite.Context{Resolver: argkind.Types(info)})
//	if out.Changed() {
//	    fmt.Println(constraint.Format(out.Replacement))
//	}
package rewrite
