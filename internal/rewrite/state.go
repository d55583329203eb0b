package rewrite

import "fmt"

// State of a call in the rewrite pipeline.
type State int

const (
	stateInvalid State = iota

	// StateScanning is the initial state.
	StateScanning

	// StateClassified means the call is a classic assertion of a known dialect.
	StateClassified

	// StateRecipeFound means the method has a recipe.
	StateRecipeFound

	// StateRecipeNotFound means the method has no recipe. The call stays as it is.
	StateRecipeNotFound

	// StateBuilt means the recipe produced a subject and a constraint.
	StateBuilt

	// StateReconstructed is the terminal state of a rewritten call.
	StateReconstructed

	// StateUnchanged is the terminal state of a call left alone.
	StateUnchanged
)

var stateValueMap = map[State]string{
	StateScanning:       "scanning",
	StateClassified:     "classified",
	StateRecipeFound:    "recipe-found",
	StateRecipeNotFound: "recipe-not-found",
	StateBuilt:          "built",
	StateReconstructed:  "reconstructed",
	StateUnchanged:      "unchanged",
}

func (s State) String() string {
	v, ok := stateValueMap[s]
	if !ok {
		return fmt.Sprintf("state-invalid(%d)", s)
	}

	return v
}

// Terminal reports whether s ends the pipeline.
func (s State) Terminal() bool {
	return s == StateReconstructed || s == StateUnchanged
}
