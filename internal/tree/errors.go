package tree

import (
	"fmt"

	"github.com/gnolang/sfxtree/internal/alphabet"
	"github.com/pkg/errors"
)

// ErrMultipleStrings is returned by BWT on a tree indexing more than one
// string.
var ErrMultipleStrings = errors.New("bwt requires a tree over a single string")

// ErrEmptyTree is returned by BWT on a tree that indexes no string yet.
var ErrEmptyTree = errors.New("tree indexes no string")

// InvariantError describes a structural inconsistency found while building or
// checking a tree. The builder panics with it; Validate returns it.
type InvariantError struct {
	Node NodeID
	Msg  string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("suffix tree invariant violated at node %d: %s", e.Node, e.Msg)
}

func violation(id NodeID, format string, args ...interface{}) *InvariantError {
	return &InvariantError{Node: id, Msg: fmt.Sprintf(format, args...)}
}

// validate rejects text before anything is inserted.
func (t *Tree) validate(id int, text string) error {
	if err := t.alphabet.Validate(text); err != nil {
		return errors.Wrapf(err, "string %d", id)
	}
	return nil
}

// IsSymbolError reports whether err was caused by input outside the alphabet.
func IsSymbolError(err error) bool {
	var se *alphabet.SymbolError
	return errors.As(err, &se)
}
