// Package tree implements a generalized suffix tree over one or more strings.
//
// Nodes are stored in a flat arena and refer to each other by NodeID, so the
// root's self-referencing parent and suffix link are plain indices. A tree is
// built by inserting every suffix of every registered string, either naively
// from the root or through suffix links, and is then queried by read-only
// passes (coloring, fingerprints, metrics, BWT).
//
// A Tree is not safe for concurrent use.
package tree

import (
	"github.com/gnolang/sfxtree/internal/alphabet"
)

// NodeID is the index of a node in the arena. It doubles as the node id.
type NodeID int

// Root is the id of the root node.
const Root NodeID = 0

const noLink NodeID = -1

// Color is the source string id of a subtree, or Mixed.
type Color int

// Mixed marks a subtree whose leaves come from more than one string.
const Mixed Color = -1

// DefaultSentinel is the byte used to display string terminators.
const DefaultSentinel byte = '$'

// Mode selects how suffixes after the first one are inserted.
type Mode int

const (
	// ModeLinked resumes each insertion from the previous one through suffix
	// links.
	ModeLinked Mode = iota
	// ModeNaive inserts every suffix from the root.
	ModeNaive
)

func (m Mode) String() string {
	switch m {
	case ModeLinked:
		return "linked"
	case ModeNaive:
		return "naive"
	default:
		return "unknown"
	}
}

type node struct {
	parent   NodeID
	link     NodeID
	children []NodeID // sorted by first label symbol
	source   int
	start    int
	end      int
	depth    int
	strDepth int
	color    Color
}

// Tree is a generalized suffix tree.
type Tree struct {
	reg      Registry
	nodes    []node
	alphabet *alphabet.Alphabet
	sentinel byte
	mode     Mode
	colored  bool

	// depthsStale is set by splits until fixDepths runs.
	depthsStale bool
}

// Option configures a Tree.
type Option func(*Tree)

// WithAlphabet restricts accepted input to a.
func WithAlphabet(a *alphabet.Alphabet) Option {
	return func(t *Tree) { t.alphabet = a }
}

// WithSentinel sets the byte used to display terminators.
func WithSentinel(b byte) Option {
	return func(t *Tree) { t.sentinel = b }
}

// WithMode sets the insertion mode.
func WithMode(m Mode) Option {
	return func(t *Tree) { t.mode = m }
}

// New returns an empty tree holding only the root. Without WithAlphabet the
// tree accepts printable ASCII other than the sentinel.
func New(opts ...Option) *Tree {
	t := &Tree{
		nodes:    make([]node, 0, 1024),
		sentinel: DefaultSentinel,
		mode:     ModeLinked,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.alphabet == nil {
		t.alphabet = alphabet.ASCII(t.sentinel)
	}
	t.nodes = append(t.nodes, node{
		parent: Root,
		link:   Root,
		color:  Mixed,
	})
	return t
}

// Build validates every text, then inserts them in order into a new tree.
func Build(texts []string, opts ...Option) (*Tree, error) {
	t := New(opts...)
	for i, text := range texts {
		if err := t.validate(i, text); err != nil {
			return nil, err
		}
	}
	for _, text := range texts {
		t.insert(t.reg.Register(text))
	}
	t.fixDepths()
	return t, nil
}

// AddString validates text and inserts all of its suffixes into the existing
// tree. It returns the id assigned to text.
func (t *Tree) AddString(text string) (int, error) {
	if err := t.validate(t.reg.Count(), text); err != nil {
		return 0, err
	}
	id := t.reg.Register(text)
	t.insert(id)
	t.fixDepths()
	return id, nil
}

func (t *Tree) insert(id int) {
	t.colored = false
	n := t.reg.Len(id)
	prev := t.FindPath(Root, id, 0)
	for i := 1; i < n; i++ {
		if t.mode == ModeNaive {
			prev = t.FindPath(Root, id, i)
			continue
		}
		prev = t.SuffixLinkInsert(prev, id, i)
	}
}

// Strings returns the number of indexed strings.
func (t *Tree) Strings() int { return t.reg.Count() }

// Text returns indexed string id without its sentinel.
func (t *Tree) Text(id int) string { return t.reg.Text(id) }

// Mode returns the insertion mode.
func (t *Tree) Mode() Mode { return t.mode }

// Sentinel returns the byte used to display terminators.
func (t *Tree) Sentinel() byte { return t.sentinel }

// Alphabet returns the accepted alphabet.
func (t *Tree) Alphabet() *alphabet.Alphabet { return t.alphabet }

// NodeCount returns the number of nodes, root included.
func (t *Tree) NodeCount() int { return len(t.nodes) }

// newNode appends n to the arena. Pointers into t.nodes taken before the call
// are invalid afterwards.
func (t *Tree) newNode(n node) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, n)
	return id
}

func (t *Tree) isLeaf(id NodeID) bool {
	return id != Root && len(t.nodes[id].children) == 0
}

func (t *Tree) labelLen(id NodeID) int {
	return t.nodes[id].end - t.nodes[id].start
}

func (t *Tree) firstSymbol(id NodeID) Symbol {
	n := &t.nodes[id]
	return t.reg.At(n.source, n.start)
}
