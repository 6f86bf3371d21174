package tree

import (
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gnolang/sfxtree/internal/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomDNA(r *rand.Rand, n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet.DNA[r.Intn(len(alphabet.DNA))]
	}
	return string(b)
}

func mustBuild(t testing.TB, mode Mode, texts ...string) *Tree {
	t.Helper()
	tr, err := Build(texts, WithMode(mode))
	require.NoError(t, err)
	require.NoError(t, tr.Validate())
	return tr
}

// shape is the sorted multiset of (depth, edge label) pairs.
func shape(tr *Tree) []string {
	var out []string
	for _, id := range tr.preOrder(Root) {
		out = append(out, strconv.Itoa(tr.nodes[id].depth)+":"+tr.Label(id))
	}
	sort.Strings(out)
	return out
}

var fixtures = []string{
	"banana",
	"mississippi",
	"aaaa",
	"abab",
	"abcabxabcd",
	"xabxac",
	"xabxaabxac",
	"GATTACAGATTACA",
	"a",
	"",
}

func TestBanana(t *testing.T) {
	t.Parallel()

	for _, mode := range []Mode{ModeNaive, ModeLinked} {
		mode := mode
		t.Run(mode.String(), func(t *testing.T) {
			t.Parallel()
			tr := mustBuild(t, mode, "banana")

			assert.Equal(t, 11, tr.NodeCount())

			m := tr.Metrics()
			assert.Equal(t, 7, m.Leaves)
			assert.Equal(t, 4, m.Internal)

			repeat, depth := tr.LongestRepeat()
			assert.Equal(t, "ana", repeat)
			assert.Equal(t, 3, depth)
			assert.InDelta(t, 1.5, tr.AverageInternalDepth(), 1e-9)
		})
	}
}

func TestLeafPerSuffix(t *testing.T) {
	t.Parallel()

	for _, text := range fixtures {
		text := text
		t.Run(text, func(t *testing.T) {
			t.Parallel()
			tr := mustBuild(t, ModeLinked, text)

			var got []string
			for _, id := range tr.leaves(Root) {
				got = append(got, tr.Reconstruct(id))
			}

			full := text + "$"
			var want []string
			for i := range full {
				want = append(want, full[i:])
			}

			assert.Len(t, got, len(text)+1)
			assert.ElementsMatch(t, want, got)
		})
	}
}

func TestStringDepthMatchesPathLabel(t *testing.T) {
	t.Parallel()

	tr := mustBuild(t, ModeLinked, "mississippi", "missouri", "pississ")
	tr.Walk(Root, func(n NodeInfo) bool {
		assert.Equal(t, n.StringDepth, len(tr.Reconstruct(n.ID)), "node %d", n.ID)
		return true
	})
}

func TestNaiveAndLinkedAgree(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewSource(7))
	cases := [][]string{}
	for _, text := range fixtures {
		cases = append(cases, []string{text})
	}
	for i := 0; i < 40; i++ {
		cases = append(cases, []string{randomDNA(r, 1+r.Intn(60))})
	}
	for i := 0; i < 15; i++ {
		cases = append(cases, []string{
			randomDNA(r, 1+r.Intn(40)),
			randomDNA(r, 1+r.Intn(40)),
			randomDNA(r, 1+r.Intn(40)),
		})
	}
	cases = append(cases, []string{"xabxac", "xabxaabxac"}, []string{"abc", "abc"}, []string{"ab", "abab", "b"})

	for i, texts := range cases {
		naive := mustBuild(t, ModeNaive, texts...)
		linked := mustBuild(t, ModeLinked, texts...)
		assert.Equal(t, naive.NodeCount(), linked.NodeCount(), "case %d %q", i, texts)
		assert.Equal(t, shape(naive), shape(linked), "case %d %q", i, texts)
	}
}

func TestLinkedBuildSetsEveryLink(t *testing.T) {
	t.Parallel()

	tr := mustBuild(t, ModeLinked, "GATTACAGATTACA", "TACAT")
	for _, id := range tr.preOrder(Root) {
		if tr.isLeaf(id) {
			continue
		}
		assert.NotEqual(t, noLink, tr.nodes[id].link, "internal node %d has no suffix link", id)
	}
}

func TestAddStringExtendsTree(t *testing.T) {
	t.Parallel()

	tr := New()
	id, err := tr.AddString("xabxac")
	require.NoError(t, err)
	assert.Equal(t, 0, id)

	id, err = tr.AddString("xabxaabxac")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	require.NoError(t, tr.Validate())
	assert.Equal(t, 2, tr.Strings())
	assert.Equal(t, tr.Node(Root).Parent, Root)
	assert.Equal(t, tr.Node(Root).SuffixLink, Root)
	assert.Equal(t, 7+11, tr.Metrics().Leaves)
}

func TestAlphabetRejectedBeforeBuild(t *testing.T) {
	t.Parallel()

	_, err := Build([]string{"ACGT", "ACGX"}, WithAlphabet(alphabet.New(alphabet.DNA)))
	require.Error(t, err)
	assert.True(t, IsSymbolError(err))

	tr := New(WithAlphabet(alphabet.New(alphabet.DNA)))
	_, err = tr.AddString("AC$")
	require.Error(t, err)
	assert.True(t, IsSymbolError(err))
	assert.Equal(t, 0, tr.Strings())
	assert.Equal(t, 1, tr.NodeCount())
}

func TestNodeHopsPanicsOnMissingPath(t *testing.T) {
	t.Parallel()

	tr := New()
	tr.reg.Register("abc")
	require.Panics(t, func() { tr.NodeHops(Root, 0, 0, 2) })
}

func TestNodeHopsSplitsInsideEdge(t *testing.T) {
	t.Parallel()

	tr := mustBuild(t, ModeNaive, "abcd")
	before := tr.NodeCount()

	mid := tr.NodeHops(Root, 0, 0, 2)
	assert.Equal(t, before+1, tr.NodeCount())
	assert.Equal(t, "ab", tr.Reconstruct(mid))
	assert.Equal(t, 2, tr.Node(mid).StringDepth)
	require.Len(t, tr.Children(mid), 1)
	assert.Equal(t, "cd$", tr.Children(mid)[0].Label)
	assert.Equal(t, 2, tr.Children(mid)[0].Depth)

	// hopping to an existing boundary creates nothing
	assert.Equal(t, mid, tr.NodeHops(Root, 0, 0, 2))
	assert.Equal(t, before+1, tr.NodeCount())
}

func TestChildrenSorted(t *testing.T) {
	t.Parallel()

	tr := mustBuild(t, ModeLinked, "banana")
	var labels []string
	for _, c := range tr.Children(Root) {
		labels = append(labels, c.Label)
	}
	assert.Equal(t, []string{"$", "a", "banana$", "na"}, labels)
	assert.Equal(t, "|a|na|na$", tr.ReconstructSeparated(tr.leaves(Root)[3]))
}

func TestRepetitiveInputBuildsInLinearTime(t *testing.T) {
	t.Parallel()

	const n = 100000
	start := time.Now()
	tr, err := Build([]string{strings.Repeat("a", n)})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 10*time.Second)

	// root, one internal node per a^k for 0 < k < n, and n+1 leaves.
	assert.Equal(t, 2*n+1, tr.NodeCount())
	_, repeat := tr.LongestRepeat()
	assert.Equal(t, n-1, repeat)

	maxDepth := 0
	tr.Walk(Root, func(info NodeInfo) bool {
		if info.ID != Root && info.Depth != tr.Node(info.Parent).Depth+1 {
			t.Errorf("node %d has depth %d under parent depth %d", info.ID, info.Depth, tr.Node(info.Parent).Depth)
			return false
		}
		if info.Depth > maxDepth {
			maxDepth = info.Depth
		}
		return true
	})
	assert.Equal(t, n, maxDepth)
}

func TestDepthsAfterSplitsOnSmallRepeats(t *testing.T) {
	t.Parallel()

	for _, mode := range []Mode{ModeLinked, ModeNaive} {
		tr := mustBuild(t, mode, "aaaa", "aaab")
		for _, id := range tr.preOrder(Root) {
			if id == Root {
				continue
			}
			want := len(tr.path(id))
			assert.Equal(t, want, tr.Node(id).Depth, "mode %s node %d", mode, id)
		}
	}
}
