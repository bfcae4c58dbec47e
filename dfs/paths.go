package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/reductions/core"
)

// pathWalker backtracks over g collecting every simple path to a fixed target.
type pathWalker struct {
	g      *core.Graph
	opts   Options
	target string
	onPath map[string]bool
	stack  []string
	out    [][]string
}

// AllSimplePaths returns every simple path from → to (no repeated vertex),
// each inclusive of both ends, sorted by length and then lexicographically.
//
// from == to yields the single path [from]. Unknown from → ErrStartVertexNotFound;
// an unknown to simply yields no paths.
//
// Complexity: exponential in the worst case; bound it with WithMaxDepth,
// WithMaxPaths or a cancellable WithContext.
func AllSimplePaths(g *core.Graph, from, to string, opts ...Option) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(from) {
		return nil, ErrStartVertexNotFound
	}

	w := &pathWalker{g: g, opts: o, target: to, onPath: make(map[string]bool)}
	if err := w.walk(from); err != nil {
		return nil, err
	}
	sort.SliceStable(w.out, func(i, j int) bool {
		if len(w.out[i]) != len(w.out[j]) {
			return len(w.out[i]) < len(w.out[j])
		}

		return compare(w.out[i], w.out[j]) < 0
	})

	return w.out, nil
}

func (w *pathWalker) walk(id string) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.stack = append(w.stack, id)
	w.onPath[id] = true
	defer func() {
		w.stack = w.stack[:len(w.stack)-1]
		delete(w.onPath, id)
	}()

	if id == w.target {
		w.out = append(w.out, append([]string(nil), w.stack...))
		if w.opts.MaxPaths > 0 && len(w.out) > w.opts.MaxPaths {
			return fmt.Errorf("%w: more than %d paths", ErrPathLimit, w.opts.MaxPaths)
		}

		return nil
	}
	if w.opts.MaxDepth > 0 && len(w.stack)-1 >= w.opts.MaxDepth {
		return nil
	}

	nbrs, err := w.g.NeighborIDs(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%q): %w", id, err)
	}
	for _, nbr := range nbrs {
		if w.onPath[nbr] {
			continue
		}
		if err = w.walk(nbr); err != nil {
			return err
		}
	}

	return nil
}
