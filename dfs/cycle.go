// Package dfs enumerates simple cycles of a core.Graph.
//
// DetectCycles uses three-color marking and records one cycle per back
// edge Gray→Gray. Each cycle is canonicalized (Booth's minimal rotation;
// for undirected graphs also of the reversal) so the same cycle reached
// from different roots is reported once. Output is sorted.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C = #cycles, L = avg cycle length)
//   - Memory: O(V + L_max)
package dfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/reductions/core"
)

// cycleFinder holds the mutable state of one DetectCycles run.
type cycleFinder struct {
	g      *core.Graph
	state  map[string]int
	path   []string
	seen   map[string]struct{}
	cycles [][]string
}

// DetectCycles inspects g for simple cycles.
// Each cycle is closed: [v0, v1, ..., v0]. A nil graph is cycle-free.
// Returns (false, nil, nil) when no cycle exists.
func DetectCycles(g *core.Graph) (bool, [][]string, error) {
	if g == nil {
		return false, nil, nil
	}

	verts := g.Vertices()
	f := &cycleFinder{
		g:     g,
		state: make(map[string]int, len(verts)),
		path:  make([]string, 0, len(verts)),
		seen:  make(map[string]struct{}),
	}
	for _, v := range verts {
		if f.state[v] != White {
			continue
		}
		if err := f.visit(v, ""); err != nil {
			return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
		}
	}
	if len(f.cycles) == 0 {
		return false, nil, nil
	}
	sort.Slice(f.cycles, func(i, j int) bool { return compare(f.cycles[i], f.cycles[j]) < 0 })

	return true, f.cycles, nil
}

// visit explores id; parent is the tree predecessor, used to skip the
// trivial u–v–u walk in undirected graphs.
func (f *cycleFinder) visit(id, parent string) error {
	f.state[id] = Gray
	f.path = append(f.path, id)

	edges, err := f.g.Neighbors(id)
	if err != nil {
		return fmt.Errorf("Neighbors(%q): %w", id, err)
	}
	for _, e := range edges {
		nbr := e.Other(id)
		if !f.g.Directed() && nbr == parent && nbr != id {
			continue
		}
		switch f.state[nbr] {
		case White:
			if err = f.visit(nbr, id); err != nil {
				return err
			}
		case Gray:
			f.record(nbr)
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[id] = Black

	return nil
}

// record closes the cycle from start to the top of the stack.
func (f *cycleFinder) record(start string) {
	idx := indexOf(f.path, start)
	if idx < 0 {
		return
	}
	base := f.path[idx:]
	if !f.g.Directed() && len(base) == 2 {
		return
	}

	canon := minimalRotation(base)
	if !f.g.Directed() {
		if back := minimalRotation(reversed(base)); compare(back, canon) < 0 {
			canon = back
		}
	}
	canon = append(canon, canon[0])

	sig := signature(canon)
	if _, dup := f.seen[sig]; dup {
		return
	}
	f.seen[sig] = struct{}{}
	f.cycles = append(f.cycles, canon)
}
