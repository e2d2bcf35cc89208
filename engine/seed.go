package engine

import (
	"context"

	"github.com/katalvlaran/hyperrewrite/dagstore"
	"github.com/katalvlaran/hyperrewrite/rulelang"
	"github.com/katalvlaran/hyperrewrite/schedule"
	"github.com/katalvlaran/hyperrewrite/seed"
	"github.com/katalvlaran/hyperrewrite/stateindex"
)

// assembleSeed runs every command in script in source order, threading
// a running vertex-id offset so each generator's fresh ids never
// collide with an earlier command's, per spec.md §4.3/§4.4. "rule" and
// "prerun" commands replace the accumulated edge list outright with the
// result of a bounded sub-evolution; a bare initial-edge command's
// NegEdges are subtracted once, at the very end, per spec.md §4.3.
func assembleSeed(ctx context.Context, script *rulelang.Script, o Options) ([][]int, error) {
	var edges [][]int
	var negs [][]int
	offset := 0

	for _, cmd := range script.Commands {
		switch cmd.Name {
		case "points":
			r, err := seed.Points(arg(cmd.Args, 0, 1), seed.WithRand(o.Rand))
			if err != nil {
				return nil, err
			}
			edges = appendShifted(edges, r, &offset)
		case "line":
			r, err := seed.Line(arg(cmd.Args, 0, 1), seed.WithRand(o.Rand))
			if err != nil {
				return nil, err
			}
			edges = appendShifted(edges, r, &offset)
		case "grid":
			r, err := seed.Grid(cmd.Args, seed.WithRand(o.Rand))
			if err != nil {
				return nil, err
			}
			edges = appendShifted(edges, r, &offset)
		case "sphere":
			r, err := seed.Sphere(arg(cmd.Args, 0, 1), seed.WithRand(o.Rand))
			if err != nil {
				return nil, err
			}
			edges = appendShifted(edges, r, &offset)
		case "complete":
			n := arg(cmd.Args, 0, 1)
			d := arg(cmd.Args, 1, 1)
			surface := arg(cmd.Args, 2, 0) != 0
			r, err := seed.Complete(n, d, surface, seed.WithRand(o.Rand))
			if err != nil {
				return nil, err
			}
			edges = appendShifted(edges, r, &offset)
		case "random":
			r, err := seed.Random(arg(cmd.Args, 0, 10), arg(cmd.Args, 1, 1), arg(cmd.Args, 2, 1), seed.WithRand(o.Rand))
			if err != nil {
				return nil, err
			}
			edges = appendShifted(edges, r, &offset)
		case "rule":
			out, err := runSubEvolution(ctx, edges, cmd.SubRules, cmd.MaxEvents, o)
			if err != nil {
				return nil, err
			}
			edges = out
			offset = maxVertexOf(edges) + 1
		case "prerun":
			out, err := runSubEvolution(ctx, edges, script.Rules, arg(cmd.Args, 0, 1), o)
			if err != nil {
				return nil, err
			}
			edges = out
			offset = maxVertexOf(edges) + 1
		case "":
			for _, e := range cmd.Edges {
				edges = append(edges, shift(e, offset))
			}
			for _, e := range cmd.NegEdges {
				negs = append(negs, shift(e, offset))
			}
			offset = maxVertexOf(edges) + 1
		}
	}

	return subtract(edges, negs), nil
}

func arg(args []int, i, def int) int {
	if i < len(args) {
		return args[i]
	}
	return def
}

func appendShifted(edges [][]int, r seed.Result, offset *int) [][]int {
	for _, e := range r.Edges {
		edges = append(edges, shift([]int(e), *offset))
	}
	*offset += r.Next
	return edges
}

func shift(e []int, offset int) []int {
	out := make([]int, len(e))
	for i, v := range e {
		out[i] = v + offset
	}
	return out
}

func maxVertexOf(edges [][]int) int {
	max := -1
	for _, e := range edges {
		for _, v := range e {
			if v > max {
				max = v
			}
		}
	}
	return max
}

func subtract(edges, negs [][]int) [][]int {
	if len(negs) == 0 {
		return edges
	}
	negSet := make(map[string]struct{}, len(negs))
	for _, e := range negs {
		negSet[edgeString(e)] = struct{}{}
	}
	out := edges[:0]
	for _, e := range edges {
		if _, drop := negSet[edgeString(e)]; !drop {
			out = append(out, e)
		}
	}
	return out
}

func edgeString(e []int) string {
	buf := make([]byte, 0, len(e)*5)
	for _, v := range e {
		buf = append(buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24), ',')
	}
	return string(buf)
}

// runSubEvolution runs a single-way spacelike evolution of rules over
// seedEdges for a bounded number of events, returning the resulting
// leaves as a flat edge list, per spec.md §4.3's rule(...)/prerun(...)
// subroutine.
func runSubEvolution(ctx context.Context, seedEdges [][]int, rules []rulelang.Rule, maxEvents int, o Options) ([][]int, error) {
	store := dagstore.NewStore()
	idx := stateindex.New()
	if err := loadSeed(store, idx, seedEdges, allTrackedBranches(0)); err != nil {
		return nil, err
	}

	schedOpts, err := schedule.NewOptions(
		schedule.WithInteractions(dagstore.SepSpacelike),
		schedule.WithBudgets(maxEvents, 0, 0),
		schedule.WithRand(o.Rand),
		schedule.WithPathCounts(false),
		schedule.WithBCoordinates(false),
	)
	if err != nil {
		return nil, err
	}

	if _, err := schedule.NewScheduler().Run(ctx, store, idx, rules, schedOpts); err != nil {
		return nil, err
	}

	var out [][]int
	for _, tok := range store.Leaves() {
		out = append(out, tok.Edge())
	}
	return out, nil
}

// loadSeed registers every edge in edges as a parentless leaf token,
// marking each one accessible from every branch branchMask tracks: a
// seed token has no producing event to inherit a branch bit from, so
// without this every ordinary-rule match on it would be refused the
// moment evolution tracks specific branches (admitOrdinary requires
// some or all hit tokens to already carry the branch being processed).
func loadSeed(store *dagstore.Store, idx *stateindex.Index, edges [][]int, branchMask uint16) error {
	for _, e := range edges {
		tok, err := store.AddToken(e, e)
		if err != nil {
			return err
		}
		store.SetBranch(tok.ID(), branchMask)
		idx.SetLeaf(tok.ID(), tok.Edge())
	}
	return nil
}

// allTrackedBranches returns the bitmask covering every branch a given
// evolution setting tracks (all 16 bits for full multiway, since
// fullMultiway bypasses branch checks entirely and any non-zero mask is
// equally harmless there).
func allTrackedBranches(evolution int) uint16 {
	if evolution <= 0 || evolution > 16 {
		return 0xFFFF
	}
	return uint16(1)<<uint(evolution) - 1
}
