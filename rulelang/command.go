package rulelang

import (
	"strconv"

	"github.com/katalvlaran/hyperrewrite/rng"
)

// Command is the compiled form of a CommandStmt, ready for the engine
// to materialize into concrete seed edges: either by calling a seed.*
// generator with Args, or by using Edges/NegEdges directly for a bare
// initial-edge command.
type Command struct {
	// Name is one of "points","line","grid","sphere","complete",
	// "random","rule","prerun", or "" for a bare initial-edge command.
	Name string

	// Args holds the generator's numeric arguments in source order
	// (unused for Name == "" and Name == "rule").
	Args []int

	// SubRules and MaxEvents are set only for Name == "rule": every
	// rule the inner sub-script compiled to (a two-way `==` sub-rule
	// compiles to its forward and reverse pair, both kept) and the
	// sub-evolution's bounded event budget.
	SubRules  []Rule
	MaxEvents int

	// Edges and NegEdges hold the literal edges of a bare initial-edge
	// command (Name == ""): NegEdges are subtracted from the seed
	// after all seeds are assembled, per spec.md §4.3.
	Edges    [][]int
	NegEdges [][]int

	// Branch is the resolved "/k" branch selector: 0 means "all
	// tracked branches" (the statement had no selector, or selector 0
	// was given explicitly).
	Branch int

	// Variant is "oneway", "twoway", "inverse", or "" — the edge
	// transform spec.md §4.3 attaches to a command via a trailing
	// option keyword.
	Variant string
}

func compileCommandStmt(s *CommandStmt, subrun SubrunFunc, r rng.Source) (Command, error) {
	branch := s.Branch
	if branch < 0 {
		branch = 0
	}
	cmd := Command{Name: s.Name, Branch: branch, Variant: s.Variant}

	switch s.Name {
	case "rule":
		subStmts, err := Parse(s.SubText)
		if err != nil {
			return Command{}, err
		}
		sub, err := Compile(subStmts, subrun, r)
		if err != nil {
			return Command{}, err
		}
		if len(sub.Rules) == 0 {
			return Command{}, parseErrorf(s.Pos, ErrMalformedRule, "rule(...) sub-script contains no rule")
		}
		maxEvents, _ := strconv.Atoi(s.Args[0])
		cmd.SubRules = sub.Rules
		cmd.MaxEvents = maxEvents
		return cmd, nil

	case "":
		all, err := tuplesToEdges(append(append([]Tuple(nil), s.Tuples...), s.NegSub...))
		if err != nil {
			return Command{}, err
		}
		edges, neg := all[:len(s.Tuples)], all[len(s.Tuples):]
		cmd.Edges = applyVariant(edges, s.Variant)
		cmd.NegEdges = applyVariant(neg, s.Variant)
		return cmd, nil

	default:
		args := make([]int, len(s.Args))
		for i, a := range s.Args {
			n, err := strconv.Atoi(a)
			if err != nil {
				return Command{}, parseErrorf(s.Pos, ErrArgCount, "%s: argument %q is not an integer", s.Name, a)
			}
			args[i] = n
		}
		cmd.Args = args
		return cmd, nil
	}
}

// tuplesToEdges renames each tuple's elements (identifiers or numeric
// literals used as vertex labels) to small non-negative integers in
// order of first occurrence across the whole command, exactly the
// variable-renaming discipline compileOneRule applies to rule bodies.
func tuplesToEdges(tuples []Tuple) ([][]int, error) {
	labels := make(map[string]int)
	next := 0
	edges := make([][]int, len(tuples))
	for i, t := range tuples {
		edge := make([]int, len(t.Elems))
		for j, e := range t.Elems {
			id, ok := labels[e]
			if !ok {
				id = next
				labels[e] = id
				next++
			}
			edge[j] = id
		}
		edges[i] = edge
	}
	return edges, nil
}

func applyVariant(edges [][]int, variant string) [][]int {
	switch variant {
	case "oneway":
		out := make([][]int, len(edges))
		for i, e := range edges {
			sorted := append([]int(nil), e...)
			sortInts(sorted)
			out[i] = sorted
		}
		return out
	case "twoway":
		out := make([][]int, 0, len(edges)*2)
		for _, e := range edges {
			out = append(out, e, reverseInts(e))
		}
		return out
	case "inverse":
		out := make([][]int, len(edges))
		for i, e := range edges {
			out[i] = reverseInts(e)
		}
		return out
	default:
		return edges
	}
}

func reverseInts(e []int) []int {
	out := make([]int, len(e))
	for i, v := range e {
		out[len(e)-1-i] = v
	}
	return out
}

func sortInts(e []int) {
	for i := 1; i < len(e); i++ {
		for j := i; j > 0 && e[j-1] > e[j]; j-- {
			e[j-1], e[j] = e[j], e[j-1]
		}
	}
}
