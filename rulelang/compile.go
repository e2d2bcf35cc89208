package rulelang

import (
	"github.com/katalvlaran/hyperrewrite/hv"
	"github.com/katalvlaran/hyperrewrite/rng"
)

// Script is the fully compiled form of a parsed rule/command script:
// every RuleStmt lowered to one or two Rules (two for "==" statements,
// one per direction), and every CommandStmt lowered to a Command in
// original statement order.
type Script struct {
	Rules    []Rule
	Commands []Command
}

// SubrunFunc runs a single-way spacelike evolution of subRule for at
// most maxEvents events and returns the leaves of the resulting run as
// a flat edge list. Compile accepts one and passes it to nested Compile
// calls, but rulelang never calls it: a rule(...) command keeps its
// compiled SubRules and MaxEvents for the engine to run.
// Engine supplies this at Compile call time so rulelang never imports
// engine directly (it would otherwise import it back, an import
// cycle) -- the same inversion-of-control shape the corpus uses for
// BFS/DFS hook callbacks.
type SubrunFunc func(subRule Rule, maxEvents int) ([][]int, error)

// Compile lowers a parsed statement list into a Script. r supplies the
// randomness used for each rule's basis hypervector (spec.md §4.3);
// subrun is passed through to the Compile call for each rule(...)
// sub-script and is never called, so nil is always accepted.
func Compile(stmts []Statement, subrun SubrunFunc, r rng.Source) (*Script, error) {
	out := &Script{}
	for _, st := range stmts {
		switch s := st.(type) {
		case *RuleStmt:
			rules, err := compileRuleStmt(s, r)
			if err != nil {
				return nil, err
			}
			out.Rules = append(out.Rules, rules...)
		case *CommandStmt:
			cmd, err := compileCommandStmt(s, subrun, r)
			if err != nil {
				return nil, err
			}
			out.Commands = append(out.Commands, cmd)
		}
	}
	return out, nil
}

func compileRuleStmt(s *RuleStmt, r rng.Source) ([]Rule, error) {
	if !s.TwoWay {
		rule, err := compileOneRule(s.LHS, s.Neg, s.RHS, s.Opt, r)
		if err != nil {
			return nil, err
		}
		return []Rule{rule}, nil
	}

	fwd, err := compileOneRule(s.LHS, s.Neg, s.RHS, s.Opt, r)
	if err != nil {
		return nil, err
	}
	rev, err := compileOneRule(s.RHS, s.Neg, s.LHS, s.Opt, r)
	if err != nil {
		return nil, err
	}
	return []Rule{fwd, rev}, nil
}

// compileOneRule renames lhsT/negT/rhsT's local identifiers to small
// non-negative integers in order of first occurrence (LHS first, so
// NumVars is fixed before Neg or RHS can introduce fresh variables),
// then computes the derived statistics spec.md §4.3 lists.
func compileOneRule(lhsT, negT, rhsT []Tuple, optStr string, r rng.Source) (Rule, error) {
	varMap := make(map[string]int)
	next := 0

	lhs := make([]Pattern, 0, len(lhsT))
	for _, t := range lhsT {
		lhs = append(lhs, renameTuple(t, varMap, &next))
	}
	numVars := next

	neg := make([]Pattern, 0, len(negT))
	for _, t := range negT {
		neg = append(neg, renameTuple(t, varMap, &next))
	}

	rhs := make([]Pattern, 0, len(rhsT))
	for _, t := range rhsT {
		rhs = append(rhs, renameTuple(t, varMap, &next))
	}

	lhsDup := make([]bool, len(lhs))
	massEdges := 0
	for i, p := range lhs {
		if patternIn(p, rhs) {
			lhsDup[i] = true
			massEdges++
		}
	}
	rhsDup := make([]bool, len(rhs))
	for i, p := range rhs {
		rhsDup[i] = patternIn(p, lhs)
	}

	energy := len(lhs) + len(rhs)
	mass := 0
	if len(rhs) > 0 {
		mass = (energy * massEdges) / len(rhs)
	}
	momentum := energy - mass

	spin := 0
	for _, p := range lhs {
		if patternIn(reversePattern(p), rhs) {
			spin++
		}
	}

	opt, completion := parseRuleOpt(optStr)

	return Rule{
		LHS:        lhs,
		RHS:        rhs,
		Neg:        neg,
		NumVars:    numVars,
		LHSDup:     lhsDup,
		RHSDup:     rhsDup,
		Energy:     energy,
		Mass:       mass,
		Momentum:   momentum,
		Spin:       spin,
		BC:         hv.Random(r),
		Opt:        opt,
		Completion: completion,
	}, nil
}

func renameTuple(t Tuple, varMap map[string]int, next *int) Pattern {
	p := make(Pattern, len(t.Elems))
	for i, e := range t.Elems {
		id, ok := varMap[e]
		if !ok {
			id = *next
			varMap[e] = id
			*next++
		}
		p[i] = id
	}
	return p
}

func patternIn(p Pattern, set []Pattern) bool {
	for _, q := range set {
		if patternEqual(p, q) {
			return true
		}
	}
	return false
}

func patternEqual(a, b Pattern) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func reversePattern(p Pattern) Pattern {
	out := make(Pattern, len(p))
	for i, v := range p {
		out[len(p)-1-i] = v
	}
	return out
}

// parseRuleOpt reads a rule's trailing option string ("5c", "2", "c",
// ...) into an interaction-mask override (OR of every digit 1-6 seen)
// and the completion-mode flag ('c').
func parseRuleOpt(s string) (opt int, completion bool) {
	for _, c := range s {
		switch {
		case c >= '1' && c <= '6':
			opt |= int(c - '0')
		case c == 'c':
			completion = true
		}
	}
	return opt, completion
}
