package rulelang

import (
	"fmt"
	"strconv"
	"strings"
)

// Serialize renders a compiled Script back to canonical rule-script
// text, the round-trip textual I/O spec.md §6 names ("a minimal textual
// I/O is the rule-script round-trip: serialising the compiled rules and
// commands back to canonical text"). Variable names are canonicalized
// to v0, v1, ... in pattern-index order, so Serialize(Compile(Parse(s)))
// reparsed with Parse/Compile yields the same rule patterns and command
// edges up to variable renaming, whatever the original script's
// variable spelling (testable property 9). A bare-edge command's
// variant is already applied to its Edges, so it is not written out
// again. Statements are joined with "<br>".
func Serialize(s *Script) string {
	var parts []string
	for _, r := range s.Rules {
		parts = append(parts, serializeRule(r))
	}
	for _, c := range s.Commands {
		parts = append(parts, serializeCommand(c))
	}
	return strings.Join(parts, "<br>")
}

func varName(i int) string {
	return "v" + strconv.Itoa(i)
}

func serializePattern(p Pattern) string {
	elems := make([]string, len(p))
	for i, v := range p {
		elems[i] = varName(v)
	}
	return "(" + strings.Join(elems, ",") + ")"
}

func serializePatternSeq(ps []Pattern) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = serializePattern(p)
	}
	return strings.Join(parts, ",")
}

func serializeRule(r Rule) string {
	var sb strings.Builder
	sb.WriteString(serializePatternSeq(r.LHS))
	if len(r.Neg) > 0 {
		sb.WriteString("\\")
		sb.WriteString(serializePatternSeq(r.Neg))
	}
	sb.WriteString("->")
	sb.WriteString(serializePatternSeq(r.RHS))

	opt := serializeOpt(r.Opt, r.Completion)
	if opt != "" {
		sb.WriteString("/")
		sb.WriteString(opt)
	}
	return sb.String()
}

// serializeOpt renders an interaction-mask override plus completion
// flag back into the digit(s)+'c' form parseRuleOpt reads. A value of 7
// (every bit set) has no single digit in 1-6, so it is split into two
// digits (6 | 1) whose OR reconstructs it exactly.
func serializeOpt(opt int, completion bool) string {
	var sb strings.Builder
	switch {
	case opt == 0:
	case opt == 7:
		sb.WriteString("61")
	case opt >= 1 && opt <= 6:
		sb.WriteString(strconv.Itoa(opt))
	}
	if completion {
		sb.WriteString("c")
	}
	return sb.String()
}

func serializeEdgeTuples(edges [][]int) string {
	parts := make([]string, len(edges))
	for i, e := range edges {
		elems := make([]string, len(e))
		for j, v := range e {
			elems[j] = varName(v)
		}
		parts[i] = "(" + strings.Join(elems, ",") + ")"
	}
	return strings.Join(parts, ",")
}

func serializeCommand(c Command) string {
	var body string
	switch c.Name {
	case "rule":
		innerParts := make([]string, len(c.SubRules))
		for i, sub := range c.SubRules {
			innerParts[i] = serializeRule(sub)
		}
		body = fmt.Sprintf("rule(%s,%d)", strings.Join(innerParts, ";"), c.MaxEvents)
	case "":
		body = serializeEdgeTuples(c.Edges)
		if len(c.NegEdges) > 0 {
			body += "\\" + serializeEdgeTuples(c.NegEdges)
		}
	default:
		argStrs := make([]string, len(c.Args))
		for i, a := range c.Args {
			argStrs[i] = strconv.Itoa(a)
		}
		body = fmt.Sprintf("%s(%s)", c.Name, strings.Join(argStrs, ","))
	}

	if c.Variant != "" {
		if c.Name != "" {
			body += "/" + c.Variant
		}
	} else if c.Branch != 0 {
		body += "/" + strconv.Itoa(c.Branch)
	}
	return body
}
