package rulelang

// Tuple is a parenthesised, comma-separated list of raw element texts
// (identifiers or numbers) exactly as written, prior to variable
// renaming.
type Tuple struct {
	Elems []string
}

// Statement is either a RuleStmt or a CommandStmt.
type Statement interface {
	stmtPos() int
}

// RuleStmt is a parsed "LHS [\ NEG] -> RHS" or "LHS == RHS" statement.
type RuleStmt struct {
	LHS    []Tuple
	Neg    []Tuple
	RHS    []Tuple
	TwoWay bool
	Opt    string // raw characters after the trailing '/', e.g. "5c"
	Pos    int
}

func (s *RuleStmt) stmtPos() int { return s.Pos }

// CommandStmt is a parsed command invocation, seed command, or bare
// initial-edge tuple sequence (Name == "" in that last case).
type CommandStmt struct {
	Name    string   // "points","line","grid","sphere","complete","random","rule","prerun", or "" for bare tuples
	Args    []string // raw numeric argument texts
	SubText string   // for rule(...): the verbatim inner sub-script text
	Tuples  []Tuple  // for "" (initial-edge) or rule LHS-as-seed forms
	NegSub  []Tuple  // edges subtracted from an initial-edge command's seed
	Branch  int      // trailing "/k" branch selector; -1 if absent
	Variant string   // "oneway" | "twoway" | "inverse" | ""
	Pos     int
}

func (s *CommandStmt) stmtPos() int { return s.Pos }
