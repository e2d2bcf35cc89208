// Package rulelang lexes, parses, and compiles the rule/command script
// grammar: a semicolon-separated sequence of rewrite rules and seed
// commands. Compilation renames each rule's local vertex variables to
// small non-negative integers in order of first occurrence and
// precomputes the per-rule statistics (energy, mass, momentum, spin,
// duplicate flags, a random branchial coordinate) the matcher and
// post-processor consume.
//
// The pipeline mirrors a conventional lexer/parser split: lexer.go
// tokenizes raw text into a flat []Token stream, parser.go is a
// recursive-descent reader over that stream producing []Statement, and
// compile.go lowers statements into Rule/Command values ready for the
// scheduler.
package rulelang
