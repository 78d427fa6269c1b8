// Package fuzzutil holds a small shared seed corpus of Delve Script
// source fragments, reused by the native fuzz tests in both the lexer
// and parser packages so the two totality properties are exercised
// against the same starting inputs.
package fuzzutil

// Seeds returns example source fragments: well-formed programs,
// syntactically broken ones, and inputs containing a byte the lexer
// cannot classify. Not every token kind appears; no seed contains `/`,
// `<`, `>` or `!=`.
func Seeds() []string {
	return []string{
		"",
		"let x = 5 + 3 * (y - 1);",
		"if (a) { b; } else { c; }",
		"function(a, b) { return a + b; };",
		"let = 7;",
		"return;",
		"(((",
		"@@@",
		"123abc;",
		"!true == false;",
	}
}
