// Package names turns noisy free-text personal names into typed components.
//
// Three steps, applied in this order by callers:
//   - [Cleaner.Clean] reduces a raw string to a small alphabet
//   - [Parser.Parse] splits the cleaned string into last/first/middle/suffix
//   - [Normalize] title-cases each component
//
// All three are total and deterministic; no input is rejected.
//
// [NewParser] drops a leading honorific by default, so "Dr John Smith" parses
// as First "John", Last "Smith". The plain positional rule gives First "Dr",
// Middle "John"; use a Parser with StripTitles false to get it.
package names
