// Package parser turns raw command-line tokens into an Options value.
//
// The grammar is deliberately permissive: every flag is a boolean, unknown flags
// are accepted, positional arguments are kept verbatim as strings and parsing
// never fails. Alias groups map several spellings onto one canonical flag:
//
//	opts := parser.Parse(os.Args[1:], parser.DefaultConfig())
//	opts.TypeScript() // true for --typescript, --ts or --TS
//
// Conflicting occurrences of the same flag or alias group combine with OR, so
// "--ts --typescript=false" reports typescript as true.
package parser
