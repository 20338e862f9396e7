// Package dict provides the bundled Chinese dictionary: a streaming parser
// for the CC-CEDICT text format (including the CC-Canto jyutping extension),
// a SQLite-backed compiled store, and lookup helpers used by the fill
// pipeline. Compilation is reproducible: the same source file always yields
// the same rows.
package dict
