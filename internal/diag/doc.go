// Package diag provides an optional JSON-lines trace of dispatcher
// activity, gated behind the --trace flag. Each record is built with
// sjson so the recorder never needs a struct per event shape; it is a
// debugging aid and has no effect on editor semantics.
package diag
