// Package output writes the editor's only observable artifact: the
// verbatim content of printed lines, or the "." placeholder for indices
// outside the live buffer.
package output
