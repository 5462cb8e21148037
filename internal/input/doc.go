// Package input parses the editor's line-oriented command grammar from an
// input stream: range commands (a,bc / a,bd / a,bp), navigation commands
// (ku / kr), and quit (q). Content lines following a change command are
// read separately, on demand, since their count depends on the command
// just parsed.
package input
