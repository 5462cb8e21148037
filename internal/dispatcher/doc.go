// Package dispatcher implements the command loop that ties the line
// buffer, edit timeline, and navigation engine together: it reads one
// command at a time, flushes pending navigation before any observable
// command, executes the command, and records a new timeline state for
// every mutation.
package dispatcher
