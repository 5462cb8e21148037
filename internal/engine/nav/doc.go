// Package nav implements the lazy undo/redo navigation engine: queueing of
// pending undo/redo counts, saturating clamps against timeline bounds, the
// shortcut-snapshot jump, and single-step record application.
//
// Callers enqueue with QueueUndo/QueueRedo as u/r commands are read, and
// call Flush before any observable command (print, change, delete) runs.
// Flush is the only place the buffer, timeline position, and shortcut
// snapshot are actually mutated by navigation.
package nav
