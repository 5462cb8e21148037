// Package history provides the branching, lazily-applied undo/redo timeline
// for the editor engine.
//
// # Records
//
// Every mutating command produces a paired EditRecord: an undo record that
// reverses the command, and a redo record that reapplies it. The redo record
// is attached to the state the command started from and the undo record to
// the state the command creates, so redo[i] and undo[i+1] are the two halves
// of one edit.
//
// # Timeline
//
// Timeline holds the states in order and tracks the current position.
// Mutating after undoing truncates the discarded future before appending
// the new state, so the timeline is a single active branch at any moment.
//
// # Shortcut snapshot
//
// A ShortcutSnapshot caches a full copy of the buffer at the highest state
// reached before the current undo excursion began. It lets a long run of
// redo steps jump in one copy instead of replaying every intermediate
// record; it is purely an optimization and never changes the final buffer
// content a sequence of commands produces.
package history
