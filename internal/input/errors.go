package input

import "errors"

// ErrMalformed is returned when a command line does not match any of the
// grammar's forms. The editor's contract treats well-formed input as a
// precondition guaranteed by the caller; this error exists for callers,
// such as tests, that feed the parser untrusted text. Dispatcher.Run stops
// and returns it.
var ErrMalformed = errors.New("input: malformed command")
