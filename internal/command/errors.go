package command

import "errors"

var (
	// ErrUnknownCommand indicates a name that is not in the catalog.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrNoArguments indicates trailing text on a command that does not
	// accept arguments.
	ErrNoArguments = errors.New("command does not accept arguments")
	// ErrMissingArgSpec indicates an argument-bearing command without a
	// spec group. This is an internal invariant breach: canonicalization
	// and the spec table have drifted apart.
	ErrMissingArgSpec = errors.New("argument spec group is missing")
	// ErrNoArgumentsParsed indicates argument text that produced no valid
	// arguments; the whole definition is rejected.
	ErrNoArgumentsParsed = errors.New("no arguments parsed")
)
