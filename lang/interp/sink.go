package interp

import "strings"

// Sink is the external collaborator that accepts values to be printed. It
// has a single capability: accept a sequence of already-stringified
// values produced by one print statement.
type Sink interface {
	Print(values []string)
}

// MemorySink is an in-memory Sink used by tests: each Print call is
// recorded as one entry, its values joined with a single space.
type MemorySink struct {
	Entries []string
}

func (s *MemorySink) Print(values []string) {
	s.Entries = append(s.Entries, strings.Join(values, " "))
}
