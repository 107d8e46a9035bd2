package grammar

import "fmt"

// Error reports a malformed or incomplete rule set: a missing start
// symbol, a label with neither a rule nor a vocabulary entry, or a
// cyclic expansion with no terminal base.
type Error struct {
	Label  string
	Reason string
}

func (e *Error) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("grammar: %s", e.Reason)
	}
	return fmt.Sprintf("grammar: %s: %s", e.Label, e.Reason)
}
