package quest

import "errors"

// ErrNoPersister indicates Save or Load was called on a session built
// without a Persister.
var ErrNoPersister = errors.New("no save location configured")

// IOError wraps a failure of the persistence collaborator. The in-memory
// quest is unchanged whenever one is returned.
type IOError struct {
	Op  string
	Err error
}

func (e *IOError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying I/O error for use with errors.Is/As.
func (e *IOError) Unwrap() error {
	return e.Err
}
