package editor

// Op identifies which store operation a mutation event came from.
type Op string

const (
	OpAdd           Op = "add"
	OpUpdate        Op = "update"
	OpEnforceBounds Op = "enforce_bounds"
	OpRemove        Op = "remove"
	OpSelect        Op = "select"
	OpClear         Op = "clear"
)

// Event describes one completed store mutation. It carries just enough to
// let observers decide whether to react; state is read through Snapshot.
type Event struct {
	Op    Op
	ID    string // affected item id, when the operation targets one
	Count int    // number of items added, for OpAdd
}

// Dirty reports whether the event changed persisted state. Selection is
// not persisted, so selection changes are clean.
func (e Event) Dirty() bool {
	return e.Op != OpSelect
}

// Observer is a post-mutation callback. Observers run synchronously on the
// mutating goroutine; anything slow (persistence, re-render scheduling)
// must hand off internally and absorb its own failures.
type Observer func(Event)
