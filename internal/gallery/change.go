package gallery

// ChangeKind describes how the visible list changed
type ChangeKind int

// Change kinds
const (
	Inserted ChangeKind = iota
	Removed
	Changed
	Moved
	Reset
)

func (k ChangeKind) String() string {
	switch k {
	case Inserted:
		return "inserted"
	case Removed:
		return "removed"
	case Changed:
		return "changed"
	case Moved:
		return "moved"
	case Reset:
		return "reset"
	default:
		return "unknown"
	}
}

// Change is the minimal region of the visible list affected by a mutation.
// To is only meaningful for Moved.
type Change struct {
	Kind  ChangeKind
	Index int
	To    int
}

// Listener is notified after every mutation of the visible list
type Listener interface {
	OnChange(Change)
}

// ListenerFunc adapts a function to the Listener interface
type ListenerFunc func(Change)

// OnChange calls f
func (f ListenerFunc) OnChange(c Change) {
	f(c)
}
