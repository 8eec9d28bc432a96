package domain

// ResolutionStatus describes how a top-level import substitution ended.
type ResolutionStatus int

const (
	// Resolved means every first-party reference was substituted.
	Resolved ResolutionStatus = iota
	// CycleTruncated means at least one branch re-entered a module on its own chain
	// and contributed nothing further.
	CycleTruncated
	// DepthExceeded means the chain grew past the depth bound; Err carries the cause.
	DepthExceeded
)

// String returns the status name.
func (s ResolutionStatus) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case CycleTruncated:
		return "cycle-truncated"
	case DepthExceeded:
		return "depth-exceeded"
	default:
		return "unknown"
	}
}

// Resolution is the result of substituting one raw import.
type Resolution struct {
	// Import is the raw import name that was substituted.
	Import string
	// Libraries are the third-party names reached, in discovery order.
	Libraries []string
	Status    ResolutionStatus
	// Cycles lists the first-party files at which a cycle was cut.
	Cycles []string
	// Revisited lists first-party files reached again after they were fully expanded.
	Revisited []string
	Err       error
}

// FirstParty reports whether the import was replaced by something other than itself.
func (r Resolution) FirstParty() bool {
	return len(r.Libraries) != 1 || r.Libraries[0] != r.Import
}
