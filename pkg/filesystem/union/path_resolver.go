package union

// ResolutionFlags alter the branch selection performed by
// PathResolver.Resolve().
type ResolutionFlags uint32

const (
	// MustReadOnly skips the read-write branch entirely, even if
	// the path is present there.
	MustReadOnly ResolutionFlags = 1 << iota
	// MustReadWrite fails resolution if the path is absent from the
	// read-write branch, instead of falling back to the read-only
	// branch.
	MustReadWrite
	// CreateCopyUp promotes the path from the read-only branch to
	// the read-write branch if it is not already present there.
	CreateCopyUp
	// IgnoreWhiteout bypasses deletion markers, making logically
	// deleted read-only entries visible again.
	IgnoreWhiteout
)

// BranchClassification denotes which branch ended up serving a
// resolution request.
type BranchClassification int

const (
	// ClassificationReadOnly means the path is served by the
	// read-only branch.
	ClassificationReadOnly BranchClassification = iota
	// ClassificationReadWrite means the path was already present on
	// the read-write branch.
	ClassificationReadWrite
	// ClassificationReadWriteCopyUp means the path was promoted to
	// the read-write branch as part of this resolution.
	ClassificationReadWriteCopyUp
)

var branchClassificationNames = map[BranchClassification]string{
	ClassificationReadOnly:        "ReadOnly",
	ClassificationReadWrite:       "ReadWrite",
	ClassificationReadWriteCopyUp: "ReadWriteCopyUp",
}

func (c BranchClassification) String() string {
	return branchClassificationNames[c]
}

// ResolvedPath is the result of a successful resolution: the branch
// that serves the virtual path and the real path backing it. The real
// path always lies under the branch root implied by the
// classification.
type ResolvedPath struct {
	Classification BranchClassification
	RealPath       string
}

// PathResolver decides which branch of the union serves a virtual
// path. It is the single entry point through which all read- and
// write-oriented operations on the mount must discover where a path
// "really" lives.
//
// Within a single call, checks are strictly ordered: the read-write
// branch before the read-only branch, and existence before whiteout
// masking before permission checking before copy-up. No guarantee is
// made against concurrent modification between a successful resolution
// and the caller's subsequent use of the real path; such guarantees,
// where needed, belong to the storage layer.
type PathResolver interface {
	Resolve(virtualPath string, flags ResolutionFlags) (ResolvedPath, error)
}
