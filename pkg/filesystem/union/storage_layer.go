package union

// AttributeSnapshot is a point-in-time copy of the metadata of a
// single real path, as obtained from the storage layer. It carries
// exactly the fields the resolution core needs; anything else (sizes,
// timestamps, device numbers) stays inside the storage layer.
type AttributeSnapshot struct {
	// Numerical identifiers of the owning user and group.
	UserID  uint32
	GroupID uint32
	// POSIX permission bits (the low twelve mode bits, including
	// the owner/group/other triplets).
	Permissions uint32
	IsDirectory bool
	LinkCount   uint32
}

// StorageLayer is the metadata and data collaborator consumed by the
// resolution core. Implementations operate on real paths only; the
// union namespace, branch selection and whiteout masking are invisible
// to them.
//
// Absence of a path is reported as a NotFound status error. All other
// failures are reported as Internal.
type StorageLayer interface {
	// StatAttributes obtains an attribute snapshot of a real path,
	// without following a trailing symbolic link.
	StatAttributes(realPath string) (*AttributeSnapshot, error)
	// CreateCopy duplicates a regular file's contents and metadata
	// (ownership, permission bits and timestamps). The copy becomes
	// visible at the target path atomically: a failed copy leaves
	// no partial file behind at targetRealPath.
	CreateCopy(sourceRealPath, targetRealPath string) error
	// MakeDirectory creates a directory, applying the provided
	// ownership and permission bits. Calling it against a path at
	// which a directory already exists is not an error, and leaves
	// the existing directory's metadata untouched.
	MakeDirectory(realPath string, attributes *AttributeSnapshot) error
}
