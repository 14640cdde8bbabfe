package union

import (
	"path/filepath"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// MountContext holds the configuration of a single union mount: the
// absolute paths of the read-only and read-write branch roots, and the
// maximum length any constructed real path may have. It is immutable
// after construction, which makes it safe to share between goroutines
// without locking and makes multiple simultaneous mounts within one
// process trivially supportable.
type MountContext struct {
	readOnlyRoot      string
	readWriteRoot     string
	maximumPathLength int
}

// NewMountContext creates a MountContext for a pair of branch roots.
// Both roots must be absolute, cleaned paths, and neither root may be
// nested inside the other, as that would make branch prefix matching
// ambiguous.
func NewMountContext(readOnlyRoot, readWriteRoot string, maximumPathLength int) (*MountContext, error) {
	for _, root := range []string{readOnlyRoot, readWriteRoot} {
		if !strings.HasPrefix(root, "/") || root != filepath.Clean(root) {
			return nil, status.Errorf(codes.InvalidArgument, "Branch root %#v is not an absolute cleaned path", root)
		}
		if len(root) > maximumPathLength {
			return nil, status.Errorf(codes.InvalidArgument, "Branch root %#v exceeds the maximum path length of %d characters", root, maximumPathLength)
		}
	}
	if isPathPrefix(readOnlyRoot, readWriteRoot) || isPathPrefix(readWriteRoot, readOnlyRoot) {
		return nil, status.Errorf(codes.InvalidArgument, "Branch roots %#v and %#v overlap", readOnlyRoot, readWriteRoot)
	}
	return &MountContext{
		readOnlyRoot:      readOnlyRoot,
		readWriteRoot:     readWriteRoot,
		maximumPathLength: maximumPathLength,
	}, nil
}

// ReadOnlyRoot returns the absolute path of the read-only branch root.
func (mc *MountContext) ReadOnlyRoot() string {
	return mc.readOnlyRoot
}

// ReadWriteRoot returns the absolute path of the read-write branch
// root.
func (mc *MountContext) ReadWriteRoot() string {
	return mc.readWriteRoot
}

// MaximumPathLength returns the length beyond which constructed real
// paths are rejected.
func (mc *MountContext) MaximumPathLength() int {
	return mc.maximumPathLength
}

// ReadOnlyPath converts a virtual path into the real path backing it
// on the read-only branch. The resulting path is validated against the
// maximum path length before it is handed to any storage operation.
func (mc *MountContext) ReadOnlyPath(virtualPath string) (string, error) {
	return mc.branchPath(mc.readOnlyRoot, virtualPath)
}

// ReadWritePath converts a virtual path into the real path backing it
// on the read-write branch.
func (mc *MountContext) ReadWritePath(virtualPath string) (string, error) {
	return mc.branchPath(mc.readWriteRoot, virtualPath)
}

func (mc *MountContext) branchPath(branchRoot, virtualPath string) (string, error) {
	if !strings.HasPrefix(virtualPath, "/") {
		return "", status.Errorf(codes.InvalidArgument, "Virtual path %#v is not absolute", virtualPath)
	}
	if len(branchRoot)+len(virtualPath) > mc.maximumPathLength {
		return "", status.Errorf(codes.InvalidArgument, "Real path for %#v would exceed the maximum path length of %d characters", virtualPath, mc.maximumPathLength)
	}
	if virtualPath == "/" {
		return branchRoot, nil
	}
	return branchRoot + virtualPath, nil
}

// StripBranchPrefix converts an absolute real path back into the
// virtual path it backs. Exactly one of the two branch roots must be a
// prefix of the provided path; a path under neither root, or under
// both, indicates that the namespace is inconsistent.
func (mc *MountContext) StripBranchPrefix(realPath string) (string, error) {
	underReadOnly := isPathPrefix(mc.readOnlyRoot, realPath)
	underReadWrite := isPathPrefix(mc.readWriteRoot, realPath)
	if underReadOnly == underReadWrite {
		return "", status.Errorf(codes.FailedPrecondition, "Real path %#v does not lie under exactly one branch root", realPath)
	}
	root := mc.readOnlyRoot
	if underReadWrite {
		root = mc.readWriteRoot
	}
	if realPath == root {
		return "/", nil
	}
	return realPath[len(root):], nil
}

// IsBranchRoot returns whether a real path refers to one of the two
// branch roots themselves.
func (mc *MountContext) IsBranchRoot(realPath string) bool {
	return realPath == mc.readOnlyRoot || realPath == mc.readWriteRoot
}

// isPathPrefix returns whether prefix is equal to full or refers to an
// ancestor directory of it. Matching is performed on whole path
// components, so that "/rw" is not treated as a prefix of "/rwx".
func isPathPrefix(prefix, full string) bool {
	return full == prefix || strings.HasPrefix(full, prefix+"/")
}
