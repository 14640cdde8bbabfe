package union

import (
	"strings"

	"golang.org/x/sys/unix"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// AccessMode is a bit set of requested permissions, using the
// conventional POSIX values (read 4, write 2, execute 1).
type AccessMode uint32

const (
	// AccessModeExecute requests permission to execute a file or
	// to look up entries inside a directory.
	AccessModeExecute AccessMode = 1 << iota
	// AccessModeWrite requests permission to modify a file or the
	// set of entries inside a directory.
	AccessModeWrite
	// AccessModeRead requests permission to read a file's contents
	// or to list a directory.
	AccessModeRead
)

// Width of one permission triplet within a POSIX mode.
const permissionTripletWidth = 3

// Credentials identify the caller on whose behalf permission checks
// are evaluated.
type Credentials struct {
	UserID  uint32
	GroupID uint32
}

// CurrentCredentials captures the effective user and group of the
// calling process.
func CurrentCredentials() Credentials {
	return Credentials{
		UserID:  uint32(unix.Geteuid()),
		GroupID: uint32(unix.Getegid()),
	}
}

// PermissionChecker evaluates POSIX style permissions against
// attribute snapshots obtained from the storage layer. The check is
// performed from scratch rather than delegated to the storage layer's
// own enforcement, because it must be evaluated against virtual paths
// whose components may be reached through either branch.
type PermissionChecker interface {
	// CanAccess returns nil if the caller holds all requested
	// permission bits on the file backing realPath.
	CanAccess(virtualPath, realPath string, mode AccessMode) error
	// CanRemove returns nil if the caller may remove the entry at
	// realPath, which requires write permission on its parent
	// directory. Removal of a branch root is always denied.
	CanRemove(virtualPath, realPath string) error
	// CanTraverse returns nil if the caller holds execute
	// permission on every intermediate directory of virtualPath.
	// The first denied component terminates the check.
	CanTraverse(virtualPath string) error
}

type posixPermissionChecker struct {
	mount       *MountContext
	storage     StorageLayer
	credentials Credentials
}

// NewPOSIXPermissionChecker creates a PermissionChecker that evaluates
// the owner/group/other permission triplets of attribute snapshots
// against a fixed caller identity.
func NewPOSIXPermissionChecker(mount *MountContext, storage StorageLayer, credentials Credentials) PermissionChecker {
	return &posixPermissionChecker{
		mount:       mount,
		storage:     storage,
		credentials: credentials,
	}
}

func (pc *posixPermissionChecker) CanAccess(virtualPath, realPath string, mode AccessMode) error {
	attributes, err := pc.storage.StatAttributes(realPath)
	if err != nil {
		return err
	}

	requested := uint32(mode) & 0o7
	if pc.credentials.UserID == 0 {
		// The privileged user bypasses read and write checks
		// unconditionally, but may only execute files that are
		// executable by somebody.
		if mode&AccessModeExecute != 0 && attributes.Permissions&0o111 == 0 {
			return status.Errorf(codes.PermissionDenied, "Path %#v is not executable by anybody", virtualPath)
		}
		return nil
	}

	// Shift the requested bits into the triplet that applies to the
	// caller. Checks go from most specific to least specific: a
	// matching owner never falls back to the group or other
	// triplets.
	if pc.credentials.UserID == attributes.UserID {
		requested <<= permissionTripletWidth * 2
	} else if pc.credentials.GroupID == attributes.GroupID {
		requested <<= permissionTripletWidth
	}
	if attributes.Permissions&requested != requested {
		return status.Errorf(codes.PermissionDenied, "Mode %#o of path %#v does not permit the requested access", attributes.Permissions, virtualPath)
	}
	return nil
}

func (pc *posixPermissionChecker) CanRemove(virtualPath, realPath string) error {
	if pc.mount.IsBranchRoot(realPath) {
		return status.Errorf(codes.PermissionDenied, "Branch root %#v cannot be removed", realPath)
	}
	i := strings.LastIndexByte(realPath, '/')
	if i <= 0 {
		return status.Errorf(codes.PermissionDenied, "Path %#v has no removable parent", realPath)
	}
	return pc.CanAccess(parentVirtualPath(virtualPath), realPath[:i], AccessModeWrite)
}

func (pc *posixPermissionChecker) CanTraverse(virtualPath string) error {
	components, err := splitVirtualPath(virtualPath)
	if err != nil {
		return err
	}
	// The mount root itself is always traversable, so only the
	// intermediate directories leading up to the final component
	// need to be checked.
	virtualPrefix := ""
	for _, component := range components[:max(len(components)-1, 0)] {
		virtualPrefix += "/" + component.String()
		realPrefix, err := pc.mount.ReadOnlyPath(virtualPrefix)
		if err != nil {
			return err
		}
		if err := pc.CanAccess(virtualPrefix, realPrefix, AccessModeExecute); err != nil {
			return err
		}
	}
	return nil
}
