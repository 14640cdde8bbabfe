package union

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// WhiteoutPrefix is prepended to an entry's name to form the name of
// its deletion marker on the read-write branch.
const WhiteoutPrefix = ".wh."

// WhiteoutIndex determines whether a virtual path has been marked as
// logically deleted through the read-write branch. A present marker
// means the path must be treated as absent by all default and
// read-only lookups, regardless of whether the read-only branch still
// physically holds the entry.
type WhiteoutIndex interface {
	FindWhiteout(virtualPath string) (bool, error)
}

type markerFileWhiteoutIndex struct {
	mount   *MountContext
	storage StorageLayer
}

// NewMarkerFileWhiteoutIndex creates a WhiteoutIndex that records
// deletions as marker files named ".wh.<name>", stored next to the
// deleted entry's position in the read-write branch's directory
// structure.
func NewMarkerFileWhiteoutIndex(mount *MountContext, storage StorageLayer) WhiteoutIndex {
	return &markerFileWhiteoutIndex{
		mount:   mount,
		storage: storage,
	}
}

func (wi *markerFileWhiteoutIndex) FindWhiteout(virtualPath string) (bool, error) {
	markerVirtualPath, err := whiteoutVirtualPath(virtualPath)
	if err != nil {
		return false, err
	}
	markerRealPath, err := wi.mount.ReadWritePath(markerVirtualPath)
	if err != nil {
		return false, err
	}
	if _, err := wi.storage.StatAttributes(markerRealPath); err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// whiteoutVirtualPath returns the virtual path at which the deletion
// marker for a given path resides. The mount root cannot be whited
// out.
func whiteoutVirtualPath(virtualPath string) (string, error) {
	components, err := splitVirtualPath(virtualPath)
	if err != nil {
		return "", err
	}
	if len(components) == 0 {
		return "", status.Error(codes.InvalidArgument, "The mount root cannot carry a deletion marker")
	}
	markerPath := ""
	for _, component := range components[:len(components)-1] {
		markerPath += "/" + component.String()
	}
	return markerPath + "/" + WhiteoutPrefix + components[len(components)-1].String(), nil
}
