package union

import (
	"github.com/buildbarn/bb-storage/pkg/util"

	"golang.org/x/sync/singleflight"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CopyUpManager promotes entries from the read-only branch to the
// read-write branch, so that they become modifiable through the union.
type CopyUpManager interface {
	// CopyUp materializes virtualPath on the read-write branch by
	// duplicating the entry at readOnlyRealPath, after first
	// ensuring that all ancestor directories exist on the
	// read-write branch. It returns the real path of the promoted
	// entry.
	CopyUp(virtualPath, readOnlyRealPath string) (string, error)
}

type copyUpManager struct {
	mount    *MountContext
	storage  StorageLayer
	resolver PathResolver

	group singleflight.Group
}

// NewCopyUpManager creates a CopyUpManager that materializes ancestor
// directories by re-entering the provided PathResolver, and that
// deduplicates concurrent promotions of the same virtual path: at most
// one caller performs the physical copy, while the others observe the
// completed result.
func NewCopyUpManager(mount *MountContext, storage StorageLayer, resolver PathResolver) CopyUpManager {
	return &copyUpManager{
		mount:    mount,
		storage:  storage,
		resolver: resolver,
	}
}

func (cm *copyUpManager) CopyUp(virtualPath, readOnlyRealPath string) (string, error) {
	readWriteRealPath, err, _ := cm.group.Do(virtualPath, func() (interface{}, error) {
		return cm.copyUp(virtualPath, readOnlyRealPath)
	})
	if err != nil {
		return "", err
	}
	return readWriteRealPath.(string), nil
}

func (cm *copyUpManager) copyUp(virtualPath, readOnlyRealPath string) (string, error) {
	readWriteRealPath, err := cm.mount.ReadWritePath(virtualPath)
	if err != nil {
		return "", err
	}

	// A previous promotion may already have completed, either
	// through a concurrent caller or during an earlier resolution.
	if _, err := cm.storage.StatAttributes(readWriteRealPath); err == nil {
		return readWriteRealPath, nil
	} else if status.Code(err) != codes.NotFound {
		return "", err
	}

	// Materialize ancestor directories. This re-enters the resolver
	// on the same goroutine, which is why the resolver's state is
	// guarded by a reentrant lock.
	if parent := parentVirtualPath(virtualPath); parent != "/" {
		if _, err := cm.resolver.Resolve(parent, CreateCopyUp|IgnoreWhiteout); err != nil {
			return "", util.StatusWrapf(err, "Failed to materialize ancestor directory %#v", parent)
		}
	}

	attributes, err := cm.storage.StatAttributes(readOnlyRealPath)
	if err != nil {
		return "", err
	}
	if attributes.IsDirectory {
		if err := cm.storage.MakeDirectory(readWriteRealPath, attributes); err != nil {
			return "", err
		}
	} else if err := cm.storage.CreateCopy(readOnlyRealPath, readWriteRealPath); err != nil {
		return "", err
	}
	return readWriteRealPath, nil
}
