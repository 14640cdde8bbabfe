package union

import (
	uf_sync "github.com/buildbarn/bb-unionfs/pkg/sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type unionPathResolver struct {
	mount       *MountContext
	storage     StorageLayer
	whiteouts   WhiteoutIndex
	permissions PermissionChecker
	lock        *uf_sync.RecursiveMutex

	copyUp CopyUpManager
}

// NewUnionPathResolver creates the PathResolver at the heart of a
// union mount. Resolution prefers the read-write branch, falls back to
// the read-only branch, applies whiteout masking and traversal
// permission checks, and performs copy-up promotion when requested.
//
// The resolver constructs its own CopyUpManager, as copy-up needs to
// re-enter the resolver to materialize ancestor directories. All
// resolution state is guarded by the provided reentrant lock for the
// same reason; the lock may be shared with other components (such as
// PathTranslator) that need a consistent view of the namespace.
func NewUnionPathResolver(mount *MountContext, storage StorageLayer, whiteouts WhiteoutIndex, permissions PermissionChecker, lock *uf_sync.RecursiveMutex) PathResolver {
	pr := &unionPathResolver{
		mount:       mount,
		storage:     storage,
		whiteouts:   whiteouts,
		permissions: permissions,
		lock:        lock,
	}
	pr.copyUp = NewCopyUpManager(mount, storage, pr)
	return pr
}

func (pr *unionPathResolver) Resolve(virtualPath string, flags ResolutionFlags) (ResolvedPath, error) {
	pr.lock.Lock()
	defer pr.lock.Unlock()

	// The read-write branch has priority over the read-only branch.
	if flags&MustReadOnly == 0 {
		readWriteRealPath, err := pr.mount.ReadWritePath(virtualPath)
		if err != nil {
			return ResolvedPath{}, err
		}
		if _, err := pr.storage.StatAttributes(readWriteRealPath); err != nil {
			if status.Code(err) != codes.NotFound || flags&MustReadWrite != 0 {
				return ResolvedPath{}, err
			}
		} else {
			if err := pr.permissions.CanTraverse(virtualPath); err != nil {
				return ResolvedPath{}, err
			}
			return ResolvedPath{
				Classification: ClassificationReadWrite,
				RealPath:       readWriteRealPath,
			}, nil
		}
	}

	if flags&CreateCopyUp != 0 {
		readOnlyRealPath, err := pr.mount.ReadOnlyPath(virtualPath)
		if err != nil {
			return ResolvedPath{}, err
		}
		// A path that exists on neither branch cannot be copied
		// up; absence of the read-only backing file is fatal.
		if _, err := pr.storage.StatAttributes(readOnlyRealPath); err != nil {
			return ResolvedPath{}, err
		}
		if flags&IgnoreWhiteout == 0 {
			// A present whiteout does not block copy-up:
			// promoting a path onto the read-write branch is
			// how a logically deleted entry gets
			// resurrected. Masking only binds read lookups.
			// The index is still consulted so that I/O
			// failures surface here rather than later.
			if _, err := pr.whiteouts.FindWhiteout(virtualPath); err != nil {
				return ResolvedPath{}, err
			}
		}
		if err := pr.permissions.CanTraverse(virtualPath); err != nil {
			return ResolvedPath{}, err
		}
		readWriteRealPath, err := pr.copyUp.CopyUp(virtualPath, readOnlyRealPath)
		if err != nil {
			return ResolvedPath{}, err
		}
		return ResolvedPath{
			Classification: ClassificationReadWriteCopyUp,
			RealPath:       readWriteRealPath,
		}, nil
	}

	// Plain read-only lookup.
	readOnlyRealPath, err := pr.mount.ReadOnlyPath(virtualPath)
	if err != nil {
		return ResolvedPath{}, err
	}
	if _, err := pr.storage.StatAttributes(readOnlyRealPath); err != nil {
		return ResolvedPath{}, err
	}
	if flags&IgnoreWhiteout == 0 {
		present, err := pr.whiteouts.FindWhiteout(virtualPath)
		if err != nil {
			return ResolvedPath{}, err
		}
		if present {
			// Maintain the deletion illusion, even though the
			// read-only branch still holds the entry.
			return ResolvedPath{}, status.Errorf(codes.NotFound, "Path %#v has been deleted", virtualPath)
		}
	}
	if err := pr.permissions.CanTraverse(virtualPath); err != nil {
		return ResolvedPath{}, err
	}
	return ResolvedPath{
		Classification: ClassificationReadOnly,
		RealPath:       readOnlyRealPath,
	}, nil
}
