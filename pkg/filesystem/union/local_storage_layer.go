//go:build linux
// +build linux

package union

import (
	"io"
	"os"
	"path/filepath"

	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/google/uuid"

	"golang.org/x/sys/unix"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type localStorageLayer struct{}

// NewLocalStorageLayer creates a StorageLayer that is backed by the
// locally mounted file systems holding the two branches. Copies are
// written through a hidden temporary name and renamed into place, so
// that a failed or interrupted copy never leaves a partially written
// file at the target path.
func NewLocalStorageLayer() StorageLayer {
	return localStorageLayer{}
}

func (localStorageLayer) StatAttributes(realPath string) (*AttributeSnapshot, error) {
	var stat unix.Stat_t
	if err := unix.Lstat(realPath, &stat); err != nil {
		if err == unix.ENOENT || err == unix.ENOTDIR {
			return nil, status.Errorf(codes.NotFound, "Path %#v does not exist", realPath)
		}
		return nil, util.StatusWrapfWithCode(err, codes.Internal, "Failed to obtain attributes of %#v", realPath)
	}
	return &AttributeSnapshot{
		UserID:      stat.Uid,
		GroupID:     stat.Gid,
		Permissions: uint32(stat.Mode) & 0o7777,
		IsDirectory: stat.Mode&unix.S_IFMT == unix.S_IFDIR,
		LinkCount:   uint32(stat.Nlink),
	}, nil
}

func (localStorageLayer) CreateCopy(sourceRealPath, targetRealPath string) error {
	var stat unix.Stat_t
	if err := unix.Lstat(sourceRealPath, &stat); err != nil {
		if err == unix.ENOENT || err == unix.ENOTDIR {
			return status.Errorf(codes.NotFound, "Path %#v does not exist", sourceRealPath)
		}
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to obtain attributes of %#v", sourceRealPath)
	}

	source, err := os.Open(sourceRealPath)
	if err != nil {
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to open %#v", sourceRealPath)
	}
	defer source.Close()

	temporaryPath := filepath.Join(filepath.Dir(targetRealPath), ".copyup."+uuid.New().String())
	target, err := os.OpenFile(temporaryPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to create temporary file for %#v", targetRealPath)
	}

	if err := copyContentsAndMetadata(source, target, &stat); err != nil {
		target.Close()
		unix.Unlink(temporaryPath)
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to copy %#v to %#v", sourceRealPath, targetRealPath)
	}
	if err := target.Close(); err != nil {
		unix.Unlink(temporaryPath)
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to close temporary copy of %#v", sourceRealPath)
	}
	times := []unix.Timespec{stat.Atim, stat.Mtim}
	if err := unix.UtimesNanoAt(unix.AT_FDCWD, temporaryPath, times, unix.AT_SYMLINK_NOFOLLOW); err != nil {
		unix.Unlink(temporaryPath)
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to preserve timestamps of %#v", sourceRealPath)
	}

	// Only now does the copy become visible at the target path.
	if err := unix.Rename(temporaryPath, targetRealPath); err != nil {
		unix.Unlink(temporaryPath)
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to rename temporary copy to %#v", targetRealPath)
	}
	return nil
}

func copyContentsAndMetadata(source io.Reader, target *os.File, stat *unix.Stat_t) error {
	if _, err := io.Copy(target, source); err != nil {
		return err
	}
	if err := unix.Fchown(int(target.Fd()), int(stat.Uid), int(stat.Gid)); err != nil {
		return err
	}
	// Permission bits are applied after ownership, as changing the
	// owner of a set-user-ID file clears its set-user-ID bit.
	return unix.Fchmod(int(target.Fd()), uint32(stat.Mode)&0o7777)
}

func (localStorageLayer) MakeDirectory(realPath string, attributes *AttributeSnapshot) error {
	if err := unix.Mkdir(realPath, attributes.Permissions); err != nil {
		if err == unix.EEXIST {
			// Idempotence: an existing directory keeps its
			// current metadata.
			return nil
		}
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to create directory %#v", realPath)
	}
	if err := unix.Chown(realPath, int(attributes.UserID), int(attributes.GroupID)); err != nil {
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to set ownership of %#v", realPath)
	}
	// Mkdir is subject to the process umask, so the permission bits
	// need to be applied explicitly.
	if err := unix.Chmod(realPath, attributes.Permissions); err != nil {
		return util.StatusWrapfWithCode(err, codes.Internal, "Failed to set permissions of %#v", realPath)
	}
	return nil
}
