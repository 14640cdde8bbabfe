package union_test

import (
	"testing"

	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/buildbarn/bb-unionfs/internal/mock"
	"github.com/buildbarn/bb-unionfs/pkg/filesystem/union"
	uf_sync "github.com/buildbarn/bb-unionfs/pkg/sync"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestUnionPathResolver(t *testing.T) {
	ctrl := gomock.NewController(t)

	mount, err := union.NewMountContext("/ro", "/rw", 4096)
	require.NoError(t, err)
	storage := mock.NewMockStorageLayer(ctrl)
	whiteouts := mock.NewMockWhiteoutIndex(ctrl)
	permissions := mock.NewMockPermissionChecker(ctrl)
	resolver := union.NewUnionPathResolver(mount, storage, whiteouts, permissions, &uf_sync.RecursiveMutex{})

	notFound := func(realPath string) error {
		return status.Errorf(codes.NotFound, "Path %#v does not exist", realPath)
	}
	regularFile := &union.AttributeSnapshot{
		UserID:      1000,
		GroupID:     1000,
		Permissions: 0o644,
		LinkCount:   1,
	}

	t.Run("BranchPriority", func(t *testing.T) {
		// A path present on the read-write branch is served from
		// there; the read-only branch is never consulted.
		storage.EXPECT().StatAttributes("/rw/file").Return(regularFile, nil)
		permissions.EXPECT().CanTraverse("/file")

		resolvedPath, err := resolver.Resolve("/file", 0)
		require.NoError(t, err)
		require.Equal(t, union.ResolvedPath{
			Classification: union.ClassificationReadWrite,
			RealPath:       "/rw/file",
		}, resolvedPath)
	})

	t.Run("ReadOnlyFallback", func(t *testing.T) {
		storage.EXPECT().StatAttributes("/rw/file").Return(nil, notFound("/rw/file"))
		storage.EXPECT().StatAttributes("/ro/file").Return(regularFile, nil)
		whiteouts.EXPECT().FindWhiteout("/file").Return(false, nil)
		permissions.EXPECT().CanTraverse("/file")

		resolvedPath, err := resolver.Resolve("/file", 0)
		require.NoError(t, err)
		require.Equal(t, union.ResolvedPath{
			Classification: union.ClassificationReadOnly,
			RealPath:       "/ro/file",
		}, resolvedPath)
	})

	t.Run("WhiteoutMasking", func(t *testing.T) {
		// The entry physically exists on the read-only branch,
		// but a deletion marker hides it from default lookups.
		storage.EXPECT().StatAttributes("/rw/file").Return(nil, notFound("/rw/file"))
		storage.EXPECT().StatAttributes("/ro/file").Return(regularFile, nil)
		whiteouts.EXPECT().FindWhiteout("/file").Return(true, nil)

		_, err := resolver.Resolve("/file", 0)
		testutil.RequireEqualStatus(t, status.Error(codes.NotFound, "Path \"/file\" has been deleted"), err)
	})

	t.Run("IgnoreWhiteout", func(t *testing.T) {
		storage.EXPECT().StatAttributes("/rw/file").Return(nil, notFound("/rw/file"))
		storage.EXPECT().StatAttributes("/ro/file").Return(regularFile, nil)
		permissions.EXPECT().CanTraverse("/file")

		resolvedPath, err := resolver.Resolve("/file", union.IgnoreWhiteout)
		require.NoError(t, err)
		require.Equal(t, union.ResolvedPath{
			Classification: union.ClassificationReadOnly,
			RealPath:       "/ro/file",
		}, resolvedPath)
	})

	t.Run("MustReadOnly", func(t *testing.T) {
		storage.EXPECT().StatAttributes("/ro/file").Return(regularFile, nil)
		whiteouts.EXPECT().FindWhiteout("/file").Return(false, nil)
		permissions.EXPECT().CanTraverse("/file")

		resolvedPath, err := resolver.Resolve("/file", union.MustReadOnly)
		require.NoError(t, err)
		require.Equal(t, union.ResolvedPath{
			Classification: union.ClassificationReadOnly,
			RealPath:       "/ro/file",
		}, resolvedPath)
	})

	t.Run("MustReadWrite", func(t *testing.T) {
		storage.EXPECT().StatAttributes("/rw/file").Return(nil, notFound("/rw/file"))

		_, err := resolver.Resolve("/file", union.MustReadWrite)
		testutil.RequireEqualStatus(t, status.Error(codes.NotFound, "Path \"/rw/file\" does not exist"), err)
	})

	t.Run("ReadWriteIOFailure", func(t *testing.T) {
		// Only absence of the read-write backing file may be
		// tolerated; I/O failures always propagate.
		storage.EXPECT().StatAttributes("/rw/file").Return(nil, status.Error(codes.Internal, "Disk on fire"))

		_, err := resolver.Resolve("/file", 0)
		testutil.RequireEqualStatus(t, status.Error(codes.Internal, "Disk on fire"), err)
	})

	t.Run("TraversalDenied", func(t *testing.T) {
		storage.EXPECT().StatAttributes("/rw/dir/file").Return(regularFile, nil)
		permissions.EXPECT().CanTraverse("/dir/file").Return(status.Error(codes.PermissionDenied, "Mode 0700 of path \"/dir\" does not permit the requested access"))

		_, err := resolver.Resolve("/dir/file", 0)
		testutil.RequireEqualStatus(t, status.Error(codes.PermissionDenied, "Mode 0700 of path \"/dir\" does not permit the requested access"), err)
	})

	t.Run("CopyUpPromotion", func(t *testing.T) {
		// The entry only exists on the read-only branch. Even
		// though a deletion marker is present, copy-up
		// resurrects the path; masking only binds read lookups.
		storage.EXPECT().StatAttributes("/rw/file").Return(nil, notFound("/rw/file")).Times(2)
		storage.EXPECT().StatAttributes("/ro/file").Return(regularFile, nil).Times(2)
		whiteouts.EXPECT().FindWhiteout("/file").Return(true, nil)
		permissions.EXPECT().CanTraverse("/file")
		storage.EXPECT().CreateCopy("/ro/file", "/rw/file")

		resolvedPath, err := resolver.Resolve("/file", union.CreateCopyUp)
		require.NoError(t, err)
		require.Equal(t, union.ResolvedPath{
			Classification: union.ClassificationReadWriteCopyUp,
			RealPath:       "/rw/file",
		}, resolvedPath)
	})

	t.Run("CopyUpWithoutSource", func(t *testing.T) {
		// A path that exists on neither branch cannot be
		// promoted.
		storage.EXPECT().StatAttributes("/rw/file").Return(nil, notFound("/rw/file"))
		storage.EXPECT().StatAttributes("/ro/file").Return(nil, notFound("/ro/file"))

		_, err := resolver.Resolve("/file", union.CreateCopyUp)
		testutil.RequireEqualStatus(t, status.Error(codes.NotFound, "Path \"/ro/file\" does not exist"), err)
	})

	t.Run("NameTooLong", func(t *testing.T) {
		// Path length validation happens before any metadata
		// query is issued, so no storage calls are expected.
		shortMount, err := union.NewMountContext("/ro", "/rw", 10)
		require.NoError(t, err)
		shortResolver := union.NewUnionPathResolver(shortMount, storage, whiteouts, permissions, &uf_sync.RecursiveMutex{})

		_, err = shortResolver.Resolve("/file-with-a-long-name", 0)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Real path for \"/file-with-a-long-name\" would exceed the maximum path length of 10 characters"), err)
	})
}
