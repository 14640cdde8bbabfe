package union

import (
	"strings"

	"github.com/buildbarn/bb-storage/pkg/filesystem/path"
	uf_sync "github.com/buildbarn/bb-unionfs/pkg/sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Node is the parent-chain accessor consumed by PathTranslator. It is
// implemented by the host integration layer, which knows how its
// filesystem objects hang together. The chain terminates at a node for
// which IsRoot() returns true; that node's name is not part of any
// constructed path.
type Node interface {
	Name() path.Component
	Parent() Node
	IsRoot() bool
}

// PathTranslator converts between filesystem nodes and the path forms
// used by the resolution core.
type PathTranslator interface {
	// FullPath walks a node's parent chain up to the root and
	// returns the absolute real path of the node.
	FullPath(node Node) (string, error)
	// RelativePath returns the mount-relative virtual path of a
	// node, by stripping the branch root prefix from its full
	// path.
	RelativePath(node Node) (string, error)
}

type lockedPathTranslator struct {
	mount *MountContext
	lock  *uf_sync.RecursiveMutex
}

// NewLockedPathTranslator creates a PathTranslator that performs its
// parent-chain walks while holding a consistency lock, so that the
// chain cannot be mutated mid-walk by a concurrent operation. The lock
// is typically the same reentrant lock that guards the path resolver,
// as translation happens in the middle of resolution call graphs.
func NewLockedPathTranslator(mount *MountContext, lock *uf_sync.RecursiveMutex) PathTranslator {
	return &lockedPathTranslator{
		mount: mount,
		lock:  lock,
	}
}

func (pt *lockedPathTranslator) FullPath(node Node) (string, error) {
	pt.lock.Lock()
	defer pt.lock.Unlock()

	// Walk from leaf to root. The total length is validated while
	// walking, so that an absurdly deep chain fails instead of
	// building an unbounded string.
	var components []path.Component
	length := 0
	for n := node; !n.IsRoot(); n = n.Parent() {
		name := n.Name()
		length += len(name.String()) + 1
		if length > pt.mount.MaximumPathLength() {
			return "", status.Errorf(codes.InvalidArgument, "Full path of node would exceed the maximum path length of %d characters", pt.mount.MaximumPathLength())
		}
		components = append(components, name)
	}
	if len(components) == 0 {
		return "/", nil
	}
	var sb strings.Builder
	sb.Grow(length)
	for i := len(components) - 1; i >= 0; i-- {
		sb.WriteByte('/')
		sb.WriteString(components[i].String())
	}
	return sb.String(), nil
}

func (pt *lockedPathTranslator) RelativePath(node Node) (string, error) {
	fullPath, err := pt.FullPath(node)
	if err != nil {
		return "", err
	}
	return pt.mount.StripBranchPrefix(fullPath)
}
