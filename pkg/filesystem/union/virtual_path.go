package union

import (
	"strings"

	"github.com/buildbarn/bb-storage/pkg/filesystem/path"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// virtualPathWalker is a path.ComponentWalker that merely records the
// components it encounters, turning a virtual path string into an
// explicit component list. ".." components are resolved against the
// recorded prefix and may not escape the mount root.
type virtualPathWalker struct {
	components []path.Component
}

func (w *virtualPathWalker) OnDirectory(name path.Component) (path.GotDirectoryOrSymlink, error) {
	w.components = append(w.components, name)
	return path.GotDirectory{
		Child:        w,
		IsReversible: true,
	}, nil
}

func (w *virtualPathWalker) OnTerminal(name path.Component) (*path.GotSymlink, error) {
	w.components = append(w.components, name)
	return nil, nil
}

func (w *virtualPathWalker) OnUp() (path.ComponentWalker, error) {
	if len(w.components) == 0 {
		return nil, status.Error(codes.InvalidArgument, "Virtual path escapes the mount root")
	}
	w.components = w.components[:len(w.components)-1]
	return w, nil
}

// splitVirtualPath decomposes an absolute virtual path into its
// ordered components. The mount root decomposes into the empty list.
func splitVirtualPath(virtualPath string) ([]path.Component, error) {
	if !strings.HasPrefix(virtualPath, "/") {
		return nil, status.Errorf(codes.InvalidArgument, "Virtual path %#v is not absolute", virtualPath)
	}
	w := virtualPathWalker{}
	if err := path.Resolve(path.UNIXFormat.NewParser(virtualPath[1:]), path.NewRelativeScopeWalker(&w)); err != nil {
		return nil, err
	}
	return w.components, nil
}

// parentVirtualPath returns the virtual path of the directory
// containing the provided path. The parent of the mount root is the
// mount root itself.
func parentVirtualPath(virtualPath string) string {
	i := strings.LastIndexByte(virtualPath, '/')
	if i <= 0 {
		return "/"
	}
	return virtualPath[:i]
}
