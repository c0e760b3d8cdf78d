package path

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type absoluteScopeWalker struct {
	componentWalker ComponentWalker
}

// NewAbsoluteScopeWalker creates a ScopeWalker that only accepts paths
// that carry a root. Drive letters and shares are accepted, but their
// identity is discarded; callers that need to act on them should
// implement ScopeWalker directly.
func NewAbsoluteScopeWalker(componentWalker ComponentWalker) ScopeWalker {
	return &absoluteScopeWalker{
		componentWalker: componentWalker,
	}
}

func (pw *absoluteScopeWalker) OnAbsolute() (ComponentWalker, error) {
	return pw.componentWalker, nil
}

func (pw *absoluteScopeWalker) OnRelative() (ComponentWalker, error) {
	return nil, status.Error(codes.InvalidArgument, "Path is relative, while an absolute path was expected")
}

func (pw *absoluteScopeWalker) OnDriveLetter(drive rune) (ComponentWalker, error) {
	return pw.componentWalker, nil
}

func (pw *absoluteScopeWalker) OnShare(server, share string) (ComponentWalker, error) {
	return pw.componentWalker, nil
}
