package path

// ScopeWalker is an interface that is called into by Resolve(). An
// implementation can use it to capture the path that is resolved.
// ScopeWalker is called into once for every path that is processed.
type ScopeWalker interface {
	// One of these functions is called right before processing the
	// first component in the path (if any), based on the
	// characteristics of the path. Plain absolute paths are handled
	// through OnAbsolute(), and relative paths through OnRelative().
	// On Windows absolute paths can also start with a drive letter,
	// which is handled through OnDriveLetter(), or name a share on a
	// server, which is handled through OnShare().
	//
	// These functions can be used by the implementation to determine
	// whether path resolution needs to be relative to the current
	// directory (e.g., working directory or parent directory of the
	// previous symlink encountered) or one of the recognized roots.
	//
	// For every instance of ScopeWalker, at most one of these
	// functions is called at most once. Resolve() will always call
	// into one of the interface functions for every ScopeWalker
	// presented, unless parsing the path's prefix fails.
	OnAbsolute() (ComponentWalker, error)
	OnRelative() (ComponentWalker, error)
	OnDriveLetter(drive rune) (ComponentWalker, error)
	OnShare(server, share string) (ComponentWalker, error)
}
