package path

type resolverState struct {
	stack           []RelativeParser
	componentWalker ComponentWalker
}

// Push a new path onto the stack of paths that need to be processed.
// This happens once when the resolution process starts, and will happen
// for every symlink encountered.
func (rs *resolverState) push(parser Parser, scopeWalker ScopeWalker) error {
	componentWalker, remainder, err := parser.ParseScope(scopeWalker)
	if err != nil {
		return err
	}
	if remainder != nil {
		rs.stack = append(rs.stack, remainder)
	}
	rs.componentWalker = componentWalker
	return nil
}

func (rs *resolverState) resolve() error {
	for len(rs.stack) > 0 {
		// Consume a single component from the path on top of the
		// stack. Components belonging to symlinks that were
		// followed in the middle of a path must resolve to
		// directories.
		parser := rs.stack[len(rs.stack)-1]
		r, remainder, err := parser.ParseFirstComponent(rs.componentWalker, len(rs.stack) > 1)
		if err != nil {
			return err
		}
		if remainder == nil {
			rs.stack = rs.stack[:len(rs.stack)-1]
		} else {
			rs.stack[len(rs.stack)-1] = remainder
		}

		switch rv := r.(type) {
		case GotDirectory:
			rs.componentWalker = rv.Child
		case GotSymlink:
			// Observed a symlink. Expand its target against
			// the directory that contained it.
			if err := rs.push(rv.Target, rv.Parent); err != nil {
				return err
			}
		case nil:
			// Path resolution ended with any file other than
			// a symlink.
		default:
			panic("Missing result")
		}
	}
	return nil
}

// Resolve a pathname string, similar to how the namei() function would
// work in the kernel. For every productive component in the pathname, a
// call against a ScopeWalker or ComponentWalker object is made. This
// object is responsible for registering the path traversal and
// returning symbolic link contents.
//
// This function only implements the core algorithm for path resolution.
// Features like symlink loop detection, chrooting, etc. should all be
// implemented as decorators for ScopeWalker and ComponentWalker.
func Resolve(parser Parser, scopeWalker ScopeWalker) error {
	state := resolverState{}
	if err := state.push(parser, scopeWalker); err != nil {
		return err
	}
	return state.resolve()
}
