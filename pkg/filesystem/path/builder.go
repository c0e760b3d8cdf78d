package path

import (
	"strings"

	"github.com/buildbarn/bb-wslpath/pkg/util"
)

type builderScope int

const (
	builderScopeRelative builderScope = iota
	builderScopeAbsolute
	builderScopeDrive
	builderScopeShare
)

// Builder for normalized pathname strings.
//
// Instead of providing its own API for constructing paths, every
// Builder is created with an associated decorator for ScopeWalker. This
// means that Builder can, for example, be used to record the path
// traversed by Resolve(), similar to Go's filepath.EvalSymlinks() and
// libc's realpath().
//
// If there is no need to take the state of the file system into
// account, it's possible to let the Builder decorate VoidScopeWalker.
// This allows the construction of paths that don't exist (yet). In that
// case, unnecessary ".." components are retained, as preceding pathname
// components may refer to symlinks when applied against an actual file
// system. LexicalScopeWalker can be used instead to collapse ".."
// components without consulting a file system.
//
// A ".." component that has nothing left to cancel is always recorded
// literally, even when the path already carries a root. It is up to the
// consumer to decide whether such paths are meaningful.
type Builder struct {
	scope                builderScope
	drive                rune
	server               string
	share                string
	components           []string
	firstReversibleIndex int
	suffix               string
}

var (
	_ Parser   = &Builder{}
	_ Stringer = &Builder{}
)

// EmptyBuilder is a Builder that contains path ".". New instances of
// Builder that use this path as their starting point can be created by
// calling EmptyBuilder.Join().
var EmptyBuilder = Builder{
	suffix: ".",
}

// RootBuilder is a Builder that contains path "/". New instances of
// Builder that use this path as their starting point can be created by
// calling RootBuilder.Join().
var RootBuilder = Builder{
	scope:  builderScopeAbsolute,
	suffix: "/",
}

// GetUNIXString returns the built path in Unix form. Drive letter and
// share scopes have no Unix spelling of their own; they are rendered
// rooted at "/". Callers that need to map such scopes to a Unix
// location must do so through a ScopeWalker of their own.
func (b *Builder) GetUNIXString() string {
	prefix := ""
	if b.scope != builderScopeRelative {
		prefix = "/"
	}
	var out strings.Builder
	for _, component := range b.components {
		out.WriteString(prefix)
		out.WriteString(component)
		prefix = "/"
	}

	// Emit a trailing slash in case the path refers to a directory,
	// or a dot or slash if the path is empty.
	if len(b.components) == 0 {
		out.WriteString(prefix)
		if b.scope == builderScopeRelative {
			out.WriteString(b.suffix)
		}
	} else if b.suffix == "/" {
		out.WriteString("/")
	}
	return out.String()
}

// GetWindowsString returns the built path in Windows form. This fails
// if any of the recorded components cannot be used in a Windows
// filename.
func (b *Builder) GetWindowsString() (string, error) {
	for _, component := range b.components {
		if component != ".." {
			if err := validateWindowsComponent(component); err != nil {
				return "", util.StatusWrapf(err, "Invalid pathname component %#v", component)
			}
		}
	}

	var out strings.Builder
	switch b.scope {
	case builderScopeRelative:
	case builderScopeAbsolute:
		out.WriteString("\\")
	case builderScopeDrive:
		out.WriteRune(b.drive)
		out.WriteString(":\\")
	case builderScopeShare:
		out.WriteString("\\\\?\\UNC\\")
		out.WriteString(b.server)
		out.WriteString("\\")
		out.WriteString(b.share)
		out.WriteString("\\")
	}

	for i, component := range b.components {
		if i > 0 {
			out.WriteString("\\")
		}
		out.WriteString(component)
	}

	if len(b.components) == 0 {
		if b.scope == builderScopeRelative {
			out.WriteString(b.suffix)
		}
	} else if b.suffix == "/" {
		out.WriteString("\\")
	}
	return out.String(), nil
}

func (b *Builder) addTrailingSlash() {
	if len(b.components) == 0 {
		// An empty path. Ensure we either emit a separator or
		// ".", depending on whether the path carries a root.
		if b.scope == builderScopeRelative {
			b.suffix = "."
		} else {
			b.suffix = "/"
		}
	} else if b.components[len(b.components)-1] == ".." {
		// There is no need to put a trailing slash behind a
		// ".." component, as there is no way that can resolve
		// to a regular file.
		b.suffix = ""
	} else {
		b.suffix = "/"
	}
}

func (b *Builder) getScopeWalker(base ScopeWalker) ScopeWalker {
	return &buildingScopeWalker{
		base: base,
		b:    b,
	}
}

func (b *Builder) getComponentWalker(base ComponentWalker) ComponentWalker {
	return &buildingComponentWalker{
		base: base,
		b:    b,
	}
}

// Join another path with the results computed thus far.
//
// This function returns a copy of Builder and ScopeWalker that can be
// used to compute a path relative to the path computed thus far. If the
// newly provided path is relative, it is concatenated to the existing
// path. A trailing separator is appended to the original path. This is
// done to enforce that the original path is a directory.
//
// If the newly provided path carries a root, it replaces the original
// path entirely. If this needs to be prevented, it's possible to
// provide a ScopeWalker that was created using NewRelativeScopeWalker().
func (b *Builder) Join(scopeWalker ScopeWalker) (*Builder, ScopeWalker) {
	newB := *b
	newB.components = append([]string(nil), b.components...)
	newB.addTrailingSlash()
	return &newB, newB.getScopeWalker(scopeWalker)
}

// ParseScope replays the path contained in the Builder against a
// ScopeWalker, making it possible to use a built path wherever a parsed
// path is expected.
func (b *Builder) ParseScope(scopeWalker ScopeWalker) (next ComponentWalker, remainder RelativeParser, err error) {
	switch b.scope {
	case builderScopeRelative:
		next, err = scopeWalker.OnRelative()
	case builderScopeAbsolute:
		next, err = scopeWalker.OnAbsolute()
	case builderScopeDrive:
		next, err = scopeWalker.OnDriveLetter(b.drive)
	case builderScopeShare:
		next, err = scopeWalker.OnShare(b.server, b.share)
	default:
		panic("Missing scope")
	}
	if err != nil {
		return nil, nil, err
	}
	if len(b.components) == 0 {
		return next, nil, nil
	}
	return next, builderRelativeParser{
		components: b.components,
		suffix:     b.suffix,
	}, nil
}

type builderRelativeParser struct {
	components []string
	suffix     string
}

func (rp builderRelativeParser) ParseFirstComponent(componentWalker ComponentWalker, mustBeDirectory bool) (next GotDirectoryOrSymlink, remainder RelativeParser, err error) {
	name := rp.components[0]
	if len(rp.components) > 1 {
		remainder = builderRelativeParser{
			components: rp.components[1:],
			suffix:     rp.suffix,
		}
	}

	if name == ".." {
		parent, err := componentWalker.OnUp()
		if err != nil {
			return nil, nil, err
		}
		return GotDirectory{Child: parent}, remainder, nil
	}

	if mustBeDirectory || remainder != nil || rp.suffix == "/" {
		r, err := componentWalker.OnDirectory(Component{
			name: name,
		})
		if err != nil {
			return nil, nil, err
		}
		return r, remainder, nil
	}

	r, err := componentWalker.OnTerminal(Component{
		name: name,
	})
	if err != nil || r == nil {
		return nil, nil, err
	}
	return GotSymlink{
		Parent: r.Parent,
		Target: r.Target,
	}, nil, nil
}

type buildingScopeWalker struct {
	base ScopeWalker
	b    *Builder
}

func (w *buildingScopeWalker) resetScope(scope builderScope, drive rune, server, share string) {
	*w.b = Builder{
		scope:      scope,
		drive:      drive,
		server:     server,
		share:      share,
		components: w.b.components[:0],
		suffix:     "/",
	}
}

func (w *buildingScopeWalker) OnAbsolute() (ComponentWalker, error) {
	componentWalker, err := w.base.OnAbsolute()
	if err != nil {
		return nil, err
	}
	w.resetScope(builderScopeAbsolute, 0, "", "")
	return w.b.getComponentWalker(componentWalker), nil
}

func (w *buildingScopeWalker) OnRelative() (ComponentWalker, error) {
	componentWalker, err := w.base.OnRelative()
	if err != nil {
		return nil, err
	}
	return w.b.getComponentWalker(componentWalker), nil
}

func (w *buildingScopeWalker) OnDriveLetter(drive rune) (ComponentWalker, error) {
	componentWalker, err := w.base.OnDriveLetter(drive)
	if err != nil {
		return nil, err
	}
	w.resetScope(builderScopeDrive, drive, "", "")
	return w.b.getComponentWalker(componentWalker), nil
}

func (w *buildingScopeWalker) OnShare(server, share string) (ComponentWalker, error) {
	componentWalker, err := w.base.OnShare(server, share)
	if err != nil {
		return nil, err
	}
	w.resetScope(builderScopeShare, 0, server, share)
	return w.b.getComponentWalker(componentWalker), nil
}

type buildingComponentWalker struct {
	base ComponentWalker
	b    *Builder
}

func (cw *buildingComponentWalker) OnDirectory(name Component) (GotDirectoryOrSymlink, error) {
	r, err := cw.base.OnDirectory(name)
	if err != nil {
		return nil, err
	}
	switch rv := r.(type) {
	case GotDirectory:
		cw.b.components = append(cw.b.components, name.String())
		if !rv.IsReversible {
			cw.b.firstReversibleIndex = len(cw.b.components)
		}
		cw.b.suffix = "/"
		rv.Child = cw.b.getComponentWalker(rv.Child)
		return rv, nil
	case GotSymlink:
		rv.Parent = cw.b.getScopeWalker(rv.Parent)
		return rv, nil
	default:
		panic("Missing result")
	}
}

func (cw *buildingComponentWalker) OnTerminal(name Component) (*GotSymlink, error) {
	r, err := cw.base.OnTerminal(name)
	if err != nil {
		return nil, err
	}
	if r == nil {
		cw.b.components = append(cw.b.components, name.String())
		cw.b.suffix = ""
		return nil, nil
	}
	r.Parent = cw.b.getScopeWalker(r.Parent)
	return r, nil
}

func (cw *buildingComponentWalker) OnUp() (ComponentWalker, error) {
	componentWalker, err := cw.base.OnUp()
	if err != nil {
		return nil, err
	}
	if cw.b.firstReversibleIndex < len(cw.b.components) {
		// The last component is reversible, meaning that
		// appending "/.." or removing the last component yield
		// the same directory. Prefer the shorter
		// representation, but do add a trailing slash to
		// require that the resulting path is a directory.
		cw.b.components = cw.b.components[:len(cw.b.components)-1]
		cw.b.addTrailingSlash()
	} else {
		// Append a ".." component. This also applies to paths
		// that already carry a root: a ".." that would escape
		// above the root is kept literally instead of being
		// dropped or reported as an error.
		cw.b.components = append(cw.b.components, "..")
		cw.b.firstReversibleIndex = len(cw.b.components)
		cw.b.suffix = ""
	}
	return cw.b.getComponentWalker(componentWalker), nil
}
