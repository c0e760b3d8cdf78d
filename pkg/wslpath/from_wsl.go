package wslpath

import (
	"strings"
	"unicode"

	"github.com/buildbarn/bb-wslpath/pkg/filesystem/path"
)

// WSLToWindows converts an absolute path inside the WSL guest to the
// Windows path that addresses the same location.
//
// Only paths of the form "/mnt/<letter>/..." can be converted; they
// map to "<LETTER>:\..." with the drive letter uppercased. "." and
// ".." components are collapsed lexically; the file system is never
// consulted.
//
// Relative paths yield ErrRelativePath. Absolute paths outside of
// "/mnt/<letter>" yield ErrInvalidPrefix. This includes plain rooted
// paths such as "/etc/fstab": even though the loopback UNC form maps
// onto such paths in the other direction, there is no inverse mapping,
// as the distribution name that a UNC path requires is not known to
// this package.
//
// The result never ends in a separator, except for the drive root
// "X:\".
func WSLToWindows(wslPath string) (string, error) {
	parser, err := path.NewUNIXParser(wslPath)
	if err != nil {
		return "", err
	}

	builder, next := path.EmptyBuilder.Join(path.LexicalScopeWalker)
	w := &wslScopeWalker{base: next}
	if err := path.Resolve(parser, w); err != nil {
		return "", err
	}
	if !w.driveSeen {
		// The path ended before a drive letter was observed
		// ("/", "/mnt" or "/mnt/").
		return "", ErrInvalidPrefix
	}

	// The builder emits a trailing separator for inputs that end in
	// a separator or ".". Only the drive root keeps one here.
	p, err := builder.GetWindowsString()
	if err != nil {
		return "", err
	}
	if len(p) > len("C:\\") {
		p = strings.TrimSuffix(p, "\\")
	}
	return p, nil
}

// wslScopeWalker requires the path to start with "/mnt/<letter>" and
// turns that prefix into the drive letter of the resulting Windows
// path. The remaining components flow into the underlying Builder
// unchanged.
type wslScopeWalker struct {
	base      path.ScopeWalker
	driveSeen bool
}

func (w *wslScopeWalker) OnAbsolute() (path.ComponentWalker, error) {
	return &mountsComponentWalker{walker: w}, nil
}

func (w *wslScopeWalker) OnRelative() (path.ComponentWalker, error) {
	return nil, ErrRelativePath
}

func (w *wslScopeWalker) OnDriveLetter(drive rune) (path.ComponentWalker, error) {
	return nil, ErrInvalidPrefix
}

func (w *wslScopeWalker) OnShare(server, share string) (path.ComponentWalker, error) {
	return nil, ErrInvalidPrefix
}

// mountsComponentWalker expects the literal component "mnt".
type mountsComponentWalker struct {
	walker *wslScopeWalker
}

func (cw *mountsComponentWalker) OnDirectory(name path.Component) (path.GotDirectoryOrSymlink, error) {
	if name.String() != "mnt" {
		return nil, ErrInvalidPrefix
	}
	return path.GotDirectory{
		Child: &driveComponentWalker{walker: cw.walker},
	}, nil
}

func (cw *mountsComponentWalker) OnTerminal(name path.Component) (*path.GotSymlink, error) {
	// The path ended at "/<name>" without a drive letter.
	return nil, ErrInvalidPrefix
}

func (cw *mountsComponentWalker) OnUp() (path.ComponentWalker, error) {
	return nil, ErrInvalidPrefix
}

// driveComponentWalker expects a single-letter component naming the
// drive that is mounted at "/mnt/<letter>".
type driveComponentWalker struct {
	walker *wslScopeWalker
}

func (cw *driveComponentWalker) toDriveLetter(name path.Component) (path.ComponentWalker, error) {
	drive := name.String()
	if len(drive) != 1 || !isASCIILetter(drive[0]) {
		return nil, ErrInvalidPrefix
	}
	componentWalker, err := cw.walker.base.OnDriveLetter(unicode.ToUpper(rune(drive[0])))
	if err != nil {
		return nil, err
	}
	cw.walker.driveSeen = true
	return componentWalker, nil
}

func (cw *driveComponentWalker) OnDirectory(name path.Component) (path.GotDirectoryOrSymlink, error) {
	componentWalker, err := cw.toDriveLetter(name)
	if err != nil {
		return nil, err
	}
	return path.GotDirectory{Child: componentWalker}, nil
}

func (cw *driveComponentWalker) OnTerminal(name path.Component) (*path.GotSymlink, error) {
	// The path ends at the drive's root ("/mnt/c").
	_, err := cw.toDriveLetter(name)
	return nil, err
}

func (cw *driveComponentWalker) OnUp() (path.ComponentWalker, error) {
	// "/mnt/.." escapes the mount hierarchy before naming a drive.
	return nil, ErrInvalidPrefix
}

func isASCIILetter(c byte) bool {
	upper := c &^ 0x20
	return upper >= 'A' && upper <= 'Z'
}
