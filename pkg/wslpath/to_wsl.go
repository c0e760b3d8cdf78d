package wslpath

import (
	"strings"
	"unicode"

	"github.com/buildbarn/bb-wslpath/pkg/filesystem/path"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// LoopbackHostname is the single UNC hostname under which Windows
// exposes the WSL guest's own root file system. Paths of the form
// "\\?\UNC\wsl.localhost\<distro>\..." address files inside the guest,
// so they convert to plain rooted paths. The hostname is matched
// case-insensitively.
const LoopbackHostname = "wsl.localhost"

var mntComponent = path.MustNewComponent("mnt")

// WindowsToWSL converts an absolute Windows path to the path under
// which the WSL guest exposes the same location.
//
// Drive letter prefixes, both plain ("C:\...") and extended-length
// ("\\?\C:\..."), map to the guest's "/mnt/<letter>/..." hierarchy
// with the drive letter lowercased. The loopback UNC prefix maps to
// the guest's root; the share name (the distribution name) is
// discarded. "." and ".." components are collapsed lexically; the
// file system is never consulted.
//
// Relative paths (including rooted paths without a drive, such as
// "\foo") yield ErrRelativePath. All other prefixes, such as device
// paths and UNC paths naming other servers, yield ErrInvalidPrefix.
//
// The result never ends in a separator, except for the bare root "/".
func WindowsToWSL(windowsPath string) (string, error) {
	parser, err := path.NewWindowsParser(windowsPath)
	if err != nil {
		return "", err
	}

	builder, next := path.EmptyBuilder.Join(path.LexicalScopeWalker)
	if err := path.Resolve(parser, &windowsScopeWalker{base: next}); err != nil {
		if status.Code(err) == codes.Unimplemented {
			return "", ErrInvalidPrefix
		}
		return "", err
	}

	// The builder emits a trailing separator for inputs that end in
	// a separator or ".". Only the root keeps one here.
	p := builder.GetUNIXString()
	if len(p) > 1 {
		p = strings.TrimSuffix(p, "/")
	}
	return p, nil
}

// windowsScopeWalker rewrites the scope reported by the Windows parser
// into the scope of the resulting WSL path. The remaining components
// flow into the underlying Builder unchanged.
type windowsScopeWalker struct {
	base path.ScopeWalker
}

func (w *windowsScopeWalker) OnAbsolute() (path.ComponentWalker, error) {
	// A path that starts with a separator but does not carry a
	// drive. Such paths are relative to the working directory's
	// drive, so they cannot be converted.
	return nil, ErrRelativePath
}

func (w *windowsScopeWalker) OnRelative() (path.ComponentWalker, error) {
	return nil, ErrRelativePath
}

func (w *windowsScopeWalker) OnDriveLetter(drive rune) (path.ComponentWalker, error) {
	componentWalker, err := w.base.OnAbsolute()
	if err != nil {
		return nil, err
	}

	// Place the remainder of the path under "/mnt/<letter>".
	for _, name := range []path.Component{
		mntComponent,
		path.MustNewComponent(string(unicode.ToLower(drive))),
	} {
		r, err := componentWalker.OnDirectory(name)
		if err != nil {
			return nil, err
		}
		d, ok := r.(path.GotDirectory)
		if !ok {
			panic("Missing result")
		}
		componentWalker = d.Child
	}
	return componentWalker, nil
}

func (w *windowsScopeWalker) OnShare(server, share string) (path.ComponentWalker, error) {
	if !strings.EqualFold(server, LoopbackHostname) {
		return nil, ErrInvalidPrefix
	}

	// The share names the distribution, which has no counterpart
	// inside the guest. The remainder of the path is rooted at "/".
	return w.base.OnAbsolute()
}
