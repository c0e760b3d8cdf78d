package path

import (
	"strings"

	"github.com/buildbarn/bb-wslpath/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func stripWindowsSeparators(p string) string {
	for p != "" && (p[0] == '\\' || p[0] == '/') {
		p = p[1:]
	}
	return p
}

func isWindowsSeparator(c byte) bool {
	return c == '\\' || c == '/'
}

// validateWindowsComponent checks that a pathname component only
// consists of characters that Windows permits in filenames.
func validateWindowsComponent(name string) error {
	if strings.ContainsAny(name, "<>:\"|?*") {
		return status.Error(codes.InvalidArgument, "Pathname component contains reserved characters")
	}
	for i := 0; i < len(name); i++ {
		if name[i] < 0x20 {
			return status.Error(codes.InvalidArgument, "Pathname component contains reserved characters")
		}
	}
	return nil
}

func parseUNCPath(uncPath string, scopeWalker ScopeWalker) (ComponentWalker, RelativeParser, error) {
	var server, rest string
	if serverLen := strings.IndexAny(uncPath, "\\/"); serverLen == -1 {
		server = uncPath
	} else {
		server = uncPath[:serverLen]
		rest = stripWindowsSeparators(uncPath[serverLen:])
	}
	if server == "" {
		// A UNC prefix without a server name does not match any
		// supported form.
		return nil, nil, status.Error(codes.Unimplemented, "Path has an unsupported prefix")
	}

	var share, remainder string
	if shareLen := strings.IndexAny(rest, "\\/"); shareLen == -1 {
		share = rest
	} else {
		share = rest[:shareLen]
		remainder = stripWindowsSeparators(rest[shareLen:])
	}
	if share == "" {
		// A server without a share cannot refer to a file.
		return nil, nil, status.Error(codes.Unimplemented, "Path has an unsupported prefix")
	}

	next, err := scopeWalker.OnShare(server, share)
	if err != nil {
		return nil, nil, err
	}
	return next, windowsRelativeParser{remainder}, nil
}

type windowsParser struct {
	path string
}

// NewWindowsParser creates a Parser for Windows paths that can be used
// in Resolve.
//
// Plain UNC paths ("\\server\share") and device paths ("\\.\COM1") are
// rejected. Shares can only be referenced through the extended-length
// form ("\\?\UNC\server\share").
func NewWindowsParser(path string) (Parser, error) {
	if strings.ContainsRune(path, '\x00') {
		return nil, status.Error(codes.InvalidArgument, "Path contains a null byte")
	}

	return &windowsParser{path: path}, nil
}

// MustNewWindowsParser is identical to NewWindowsParser, except that it
// panics upon failure.
func MustNewWindowsParser(path string) Parser {
	parser, err := NewWindowsParser(path)
	if err != nil {
		panic(err)
	}
	return parser
}

func (p windowsParser) ParseScope(scopeWalker ScopeWalker) (next ComponentWalker, remainder RelativeParser, err error) {
	// Handle extended-length paths starting with \\?\, and NT
	// object namespace paths starting with \??\. These prefixes
	// disable further parsing magic on the host side, but parse
	// identically to their non-verbatim counterparts here.
	// https://learn.microsoft.com/en-us/openspecs/windows_protocols/ms-even/c1550f98-a1ce-426a-9991-7509e7c3787c
	path := p.path
	verbatim := false
	if len(path) >= 4 && path[0] == '\\' && (path[1] == '\\' || path[1] == '?') && path[2] == '?' && path[3] == '\\' {
		path = path[4:]
		verbatim = true
		// Handle \\?\UNC\ and \??\UNC\.
		if len(path) >= 4 && strings.EqualFold(path[:4], "UNC\\") {
			return parseUNCPath(path[4:], scopeWalker)
		}
	}

	if len(path) >= 2 {
		upperDriveLetter := path[0] &^ 0x20
		if upperDriveLetter >= 'A' && upperDriveLetter <= 'Z' && path[1] == ':' {
			if !verbatim && (len(path) == 2 || !isWindowsSeparator(path[2])) {
				// A drive-relative path ("C:" or "C:foo"),
				// which can only be resolved by consulting the
				// working directory that is associated with
				// the drive.
				next, err = scopeWalker.OnRelative()
				if err != nil {
					return nil, nil, err
				}
				return next, windowsRelativeParser{path[2:]}, nil
			}

			next, err = scopeWalker.OnDriveLetter(rune(upperDriveLetter))
			if err != nil {
				return nil, nil, err
			}
			return next, windowsRelativeParser{stripWindowsSeparators(path[2:])}, nil
		}

		if !verbatim && isWindowsSeparator(path[0]) && isWindowsSeparator(path[1]) {
			// A plain UNC path ("\\server\share") or device
			// path ("\\.\COM1").
			return nil, nil, status.Error(codes.Unimplemented, "Path has an unsupported prefix")
		}
	}

	if verbatim {
		// \\?\ followed by something other than a drive or UNC
		// share, such as a volume GUID.
		return nil, nil, status.Error(codes.Unimplemented, "Path has an unsupported prefix")
	}

	if len(path) >= 1 && isWindowsSeparator(path[0]) {
		next, err = scopeWalker.OnAbsolute()
		if err != nil {
			return nil, nil, err
		}
		return next, windowsRelativeParser{stripWindowsSeparators(path)}, nil
	}

	next, err = scopeWalker.OnRelative()
	if err != nil {
		return nil, nil, err
	}
	return next, windowsRelativeParser{path}, nil
}

type windowsRelativeParser struct {
	path string
}

func (rp windowsRelativeParser) ParseFirstComponent(componentWalker ComponentWalker, mustBeDirectory bool) (next GotDirectoryOrSymlink, remainder RelativeParser, err error) {
	var name string
	if separator := strings.IndexAny(rp.path, "/\\"); separator == -1 {
		// Path no longer contains a separator. Consume it entirely.
		name = rp.path
		remainder = nil
	} else {
		name = rp.path[:separator]
		remainder = windowsRelativeParser{
			path: stripWindowsSeparators(rp.path[separator:]),
		}
	}

	switch name {
	case "", ".":
		// An explicit "." entry, or an empty component. Empty
		// components can occur if paths end with one or more
		// separators. Treat "foo\" as identical to "foo\."
		return GotDirectory{Child: componentWalker}, remainder, nil
	case "..":
		// Traverse to the parent directory.
		parent, err := componentWalker.OnUp()
		if err != nil {
			return nil, nil, err
		}
		return GotDirectory{Child: parent}, remainder, nil
	}

	if err := validateWindowsComponent(name); err != nil {
		return nil, nil, util.StatusWrapf(err, "Invalid pathname component %#v", name)
	}

	// A filename that was followed by a separator, or we are
	// symlink expanding one or more paths that are followed by a
	// separator. This component must yield a directory or symlink.
	if mustBeDirectory || remainder != nil {
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
		// Path resolution ended with any file other than a
		// symlink.
		return nil, nil, err
	}

	// Observed a symlink at the end of a path. We should continue
	// to run.
	return GotSymlink{
		Parent: r.Parent,
		Target: r.Target,
	}, nil, nil
}

type windowsFormat struct{}

func (windowsFormat) NewParser(path string) (Parser, error) {
	return NewWindowsParser(path)
}

func (windowsFormat) GetString(s Stringer) (string, error) {
	return s.GetWindowsString()
}

// WindowsFormat is capable of parsing Windows-style pathname strings,
// and stringifying parsed paths in that format as well.
var WindowsFormat Format = windowsFormat{}
