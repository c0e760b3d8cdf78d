package wslpath_test

import (
	"testing"

	"github.com/buildbarn/bb-wslpath/pkg/testutil"
	"github.com/buildbarn/bb-wslpath/pkg/wslpath"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestWSLToWindows(t *testing.T) {
	t.Run("DriveLetter", func(t *testing.T) {
		// The "/mnt/<letter>" prefix maps to a drive, with the
		// letter uppercased. Segment case is preserved.
		for _, p := range [][2]string{
			{"/mnt/c", "C:\\"},
			{"/mnt/c/", "C:\\"},
			{"/mnt/c/Windows/", "C:\\Windows"},
			{"/mnt/c/Windows", "C:\\Windows"},
			{"/mnt/C/Windows", "C:\\Windows"},
			{"/mnt/d/Program Files (x86)/Foo", "D:\\Program Files (x86)\\Foo"},
			{"/mnt/z/a/b/c.txt", "Z:\\a\\b\\c.txt"},
		} {
			got, err := wslpath.WSLToWindows(p[0])
			require.NoError(t, err, p[0])
			require.Equal(t, p[1], got, p[0])
		}
	})

	t.Run("Normalization", func(t *testing.T) {
		for _, p := range [][2]string{
			{"/mnt/c/foo/../bar/./baz.txt", "C:\\bar\\baz.txt"},
			{"/mnt/c/foo//bar", "C:\\foo\\bar"},
			{"/mnt/c/foo/.", "C:\\foo"},
			{"/mnt/c/foo/..", "C:\\"},
			{"/mnt/c/..", "C:\\.."},
		} {
			got, err := wslpath.WSLToWindows(p[0])
			require.NoError(t, err, p[0])
			require.Equal(t, p[1], got, p[0])
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		// Converting a normalized guest path to Windows and
		// back yields the original path.
		for _, p := range []string{
			"/mnt/c",
			"/mnt/c/Windows",
			"/mnt/d/Program Files (x86)/Foo",
		} {
			windowsPath, err := wslpath.WSLToWindows(p)
			require.NoError(t, err, p)
			got, err := wslpath.WindowsToWSL(windowsPath)
			require.NoError(t, err, p)
			require.Equal(t, p, got, p)
		}
	})

	t.Run("RelativePath", func(t *testing.T) {
		for _, p := range []string{
			"Foo/bar.txt",
			"../foo/bar.txt",
			".",
			"",
			"mnt/c/foo",
		} {
			_, err := wslpath.WSLToWindows(p)
			require.ErrorIs(t, err, wslpath.ErrRelativePath, p)
		}
	})

	t.Run("InvalidPrefix", func(t *testing.T) {
		// Only "/mnt/<letter>" roots have a Windows
		// counterpart. There is no inverse of the loopback UNC
		// mapping, as the distribution name is not known here.
		for _, p := range []string{
			"/",
			"/mnt",
			"/mnt/",
			"/mnt/..",
			"/etc/fstab",
			"/mnt/my_custom_mount/foo/bar.txt",
			"/mnt/c1/foo",
			"/home/user/file",
		} {
			_, err := wslpath.WSLToWindows(p)
			require.ErrorIs(t, err, wslpath.ErrInvalidPrefix, p)
		}
	})

	t.Run("ReservedCharacters", func(t *testing.T) {
		// Guest file names may contain characters that cannot
		// occur in a Windows path.
		_, err := wslpath.WSLToWindows("/mnt/c/he:llo")
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.InvalidArgument, "Invalid pathname component \"he:llo\": Pathname component contains reserved characters"),
			err)
	})

	t.Run("NullByte", func(t *testing.T) {
		_, err := wslpath.WSLToWindows("/mnt/c/hello\x00world")
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.InvalidArgument, "Path contains a null byte"),
			err)
	})
}
