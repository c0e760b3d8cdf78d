package path_test

import (
	"testing"

	"github.com/buildbarn/bb-wslpath/pkg/filesystem/path"
	"github.com/buildbarn/bb-wslpath/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func mustGetWindowsString(p path.Stringer) string {
	s, err := p.GetWindowsString()
	if err != nil {
		panic(err)
	}
	return s
}

func TestBuilder(t *testing.T) {
	// The following paths should remain completely identical when
	// resolved without making any assumptions about the layout of
	// the underlying file system. ".." elements should not be
	// removed from paths.
	t.Run("UNIXIdentity", func(t *testing.T) {
		for _, p := range []string{
			".",
			"..",
			"/",
			"/..",
			"hello",
			"hello/",
			"hello/..",
			"/hello/",
			"/hello/..",
			"/hello/../world",
			"/hello/../world/",
			"/hello/../world/foo",
		} {
			t.Run(p, func(t *testing.T) {
				builder1, scopeWalker1 := path.EmptyBuilder.Join(path.VoidScopeWalker)
				require.NoError(t, path.Resolve(path.MustNewUNIXParser(p), scopeWalker1))
				require.Equal(t, p, builder1.GetUNIXString())

				builder2, scopeWalker2 := path.EmptyBuilder.Join(path.VoidScopeWalker)
				require.NoError(t, path.Resolve(builder1, scopeWalker2))
				require.Equal(t, p, builder2.GetUNIXString())
			})
		}
	})

	t.Run("WindowsIdentity", func(t *testing.T) {
		for _, p := range []string{
			"C:\\",
			"C:\\hello\\",
			"C:\\hello\\..",
			"C:\\hello\\..\\world",
			"C:\\hello\\..\\world\\",
			"C:\\hello\\..\\world\\foo",
			"\\\\?\\UNC\\server\\share\\",
			"\\\\?\\UNC\\server\\share\\hello",
		} {
			t.Run(p, func(t *testing.T) {
				builder1, scopeWalker1 := path.EmptyBuilder.Join(path.VoidScopeWalker)
				require.NoError(t, path.Resolve(path.MustNewWindowsParser(p), scopeWalker1))
				require.Equal(t, p, mustGetWindowsString(builder1))

				builder2, scopeWalker2 := path.EmptyBuilder.Join(path.VoidScopeWalker)
				require.NoError(t, path.Resolve(builder1, scopeWalker2))
				require.Equal(t, p, mustGetWindowsString(builder2))
			})
		}
	})

	t.Run("WindowsParseAndWriteUNIXPaths", func(t *testing.T) {
		for _, data := range [][]string{
			{"C:\\", "/"},
			{"C:\\.", "/"},
			{"C:\\hello\\", "/hello/"},
			{"C:\\hello\\.", "/hello/"},
			{"C:\\hello\\..", "/hello/.."},
			{"C:\\hello\\.\\world", "/hello/world"},
			{"C:\\hello\\..\\world", "/hello/../world"},
			{"C:\\hello\\\\..\\world\\foo", "/hello/../world/foo"},
			{"C:/hello/world", "/hello/world"},
		} {
			p := data[0]
			expected := data[1]
			t.Run(p, func(t *testing.T) {
				builder, scopeWalker := path.EmptyBuilder.Join(path.VoidScopeWalker)
				require.NoError(t, path.Resolve(path.MustNewWindowsParser(p), scopeWalker))
				require.Equal(t, expected, builder.GetUNIXString())
			})
		}
	})

	// Extended-length paths parse identically to their non-verbatim
	// counterparts, and serialize without the \\?\ prefix.
	t.Run("WindowsVerbatimTransparency", func(t *testing.T) {
		for _, data := range [][]string{
			{"\\\\?\\C:\\hello", "C:\\hello"},
			{"\\\\?\\C:\\hello\\..\\world", "C:\\hello\\..\\world"},
			{"\\??\\C:\\hello", "C:\\hello"},
		} {
			p := data[0]
			expected := data[1]
			t.Run(p, func(t *testing.T) {
				builder, scopeWalker := path.EmptyBuilder.Join(path.VoidScopeWalker)
				require.NoError(t, path.Resolve(path.MustNewWindowsParser(p), scopeWalker))
				require.Equal(t, expected, mustGetWindowsString(builder))
			})
		}
	})

	// When decorating LexicalScopeWalker, every pathname component
	// is cancelable, so ".." components collapse without consulting
	// a file system. A ".." that has nothing left to cancel is kept
	// literally.
	t.Run("LexicalNormalization", func(t *testing.T) {
		for _, data := range [][]string{
			{".", "."},
			{"./", "."},
			{"..", ".."},
			{"../..", "../.."},
			{"/", "/"},
			{"/..", "/.."},
			{"/../..", "/../.."},
			{"a/b/../../..", ".."},
			{"hello/./world", "hello/world"},
			{"/hello/..", "/"},
			{"/hello/../world", "/world"},
			{"/hello/world/../../foo", "/foo"},
		} {
			p := data[0]
			expected := data[1]
			t.Run(p, func(t *testing.T) {
				builder, scopeWalker := path.EmptyBuilder.Join(path.LexicalScopeWalker)
				require.NoError(t, path.Resolve(path.MustNewUNIXParser(p), scopeWalker))
				require.Equal(t, expected, builder.GetUNIXString())
			})
		}
	})

	t.Run("RootJoin", func(t *testing.T) {
		// Relative paths joined against RootBuilder resolve
		// against "/".
		builder1, scopeWalker1 := path.RootBuilder.Join(path.VoidScopeWalker)
		require.NoError(t, path.Resolve(path.MustNewUNIXParser("hello/world"), scopeWalker1))
		require.Equal(t, "/hello/world", builder1.GetUNIXString())

		builder2, scopeWalker2 := path.RootBuilder.Join(path.VoidScopeWalker)
		require.NoError(t, path.Resolve(path.MustNewUNIXParser(""), scopeWalker2))
		require.Equal(t, "/", builder2.GetUNIXString())
	})

	t.Run("RelativeJoin", func(t *testing.T) {
		builder1, scopeWalker1 := path.EmptyBuilder.Join(path.VoidScopeWalker)
		require.NoError(t, path.Resolve(path.MustNewUNIXParser("a/b"), scopeWalker1))
		require.Equal(t, "a/b", builder1.GetUNIXString())

		// Joining a relative path concatenates it to the path
		// computed thus far.
		builder2, scopeWalker2 := builder1.Join(path.VoidScopeWalker)
		require.NoError(t, path.Resolve(path.MustNewUNIXParser("c"), scopeWalker2))
		require.Equal(t, "a/b/c", builder2.GetUNIXString())

		// Joining a rooted path replaces the original path
		// entirely.
		builder3, scopeWalker3 := builder2.Join(path.VoidScopeWalker)
		require.NoError(t, path.Resolve(path.MustNewUNIXParser("/x"), scopeWalker3))
		require.Equal(t, "/x", builder3.GetUNIXString())
	})

	t.Run("WindowsComponentValidation", func(t *testing.T) {
		_, scopeWalker := path.EmptyBuilder.Join(path.VoidScopeWalker)
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.InvalidArgument, "Invalid pathname component \"he*llo\": Pathname component contains reserved characters"),
			path.Resolve(path.MustNewWindowsParser("C:\\he*llo"), scopeWalker))

		// Components that were obtained by parsing a Unix path
		// are only validated upon serialization.
		builder, scopeWalker := path.EmptyBuilder.Join(path.VoidScopeWalker)
		require.NoError(t, path.Resolve(path.MustNewUNIXParser("/hel:lo"), scopeWalker))
		require.Equal(t, "/hel:lo", builder.GetUNIXString())
		_, err := builder.GetWindowsString()
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.InvalidArgument, "Invalid pathname component \"hel:lo\": Pathname component contains reserved characters"),
			err)
	})
}
