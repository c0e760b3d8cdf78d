package path_test

import (
	"testing"

	"github.com/buildbarn/bb-wslpath/internal/mock"
	"github.com/buildbarn/bb-wslpath/pkg/filesystem/path"
	"github.com/buildbarn/bb-wslpath/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go.uber.org/mock/gomock"
)

func TestAbsoluteScopeWalker(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("Absolute", func(t *testing.T) {
		componentWalker := mock.NewMockComponentWalker(ctrl)
		componentWalker.EXPECT().OnTerminal(path.MustNewComponent("hello"))

		require.NoError(t, path.Resolve(
			path.MustNewUNIXParser("/hello"),
			path.NewAbsoluteScopeWalker(componentWalker)))
	})

	t.Run("DriveLetter", func(t *testing.T) {
		componentWalker := mock.NewMockComponentWalker(ctrl)
		componentWalker.EXPECT().OnTerminal(path.MustNewComponent("hello"))

		require.NoError(t, path.Resolve(
			path.MustNewWindowsParser("C:\\hello"),
			path.NewAbsoluteScopeWalker(componentWalker)))
	})

	t.Run("Share", func(t *testing.T) {
		componentWalker := mock.NewMockComponentWalker(ctrl)
		componentWalker.EXPECT().OnTerminal(path.MustNewComponent("hello"))

		require.NoError(t, path.Resolve(
			path.MustNewWindowsParser("\\\\?\\UNC\\server\\share\\hello"),
			path.NewAbsoluteScopeWalker(componentWalker)))
	})

	t.Run("Relative", func(t *testing.T) {
		componentWalker := mock.NewMockComponentWalker(ctrl)

		testutil.RequireEqualStatus(
			t,
			status.Error(codes.InvalidArgument, "Path is relative, while an absolute path was expected"),
			path.Resolve(
				path.MustNewUNIXParser("hello"),
				path.NewAbsoluteScopeWalker(componentWalker)))
	})
}
