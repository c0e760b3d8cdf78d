package program_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/buildbarn/bb-wslpath/pkg/program"
	"github.com/buildbarn/bb-wslpath/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestRunLocal(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		require.NoError(t, program.RunLocal(
			ctx,
			func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
				return nil
			}))
	})

	t.Run("Failure", func(t *testing.T) {
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Internal, "Boom"),
			program.RunLocal(
				ctx,
				func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
					return status.Error(codes.Internal, "Boom")
				}))
	})

	t.Run("Siblings", func(t *testing.T) {
		// All sibling routines must have completed by the time
		// RunLocal() returns.
		var completed atomic.Uint32
		require.NoError(t, program.RunLocal(
			ctx,
			func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
				for i := 0; i < 10; i++ {
					siblingsGroup.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
						completed.Add(1)
						return nil
					})
				}
				return nil
			}))
		require.Equal(t, uint32(10), completed.Load())
	})

	t.Run("FailureCancelsSiblings", func(t *testing.T) {
		// A failing routine causes the context of its siblings
		// to be canceled, so that they can shut down as well.
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.Internal, "Boom"),
			program.RunLocal(
				ctx,
				func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
					siblingsGroup.Go(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
						<-ctx.Done()
						return nil
					})
					return status.Error(codes.Internal, "Boom")
				}))
	})
}
