package bootstrap

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp_Run(t *testing.T) {
	t.Run("returns what the run function returns", func(t *testing.T) {
		app := New()
		require.NoError(t, app.Run(context.Background(), func(ctx context.Context) error {
			return nil
		}))

		app = New()
		startErr := errors.New("schedule reminder scan: bad cron spec")
		err := app.Run(context.Background(), func(ctx context.Context) error {
			return startErr
		})
		assert.ErrorIs(t, err, startErr)
	})

	t.Run("stops the daemon before closing the database", func(t *testing.T) {
		app := New()
		var order []string
		app.AddShutdownHook(func(ctx context.Context) error {
			order = append(order, "close database")
			return nil
		})
		app.AddShutdownHook(func(ctx context.Context) error {
			order = append(order, "stop daemon")
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"stop daemon", "close database"}, order)
	})

	t.Run("a failing hook does not stop the rest", func(t *testing.T) {
		app := New()
		closeErr := errors.New("close database: connection already closed")
		databaseClosed := false
		app.AddShutdownHook(func(ctx context.Context) error {
			databaseClosed = true
			return closeErr
		})
		app.AddShutdownHook(func(ctx context.Context) error {
			return nil
		})

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			cancel()
			<-ctx.Done()
			return nil
		})
		assert.ErrorIs(t, err, closeErr)
		assert.True(t, databaseClosed)
	})

	t.Run("hooks registered while running still fire", func(t *testing.T) {
		app := New()
		stopped := false

		ctx, cancel := context.WithCancel(context.Background())
		err := app.Run(ctx, func(ctx context.Context) error {
			app.AddShutdownHook(func(ctx context.Context) error {
				stopped = true
				return nil
			})
			cancel()
			<-ctx.Done()
			return nil
		})
		require.NoError(t, err)
		assert.True(t, stopped)
	})
}
