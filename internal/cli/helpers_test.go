package cli

import (
	"context"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalContext(t *testing.T) {
	t.Run("Parent Cancel Records No Signal", func(t *testing.T) {
		parent, cancel := context.WithCancel(context.Background())
		sc := NewSignalContext(parent)
		cancel()

		<-sc.Done()
		assert.Nil(t, sc.Signal())
	})

	t.Run("SIGTERM Cancels And Is Recorded", func(t *testing.T) {
		sc := NewSignalContext(context.Background())
		defer sc.Cancel()

		require.NoError(t, syscall.Kill(os.Getpid(), syscall.SIGTERM))

		select {
		case <-sc.Done():
		case <-time.After(2 * time.Second):
			t.Fatal("context was not cancelled by SIGTERM")
		}
		assert.Equal(t, syscall.SIGTERM, sc.Signal())
	})
}
