package tests

import (
	"net"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// StartFiberApp serves app on a random local port until the test ends and returns its base URL.
func StartFiberApp(t *testing.T, app *fiber.App) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := app.Listener(ln); err != nil {
			t.Logf("fiber app stopped: %v", err)
		}
	}()
	t.Cleanup(func() {
		if err := app.Shutdown(); err != nil {
			t.Logf("Error shutting down fiber app: %v", err)
		}
		<-done
	})
	return "http://" + ln.Addr().String()
}

// ClosedPortURL returns a base URL nothing is listening on.
func ClosedPortURL(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return "http://" + addr
}
