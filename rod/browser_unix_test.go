//go:build integration && !windows

package rod_test

import (
	"syscall"
	"testing"
	"time"

	ecrod "github.com/rjoshi/ecourts/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBrowser_Close_KillsLauncherProcess(t *testing.T) {
	t.Parallel()

	srv, _ := portalStub(t)

	browser, err := ecrod.NewBrowser(srv.URL)
	require.NoError(t, err)

	pid := browser.LauncherPID()
	require.NotZero(t, pid, "launcher PID should be set")

	// Signal 0 checks if the process exists without affecting it.
	err = syscall.Kill(pid, syscall.Signal(0))
	require.NoError(t, err, "launcher process should be running before Close()")

	err = browser.Close()
	require.NoError(t, err)

	// Give the OS a moment to clean up the process
	time.Sleep(100 * time.Millisecond)

	err = syscall.Kill(pid, syscall.Signal(0))
	assert.Error(t, err, "launcher process should be terminated after Close()")
}
