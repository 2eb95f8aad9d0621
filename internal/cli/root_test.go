package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/okorolenko/chirp/internal/errs"
)

// runRoot executes the CLI against a throwaway config and returns its
// combined output.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func memArgs(t *testing.T, identity string, args ...string) []string {
	t.Helper()
	base := []string{
		"--config", filepath.Join(t.TempDir(), "config.yaml"),
		"--dsn", "memory",
		"--identity", identity,
	}
	return append(base, args...)
}

func TestRoot_InvalidFormat(t *testing.T) {
	_, err := runRoot(t, memArgs(t, "id-a", "--format", "xml", "users")...)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid format")
}

func TestClaim_Memory(t *testing.T) {
	out, err := runRoot(t, memArgs(t, "id-a", "claim", "alice")...)
	require.NoError(t, err)
	require.Contains(t, out, `claimed username "alice"`)
}

func TestClaim_EmptyUsername(t *testing.T) {
	_, err := runRoot(t, memArgs(t, "id-a", "claim", "")...)
	require.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestUsers_EmptyRegistry(t *testing.T) {
	_, err := runRoot(t, memArgs(t, "id-a", "users")...)
	require.ErrorIs(t, err, errs.ErrNoUsers)
}

func TestTweetCreate_Unregistered(t *testing.T) {
	// Memory mode starts empty, so the identity holds no username.
	_, err := runRoot(t, memArgs(t, "id-a", "tweet", "create", "hello")...)
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestTweetGet_BadID(t *testing.T) {
	_, err := runRoot(t, memArgs(t, "id-a", "tweet", "get", "not-a-number")...)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid tweet id")
}
