package ledgercli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeStub(t *testing.T, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger")
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func TestConvert_CapturesStdout(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\nexec cat \"$2\"\n")

	csvPath := filepath.Join(t.TempDir(), "in.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("amount,date,description,note\n"), 0o644))

	out, err := Convert(stub, csvPath, DefaultDateFormat, "Assets:Checking")
	require.NoError(t, err)
	assert.Equal(t, "amount,date,description,note\n", string(out))
}

func TestConvert_ArgumentOrder(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\nprintf '%s|%s|%s|%s|%s|%s' \"$1\" \"$2\" \"$3\" \"$4\" \"$5\" \"$6\"\n")

	out, err := Convert(stub, "/tmp/in.csv", "%Y-%m-%d", "Assets:Ally Savings")
	require.NoError(t, err)

	// The account stays one argument even with a space in it.
	assert.Equal(t, "convert|/tmp/in.csv|--input-date-format|%Y-%m-%d|--account|Assets:Ally Savings", string(out))
}

func TestConvert_NonzeroExit(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\necho boom >&2\nexit 3\n")

	_, err := Convert(stub, "/tmp/in.csv", DefaultDateFormat, "Assets:Checking")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestConvert_MissingBinary(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-ledger")
	_, err := Convert(missing, "/tmp/in.csv", DefaultDateFormat, "Assets:Checking")
	assert.Error(t, err)
}
