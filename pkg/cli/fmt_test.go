package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const messySchema = `model   User {
    id   String   @id   @default(cuid())
    name String
}
`

func TestFmtCmd_PrintsCanonicalText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.prisma")
	require.NoError(t, os.WriteFile(path, []byte(messySchema), 0644))

	cmd := NewFmtCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--schema", path})
	require.NoError(t, cmd.Execute())

	require.Equal(t, "model User {\n  id String @id @default(cuid())\n  name String\n}\n", out.String())
}

func TestFmtCmd_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.prisma")
	require.NoError(t, os.WriteFile(path, []byte(messySchema), 0644))

	cmd := NewFmtCmd()
	cmd.SetArgs([]string{"--schema", path, "--write"})
	require.NoError(t, cmd.Execute())

	rewritten, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "model User {\n  id String @id @default(cuid())\n  name String\n}\n", string(rewritten))
}
