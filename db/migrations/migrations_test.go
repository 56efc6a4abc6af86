package migrations

import (
	"io/fs"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionMatchesNewestMigration(t *testing.T) {
	entries, err := fs.Glob(FS, "*.up.sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	var newest uint64
	for _, name := range entries {
		n, err := strconv.ParseUint(strings.SplitN(name, "_", 2)[0], 10, 32)
		require.NoError(t, err, name)
		newest = max(newest, n)

		down := strings.TrimSuffix(name, ".up.sql") + ".down.sql"
		_, err = fs.Stat(FS, down)
		assert.NoError(t, err, "missing %s", down)
	}
	assert.Equal(t, uint64(Version), newest)
}
