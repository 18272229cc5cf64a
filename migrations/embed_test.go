package migrations

import (
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsAreEmbedded(t *testing.T) {
	goose.SetBaseFS(FS)
	t.Cleanup(func() { goose.SetBaseFS(nil) })

	ms, err := goose.CollectMigrations(".", 0, goose.MaxVersion)

	require.NoError(t, err)
	require.Len(t, ms, 1)
	assert.Equal(t, int64(1), ms[0].Version)
}
