package migrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	up, err := Load(Up)
	require.NoError(t, err)
	require.NotEmpty(t, up)
	assert.Equal(t, "000001_init", up[0].Name)
	assert.Contains(t, up[0].SQL, "CREATE TABLE IF NOT EXISTS approval_records")

	down, err := Load(Down)
	require.NoError(t, err)
	require.Len(t, down, len(up))
	assert.Contains(t, down[0].SQL, "DROP TABLE IF EXISTS approval_records")
}

func TestLoad_UnknownDirection(t *testing.T) {
	_, err := Load("sideways")
	assert.Error(t, err)
}
