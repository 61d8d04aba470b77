package system_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-pos/internal/infrastructure/system"
)

func TestUUIDGenerator_IDsUnicosYVersion7(t *testing.T) {
	gen := system.UUIDGenerator{}
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		id := gen.NewID()
		require.False(t, seen[id], "id repetido")
		seen[id] = true
		parsed, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, uuid.Version(7), parsed.Version())
	}
}

func TestClock_UsaLaZonaConfigurada(t *testing.T) {
	loc := time.FixedZone("COT", -5*3600)
	c := system.NewClock(loc)

	assert.Equal(t, loc, c.Location())
	assert.Equal(t, loc, c.Now().Location())
}

func TestLoadLocation(t *testing.T) {
	loc, err := system.LoadLocation("Local")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = system.LoadLocation("UTC")
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = system.LoadLocation("No/Existe")
	assert.Error(t, err)
}
