//go:build unit

package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"room-booking/internal/domain/room"
	"room-booking/internal/infra/catalog"
	"room-booking/internal/pkg/errs"
	"room-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmbeddedSeed(t *testing.T) {
	c, err := catalog.Load("")
	require.NoError(t, err)

	seed := builder.SeedRooms()
	want := make([]*room.Room, len(seed))
	for i, b := range seed {
		want[i], err = b.BuildDomain()
		require.NoError(t, err)
	}

	if diff := cmp.Diff(want, c.List(), cmp.AllowUnexported(room.Room{})); diff != "" {
		t.Errorf("seed mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.yaml")
	data := []byte(`rooms:
  - id: 9
    name: Salle Annexe
    capacity: 4
    equipment: [Wifi]
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	c, err := catalog.Load(path)
	require.NoError(t, err)

	rooms := c.List()
	require.Len(t, rooms, 1)
	assert.Equal(t, 9, rooms[0].ID())
	assert.Equal(t, "Salle Annexe", rooms[0].Name())
	assert.Equal(t, 4, rooms[0].Capacity())
}

func TestLoadMissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.False(t, errs.Is(err, catalog.ErrInvalidSeed))
}

func TestParseInvalidSeed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "壊れたYAML", data: "rooms: [\n"},
		{name: "未知のフィールド", data: "rooms:\n  - id: 1\n    name: A\n    capacity: 2\n    floor: 3\n"},
		{name: "容量0", data: "rooms:\n  - id: 1\n    name: A\n    capacity: 0\n"},
		{name: "ID重複", data: "rooms:\n  - id: 1\n    name: A\n    capacity: 2\n  - id: 1\n    name: B\n    capacity: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.Parse([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errs.Is(err, catalog.ErrInvalidSeed))
		})
	}
}
