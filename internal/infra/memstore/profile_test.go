//go:build unit

package memstore_test

import (
	"testing"

	"room-booking/internal/domain/profile"
	"room-booking/internal/infra/memstore"
	"room-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileStore(t *testing.T) {
	t.Run("初期値はデフォルトプロフィール", func(t *testing.T) {
		s := memstore.NewProfileStore(nil)
		assert.Equal(t, profile.Default(), s.Get())
	})

	t.Run("置き換え", func(t *testing.T) {
		s := memstore.NewProfileStore(nil)
		p, err := builder.NewProfileBuilder().With(func(b *builder.ProfileBuilder) {
			b.Department = "Finance"
		}).BuildDomain()
		require.NoError(t, err)

		s.Replace(p)
		assert.Same(t, p, s.Get())
	})
}
