//go:build unit

package readstore

import (
	"context"
	"testing"

	"room-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileFindBySession(t *testing.T) {
	sess := newSession(t)
	sessions := new(MockSessionSource)
	sessions.On("Get", sess.ID).Return(sess)
	store := NewProfileReadStore(sessions)

	t.Run("default profile", func(t *testing.T) {
		got, err := store.FindBySession(context.Background(), sess.ID)
		require.NoError(t, err)
		assert.Equal(t, builder.NewProfileBuilder().BuildView(), got)
	})

	t.Run("after replace", func(t *testing.T) {
		p, err := builder.NewProfileBuilder().With(func(b *builder.ProfileBuilder) {
			b.FirstName = "Jeanne"
			b.Department = "Ventes"
		}).BuildDomain()
		require.NoError(t, err)
		sess.Profile.Replace(p)

		got, err := store.FindBySession(context.Background(), sess.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jeanne", got.FirstName)
		assert.Equal(t, "Jeanne Doe", got.FullName)
		assert.Equal(t, "Ventes", got.Department)
	})
}
