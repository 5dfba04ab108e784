package kernel_test

import (
	"testing"

	"deliveryops/internal/core/domain/model/kernel"
	"deliveryops/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should create a valid random UUID", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.NotEqual(t, uuid.Nil.String(), id.String())
	})

	t.Run("should create unique UUIDs", func(t *testing.T) {
		assert.False(t, kernel.NewUUID().IsEqual(kernel.NewUUID()))
	})
}

func TestUUIDFromString(t *testing.T) {
	const canonical = "550e8400-e29b-41d4-a716-446655440000"

	t.Run("should accept the usual textual forms", func(t *testing.T) {
		for _, in := range []string{
			canonical,
			"{550e8400-e29b-41d4-a716-446655440000}",
			"urn:uuid:550e8400-e29b-41d4-a716-446655440000",
			"550e8400e29b41d4a716446655440000",
			"  " + canonical + "\n",
		} {
			id, err := kernel.UUIDFromString(in)

			require.NoError(t, err, in)
			assert.Equal(t, canonical, id.String())
		}
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		for _, in := range []string{"", "not-a-uuid", "550e8400-e29b-41d4-a716"} {
			_, err := kernel.UUIDFromString(in)

			require.Error(t, err, in)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromGoogle(t *testing.T) {
	t.Run("should wrap a non-nil uuid", func(t *testing.T) {
		raw := uuid.New()

		id, err := kernel.UUIDFromGoogle(raw)

		require.NoError(t, err)
		assert.Equal(t, raw, id.Google())
	})

	t.Run("should reject the nil uuid", func(t *testing.T) {
		_, err := kernel.UUIDFromGoogle(uuid.Nil)

		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestParseUUIDs(t *testing.T) {
	a, b := kernel.NewUUID(), kernel.NewUUID()

	t.Run("should keep request order", func(t *testing.T) {
		ids, err := kernel.ParseUUIDs([]string{b.String(), a.String()})

		require.NoError(t, err)
		require.Len(t, ids, 2)
		assert.True(t, ids[0].IsEqual(b))
		assert.True(t, ids[1].IsEqual(a))
	})

	t.Run("should name the malformed position", func(t *testing.T) {
		_, err := kernel.ParseUUIDs([]string{a.String(), "nope"})

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "orderIds[1]")
	})

	t.Run("should return empty slice for empty input", func(t *testing.T) {
		ids, err := kernel.ParseUUIDs(nil)

		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestUUID_Validate(t *testing.T) {
	var zero kernel.UUID

	assert.ErrorIs(t, zero.Validate(), kernel.ErrUUIDIsNotConstructed)
	assert.NoError(t, kernel.NewUUID().Validate())
}

func TestUUID_Less(t *testing.T) {
	lo, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000001")
	require.NoError(t, err)
	hi, err := kernel.UUIDFromString("00000000-0000-0000-0000-000000000002")
	require.NoError(t, err)

	assert.True(t, lo.Less(hi))
	assert.False(t, hi.Less(lo))
	assert.False(t, lo.Less(lo))
}
