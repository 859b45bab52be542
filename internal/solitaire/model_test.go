package solitaire

import (
	"testing"

	"github.com/rocketscienceinc/marblesolitaire/internal/apperror"
	"github.com/rocketscienceinc/marblesolitaire/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariant(t *testing.T) {
	t.Run("Known names", func(t *testing.T) {
		for name, expected := range map[string]Variant{
			"english":    English,
			"European":   European,
			" TRIANGULAR": Triangular,
		} {
			variant, err := ParseVariant(name)
			require.NoError(t, err)
			assert.Equal(t, expected, variant)
		}
	})

	t.Run("Unknown name", func(t *testing.T) {
		_, err := ParseVariant("chinese")
		require.ErrorIs(t, err, apperror.ErrUnknownVariant)
	})
}

func TestNew(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cases := []struct {
			variant Variant
			size    int
			score   int
			hole    [2]int
		}{
			{variant: English, size: 7, score: 32, hole: [2]int{3, 3}},
			{variant: European, size: 7, score: 36, hole: [2]int{3, 3}},
			{variant: Triangular, size: 5, score: 14, hole: [2]int{0, 0}},
		}

		for _, tc := range cases {
			// When: a board is created without options
			model, err := New(tc.variant)
			require.NoError(t, err)

			// Then: it has the default size and hole
			assert.Equal(t, tc.variant, model.Variant())
			assert.Equal(t, tc.size, model.BoardSize())
			assert.Equal(t, tc.score, model.Score())

			slot, err := model.SlotAt(tc.hole[0], tc.hole[1])
			require.NoError(t, err)
			assert.Equal(t, entity.Empty, slot)
		}
	})

	t.Run("Size moves the default hole to the new center", func(t *testing.T) {
		model, err := New(English, WithSize(5))
		require.NoError(t, err)

		slot, err := model.SlotAt(6, 6)
		require.NoError(t, err)
		assert.Equal(t, entity.Empty, slot)
	})

	t.Run("Size and hole", func(t *testing.T) {
		model, err := New(Triangular, WithSize(7), WithHole(3, 1))
		require.NoError(t, err)

		assert.Equal(t, 27, model.Score())
		slot, err := model.SlotAt(3, 1)
		require.NoError(t, err)
		assert.Equal(t, entity.Empty, slot)
	})

	t.Run("Invalid options", func(t *testing.T) {
		model, err := New(European, WithSize(4))
		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
		assert.Nil(t, model)

		model, err = New(English, WithHole(0, 6))
		require.ErrorIs(t, err, apperror.ErrInvalidConfiguration)
		assert.Nil(t, model)
	})

	t.Run("Explicit zero size is rejected", func(t *testing.T) {
		for _, variant := range []Variant{English, European, Triangular} {
			model, err := New(variant, WithSize(0))
			require.ErrorIs(t, err, apperror.ErrInvalidConfiguration, variant)
			assert.Nil(t, model)
		}
	})

	t.Run("Unknown variant", func(t *testing.T) {
		_, err := New(Variant("hexagonal"))
		require.ErrorIs(t, err, apperror.ErrUnknownVariant)
	})
}

func TestSizeOf(t *testing.T) {
	cases := []struct {
		variant Variant
		size    int
	}{
		{variant: English, size: 3},
		{variant: European, size: 5},
		{variant: Triangular, size: 6},
	}

	for _, tc := range cases {
		// Given: a board built with an explicit size
		model, err := New(tc.variant, WithSize(tc.size))
		require.NoError(t, err)

		// Then: SizeOf gives back the value WithSize was called with
		assert.Equal(t, tc.size, SizeOf(model), tc.variant)
	}
}
