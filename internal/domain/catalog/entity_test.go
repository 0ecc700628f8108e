//go:build unit

package catalog_test

import (
	"testing"

	"groomly/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService(t *testing.T) {
	t.Run("valid service", func(t *testing.T) {
		svc, err := catalog.NewService("  Banho  ", " Banho completo ", 6000, 45)
		require.NoError(t, err)

		assert.Equal(t, "Banho", svc.Name())
		assert.Equal(t, "Banho completo", svc.Description())
		assert.Equal(t, int64(6000), svc.PriceCents())
		assert.Equal(t, 45, svc.DurationMinutes())
		assert.True(t, svc.IsActive())
		assert.Zero(t, svc.ID())
	})

	t.Run("free service is allowed", func(t *testing.T) {
		svc, err := catalog.NewService("Avaliacao", "", 0, 15)
		require.NoError(t, err)
		assert.Equal(t, int64(0), svc.PriceCents())
	})

	tests := []struct {
		name            string
		svcName         string
		priceCents      int64
		durationMinutes int
		errIs           error
	}{
		{name: "blank name", svcName: "   ", priceCents: 6000, durationMinutes: 45, errIs: catalog.ErrEmptyName},
		{name: "negative price", svcName: "Banho", priceCents: -1, durationMinutes: 45, errIs: catalog.ErrNegativePrice},
		{name: "zero duration", svcName: "Banho", priceCents: 6000, durationMinutes: 0, errIs: catalog.ErrInvalidDuration},
		{name: "negative duration", svcName: "Banho", priceCents: 6000, durationMinutes: -15, errIs: catalog.ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := catalog.NewService(tt.svcName, "", tt.priceCents, tt.durationMinutes)
			assert.ErrorIs(t, err, tt.errIs)
		})
	}
}

func TestServiceMutations(t *testing.T) {
	newService := func(t *testing.T) *catalog.Service {
		t.Helper()
		svc, err := catalog.NewService("Banho", "", 6000, 45)
		require.NoError(t, err)
		return svc
	}

	t.Run("rename", func(t *testing.T) {
		svc := newService(t)
		require.NoError(t, svc.Rename("Tosa completa", "Tosa com acabamento"))
		assert.Equal(t, "Tosa completa", svc.Name())

		assert.ErrorIs(t, svc.Rename("  ", ""), catalog.ErrEmptyName)
		assert.Equal(t, "Tosa completa", svc.Name())
	})

	t.Run("reprice", func(t *testing.T) {
		svc := newService(t)
		require.NoError(t, svc.Reprice(7500))
		assert.Equal(t, int64(7500), svc.PriceCents())

		assert.ErrorIs(t, svc.Reprice(-1), catalog.ErrNegativePrice)
	})

	t.Run("retime", func(t *testing.T) {
		svc := newService(t)
		require.NoError(t, svc.Retime(60))
		assert.Equal(t, 60, svc.DurationMinutes())

		assert.ErrorIs(t, svc.Retime(0), catalog.ErrInvalidDuration)
	})

	t.Run("deactivate and activate", func(t *testing.T) {
		svc := newService(t)
		svc.Deactivate()
		assert.False(t, svc.IsActive())
		svc.Activate()
		assert.True(t, svc.IsActive())
	})
}
