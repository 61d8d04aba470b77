package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-pos/internal/application/dto"
	"github.com/jhoicas/Inventario-pos/internal/application/usecase"
	"github.com/jhoicas/Inventario-pos/internal/domain"
	"github.com/jhoicas/Inventario-pos/internal/testutil"
)

func boolPtr(b bool) *bool { return &b }

func TestSettings_ValoresPorDefectoYActualizacion(t *testing.T) {
	ledger := testutil.NewLedger(t)
	uc := usecase.NewSettingsUseCase(ledger.Runner)
	ctx := context.Background()

	s, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.SettingsDTO{DefaultMinStock: 5, Currency: "INR", Notifications: true}, *s)

	s, err = uc.Update(ctx, dto.UpdateSettingsRequest{DefaultMinStock: intPtr(10), Currency: strPtr("usd"), Notifications: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, dto.SettingsDTO{DefaultMinStock: 10, Currency: "USD", Notifications: false}, *s)

	reopened := usecase.NewSettingsUseCase(ledger.Reopen().Runner)
	s, err = reopened.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, s.DefaultMinStock)
	assert.Equal(t, "USD", s.Currency)
}

func TestSettings_ValoresInvalidos(t *testing.T) {
	uc := usecase.NewSettingsUseCase(testutil.NewLedger(t).Runner)

	_, err := uc.Update(context.Background(), dto.UpdateSettingsRequest{DefaultMinStock: intPtr(0)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Update(context.Background(), dto.UpdateSettingsRequest{Currency: strPtr("rupias")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettings_MinimoPorDefectoCambiaLaClasificacion(t *testing.T) {
	f := newProductFixture(t, false)
	p := f.create(t, "Widget", 8, "1.00")
	settings := usecase.NewSettingsUseCase(f.ledger.Runner)

	_, err := settings.Update(context.Background(), dto.UpdateSettingsRequest{DefaultMinStock: intPtr(10)})
	require.NoError(t, err)

	got, err := f.uc.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "low-stock", got.Status)
}
