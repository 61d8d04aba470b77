package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-pos/internal/application/dto"
)

func TestProductRecord_ToEntity_RechazaValoresImposibles(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"precio negativo", `{"id":"p-1","name":"Widget","qty":2,"price":-5}`, "precio negativo"},
		{"stock mínimo negativo", `{"id":"p-1","name":"Widget","qty":2,"price":5,"minStock":-1}`, "stock mínimo negativo"},
		{"cantidad negativa", `{"id":"p-1","name":"Widget","qty":-1,"price":5}`, "cantidad negativa"},
		{"sin nombre", `{"id":"p-1","name":"  ","qty":1,"price":5}`, "sin id o nombre"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec dto.ProductRecord
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &rec))

			p, err := rec.ToEntity()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, p)
		})
	}
}

func TestProductRecord_ToEntity_PrecioYMinimoCeroValidos(t *testing.T) {
	var rec dto.ProductRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id":"p-1","name":"Muestra","qty":0,"price":0,"minStock":0}`), &rec))

	p, err := rec.ToEntity()

	require.NoError(t, err)
	assert.True(t, p.Price.IsZero())
	require.NotNil(t, p.MinStock)
	assert.Zero(t, *p.MinStock)
}

func TestSaleRecord_ToEntity_RechazaValoresImposibles(t *testing.T) {
	const valid = `"price":5,"subtotal":10,"discountType":"flat","discountValue":0,"discountApplied":0,"total":10`
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{"cantidad cero", `{"id":"s-1","productId":"p-1","qty":0,` + valid + `}`, "cantidad no positiva"},
		{"cantidad negativa", `{"id":"s-1","productId":"p-1","qty":-10,` + valid + `}`, "cantidad no positiva"},
		{"total negativo", `{"id":"s-1","productId":"p-1","qty":2,"price":5,"subtotal":10,"discountApplied":0,"total":-10}`, "total negativo"},
		{"precio negativo", `{"id":"s-1","productId":"p-1","qty":2,"price":-5,"subtotal":10,"total":10}`, "price negativo"},
		{"descuento negativo", `{"id":"s-1","productId":"p-1","qty":2,"price":5,"subtotal":10,"discountValue":-1,"total":10}`, "discountValue negativo"},
		{"descuento mayor que el subtotal", `{"id":"s-1","productId":"p-1","qty":2,"price":5,"subtotal":10,"discountApplied":12,"total":0}`, "descuento mayor que el subtotal"},
		{"tipo de descuento desconocido", `{"id":"s-1","productId":"p-1","qty":2,"price":5,"subtotal":10,"discountType":"bogo","total":10}`, "tipo de descuento"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rec dto.SaleRecord
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &rec))

			s, err := rec.ToEntity()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Nil(t, s)
		})
	}
}

func TestSaleRecord_ToEntity_TipoVacioEsFijo(t *testing.T) {
	var rec dto.SaleRecord
	require.NoError(t, json.Unmarshal([]byte(`{"id":"s-1","productId":"p-1","qty":1,"price":5,"subtotal":5,"discountValue":0,"discountApplied":0,"total":5}`), &rec))

	s, err := rec.ToEntity()

	require.NoError(t, err)
	assert.Equal(t, "flat", s.DiscountType)
	assert.Equal(t, 1, s.Quantity)
}
