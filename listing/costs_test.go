package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateMonthlyCosts(t *testing.T) {
	t.Run("single family has no HOA", func(t *testing.T) {
		costs := EstimateMonthlyCosts(500000, 1500, "single family")

		assert.Equal(t, 0.0, costs.HOAMaintenance)
		assert.Equal(t, 833.33, costs.PropertyTax)
		assert.Equal(t, 208.33, costs.Insurance)
		assert.Equal(t, 250.0, costs.Utilities)
		assert.Equal(t, 41.67, costs.MiscExpenses)
		assert.Equal(t, 20.83, costs.MunicipalServices)
		// 16250 annual / 12, rounded once
		assert.Equal(t, 1354.17, costs.Total)
	})

	t.Run("condo pays HOA", func(t *testing.T) {
		costs := EstimateMonthlyCosts(400000, 1000, "condo")

		assert.Equal(t, 133.33, costs.HOAMaintenance)
		assert.Equal(t, 1183.33, costs.Total)
	})

	t.Run("kind match is case-insensitive substring", func(t *testing.T) {
		assert.Equal(t, 133.33, EstimateMonthlyCosts(400000, 1000, "CONDO").HOAMaintenance)
		assert.Equal(t, 133.33, EstimateMonthlyCosts(400000, 1000, "Luxury Apartment Unit").HOAMaintenance)
		assert.Equal(t, 0.0, EstimateMonthlyCosts(400000, 1000, "townhouse").HOAMaintenance)
	})

	t.Run("missing inputs fall back to defaults", func(t *testing.T) {
		costs := EstimateMonthlyCosts(0, 0, "")

		// price 500000, sqft 1500, type Unknown
		assert.Equal(t, 833.33, costs.PropertyTax)
		assert.Equal(t, 250.0, costs.Utilities)
		assert.Equal(t, 0.0, costs.HOAMaintenance)
		assert.Equal(t, 1354.17, costs.Total)
	})

	t.Run("total is the rounded sum of annual components", func(t *testing.T) {
		cases := []struct {
			price float64
			sqft  float64
			kind  string
		}{
			{500000, 1500, "single family"},
			{400000, 1000, "condo"},
			{123456, 789, "apartment"},
			{999999, 3333, "multi family"},
			{1, 1, "condo"},
		}
		for _, tc := range cases {
			costs := EstimateMonthlyCosts(tc.price, tc.sqft, tc.kind)

			annual := tc.price*taxRate + tc.price*insuranceRate + tc.sqft*utilityPerSqft +
				tc.price*miscRate + tc.price*municipalRate
			if tc.kind == "condo" || tc.kind == "apartment" {
				annual += tc.price * hoaRate
			}
			assert.InDelta(t, annual/12, costs.Total, 0.005)

			assert.GreaterOrEqual(t, costs.PropertyTax, 0.0)
			assert.GreaterOrEqual(t, costs.Insurance, 0.0)
			assert.GreaterOrEqual(t, costs.Utilities, 0.0)
			assert.GreaterOrEqual(t, costs.HOAMaintenance, 0.0)
			assert.GreaterOrEqual(t, costs.MiscExpenses, 0.0)
			assert.GreaterOrEqual(t, costs.MunicipalServices, 0.0)
			assert.GreaterOrEqual(t, costs.Total, 0.0)
		}
	})
}
