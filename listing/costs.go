package listing

import (
	"math"
	"strings"
)

// MonthlyCosts is the estimated non-mortgage carrying cost breakdown, all
// figures monthly and rounded to 2 decimals.
type MonthlyCosts struct {
	PropertyTax       float64 `json:"property_tax"`
	Insurance         float64 `json:"insurance"`
	Utilities         float64 `json:"utilities"`
	HOAMaintenance    float64 `json:"hoa_maintenance"`
	MiscExpenses      float64 `json:"misc_expenses"`
	MunicipalServices float64 `json:"municipal_services"`
	Total             float64 `json:"total_monthly_non_mortgage_costs"`
}

// Annual rate assumptions applied against list price (utilities against sqft).
const (
	taxRate        = 0.02
	insuranceRate  = 0.005
	utilityPerSqft = 2.0
	hoaRate        = 0.004
	miscRate       = 0.001
	municipalRate  = 0.0005
)

// EstimateMonthlyCosts estimates monthly non-mortgage costs for a property.
// Missing or zero inputs are coerced to defaults (price 500000, sqft 1500,
// type "Unknown"); it never fails. HOA applies only to condo/apartment types,
// matched case-insensitively by substring. The total is the rounded sum of the
// unrounded annual components divided by 12, not the sum of the rounded
// monthly figures.
func EstimateMonthlyCosts(price, sqft float64, propertyType string) MonthlyCosts {
	if price <= 0 {
		price = 500000
	}
	if sqft <= 0 {
		sqft = 1500
	}
	if propertyType == "" {
		propertyType = "Unknown"
	}
	kind := strings.ToLower(propertyType)

	annualTax := price * taxRate
	annualInsurance := price * insuranceRate
	annualUtilities := sqft * utilityPerSqft
	annualHOA := 0.0
	if strings.Contains(kind, "condo") || strings.Contains(kind, "apartment") {
		annualHOA = price * hoaRate
	}
	annualMisc := price * miscRate
	annualMunicipal := price * municipalRate

	return MonthlyCosts{
		PropertyTax:       round2(annualTax / 12),
		Insurance:         round2(annualInsurance / 12),
		Utilities:         round2(annualUtilities / 12),
		HOAMaintenance:    round2(annualHOA / 12),
		MiscExpenses:      round2(annualMisc / 12),
		MunicipalServices: round2(annualMunicipal / 12),
		Total: round2((annualTax + annualInsurance + annualUtilities +
			annualHOA + annualMisc + annualMunicipal) / 12),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
