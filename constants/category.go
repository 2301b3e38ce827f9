package constants

import (
	"strings"
)

// Category is a transaction category from the default taxonomy. Tenants may
// override the taxonomy through the extraction config; these are the
// shipped defaults.
type Category string

const (
	Construction         Category = "construction"
	Utilities            Category = "utilities"
	Government           Category = "government"
	Transport            Category = "transport"
	RentAndLeases        Category = "rent_and_leases"
	Supplies             Category = "supplies"
	ProfessionalServices Category = "professional_services"
	Salaries             Category = "salaries"
	Telecommunications   Category = "telecommunications"
	Uncategorized        Category = "uncategorized"
)

var allCategories = []Category{
	Construction,
	Utilities,
	Government,
	Transport,
	RentAndLeases,
	Supplies,
	ProfessionalServices,
	Salaries,
	Telecommunications,
	Uncategorized,
}

// Canonicalize resolves a free-form label to a taxonomy category.
func Canonicalize(input string) (Category, bool) {
	if input == "" {
		return Uncategorized, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))

	// synonyms map
	synonyms := map[string]Category{
		"building":     Construction,
		"contractor":   Construction,
		"electricity":  Utilities,
		"water":        Utilities,
		"power":        Utilities,
		"county":       Government,
		"ministry":     Government,
		"tax office":   Government,
		"fuel":         Transport,
		"logistics":    Transport,
		"rent":         RentAndLeases,
		"lease":        RentAndLeases,
		"stationery":   Supplies,
		"legal":        ProfessionalServices,
		"consultancy":  ProfessionalServices,
		"audit":        ProfessionalServices,
		"wages":        Salaries,
		"payroll":      Salaries,
		"airtime":      Telecommunications,
		"internet":     Telecommunications,
		"phone":        Telecommunications,
	}

	if cat, ok := synonyms[normalized]; ok {
		return cat, true
	}

	// check if it matches any category string
	for _, cat := range allCategories {
		if normalized == strings.ToLower(string(cat)) {
			return cat, true
		}
	}

	return Uncategorized, false
}
