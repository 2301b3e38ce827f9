package constants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/biasharaledger/docextract/constants"
)

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		input string
		want  constants.Category
		ok    bool
	}{
		{"construction", constants.Construction, true},
		{"Construction", constants.Construction, true},
		{"  electricity  ", constants.Utilities, true},
		{"payroll", constants.Salaries, true},
		{"ministry", constants.Government, true},
		{"professional_services", constants.ProfessionalServices, true},
		{"cryptocurrency", constants.Uncategorized, false},
		{"", constants.Uncategorized, false},
	}
	for _, tc := range cases {
		got, ok := constants.Canonicalize(tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
	}
}
