package slug_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/biztime/api/internal/domain/slug"
)

func TestMake(t *testing.T) {
	cases := []struct {
		label string
		want  string
	}{
		{"Acme Corp!", "acmecorp"},
		{"IBM", "ibm"},
		{"apple", "apple"},
		{"café con leche", "cafeconleche"},
		{"  Taxes & Audit  ", "taxesaudit"},
		{"Web 2.0", "web20"},
		{"a-b_c.d", "abcd"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, slug.Make(tc.label), "Make(%q)", tc.label)
	}
}
