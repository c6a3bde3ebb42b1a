package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Gardu Induk Tarahan", "gardu-induk-tarahan"},
		{"  Kegiatan   Sosial  ", "kegiatan-sosial"},
		{"Penyaluran & Transmisi (ULTG)", "penyaluran-transmisi-ultg"},
		{"Énergie Éléctrique", "energie-electrique"},
		{"GI 150 kV", "gi-150-kv"},
		{"---", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, GenerateSlug(tc.in), "input: %q", tc.in)
	}
}

func TestGenerateSlug_NoLeadingTrailingDash(t *testing.T) {
	got := GenerateSlug("!!Halo Dunia!!")
	assert.Equal(t, "halo-dunia", got)
}
