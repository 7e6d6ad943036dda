package slug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMake(t *testing.T) {
	cases := []struct {
		nombre   string
		esperado string
	}{
		{"Camiseta Roja", "camiseta-roja"},
		{"Polera Negra", "polera-negra"},
		{"Pantalón Jogger Ñuñoa", "pantalon-jogger-nunoa"},
		{"  Gorra   Urbana  ", "gorra-urbana"},
		{"Riñonera Über", "rinonera-uber"},
		{"Cinturón 2x1", "cinturon-2x1"},
		{"Short/Bermuda", "short-bermuda"},
		{"Polera (edición limitada)", "polera-edicion-limitada"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.esperado, Make(tc.nombre), "nombre %q", tc.nombre)
	}
}

func TestMake_Deterministico(t *testing.T) {
	assert.Equal(t, Make("Camiseta Roja"), Make("Camiseta Roja"))
}
