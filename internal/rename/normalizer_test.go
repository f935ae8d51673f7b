package rename

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"m_glc_xt", "Glc_e"},
		{"m_atp", "Atp_c"},
		{"m_sheme", "Sheme_c"},
		{"atp", "atp"},
		{"R_pts", "R_pts"},
		{"cytoplasm", "cytoplasm"},
		{"P_maintenance_atp", "P_maintenance_atp"},
		{"Glc_e", "Glc_e"},
		{"Atp_c", "Atp_c"},
		{"m_", "_c"},
		{"m_xt", "_e"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.id))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	ids := []string{"m_glc_xt", "m_atp", "atp", "Glc_e", "Atp_c", "m_b6"}
	for _, id := range ids {
		once := Normalize(id)
		assert.Equal(t, once, Normalize(once), "Normalize must be idempotent for %q", id)
	}
}
