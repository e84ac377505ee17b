package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
)

func TestListEntriesQuery(t *testing.T) {
	from, to := "2024-03-01", "2024-03-10"

	tests := []struct {
		name      string
		filters   domain.EntryFilters
		wantWhere string
		wantArgs  []any
	}{
		{
			name:      "Sem filtros",
			filters:   domain.EntryFilters{ProductID: domain.AllProducts},
			wantWhere: "",
			wantArgs:  nil,
		},
		{
			name:      "Período e produto",
			filters:   domain.EntryFilters{DateFrom: &from, DateTo: &to, ProductID: "p1"},
			wantWhere: " WHERE e.date >= $1 AND e.date <= $2 AND e.product_id = $3",
			wantArgs:  []any{"2024-03-01", "2024-03-10", "p1"},
		},
		{
			name:      "Apenas data final",
			filters:   domain.EntryFilters{DateTo: &to},
			wantWhere: " WHERE e.date <= $1",
			wantArgs:  []any{"2024-03-10"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := listEntriesQuery(tt.filters).ToSql()

			require.NoError(t, err)
			assert.Contains(t, query, "FROM entries e LEFT JOIN products p ON p.id = e.product_id"+tt.wantWhere+" ORDER BY e.date DESC, e.created_at DESC")
			if tt.wantArgs == nil {
				assert.Empty(t, args)
				return
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
