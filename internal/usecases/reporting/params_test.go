package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adtech-pipeline/internal/config"
)

func TestFiltersFromConfig(t *testing.T) {
	tests := []struct {
		name      string
		cfg       config.Report
		wantStart *time.Time
		wantEnd   *time.Time
		wantErr   bool
	}{
		{
			name: "sem datas não filtra",
			cfg:  config.Report{},
		},
		{
			name:      "data final passa a ser exclusiva no dia seguinte",
			cfg:       config.Report{DateFrom: "2024-01-01", DateTo: "2024-01-31"},
			wantStart: ptrTime(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
			wantEnd:   ptrTime(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			name:    "data inválida",
			cfg:     config.Report{DateFrom: "01/01/2024"},
			wantErr: true,
		},
		{
			name:    "intervalo invertido",
			cfg:     config.Report{DateFrom: "2024-02-01", DateTo: "2024-01-01"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters, err := FiltersFromConfig(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, filters.StartDate)
			assert.Equal(t, tt.wantEnd, filters.EndDate)
		})
	}
}

func TestDocumentParamsFromConfig(t *testing.T) {
	now := time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

	params, err := DocumentParamsFromConfig(config.Report{
		UserID:                10,
		CampaignIDs:           []string{"3", "4"},
		Lookback:              time.Hour,
		LastSessions:          5,
		FatigueMinImpressions: 5,
		TopCategories:         3,
	}, now)
	require.NoError(t, err)

	assert.Equal(t, int64(10), params.UserID)
	assert.Equal(t, []int64{3, 4}, params.CampaignIDs)
	assert.Equal(t, now, params.AsOf)
	assert.Equal(t, time.Hour, params.Lookback)

	_, err = DocumentParamsFromConfig(config.Report{CampaignIDs: []string{"x"}}, now)
	assert.Error(t, err)
}

func ptrTime(t time.Time) *time.Time {
	return &t
}
