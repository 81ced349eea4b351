//go:build integration

package transforming

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adtech-pipeline/infrastructure/database/sqldb"
	"github.com/vfg2006/adtech-pipeline/infrastructure/repository"
	"github.com/vfg2006/adtech-pipeline/internal/domain"
	"github.com/vfg2006/adtech-pipeline/internal/testinfra"
	"github.com/vfg2006/adtech-pipeline/pkg/metrics"
)

func countRows(t *testing.T, conn *sqldb.Connection, table string) int {
	t.Helper()

	var count int
	require.NoError(t, conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&count))
	return count
}

func integrationDataset() *domain.Dataset {
	dataset := sampleDataset()
	dataset.Campaigns = append(dataset.Campaigns, domain.Campaign{
		CampaignID:     13,
		AdvertiserName: "Advertiser_B",
		CampaignName:   "Campaign_3",
		Budget:         decimal.NewFromInt(100),
	})
	for i := range dataset.Events {
		dataset.Events[i].AdCost = decimal.RequireFromString("0.50")
		dataset.Events[i].AdRevenue = decimal.RequireFromString("1.25")
		dataset.Events[i].Device = "Mobile"
		dataset.Events[i].Location = "USA"
	}
	return dataset
}

func TestService_Import_Postgres(t *testing.T) {
	conn := testinfra.NewPostgres(t)
	ctx := context.Background()

	service := NewService(
		repository.NewLoadRepository(conn),
		repository.NewAdvertiserRepository(conn),
		DefaultBatchSize,
		metrics.New(),
	)

	first := service.Import(ctx, integrationDataset(), false)
	second := service.Import(ctx, integrationDataset(), false)

	want := map[string]int{
		"advertisers":    2,
		"campaigns":      2,
		"users":          2,
		"user_interests": 2,
		"ad_events":      2,
		"clicks":         1,
	}
	for table, count := range want {
		assert.Equal(t, count, countRows(t, conn, table), "tabela %s", table)
	}
	assert.Equal(t, first.Rejected, second.Rejected)
	assert.Zero(t, second.Inserted())

	t.Run("campanha sem impressões tem CTR nulo", func(t *testing.T) {
		reports := repository.NewReportRepository(conn)

		ctr, err := reports.TopCampaignsByCTR(ctx, domain.ReportFilters{}, repository.TopCampaignsLimit)
		require.NoError(t, err)
		require.Len(t, ctr, 2)

		assert.Equal(t, "Campaign_1", ctr[0].CampaignName)
		assert.Equal(t, int64(2), ctr[0].Impressions)
		assert.Equal(t, int64(1), ctr[0].Clicks)
		require.True(t, ctr[0].CTR.Valid)
		assert.True(t, ctr[0].CTR.Decimal.Equal(decimal.RequireFromString("0.5")))

		assert.Equal(t, "Campaign_3", ctr[1].CampaignName)
		assert.Zero(t, ctr[1].Impressions)
		assert.False(t, ctr[1].CTR.Valid)
	})

	t.Run("filtro de período exclui eventos fora do intervalo", func(t *testing.T) {
		reports := repository.NewReportRepository(conn)

		from := ts.Add(24 * time.Hour)
		devices, err := reports.CTRByDevice(ctx, domain.ReportFilters{StartDate: &from})
		require.NoError(t, err)
		assert.Empty(t, devices)

		devices, err = reports.CTRByDevice(ctx, domain.ReportFilters{})
		require.NoError(t, err)
		require.Len(t, devices, 1)
		assert.Equal(t, "Mobile", devices[0].Device)
	})

	t.Run("limpeza apaga tudo e reinicia os contadores", func(t *testing.T) {
		summary := service.Import(ctx, integrationDataset(), true)
		assert.Equal(t, int64(9), summary.Inserted())

		var advertiserID int64
		require.NoError(t, conn.QueryRow(ctx, "SELECT MIN(advertiser_id) FROM advertisers").Scan(&advertiserID))
		assert.Equal(t, int64(1), advertiserID)
		assert.Equal(t, 1, countRows(t, conn, "clicks"))
	})
}
