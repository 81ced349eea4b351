package reporting

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/adtech-pipeline/infrastructure/exporter"
	"github.com/vfg2006/adtech-pipeline/internal/domain"
)

// Nomes dos relatórios relacionais; também usados como nome de arquivo e de aba
const (
	ReportTopCampaignsByCTR   = "top_campaigns_by_ctr"
	ReportAdvertiserSpend     = "top_advertisers_spending"
	ReportCampaignCosts       = "avg_cpc_cpm_per_campaign"
	ReportRevenueByLocation   = "top_locations_by_revenue"
	ReportMostActiveUsers     = "top_users_by_clicks"
	ReportCampaignsOverBudget = "campaigns_near_budget_limit"
	ReportCTRByDevice         = "device_ctr_comparison"
)

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// toNullableFloat devolve nil quando a razão não pôde ser calculada
func toNullableFloat(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return nil
	}
	return d.Decimal.InexactFloat64()
}

func campaignCTRTable(items []domain.CampaignCTR) exporter.Table {
	table := exporter.Table{
		Name:   ReportTopCampaignsByCTR,
		Header: []string{"campaign_id", "campaign_name", "impressions", "clicks", "ctr"},
		Rows:   make([][]interface{}, 0, len(items)),
	}
	for _, item := range items {
		table.Rows = append(table.Rows, []interface{}{item.CampaignID, item.CampaignName, item.Impressions, item.Clicks, toNullableFloat(item.CTR)})
	}
	return table
}

func advertiserSpendTable(items []domain.AdvertiserSpend) exporter.Table {
	table := exporter.Table{
		Name:   ReportAdvertiserSpend,
		Header: []string{"advertiser_id", "advertiser_name", "total_spent", "impressions", "clicks"},
		Rows:   make([][]interface{}, 0, len(items)),
	}
	for _, item := range items {
		table.Rows = append(table.Rows, []interface{}{item.AdvertiserID, item.AdvertiserName, toFloat(item.TotalSpent), item.Impressions, item.Clicks})
	}
	return table
}

func campaignCostTable(items []domain.CampaignCost) exporter.Table {
	table := exporter.Table{
		Name:   ReportCampaignCosts,
		Header: []string{"campaign_id", "campaign_name", "avg_cpc", "avg_cpm"},
		Rows:   make([][]interface{}, 0, len(items)),
	}
	for _, item := range items {
		table.Rows = append(table.Rows, []interface{}{item.CampaignID, item.CampaignName, toNullableFloat(item.AvgCPC), toNullableFloat(item.AvgCPM)})
	}
	return table
}

func locationRevenueTable(items []domain.LocationRevenue) exporter.Table {
	table := exporter.Table{
		Name:   ReportRevenueByLocation,
		Header: []string{"location", "total_revenue"},
		Rows:   make([][]interface{}, 0, len(items)),
	}
	for _, item := range items {
		table.Rows = append(table.Rows, []interface{}{item.Location, toFloat(item.TotalRevenue)})
	}
	return table
}

func activeUserTable(items []domain.ActiveUser) exporter.Table {
	table := exporter.Table{
		Name:   ReportMostActiveUsers,
		Header: []string{"user_id", "age", "gender", "location", "clicks"},
		Rows:   make([][]interface{}, 0, len(items)),
	}
	for _, item := range items {
		table.Rows = append(table.Rows, []interface{}{item.UserID, item.Age, item.Gender, item.Location, item.Clicks})
	}
	return table
}

func budgetUsageTable(items []domain.BudgetUsage) exporter.Table {
	table := exporter.Table{
		Name:   ReportCampaignsOverBudget,
		Header: []string{"campaign_id", "campaign_name", "budget", "remaining_budget", "percent_spent"},
		Rows:   make([][]interface{}, 0, len(items)),
	}
	for _, item := range items {
		table.Rows = append(table.Rows, []interface{}{item.CampaignID, item.CampaignName, toFloat(item.Budget), toFloat(item.RemainingBudget), toFloat(item.PercentSpent)})
	}
	return table
}

func deviceCTRTable(items []domain.DeviceCTR) exporter.Table {
	table := exporter.Table{
		Name:   ReportCTRByDevice,
		Header: []string{"device", "impressions", "clicks", "ctr"},
		Rows:   make([][]interface{}, 0, len(items)),
	}
	for _, item := range items {
		table.Rows = append(table.Rows, []interface{}{item.Device, item.Impressions, item.Clicks, toNullableFloat(item.CTR)})
	}
	return table
}
