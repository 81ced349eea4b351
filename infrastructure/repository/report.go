package repository

//go:generate mockgen -source=report.go -destination=mocks/report.go -package=mocks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/adtech-pipeline/infrastructure/database/sqldb"
	"github.com/vfg2006/adtech-pipeline/internal/domain"
)

const (
	TopCampaignsLimit   = 5
	TopAdvertisersLimit = 10
	TopLocationsLimit   = 10
	TopUsersLimit       = 10
)

// BudgetSpentThreshold é a fração do orçamento acima da qual a campanha entra no relatório
var BudgetSpentThreshold = decimal.RequireFromString("0.8")

// Razões usam CAST para DECIMAL para evitar divisão inteira no PostgreSQL
// e NULLIF para que denominador zero produza NULL em vez de erro.
const (
	impressionsExpr = "COUNT(ae.event_id)"
	clicksExpr      = "COUNT(cl.event_id)"
	ctrExpr         = "ROUND(CAST(COUNT(cl.event_id) AS DECIMAL(18,6)) / NULLIF(COUNT(ae.event_id), 0), 4)"
	noImpressions   = "CASE WHEN COUNT(ae.event_id) = 0 THEN 1 ELSE 0 END"
)

type ReportRepository interface {
	TopCampaignsByCTR(ctx context.Context, filters domain.ReportFilters, limit int) ([]domain.CampaignCTR, error)
	AdvertiserSpend(ctx context.Context, filters domain.ReportFilters, limit int) ([]domain.AdvertiserSpend, error)
	CampaignCosts(ctx context.Context, filters domain.ReportFilters) ([]domain.CampaignCost, error)
	RevenueByLocation(ctx context.Context, filters domain.ReportFilters, limit int) ([]domain.LocationRevenue, error)
	MostActiveUsers(ctx context.Context, filters domain.ReportFilters, limit int) ([]domain.ActiveUser, error)
	CampaignsOverBudget(ctx context.Context, threshold decimal.Decimal) ([]domain.BudgetUsage, error)
	CTRByDevice(ctx context.Context, filters domain.ReportFilters) ([]domain.DeviceCTR, error)
}

type reportRepository struct {
	conn *sqldb.Connection
}

func NewReportRepository(conn *sqldb.Connection) ReportRepository {
	return &reportRepository{
		conn: conn,
	}
}

// eventPeriod monta a condição de período sobre ae.timestamp (fim exclusivo)
func eventPeriod(filters domain.ReportFilters) squirrel.And {
	conditions := squirrel.And{}
	if filters.StartDate != nil {
		conditions = append(conditions, squirrel.GtOrEq{"ae.timestamp": *filters.StartDate})
	}
	if filters.EndDate != nil {
		conditions = append(conditions, squirrel.Lt{"ae.timestamp": *filters.EndDate})
	}
	return conditions
}

// eventJoin devolve o LEFT JOIN de ad_events com o filtro de período na própria
// condição de junção, para que campanhas sem eventos no período continuem no resultado.
func eventJoin(filters domain.ReportFilters) (string, []interface{}, error) {
	join := "ad_events ae ON ae.campaign_id = c.campaign_id"
	period := eventPeriod(filters)
	if len(period) == 0 {
		return join, nil, nil
	}

	clause, args, err := period.ToSql()
	if err != nil {
		return "", nil, err
	}
	return join + " AND " + clause, args, nil
}

func whereEventPeriod(builder squirrel.SelectBuilder, filters domain.ReportFilters) squirrel.SelectBuilder {
	if period := eventPeriod(filters); len(period) > 0 {
		return builder.Where(period)
	}
	return builder
}

func (r *reportRepository) query(ctx context.Context, builder squirrel.SelectBuilder) (*sql.Rows, error) {
	query, args, err := builder.PlaceholderFormat(r.conn.Dialect.Placeholder()).ToSql()
	if err != nil {
		return nil, err
	}
	return r.conn.Query(ctx, query, args...)
}

func (r *reportRepository) TopCampaignsByCTR(ctx context.Context, filters domain.ReportFilters, limit int) ([]domain.CampaignCTR, error) {
	join, joinArgs, err := eventJoin(filters)
	if err != nil {
		return nil, err
	}

	rows, err := r.query(ctx, squirrel.
		Select(
			"c.campaign_id",
			"c.campaign_name",
			impressionsExpr+" AS impressions",
			clicksExpr+" AS clicks",
			ctrExpr+" AS ctr",
		).
		From("campaigns c").
		LeftJoin(join, joinArgs...).
		LeftJoin("clicks cl ON cl.event_id = ae.event_id").
		GroupBy("c.campaign_id", "c.campaign_name").
		OrderBy(noImpressions, "ctr DESC", "c.campaign_id").
		Limit(uint64(limit)))
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar CTR por campanha: %w", err)
	}
	defer rows.Close()

	result := make([]domain.CampaignCTR, 0)
	for rows.Next() {
		var item domain.CampaignCTR
		if err := rows.Scan(&item.CampaignID, &item.CampaignName, &item.Impressions, &item.Clicks, &item.CTR); err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	return result, rows.Err()
}

func (r *reportRepository) AdvertiserSpend(ctx context.Context, filters domain.ReportFilters, limit int) ([]domain.AdvertiserSpend, error) {
	builder := squirrel.
		Select(
			"adv.advertiser_id",
			"adv.advertiser_name",
			"ROUND(CAST(SUM(ae.ad_cost) AS DECIMAL(18,6)), 2) AS total_spent",
			impressionsExpr+" AS impressions",
			clicksExpr+" AS clicks",
		).
		From("ad_events ae").
		Join("campaigns c ON ae.campaign_id = c.campaign_id").
		Join("advertisers adv ON c.advertiser_id = adv.advertiser_id").
		LeftJoin("clicks cl ON cl.event_id = ae.event_id").
		GroupBy("adv.advertiser_id", "adv.advertiser_name").
		OrderBy("total_spent DESC", "adv.advertiser_id").
		Limit(uint64(limit))

	rows, err := r.query(ctx, whereEventPeriod(builder, filters))
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar gastos por anunciante: %w", err)
	}
	defer rows.Close()

	result := make([]domain.AdvertiserSpend, 0)
	for rows.Next() {
		var item domain.AdvertiserSpend
		if err := rows.Scan(&item.AdvertiserID, &item.AdvertiserName, &item.TotalSpent, &item.Impressions, &item.Clicks); err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	return result, rows.Err()
}

func (r *reportRepository) CampaignCosts(ctx context.Context, filters domain.ReportFilters) ([]domain.CampaignCost, error) {
	join, joinArgs, err := eventJoin(filters)
	if err != nil {
		return nil, err
	}

	rows, err := r.query(ctx, squirrel.
		Select(
			"c.campaign_id",
			"c.campaign_name",
			"ROUND(CAST(SUM(ae.ad_cost) AS DECIMAL(18,6)) / NULLIF(COUNT(cl.event_id), 0), 4) AS avg_cpc",
			"ROUND(CAST(SUM(ae.ad_cost) AS DECIMAL(18,6)) * 1000 / NULLIF(COUNT(ae.event_id), 0), 4) AS avg_cpm",
		).
		From("campaigns c").
		LeftJoin(join, joinArgs...).
		LeftJoin("clicks cl ON cl.event_id = ae.event_id").
		GroupBy("c.campaign_id", "c.campaign_name").
		OrderBy("CASE WHEN COUNT(cl.event_id) = 0 THEN 1 ELSE 0 END", "avg_cpc ASC", "c.campaign_id"))
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar CPC e CPM: %w", err)
	}
	defer rows.Close()

	result := make([]domain.CampaignCost, 0)
	for rows.Next() {
		var item domain.CampaignCost
		if err := rows.Scan(&item.CampaignID, &item.CampaignName, &item.AvgCPC, &item.AvgCPM); err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	return result, rows.Err()
}

func (r *reportRepository) RevenueByLocation(ctx context.Context, filters domain.ReportFilters, limit int) ([]domain.LocationRevenue, error) {
	builder := squirrel.
		Select(
			"ae.location",
			"ROUND(CAST(SUM(ae.ad_revenue) AS DECIMAL(18,6)), 2) AS total_revenue",
		).
		From("ad_events ae").
		GroupBy("ae.location").
		OrderBy("total_revenue DESC", "ae.location").
		Limit(uint64(limit))

	rows, err := r.query(ctx, whereEventPeriod(builder, filters))
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar receita por localização: %w", err)
	}
	defer rows.Close()

	result := make([]domain.LocationRevenue, 0)
	for rows.Next() {
		var item domain.LocationRevenue
		if err := rows.Scan(&item.Location, &item.TotalRevenue); err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	return result, rows.Err()
}

func (r *reportRepository) MostActiveUsers(ctx context.Context, filters domain.ReportFilters, limit int) ([]domain.ActiveUser, error) {
	builder := squirrel.
		Select(
			"u.user_id",
			"u.age",
			"u.gender",
			"u.location",
			clicksExpr+" AS clicks",
		).
		From("users u").
		Join("ad_events ae ON ae.user_id = u.user_id").
		Join("clicks cl ON cl.event_id = ae.event_id").
		GroupBy("u.user_id", "u.age", "u.gender", "u.location").
		OrderBy("clicks DESC", "u.user_id").
		Limit(uint64(limit))

	rows, err := r.query(ctx, whereEventPeriod(builder, filters))
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar usuários mais ativos: %w", err)
	}
	defer rows.Close()

	result := make([]domain.ActiveUser, 0)
	for rows.Next() {
		var (
			item     domain.ActiveUser
			gender   sql.NullString
			location sql.NullString
		)
		if err := rows.Scan(&item.UserID, &item.Age, &gender, &location, &item.Clicks); err != nil {
			return nil, err
		}
		item.Gender = gender.String
		item.Location = location.String
		result = append(result, item)
	}

	return result, rows.Err()
}

func (r *reportRepository) CampaignsOverBudget(ctx context.Context, threshold decimal.Decimal) ([]domain.BudgetUsage, error) {
	rows, err := r.query(ctx, squirrel.
		Select(
			"campaign_id",
			"campaign_name",
			"budget",
			"remaining_budget",
			"ROUND(CAST((budget - remaining_budget) * 100 AS DECIMAL(18,6)) / budget, 2) AS percent_spent",
		).
		From("campaigns").
		Where("budget > 0").
		Where("(budget - remaining_budget) > budget * ?", threshold).
		OrderBy("percent_spent DESC", "campaign_id"))
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar campanhas acima do orçamento: %w", err)
	}
	defer rows.Close()

	result := make([]domain.BudgetUsage, 0)
	for rows.Next() {
		var item domain.BudgetUsage
		if err := rows.Scan(&item.CampaignID, &item.CampaignName, &item.Budget, &item.RemainingBudget, &item.PercentSpent); err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	return result, rows.Err()
}

func (r *reportRepository) CTRByDevice(ctx context.Context, filters domain.ReportFilters) ([]domain.DeviceCTR, error) {
	builder := squirrel.
		Select(
			"ae.device",
			impressionsExpr+" AS impressions",
			clicksExpr+" AS clicks",
			ctrExpr+" AS ctr",
		).
		From("ad_events ae").
		LeftJoin("clicks cl ON cl.event_id = ae.event_id").
		GroupBy("ae.device").
		OrderBy("ae.device")

	rows, err := r.query(ctx, whereEventPeriod(builder, filters))
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar CTR por dispositivo: %w", err)
	}
	defer rows.Close()

	result := make([]domain.DeviceCTR, 0)
	for rows.Next() {
		var item domain.DeviceCTR
		if err := rows.Scan(&item.Device, &item.Impressions, &item.Clicks, &item.CTR); err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	return result, rows.Err()
}
