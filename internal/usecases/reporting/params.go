package reporting

import (
	"fmt"
	"time"

	"github.com/vfg2006/adtech-pipeline/internal/config"
	"github.com/vfg2006/adtech-pipeline/internal/domain"
	"github.com/vfg2006/adtech-pipeline/pkg/utils"
)

// FiltersFromConfig converte REPORT_DATE_FROM/REPORT_DATE_TO no intervalo [início, fim + 1 dia)
func FiltersFromConfig(cfg config.Report) (domain.ReportFilters, error) {
	var filters domain.ReportFilters

	if cfg.DateFrom != "" {
		start, err := utils.ParseDate(cfg.DateFrom)
		if err != nil {
			return filters, fmt.Errorf("REPORT_DATE_FROM inválido: %w", err)
		}
		filters.StartDate = start
	}

	if cfg.DateTo != "" {
		end, err := utils.ParseDate(cfg.DateTo)
		if err != nil {
			return filters, fmt.Errorf("REPORT_DATE_TO inválido: %w", err)
		}
		exclusive := end.AddDate(0, 0, 1)
		filters.EndDate = &exclusive
	}

	if filters.StartDate != nil && filters.EndDate != nil && !filters.StartDate.Before(*filters.EndDate) {
		return filters, fmt.Errorf("intervalo de datas inválido: %s a %s", cfg.DateFrom, cfg.DateTo)
	}

	return filters, nil
}

func DocumentParamsFromConfig(cfg config.Report, now time.Time) (DocumentParams, error) {
	campaignIDs, err := cfg.CampaignIDList()
	if err != nil {
		return DocumentParams{}, err
	}

	asOf, err := cfg.AsOfTime(now)
	if err != nil {
		return DocumentParams{}, err
	}

	return DocumentParams{
		UserID:                cfg.UserID,
		CampaignIDs:           campaignIDs,
		AsOf:                  asOf,
		Lookback:              cfg.Lookback,
		LastSessions:          cfg.LastSessions,
		FatigueMinImpressions: cfg.FatigueMinImpressions,
		TopCategories:         cfg.TopCategories,
	}, nil
}
