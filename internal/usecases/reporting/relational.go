package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/adtech-pipeline/infrastructure/exporter"
	"github.com/vfg2006/adtech-pipeline/infrastructure/repository"
	"github.com/vfg2006/adtech-pipeline/internal/config"
	"github.com/vfg2006/adtech-pipeline/internal/domain"
	"github.com/vfg2006/adtech-pipeline/pkg/log"
	"github.com/vfg2006/adtech-pipeline/pkg/metrics"
)

const (
	stageRelationalReports = "report_relational"
	WorkbookFile           = "report.xlsx"
)

// RelationalReportService executa as consultas analíticas do banco relacional
type RelationalReportService struct {
	repository repository.ReportRepository
	writer     Writer
	metrics    *metrics.Pipeline
}

func NewRelationalReportService(
	reportRepository repository.ReportRepository,
	writer Writer,
	pipelineMetrics *metrics.Pipeline,
) *RelationalReportService {
	return &RelationalReportService{
		repository: reportRepository,
		writer:     writer,
		metrics:    pipelineMetrics,
	}
}

// Tables executa as sete consultas e devolve os resultados em forma tabular, na ordem fixa dos relatórios
func (s *RelationalReportService) Tables(ctx context.Context, filters domain.ReportFilters) ([]exporter.Table, error) {
	tables := make([]exporter.Table, 0, 7)

	ctr, err := s.repository.TopCampaignsByCTR(ctx, filters, repository.TopCampaignsLimit)
	if err != nil {
		return nil, err
	}
	tables = append(tables, campaignCTRTable(ctr))

	spend, err := s.repository.AdvertiserSpend(ctx, filters, repository.TopAdvertisersLimit)
	if err != nil {
		return nil, err
	}
	tables = append(tables, advertiserSpendTable(spend))

	costs, err := s.repository.CampaignCosts(ctx, filters)
	if err != nil {
		return nil, err
	}
	tables = append(tables, campaignCostTable(costs))

	revenue, err := s.repository.RevenueByLocation(ctx, filters, repository.TopLocationsLimit)
	if err != nil {
		return nil, err
	}
	tables = append(tables, locationRevenueTable(revenue))

	users, err := s.repository.MostActiveUsers(ctx, filters, repository.TopUsersLimit)
	if err != nil {
		return nil, err
	}
	tables = append(tables, activeUserTable(users))

	budget, err := s.repository.CampaignsOverBudget(ctx, repository.BudgetSpentThreshold)
	if err != nil {
		return nil, err
	}
	tables = append(tables, budgetUsageTable(budget))

	devices, err := s.repository.CTRByDevice(ctx, filters)
	if err != nil {
		return nil, err
	}
	tables = append(tables, deviceCTRTable(devices))

	return tables, nil
}

// Run gera os relatórios no formato pedido: uma pasta de trabalho com uma aba por
// consulta (xlsx) ou um arquivo por consulta (csv)
func (s *RelationalReportService) Run(ctx context.Context, filters domain.ReportFilters, format string) error {
	start := time.Now()
	defer s.metrics.ObserveStage(stageRelationalReports, start)

	logger := log.ForContext(ctx)

	tables, err := s.Tables(ctx, filters)
	if err != nil {
		return fmt.Errorf("erro ao executar relatórios relacionais: %w", err)
	}

	for _, table := range tables {
		s.metrics.ReportRows.WithLabelValues(table.Name).Set(float64(len(table.Rows)))
	}

	switch format {
	case config.ReportFormatCSV:
		for _, table := range tables {
			path, err := s.writer.WriteCSV(table.Name+".csv", table)
			if err != nil {
				return err
			}
			logger.Infof("%d registros gravados em %s", len(table.Rows), path)
		}
	case config.ReportFormatXLSX, "":
		path, err := s.writer.WriteWorkbook(WorkbookFile, tables)
		if err != nil {
			return err
		}
		for _, table := range tables {
			logger.Infof("%d registros gravados em %s (aba %s)", len(table.Rows), path, exporter.SheetName(table.Name))
		}
	default:
		return fmt.Errorf("formato de relatório não suportado: %s", format)
	}

	return nil
}
