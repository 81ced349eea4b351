package reporting

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/adtech-pipeline/infrastructure/repository"
	"github.com/vfg2006/adtech-pipeline/pkg/log"
	"github.com/vfg2006/adtech-pipeline/pkg/metrics"
)

const stageDocumentReports = "report_documents"

// Arquivos gerados a partir do document store
const (
	ReportUserInteractions = "user_interactions"
	ReportLastSessions     = "last_sessions"
	ReportClicksPerHour    = "clicks_per_hour"
	ReportFatiguedUsers    = "ad_fatigued_users"
	ReportTopCategories    = "top_ad_categories"
)

// DocumentParams são os parâmetros conhecidos das consultas sobre os documentos
type DocumentParams struct {
	UserID                int64
	CampaignIDs           []int64
	AsOf                  time.Time
	Lookback              time.Duration
	LastSessions          int
	FatigueMinImpressions int
	TopCategories         int
}

// DocumentReportService executa as agregações sobre a coleção de engajamento
type DocumentReportService struct {
	repository repository.EngagementRepository
	writer     Writer
	metrics    *metrics.Pipeline
}

func NewDocumentReportService(
	engagementRepository repository.EngagementRepository,
	writer Writer,
	pipelineMetrics *metrics.Pipeline,
) *DocumentReportService {
	return &DocumentReportService{
		repository: engagementRepository,
		writer:     writer,
		metrics:    pipelineMetrics,
	}
}

func (s *DocumentReportService) UserInteractions(ctx context.Context, userID int64) (string, error) {
	result, err := s.repository.UserInteractions(ctx, userID)
	if err != nil {
		return "", err
	}
	return s.write(ctx, ReportUserInteractions, result, len(result))
}

func (s *DocumentReportService) LastSessions(ctx context.Context, userID int64, limit int) (string, error) {
	result, err := s.repository.LastSessions(ctx, userID, limit)
	if err != nil {
		return "", err
	}
	return s.write(ctx, ReportLastSessions, result, len(result))
}

// ClicksPerHour considera a janela [asOf - lookback, asOf]
func (s *DocumentReportService) ClicksPerHour(ctx context.Context, campaignIDs []int64, asOf time.Time, lookback time.Duration) (string, error) {
	result, err := s.repository.ClicksPerHour(ctx, campaignIDs, asOf.Add(-lookback), asOf)
	if err != nil {
		return "", err
	}
	return s.write(ctx, ReportClicksPerHour, result, len(result))
}

func (s *DocumentReportService) FatiguedUsers(ctx context.Context, minImpressions int) (string, error) {
	result, err := s.repository.FatiguedUsers(ctx, minImpressions)
	if err != nil {
		return "", err
	}
	return s.write(ctx, ReportFatiguedUsers, result, len(result))
}

func (s *DocumentReportService) TopCategories(ctx context.Context, userID int64, limit int) (string, error) {
	result, err := s.repository.TopCategories(ctx, userID, limit)
	if err != nil {
		return "", err
	}
	return s.write(ctx, ReportTopCategories, result, len(result))
}

// Run gera os cinco relatórios. Os relatórios por usuário são omitidos sem UserID.
func (s *DocumentReportService) Run(ctx context.Context, params DocumentParams) error {
	start := time.Now()
	defer s.metrics.ObserveStage(stageDocumentReports, start)

	logger := log.ForContext(ctx)

	if params.UserID != 0 {
		if _, err := s.UserInteractions(ctx, params.UserID); err != nil {
			return fmt.Errorf("relatório %s: %w", ReportUserInteractions, err)
		}
		if _, err := s.LastSessions(ctx, params.UserID, params.LastSessions); err != nil {
			return fmt.Errorf("relatório %s: %w", ReportLastSessions, err)
		}
	} else {
		logger.Warn("REPORT_USER_ID não informado, relatórios por usuário ignorados")
	}

	if _, err := s.ClicksPerHour(ctx, params.CampaignIDs, params.AsOf, params.Lookback); err != nil {
		return fmt.Errorf("relatório %s: %w", ReportClicksPerHour, err)
	}

	if _, err := s.FatiguedUsers(ctx, params.FatigueMinImpressions); err != nil {
		return fmt.Errorf("relatório %s: %w", ReportFatiguedUsers, err)
	}

	if params.UserID != 0 {
		if _, err := s.TopCategories(ctx, params.UserID, params.TopCategories); err != nil {
			return fmt.Errorf("relatório %s: %w", ReportTopCategories, err)
		}
	}

	return nil
}

func (s *DocumentReportService) write(ctx context.Context, report string, result interface{}, count int) (string, error) {
	path, err := s.writer.WriteJSON(report+".json", result)
	if err != nil {
		return "", err
	}

	s.metrics.ReportRows.WithLabelValues(report).Set(float64(count))
	log.ForContext(ctx).Infof("%d registros gravados em %s", count, path)

	return path, nil
}
