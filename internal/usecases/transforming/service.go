package transforming

import (
	"context"
	"time"

	"github.com/vfg2006/adtech-pipeline/infrastructure/repository"
	"github.com/vfg2006/adtech-pipeline/internal/domain"
	"github.com/vfg2006/adtech-pipeline/pkg/log"
	"github.com/vfg2006/adtech-pipeline/pkg/metrics"
)

const stageLoadRelational = "load_relational"

// ImportSummary resume uma carga relacional completa
type ImportSummary struct {
	Results  []InsertResult
	Rejected int
}

// Inserted retorna o total de linhas novas em todas as tabelas
func (s *ImportSummary) Inserted() int64 {
	var total int64
	for _, r := range s.Results {
		total += r.Inserted
	}
	return total
}

type Service struct {
	loadRepository       repository.LoadRepository
	advertiserRepository repository.AdvertiserRepository
	inserter             *BatchInserter
	metrics              *metrics.Pipeline
}

func NewService(
	loadRepository repository.LoadRepository,
	advertiserRepository repository.AdvertiserRepository,
	batchSize int,
	pipelineMetrics *metrics.Pipeline,
) *Service {
	return &Service{
		loadRepository:       loadRepository,
		advertiserRepository: advertiserRepository,
		inserter:             NewBatchInserter(loadRepository, batchSize, pipelineMetrics),
		metrics:              pipelineMetrics,
	}
}

// Import normaliza o dataset e grava as seis tabelas, das principais para as dependentes.
// Problemas em linhas individuais são registrados e a carga continua.
func (s *Service) Import(ctx context.Context, dataset *domain.Dataset, clear bool) *ImportSummary {
	start := time.Now()
	defer s.metrics.ObserveStage(stageLoadRelational, start)

	logger := log.ForContext(ctx)
	summary := &ImportSummary{}

	if clear {
		if err := s.loadRepository.ClearAll(ctx); err != nil {
			logger.WithError(NewTransformError(ErrClearTables, "", "", err.Error())).Error("Não foi possível limpar as tabelas, seguindo com a carga")
		} else {
			logger.Info("Tabelas relacionais limpas")
		}
	}

	advertisers, err := MapAdvertisers(ctx, s.advertiserRepository, dataset.Campaigns)
	if err != nil {
		logger.WithError(err).Error("Falha no mapeamento de anunciantes")
		advertisers = map[string]int64{}
	}

	campaigns, rejected := TransformCampaigns(dataset.Campaigns, advertisers)
	s.reject(ctx, repository.CampaignsTable, rejected)
	summary.Rejected += len(rejected)

	users, interests := TransformUsers(dataset.Users)

	events, clicks, rejected := TransformEvents(dataset.Events, campaigns, users)
	s.reject(ctx, repository.AdEventsTable, rejected)
	summary.Rejected += len(rejected)

	summary.Results = append(summary.Results,
		s.inserter.Insert(ctx, repository.CampaignsTable, toValues(campaigns)),
		s.inserter.Insert(ctx, repository.UsersTable, toValues(users)),
		s.inserter.Insert(ctx, repository.UserInterestsTable, toValues(interests)),
		s.inserter.Insert(ctx, repository.AdEventsTable, toValues(events)),
		s.inserter.Insert(ctx, repository.ClicksTable, toValues(clicks)),
	)

	logger.WithFields(log.Fields{
		"inserted": summary.Inserted(),
		"rejected": summary.Rejected,
	}).Info("Carga relacional concluída")

	return summary
}

func (s *Service) reject(ctx context.Context, table repository.Table, rejected []*TransformError) {
	if len(rejected) == 0 {
		return
	}

	logger := log.ForContext(ctx).WithField("table", table.Name)
	for _, err := range rejected {
		logger.WithError(err).Debug("Linha descartada")
	}

	s.metrics.RowsSkipped.WithLabelValues(table.Name, reasonUnresolved).Add(float64(len(rejected)))
	logger.WithFields(log.Fields{
		"rejected": len(rejected),
		"sample":   rejected[0].Error(),
	}).Warn("Linhas sem referência resolvida foram descartadas")
}
