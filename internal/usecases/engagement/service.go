package engagement

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/adtech-pipeline/infrastructure/repository"
	"github.com/vfg2006/adtech-pipeline/internal/domain"
	"github.com/vfg2006/adtech-pipeline/internal/usecases/sessionizing"
	"github.com/vfg2006/adtech-pipeline/pkg/log"
	"github.com/vfg2006/adtech-pipeline/pkg/metrics"
)

const stageLoadDocuments = "load_documents"

// Service monta os documentos de engajamento e substitui a coleção no document store
type Service struct {
	sessionizer *sessionizing.Sessionizer
	repository  repository.EngagementRepository
	metrics     *metrics.Pipeline
}

func NewService(
	sessionizer *sessionizing.Sessionizer,
	engagementRepository repository.EngagementRepository,
	pipelineMetrics *metrics.Pipeline,
) *Service {
	return &Service{
		sessionizer: sessionizer,
		repository:  engagementRepository,
		metrics:     pipelineMetrics,
	}
}

// Load reconstrói todos os documentos a partir do dataset e retorna quantos foram gravados
func (s *Service) Load(ctx context.Context, dataset *domain.Dataset) (int, error) {
	start := time.Now()
	defer s.metrics.ObserveStage(stageLoadDocuments, start)

	logger := log.ForContext(ctx)

	docs := NewBuilder(s.sessionizer, dataset.Campaigns).Build(ctx, dataset.Users, dataset.Events)

	sessions, impressions := 0, 0
	for i := range docs {
		sessions += len(docs[i].AdSessions)
		impressions += docs[i].ImpressionCount()
	}
	logger.WithFields(log.Fields{
		"documents":   len(docs),
		"sessions":    sessions,
		"impressions": impressions,
	}).Info("Documentos de engajamento montados")

	loaded, err := s.repository.ReplaceAll(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("erro ao gravar documentos de engajamento: %w", err)
	}

	s.metrics.DocumentsLoaded.Add(float64(loaded))
	logger.Infof("%d documentos gravados no document store", loaded)

	return loaded, nil
}
