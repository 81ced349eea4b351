package engagement

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adtech-pipeline/infrastructure/repository/mocks"
	"github.com/vfg2006/adtech-pipeline/internal/domain"
	"github.com/vfg2006/adtech-pipeline/internal/usecases/sessionizing"
	"github.com/vfg2006/adtech-pipeline/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func TestService_Load(t *testing.T) {
	dataset := &domain.Dataset{
		Users: []domain.User{{UserID: 1}, {UserID: 2}},
		Events: []domain.Event{
			event("a1", 1, "Desktop", 0),
			event("a2", 1, "Desktop", 10),
		},
	}

	tests := []struct {
		name      string
		setup     func(repo *mocks.MockEngagementRepository)
		wantCount int
		wantErr   bool
	}{
		{
			name: "grava um documento por usuário",
			setup: func(repo *mocks.MockEngagementRepository) {
				repo.EXPECT().
					ReplaceAll(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, docs []domain.EngagementDocument) (int, error) {
						require.Len(t, docs, 2)
						assert.Equal(t, 2, docs[0].ImpressionCount())
						assert.Equal(t, 0, docs[1].ImpressionCount())
						return len(docs), nil
					})
			},
			wantCount: 2,
		},
		{
			name: "erro do document store é propagado",
			setup: func(repo *mocks.MockEngagementRepository) {
				repo.EXPECT().
					ReplaceAll(gomock.Any(), gomock.Any()).
					Return(0, errors.New("conexão perdida"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockEngagementRepository(ctrl)
			tt.setup(repo)

			pipelineMetrics := metrics.New()
			service := NewService(sessionizing.New(30*time.Minute), repo, pipelineMetrics)

			count, err := service.Load(context.Background(), dataset)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, float64(0), testutil.ToFloat64(pipelineMetrics.DocumentsLoaded))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
			assert.Equal(t, float64(tt.wantCount), testutil.ToFloat64(pipelineMetrics.DocumentsLoaded))
		})
	}
}
