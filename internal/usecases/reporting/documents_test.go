package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	repomocks "github.com/vfg2006/adtech-pipeline/infrastructure/repository/mocks"
	"github.com/vfg2006/adtech-pipeline/internal/domain"
	"github.com/vfg2006/adtech-pipeline/internal/usecases/reporting/mocks"
	"github.com/vfg2006/adtech-pipeline/pkg/metrics"
	"go.uber.org/mock/gomock"
)

func TestDocumentReportService_Run(t *testing.T) {
	asOf := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	params := DocumentParams{
		UserID:                42,
		CampaignIDs:           []int64{7},
		AsOf:                  asOf,
		Lookback:              24 * time.Hour,
		LastSessions:          5,
		FatigueMinImpressions: 5,
		TopCategories:         3,
	}

	tests := []struct {
		name    string
		params  func() DocumentParams
		setup   func(repo *repomocks.MockEngagementRepository, writer *mocks.MockWriter)
		wantErr bool
	}{
		{
			name:   "gera os cinco relatórios",
			params: func() DocumentParams { return params },
			setup: func(repo *repomocks.MockEngagementRepository, writer *mocks.MockWriter) {
				repo.EXPECT().UserInteractions(gomock.Any(), int64(42)).Return([]domain.Interaction{{EventID: "e-1"}}, nil)
				repo.EXPECT().LastSessions(gomock.Any(), int64(42), 5).Return([]domain.SessionSummary{{SessionID: "s"}}, nil)
				repo.EXPECT().
					ClicksPerHour(gomock.Any(), []int64{7}, asOf.Add(-24*time.Hour), asOf).
					Return([]domain.HourlyClicks{}, nil)
				repo.EXPECT().FatiguedUsers(gomock.Any(), 5).Return([]domain.FatiguedUser{{UserID: 1}, {UserID: 2}}, nil)
				repo.EXPECT().TopCategories(gomock.Any(), int64(42), 3).Return([]domain.CategoryClicks{{Category: "Sports", Clicks: 2}}, nil)

				for _, file := range []string{
					"user_interactions.json",
					"last_sessions.json",
					"clicks_per_hour.json",
					"ad_fatigued_users.json",
					"top_ad_categories.json",
				} {
					writer.EXPECT().WriteJSON(file, gomock.Any()).Return("output/"+file, nil)
				}
			},
		},
		{
			name: "sem usuário apenas os relatórios globais",
			params: func() DocumentParams {
				p := params
				p.UserID = 0
				return p
			},
			setup: func(repo *repomocks.MockEngagementRepository, writer *mocks.MockWriter) {
				repo.EXPECT().ClicksPerHour(gomock.Any(), []int64{7}, gomock.Any(), asOf).Return(nil, nil)
				repo.EXPECT().FatiguedUsers(gomock.Any(), 5).Return([]domain.FatiguedUser{{UserID: 1}, {UserID: 2}}, nil)
				writer.EXPECT().WriteJSON("clicks_per_hour.json", gomock.Any()).Return("output/clicks_per_hour.json", nil)
				writer.EXPECT().WriteJSON("ad_fatigued_users.json", gomock.Any()).Return("output/ad_fatigued_users.json", nil)
			},
		},
		{
			name:   "erro na agregação é propagado",
			params: func() DocumentParams { return params },
			setup: func(repo *repomocks.MockEngagementRepository, writer *mocks.MockWriter) {
				repo.EXPECT().UserInteractions(gomock.Any(), int64(42)).Return(nil, errors.New("timeout"))
			},
			wantErr: true,
		},
		{
			name:   "erro ao gravar o arquivo é propagado",
			params: func() DocumentParams { return params },
			setup: func(repo *repomocks.MockEngagementRepository, writer *mocks.MockWriter) {
				repo.EXPECT().UserInteractions(gomock.Any(), int64(42)).Return(nil, nil)
				writer.EXPECT().WriteJSON(gomock.Any(), gomock.Any()).Return("", errors.New("permissão negada"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := repomocks.NewMockEngagementRepository(ctrl)
			writer := mocks.NewMockWriter(ctrl)
			tt.setup(repo, writer)

			pipelineMetrics := metrics.New()
			service := NewDocumentReportService(repo, writer, pipelineMetrics)

			err := service.Run(context.Background(), tt.params())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, float64(2), testutil.ToFloat64(pipelineMetrics.ReportRows.WithLabelValues(ReportFatiguedUsers)))
		})
	}
}

func TestDocumentReportService_ClicksPerHourWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := repomocks.NewMockEngagementRepository(ctrl)
	writer := mocks.NewMockWriter(ctrl)

	asOf := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	repo.EXPECT().
		ClicksPerHour(gomock.Any(), gomock.Nil(), time.Date(2024, 3, 10, 6, 0, 0, 0, time.UTC), asOf).
		Return([]domain.HourlyClicks{{CampaignID: 1, Hour: asOf.Truncate(time.Hour), Clicks: 3}}, nil)
	writer.EXPECT().WriteJSON("clicks_per_hour.json", gomock.Len(1)).Return("out/clicks_per_hour.json", nil)

	service := NewDocumentReportService(repo, writer, metrics.New())

	path, err := service.ClicksPerHour(context.Background(), nil, asOf, 6*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "out/clicks_per_hour.json", path)
}
