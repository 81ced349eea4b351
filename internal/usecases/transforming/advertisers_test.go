package transforming

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adtech-pipeline/infrastructure/repository"
	"github.com/vfg2006/adtech-pipeline/infrastructure/repository/mocks"
	"github.com/vfg2006/adtech-pipeline/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestMapAdvertisers(t *testing.T) {
	campaigns := []domain.Campaign{
		{AdvertiserName: "Advertiser_A"},
		{AdvertiserName: "Advertiser_B"},
		{AdvertiserName: "Advertiser_B"},
		{AdvertiserName: "Advertiser_C"},
	}

	tests := []struct {
		name    string
		setup   func(repo *mocks.MockAdvertiserRepository)
		want    map[string]int64
		wantErr error
	}{
		{
			name: "cria apenas os anunciantes que ainda não existem",
			setup: func(repo *mocks.MockAdvertiserRepository) {
				repo.EXPECT().ListAdvertisers(gomock.Any()).Return(map[string]int64{"Advertiser_A": 1}, nil)
				repo.EXPECT().CreateAdvertiser(gomock.Any(), "Advertiser_B").Return(int64(2), nil).Times(1)
				repo.EXPECT().CreateAdvertiser(gomock.Any(), "Advertiser_C").Return(int64(3), nil)
			},
			want: map[string]int64{"Advertiser_A": 1, "Advertiser_B": 2, "Advertiser_C": 3},
		},
		{
			name: "conflito de chave única busca o id existente",
			setup: func(repo *mocks.MockAdvertiserRepository) {
				repo.EXPECT().ListAdvertisers(gomock.Any()).Return(nil, nil)
				repo.EXPECT().CreateAdvertiser(gomock.Any(), "Advertiser_A").Return(int64(1), nil)
				repo.EXPECT().CreateAdvertiser(gomock.Any(), "Advertiser_B").
					Return(int64(0), fmt.Errorf("anunciante %q: %w", "Advertiser_B", repository.ErrDuplicateKey))
				repo.EXPECT().FindAdvertiserID(gomock.Any(), "Advertiser_B").Return(int64(42), true, nil)
				repo.EXPECT().CreateAdvertiser(gomock.Any(), "Advertiser_C").Return(int64(43), nil)
			},
			want: map[string]int64{"Advertiser_A": 1, "Advertiser_B": 42, "Advertiser_C": 43},
		},
		{
			name: "erro diferente de duplicidade interrompe o mapeamento",
			setup: func(repo *mocks.MockAdvertiserRepository) {
				repo.EXPECT().ListAdvertisers(gomock.Any()).Return(map[string]int64{}, nil)
				repo.EXPECT().CreateAdvertiser(gomock.Any(), "Advertiser_A").Return(int64(0), errors.New("conexão recusada"))
			},
			wantErr: ErrAdvertiserMapping,
		},
		{
			name: "falha ao listar",
			setup: func(repo *mocks.MockAdvertiserRepository) {
				repo.EXPECT().ListAdvertisers(gomock.Any()).Return(nil, errors.New("timeout"))
			},
			wantErr: ErrAdvertiserMapping,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockAdvertiserRepository(ctrl)
			tt.setup(repo)

			got, err := MapAdvertisers(context.Background(), repo, campaigns)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
