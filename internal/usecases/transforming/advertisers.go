package transforming

import (
	"context"
	"errors"
	"fmt"

	"github.com/vfg2006/adtech-pipeline/infrastructure/repository"
	"github.com/vfg2006/adtech-pipeline/internal/domain"
	"github.com/vfg2006/adtech-pipeline/pkg/log"
)

// MapAdvertisers devolve o mapa nome -> id de todos os anunciantes das campanhas.
// Parte dos anunciantes já gravados e cria os que faltam; se outro processo gravou o
// mesmo nome nesse intervalo, o id existente é buscado novamente.
func MapAdvertisers(ctx context.Context, repo repository.AdvertiserRepository, campaigns []domain.Campaign) (map[string]int64, error) {
	logger := log.ForContext(ctx)

	mapping, err := repo.ListAdvertisers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAdvertiserMapping, err)
	}
	if mapping == nil {
		mapping = make(map[string]int64)
	}

	created := 0
	for _, campaign := range campaigns {
		name := campaign.AdvertiserName
		if name == "" {
			continue
		}
		if _, ok := mapping[name]; ok {
			continue
		}

		id, err := repo.CreateAdvertiser(ctx, name)
		if err == nil {
			mapping[name] = id
			created++
			continue
		}

		if !errors.Is(err, repository.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %v", ErrAdvertiserMapping, err)
		}

		id, found, err := repo.FindAdvertiserID(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrAdvertiserMapping, err)
		}
		if !found {
			logger.WithField("advertiser_name", name).Warn("Anunciante duplicado não encontrado na nova consulta")
			continue
		}
		mapping[name] = id
	}

	logger.WithFields(log.Fields{
		"advertisers": len(mapping),
		"created":     created,
	}).Info("Anunciantes processados")

	return mapping, nil
}
