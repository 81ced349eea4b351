package transforming

import (
	"strconv"

	"github.com/vfg2006/adtech-pipeline/internal/domain"
)

// TransformCampaigns associa cada campanha ao id do seu anunciante.
// Campanhas sem id, sem nome ou sem anunciante resolvido não são inseridas.
func TransformCampaigns(campaigns []domain.Campaign, advertisers map[string]int64) ([]domain.CampaignRow, []*TransformError) {
	rows := make([]domain.CampaignRow, 0, len(campaigns))
	rejected := make([]*TransformError, 0)

	for _, c := range campaigns {
		if c.CampaignID <= 0 || c.CampaignName == "" {
			rejected = append(rejected, NewTransformError(ErrInvalidRow, StageCampaigns, c.CampaignName, "campaign_id "+strconv.FormatInt(c.CampaignID, 10)))
			continue
		}

		advertiserID, ok := advertisers[c.AdvertiserName]
		if !ok {
			rejected = append(rejected, NewTransformError(ErrAdvertiserNotResolved, StageCampaigns, c.CampaignName, "anunciante "+c.AdvertiserName))
			continue
		}

		rows = append(rows, domain.CampaignRow{
			CampaignID:        c.CampaignID,
			AdvertiserID:      advertiserID,
			CampaignName:      c.CampaignName,
			StartDate:         c.StartDate,
			EndDate:           c.EndDate,
			TargetingCriteria: c.TargetingCriteria,
			AdSlotSize:        c.AdSlotSize,
			Budget:            c.Budget,
			RemainingBudget:   c.RemainingBudget,
		})
	}

	return rows, rejected
}

// TransformUsers gera as linhas de usuários e uma linha por interesse válido
func TransformUsers(users []domain.User) ([]domain.UserRow, []domain.UserInterest) {
	rows := make([]domain.UserRow, 0, len(users))
	interests := make([]domain.UserInterest, 0)
	seen := make(map[int64]struct{}, len(users))

	for _, u := range users {
		if _, dup := seen[u.UserID]; dup {
			continue
		}
		seen[u.UserID] = struct{}{}

		rows = append(rows, domain.UserRow{
			UserID:     u.UserID,
			Age:        u.Age,
			Gender:     u.Gender,
			Location:   u.Location,
			SignupDate: u.SignupDate,
		})

		for _, interest := range u.InterestList() {
			interests = append(interests, domain.UserInterest{UserID: u.UserID, Interest: interest})
		}
	}

	return rows, interests
}

// TransformEvents resolve a campanha de cada evento pelo nome, considerando apenas as
// campanhas aceitas, e descarta eventos sem campanha ou de usuários desconhecidos.
// Só eventos com clique válido (flag e horário) geram linha de clique.
func TransformEvents(events []domain.Event, campaigns []domain.CampaignRow, users []domain.UserRow) ([]domain.AdEventRow, []domain.ClickRow, []*TransformError) {
	campaignIDs := make(map[string]int64, len(campaigns))
	for _, c := range campaigns {
		campaignIDs[c.CampaignName] = c.CampaignID
	}

	knownUsers := make(map[int64]struct{}, len(users))
	for _, u := range users {
		knownUsers[u.UserID] = struct{}{}
	}

	rows := make([]domain.AdEventRow, 0, len(events))
	clicks := make([]domain.ClickRow, 0)
	rejected := make([]*TransformError, 0)

	for _, e := range events {
		if e.EventID == "" {
			rejected = append(rejected, NewTransformError(ErrInvalidRow, StageEvents, "", "evento sem id"))
			continue
		}

		campaignID, ok := campaignIDs[e.CampaignName]
		if !ok {
			rejected = append(rejected, NewTransformError(ErrCampaignNotResolved, StageEvents, e.EventID, "campanha "+e.CampaignName))
			continue
		}

		if _, ok := knownUsers[e.UserID]; !ok {
			rejected = append(rejected, NewTransformError(ErrUserNotFound, StageEvents, e.EventID, "usuário "+strconv.FormatInt(e.UserID, 10)))
			continue
		}

		rows = append(rows, domain.AdEventRow{
			EventID:    e.EventID,
			CampaignID: campaignID,
			UserID:     e.UserID,
			Device:     e.Device,
			Location:   e.Location,
			Timestamp:  e.Timestamp,
			BidAmount:  e.BidAmount,
			AdCost:     e.AdCost,
			AdRevenue:  e.AdRevenue,
		})

		if e.Clicked() {
			clicks = append(clicks, domain.ClickRow{EventID: e.EventID, ClickTimestamp: *e.ClickTimestamp})
		}
	}

	return rows, clicks, rejected
}
