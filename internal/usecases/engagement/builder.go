package engagement

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vfg2006/adtech-pipeline/internal/domain"
	"github.com/vfg2006/adtech-pipeline/internal/usecases/sessionizing"
	"github.com/vfg2006/adtech-pipeline/pkg/log"
)

// idNamespace gera ids determinísticos: reprocessar a mesma origem produz os mesmos documentos
var idNamespace = uuid.MustParse("6f1c2a8e-4b1d-4f5e-9c1a-2d7e8b3f0a11")

type Builder struct {
	sessionizer *sessionizing.Sessionizer
	campaignIDs map[string]int64
}

// NewBuilder cria o construtor de documentos. As campanhas servem apenas para
// resolver o campaign_id das impressões pelo nome da campanha.
func NewBuilder(sessionizer *sessionizing.Sessionizer, campaigns []domain.Campaign) *Builder {
	campaignIDs := make(map[string]int64, len(campaigns))
	for _, c := range campaigns {
		campaignIDs[c.CampaignName] = c.CampaignID
	}

	return &Builder{
		sessionizer: sessionizer,
		campaignIDs: campaignIDs,
	}
}

// Build gera exatamente um documento por usuário da origem, inclusive para
// usuários sem eventos. Eventos de usuários desconhecidos são descartados.
func (b *Builder) Build(ctx context.Context, users []domain.User, events []domain.Event) []domain.EngagementDocument {
	logger := log.ForContext(ctx)

	sorted := make([]domain.Event, len(events))
	copy(sorted, events)
	sessionizing.SortEvents(sorted)

	eventsByUser := make(map[int64][]domain.Event)
	for _, event := range sorted {
		eventsByUser[event.UserID] = append(eventsByUser[event.UserID], event)
	}

	docs := make([]domain.EngagementDocument, 0, len(users))
	seen := make(map[int64]struct{}, len(users))
	for _, user := range users {
		if _, dup := seen[user.UserID]; dup {
			logger.WithField("user_id", user.UserID).Warn("Usuário duplicado na origem, mantendo a primeira linha")
			continue
		}
		seen[user.UserID] = struct{}{}

		docs = append(docs, b.BuildDocument(user, eventsByUser[user.UserID]))
	}

	orphans := 0
	for userID, userEvents := range eventsByUser {
		if _, ok := seen[userID]; !ok {
			orphans += len(userEvents)
		}
	}
	if orphans > 0 {
		logger.WithField("events", orphans).Warn("Eventos de usuários ausentes em users.csv foram descartados")
	}

	return docs
}

// BuildDocument monta o documento de um usuário a partir dos seus eventos,
// já ordenados por dispositivo e horário.
func (b *Builder) BuildDocument(user domain.User, events []domain.Event) domain.EngagementDocument {
	sessions := make([]domain.Session, 0)
	for _, group := range sessionizing.GroupByDevice(events) {
		for tag, sessionEvents := range b.sessionizer.Split(group.Events) {
			sessions = append(sessions, b.buildSession(user.UserID, group.Device, tag, sessionEvents))
		}
	}

	return domain.EngagementDocument{
		UserID:     user.UserID,
		Age:        user.Age,
		Gender:     user.Gender,
		Location:   user.Location,
		SignupDate: user.SignupDate,
		Interests:  user.InterestList(),
		AdSessions: sessions,
	}
}

func (b *Builder) buildSession(userID int64, device string, tag int, events []domain.Event) domain.Session {
	impressions := make([]domain.Impression, 0, len(events))
	var start time.Time
	for i, event := range events {
		if i == 0 || event.Timestamp.Before(start) {
			start = event.Timestamp
		}
		impressions = append(impressions, b.buildImpression(event))
	}

	key := fmt.Sprintf("session|%d|%s|%d", userID, device, tag)
	return domain.Session{
		SessionID:     uuid.NewSHA1(idNamespace, []byte(key)).String(),
		Device:        device,
		StartTime:     start,
		AdImpressions: impressions,
	}
}

func (b *Builder) buildImpression(event domain.Event) domain.Impression {
	key := fmt.Sprintf("impression|%s|%d|%s", event.EventID, event.UserID, event.Timestamp.Format(time.RFC3339Nano))
	impression := domain.Impression{
		ImpressionID: uuid.NewSHA1(idNamespace, []byte(key)).String(),
		EventID:      event.EventID,
		AdID:         event.AdID(),
		CampaignName: event.CampaignName,
		Timestamp:    event.Timestamp,
		WasClicked:   event.WasClicked,
	}

	if campaignID, ok := b.campaignIDs[event.CampaignName]; ok {
		impression.CampaignID = &campaignID
	}

	if event.TargetingCriteria != "" {
		category := event.TargetingCriteria
		impression.AdCategory = &category
	}

	// sem horário de clique o sub-documento não é criado, mesmo com a flag ligada
	if event.Clicked() {
		impression.Click = &domain.Click{ClickTimestamp: *event.ClickTimestamp}
	}

	return impression
}
