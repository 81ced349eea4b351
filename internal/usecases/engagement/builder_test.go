package engagement

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adtech-pipeline/internal/domain"
	"github.com/vfg2006/adtech-pipeline/internal/usecases/sessionizing"
)

var base = time.Date(2024, 10, 15, 9, 0, 0, 0, time.UTC)

func event(id string, userID int64, device string, minutes int) domain.Event {
	return domain.Event{
		EventID:           id,
		CampaignName:      "Campaign_1",
		AdSlotSize:        "300x250",
		TargetingCriteria: "Age 18-24, Fitness",
		UserID:            userID,
		Device:            device,
		Timestamp:         base.Add(time.Duration(minutes) * time.Minute),
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestBuilder_BuildDocument_TwoDevices(t *testing.T) {
	builder := NewBuilder(sessionizing.New(30*time.Minute), nil)
	user := domain.User{UserID: 1, Age: 30, Gender: "Female", Location: "Kyiv", Interests: "Sports"}

	events := []domain.Event{
		event("a1", 1, "Desktop", 0),
		event("b1", 1, "Mobile", 5),
		event("a2", 1, "Desktop", 10),
		event("a3", 1, "Desktop", 50),
	}
	sessionizing.SortEvents(events)

	doc := builder.BuildDocument(user, events)

	require.Len(t, doc.AdSessions, 3)
	assert.Equal(t, "Desktop", doc.AdSessions[0].Device)
	assert.Len(t, doc.AdSessions[0].AdImpressions, 2)
	assert.Equal(t, base, doc.AdSessions[0].StartTime)
	assert.Equal(t, "Desktop", doc.AdSessions[1].Device)
	assert.Len(t, doc.AdSessions[1].AdImpressions, 1)
	assert.Equal(t, base.Add(50*time.Minute), doc.AdSessions[1].StartTime)
	assert.Equal(t, "Mobile", doc.AdSessions[2].Device)
	assert.Len(t, doc.AdSessions[2].AdImpressions, 1)

	assert.Equal(t, len(events), doc.ImpressionCount())
	assert.Equal(t, []string{"Sports"}, doc.Interests)
}

func TestBuilder_Impression(t *testing.T) {
	campaigns := []domain.Campaign{{CampaignID: 11, CampaignName: "Campaign_1"}}
	builder := NewBuilder(sessionizing.New(0), campaigns)
	clickAt := base.Add(time.Minute)

	tests := []struct {
		name      string
		event     domain.Event
		wantClick bool
		validate  func(t *testing.T, imp domain.Impression)
	}{
		{
			name: "clique com horário gera sub-documento",
			event: func() domain.Event {
				e := event("e1", 1, "Mobile", 0)
				e.WasClicked = true
				e.ClickTimestamp = timePtr(clickAt)
				return e
			}(),
			wantClick: true,
			validate: func(t *testing.T, imp domain.Impression) {
				assert.Equal(t, clickAt, imp.Click.ClickTimestamp)
				assert.True(t, imp.WasClicked)
			},
		},
		{
			name: "flag sem horário não gera clique mas mantém a flag",
			event: func() domain.Event {
				e := event("e2", 1, "Mobile", 0)
				e.WasClicked = true
				return e
			}(),
			validate: func(t *testing.T, imp domain.Impression) {
				assert.True(t, imp.WasClicked)
			},
		},
		{
			name: "horário sem flag não gera clique",
			event: func() domain.Event {
				e := event("e3", 1, "Mobile", 0)
				e.ClickTimestamp = timePtr(clickAt)
				return e
			}(),
			validate: func(t *testing.T, imp domain.Impression) {
				assert.False(t, imp.WasClicked)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			imp := builder.buildImpression(tt.event)

			if tt.wantClick {
				require.NotNil(t, imp.Click)
			} else {
				assert.Nil(t, imp.Click)
			}
			require.NotNil(t, imp.CampaignID)
			assert.Equal(t, int64(11), *imp.CampaignID)
			require.NotNil(t, imp.AdCategory)
			assert.Equal(t, "Age 18-24, Fitness", *imp.AdCategory)
			assert.Equal(t, "Campaign_1:300x250", imp.AdID)
			tt.validate(t, imp)
		})
	}

	t.Run("campanha desconhecida e sem segmentação", func(t *testing.T) {
		e := event("e4", 1, "Mobile", 0)
		e.CampaignName = "Campaign_404"
		e.TargetingCriteria = ""

		imp := builder.buildImpression(e)

		assert.Nil(t, imp.CampaignID)
		assert.Nil(t, imp.AdCategory)
	})
}

func TestBuilder_Build(t *testing.T) {
	builder := NewBuilder(sessionizing.New(30*time.Minute), nil)
	users := []domain.User{
		{UserID: 1, Interests: "Travel"},
		{UserID: 2, Interests: "not-available"},
		{UserID: 1, Interests: "Duplicated"},
	}
	events := []domain.Event{
		event("x1", 1, "Tablet", 40),
		event("x2", 1, "Tablet", 0),
		event("x3", 3, "Tablet", 0),
	}

	docs := builder.Build(context.Background(), users, events)

	require.Len(t, docs, 2)

	assert.Equal(t, int64(1), docs[0].UserID)
	assert.Equal(t, []string{"Travel"}, docs[0].Interests)
	require.Len(t, docs[0].AdSessions, 2)
	assert.Equal(t, "x2", docs[0].AdSessions[0].AdImpressions[0].EventID)
	assert.Equal(t, 2, docs[0].ImpressionCount())

	assert.Equal(t, int64(2), docs[1].UserID)
	assert.Empty(t, docs[1].Interests)
	assert.NotNil(t, docs[1].AdSessions)
	assert.Empty(t, docs[1].AdSessions)

	// a ordem original dos eventos não é alterada
	assert.Equal(t, "x1", events[0].EventID)
}

func TestBuilder_DeterministicIDs(t *testing.T) {
	builder := NewBuilder(sessionizing.New(30*time.Minute), nil)
	users := []domain.User{{UserID: 1}}
	events := []domain.Event{
		event("a1", 1, "Desktop", 0),
		event("a2", 1, "Desktop", 45),
	}

	first := builder.Build(context.Background(), users, events)
	second := builder.Build(context.Background(), users, events)

	assert.Equal(t, first, second)
	require.Len(t, first[0].AdSessions, 2)
	assert.NotEqual(t, first[0].AdSessions[0].SessionID, first[0].AdSessions[1].SessionID)
	assert.NotEqual(t,
		first[0].AdSessions[0].AdImpressions[0].ImpressionID,
		first[0].AdSessions[1].AdImpressions[0].ImpressionID,
	)
}
