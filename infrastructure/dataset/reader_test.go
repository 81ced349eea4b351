package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/adtech-pipeline/internal/config"
)

func newTestReader(limit int) *Reader {
	return NewReader("testdata", config.Pipeline{EventsSkipHeader: true, EventsLimit: limit})
}

func TestReader_ReadUsers(t *testing.T) {
	users, err := newTestReader(0).ReadUsers(context.Background())
	require.NoError(t, err)

	require.Len(t, users, 3)
	assert.Equal(t, int64(1), users[0].UserID)
	assert.Equal(t, 25, users[0].Age)
	assert.Equal(t, "Sports, Travel", users[0].Interests)
	assert.Equal(t, "2023-05-10", users[0].SignupDate)

	assert.Equal(t, int64(3), users[2].UserID)
	assert.Equal(t, 0, users[2].Age)
	assert.Empty(t, users[2].SignupDate)
}

func TestReader_ReadCampaigns(t *testing.T) {
	campaigns, err := newTestReader(0).ReadCampaigns(context.Background())
	require.NoError(t, err)

	require.Len(t, campaigns, 2)
	assert.Equal(t, int64(11), campaigns[0].CampaignID)
	assert.Equal(t, "Advertiser_A", campaigns[0].AdvertiserName)
	assert.Equal(t, "Age 18-24, Fitness", campaigns[0].TargetingCriteria)
	assert.True(t, decimal.RequireFromString("1500.5").Equal(campaigns[0].RemainingBudget))
}

func TestReader_ReadEvents(t *testing.T) {
	events, err := newTestReader(0).ReadEvents(context.Background())
	require.NoError(t, err)

	// e-4 tem horário inválido e é descartado
	require.Len(t, events, 4)

	first := events[0]
	assert.Equal(t, "e-1", first.EventID)
	assert.Equal(t, "Age 18-24, Fitness, Female", first.TargetingCriteria)
	assert.Equal(t, "300x250", first.AdSlotSize)
	assert.Equal(t, int64(1), first.UserID)
	assert.Equal(t, time.Date(2024, 10, 15, 9, 0, 0, 0, time.UTC), first.Timestamp)
	assert.True(t, first.WasClicked)
	require.NotNil(t, first.ClickTimestamp)
	assert.True(t, first.Clicked())
	assert.True(t, decimal.RequireFromString("1.10").Equal(first.AdRevenue))

	assert.Equal(t, "Age 18-24", events[1].TargetingCriteria)
	assert.False(t, events[1].WasClicked)

	// flag verdadeira sem horário de clique
	assert.Equal(t, "Age 25-34, Travel", events[2].TargetingCriteria)
	assert.True(t, events[2].WasClicked)
	assert.Nil(t, events[2].ClickTimestamp)
	assert.False(t, events[2].Clicked())
}

func TestReader_ReadEvents_Limit(t *testing.T) {
	events, err := newTestReader(2).ReadEvents(context.Background())
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, "e-2", events[1].EventID)
}

func TestReader_ReadEvents_WithoutHeader(t *testing.T) {
	dir := t.TempDir()
	content := "e-9,Adv,Camp,2024-10-01,2024-11-30,A,B,C,300x250,7,Mobile,Kyiv,2024-10-15 09:00:00,1,1,false,,1,10,5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, EventsFile), []byte(content), 0o600))

	reader := NewReader(dir, config.Pipeline{EventsSkipHeader: false})
	events, err := reader.ReadEvents(context.Background())
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, "A, B, C", events[0].TargetingCriteria)
}

func TestReader_Load(t *testing.T) {
	dataset, err := newTestReader(0).Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, dataset.Users, 3)
	assert.Len(t, dataset.Campaigns, 2)
	assert.Len(t, dataset.Events, 4)
}

func TestReader_MissingFile(t *testing.T) {
	reader := NewReader(t.TempDir(), config.Pipeline{})

	_, err := reader.ReadUsers(context.Background())
	assert.Error(t, err)

	_, err = reader.ReadEvents(context.Background())
	assert.Error(t, err)
}

func TestReader_MissingColumn(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, UsersFile), []byte("UserID,Age\n1,20\n"), 0o600))

	_, err := NewReader(dir, config.Pipeline{}).ReadUsers(context.Background())
	assert.ErrorContains(t, err, "coluna Gender ausente")
}

func TestJoinTargeting(t *testing.T) {
	assert.Equal(t, "A, B", JoinTargeting("A", " ", "B"))
	assert.Equal(t, "", JoinTargeting("nan", "", "NaN"))
}

func TestParseInt64(t *testing.T) {
	n, err := parseInt64("123.0")
	require.NoError(t, err)
	assert.Equal(t, int64(123), n)

	_, err = parseInt64("12.5")
	assert.Error(t, err)
}
