package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event representa uma linha do arquivo ad_events.csv (impressão de anúncio)
type Event struct {
	EventID           string
	AdvertiserName    string
	CampaignName      string
	CampaignStartDate string
	CampaignEndDate   string
	TargetingCriteria string // as três colunas de segmentação unidas por ", "
	AdSlotSize        string
	UserID            int64
	Device            string
	Location          string
	Timestamp         time.Time
	BidAmount         decimal.Decimal
	AdCost            decimal.Decimal
	WasClicked        bool
	ClickTimestamp    *time.Time
	AdRevenue         decimal.Decimal
	Budget            decimal.Decimal
	RemainingBudget   decimal.Decimal
}

// Clicked indica se o evento gerou um clique válido: flag verdadeira e horário do clique presente.
func (e Event) Clicked() bool {
	return e.WasClicked && e.ClickTimestamp != nil
}

// AdID identifica a unidade de anúncio exibida (campanha + formato do slot)
func (e Event) AdID() string {
	if e.AdSlotSize == "" {
		return e.CampaignName
	}
	return e.CampaignName + ":" + e.AdSlotSize
}
