package domain

import "github.com/shopspring/decimal"

// Campaign representa uma linha do arquivo campaigns.csv
type Campaign struct {
	CampaignID        int64
	AdvertiserName    string
	CampaignName      string
	StartDate         string
	EndDate           string
	TargetingCriteria string
	AdSlotSize        string
	Budget            decimal.Decimal
	RemainingBudget   decimal.Decimal
}

// Dataset agrupa as três fontes tabulares carregadas de uma vez
type Dataset struct {
	Users     []User
	Campaigns []Campaign
	Events    []Event
}
