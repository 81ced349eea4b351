package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Resultados das consultas sobre o document store

type Interaction struct {
	SessionID    string    `bson:"session_id" json:"session_id"`
	Device       string    `bson:"device" json:"device"`
	ImpressionID string    `bson:"impression_id" json:"impression_id"`
	EventID      string    `bson:"event_id" json:"event_id"`
	AdID         string    `bson:"ad_id" json:"ad_id"`
	CampaignID   *int64    `bson:"campaign_id" json:"campaign_id"`
	Timestamp    time.Time `bson:"timestamp" json:"timestamp"`
	WasClicked   bool      `bson:"was_clicked" json:"was_clicked"`
	Click        *Click    `bson:"click,omitempty" json:"click"`
}

type SessionSummary struct {
	SessionID string    `bson:"session_id" json:"session_id"`
	Device    string    `bson:"device" json:"device"`
	StartTime time.Time `bson:"start_time" json:"start_time"`
	NumAds    int       `bson:"num_ads" json:"num_ads"`
	NumClicks int       `bson:"num_clicks" json:"num_clicks"`
}

type HourlyClicks struct {
	CampaignID int64     `bson:"campaign_id" json:"campaign_id"`
	Hour       time.Time `bson:"hour" json:"hour"`
	Clicks     int       `bson:"clicks" json:"clicks"`
}

type FatiguedUser struct {
	UserID int64    `bson:"user_id" json:"user_id"`
	AdIDs  []string `bson:"ad_ids" json:"ad_ids"`
	NumAds int      `bson:"num_ads" json:"num_ads"`
}

type CategoryClicks struct {
	Category string `bson:"category" json:"category"`
	Clicks   int    `bson:"clicks" json:"clicks"`
}

// Resultados das consultas sobre o banco relacional.
// Razões com denominador zero ficam nulas (Valid=false).

type CampaignCTR struct {
	CampaignID   int64               `json:"campaign_id"`
	CampaignName string              `json:"campaign_name"`
	Impressions  int64               `json:"impressions"`
	Clicks       int64               `json:"clicks"`
	CTR          decimal.NullDecimal `json:"ctr"`
}

type AdvertiserSpend struct {
	AdvertiserID   int64           `json:"advertiser_id"`
	AdvertiserName string          `json:"advertiser_name"`
	TotalSpent     decimal.Decimal `json:"total_spent"`
	Impressions    int64           `json:"impressions"`
	Clicks         int64           `json:"clicks"`
}

type CampaignCost struct {
	CampaignID   int64               `json:"campaign_id"`
	CampaignName string              `json:"campaign_name"`
	AvgCPC       decimal.NullDecimal `json:"avg_cpc"`
	AvgCPM       decimal.NullDecimal `json:"avg_cpm"`
}

type LocationRevenue struct {
	Location     string          `json:"location"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
}

type ActiveUser struct {
	UserID   int64  `json:"user_id"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Location string `json:"location"`
	Clicks   int64  `json:"clicks"`
}

type BudgetUsage struct {
	CampaignID      int64           `json:"campaign_id"`
	CampaignName    string          `json:"campaign_name"`
	Budget          decimal.Decimal `json:"budget"`
	RemainingBudget decimal.Decimal `json:"remaining_budget"`
	PercentSpent    decimal.Decimal `json:"percent_spent"`
}

type DeviceCTR struct {
	Device      string              `json:"device"`
	Impressions int64               `json:"impressions"`
	Clicks      int64               `json:"clicks"`
	CTR         decimal.NullDecimal `json:"ctr"`
}

// ReportFilters restringe as consultas relacionais a um intervalo de datas dos eventos
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
}
