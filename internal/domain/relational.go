package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Entidades normalizadas gravadas no banco relacional

type Advertiser struct {
	ID   int64
	Name string
}

type CampaignRow struct {
	CampaignID        int64
	AdvertiserID      int64
	CampaignName      string
	StartDate         string
	EndDate           string
	TargetingCriteria string
	AdSlotSize        string
	Budget            decimal.Decimal
	RemainingBudget   decimal.Decimal
}

type UserRow struct {
	UserID     int64
	Age        int
	Gender     string
	Location   string
	SignupDate string
}

type UserInterest struct {
	UserID   int64
	Interest string
}

type AdEventRow struct {
	EventID    string
	CampaignID int64
	UserID     int64
	Device     string
	Location   string
	Timestamp  time.Time
	BidAmount  decimal.Decimal
	AdCost     decimal.Decimal
	AdRevenue  decimal.Decimal
}

type ClickRow struct {
	EventID        string
	ClickTimestamp time.Time
}

// Values retornam as colunas na ordem usada pelas tabelas do repositório

func (c CampaignRow) Values() []any {
	return []any{c.CampaignID, c.AdvertiserID, c.CampaignName, nullIfEmpty(c.StartDate), nullIfEmpty(c.EndDate), c.TargetingCriteria, c.AdSlotSize, c.Budget, c.RemainingBudget}
}

func (u UserRow) Values() []any {
	return []any{u.UserID, u.Age, u.Gender, u.Location, nullIfEmpty(u.SignupDate)}
}

func (i UserInterest) Values() []any {
	return []any{i.UserID, i.Interest}
}

func (e AdEventRow) Values() []any {
	return []any{e.EventID, e.CampaignID, e.UserID, e.Device, e.Location, e.Timestamp, e.BidAmount, e.AdCost, e.AdRevenue}
}

func (c ClickRow) Values() []any {
	return []any{c.EventID, c.ClickTimestamp}
}

// nullIfEmpty grava NULL em colunas de data quando a origem veio vazia
func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
