package domain

import "time"

// EngagementDocument é o documento por usuário gravado na coleção users_engagement
type EngagementDocument struct {
	UserID     int64     `bson:"user_id" json:"user_id"`
	Age        int       `bson:"age" json:"age"`
	Gender     string    `bson:"gender" json:"gender"`
	Location   string    `bson:"location" json:"location"`
	SignupDate string    `bson:"signup_date,omitempty" json:"signup_date,omitempty"`
	Interests  []string  `bson:"interests" json:"interests"`
	AdSessions []Session `bson:"ad_sessions" json:"ad_sessions"`
}

type Session struct {
	SessionID     string       `bson:"session_id" json:"session_id"`
	Device        string       `bson:"device" json:"device"`
	StartTime     time.Time    `bson:"start_time" json:"start_time"`
	AdImpressions []Impression `bson:"ad_impressions" json:"ad_impressions"`
}

type Impression struct {
	ImpressionID string    `bson:"impression_id" json:"impression_id"`
	EventID      string    `bson:"event_id" json:"event_id"`
	AdID         string    `bson:"ad_id" json:"ad_id"`
	CampaignID   *int64    `bson:"campaign_id" json:"campaign_id"`
	CampaignName string    `bson:"campaign_name" json:"campaign_name"`
	AdCategory   *string   `bson:"ad_category" json:"ad_category"`
	Timestamp    time.Time `bson:"timestamp" json:"timestamp"`
	WasClicked   bool      `bson:"was_clicked" json:"was_clicked"`
	Click        *Click    `bson:"click,omitempty" json:"click,omitempty"`
}

type Click struct {
	ClickTimestamp time.Time `bson:"click_timestamp" json:"click_timestamp"`
}

// ImpressionCount retorna o total de impressões embutidas em todas as sessões
func (d *EngagementDocument) ImpressionCount() int {
	total := 0
	for _, session := range d.AdSessions {
		total += len(session.AdImpressions)
	}
	return total
}
