package repository

// Table descreve uma tabela do esquema relacional e a ordem das colunas usada nos inserts
type Table struct {
	Name     string
	Columns  []string
	IDColumn string // coluna de id gerado pelo banco, quando houver
}

var (
	AdvertisersTable = Table{
		Name:     "advertisers",
		Columns:  []string{"advertiser_name"},
		IDColumn: "advertiser_id",
	}
	CampaignsTable = Table{
		Name: "campaigns",
		Columns: []string{
			"campaign_id", "advertiser_id", "campaign_name", "start_date", "end_date",
			"targeting_criteria", "ad_slot_size", "budget", "remaining_budget",
		},
		IDColumn: "campaign_id",
	}
	UsersTable = Table{
		Name:    "users",
		Columns: []string{"user_id", "age", "gender", "location", "signup_date"},
	}
	UserInterestsTable = Table{
		Name:    "user_interests",
		Columns: []string{"user_id", "interest"},
	}
	AdEventsTable = Table{
		Name: "ad_events",
		Columns: []string{
			"event_id", "campaign_id", "user_id", "device", "location",
			"timestamp", "bid_amount", "ad_cost", "ad_revenue",
		},
	}
	ClicksTable = Table{
		Name:     "clicks",
		Columns:  []string{"event_id", "click_timestamp"},
		IDColumn: "click_id",
	}
)

// clearOrder lista as tabelas das dependentes para as principais, respeitando as chaves estrangeiras
var clearOrder = []Table{
	ClicksTable,
	AdEventsTable,
	UserInterestsTable,
	UsersTable,
	CampaignsTable,
	AdvertisersTable,
}
