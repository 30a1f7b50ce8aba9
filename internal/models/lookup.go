package models

import "time"

type Lookup struct {
	ID         string
	Query      string // raw query as sent by the client
	Normalized string
	Outcome    string // "found", "fallback", "ambiguous" or "invalid"
	CenterID   string // empty unless a center was returned
	Enriched   bool   // provider returned at least one travel mode
	CreatedAt  time.Time
}

type CenterStat struct {
	CenterID  string `json:"center_id"`
	Lookups   int64  `json:"lookups"`
	Fallbacks int64  `json:"fallbacks"`
}
