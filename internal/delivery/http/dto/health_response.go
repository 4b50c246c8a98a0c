package dto

import "time"

type HealthResponse struct {
	Status     string    `json:"status"`
	Service    string    `json:"service"`
	Database   string    `json:"database"`
	Cache      string    `json:"cache"`
	ServerTime time.Time `json:"serverTime"`
}
