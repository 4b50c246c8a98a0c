package dto

type PopulateResponse struct {
	Message           string `json:"message"`
	TotalProcessed    int    `json:"totalProcessed"`
	SuccessfullyAdded int    `json:"successfullyAdded"`
	Skipped           int    `json:"skipped"`
	Errors            int    `json:"errors"`
}

type ClearResponse struct {
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

type ResetResponse struct {
	Message  string           `json:"message"`
	Cleared  ClearResponse    `json:"clearResult"`
	Populate PopulateResponse `json:"populateResult"`
}
