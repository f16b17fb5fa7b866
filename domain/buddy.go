package domain

var (
	MessageSuccessGetBuddy = "buddy status retrieved successfully"
	MessageFailedGetBuddy  = "failed to retrieve buddy status"
)

type (
	BuddyResponse struct {
		Mood         string `json:"mood"`
		Message      string `json:"message"`
		TotalBatches int    `json:"total_batches"`
		ExpiringSoon int    `json:"expiring_soon"`
		Expired      int    `json:"expired"`
	}
)
