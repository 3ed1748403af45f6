package response

// IntakeResponse acknowledges a completed workflow run. It deliberately
// carries none of the created records: consumers that need them listen on
// the sync-complete broadcast.
type IntakeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func SyncedAck() IntakeResponse {
	return IntakeResponse{Success: true, Message: "workflow synced"}
}
