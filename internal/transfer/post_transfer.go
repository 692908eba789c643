package transfer

type PostGenerateRequest struct {
	Industry string `json:"industry"`
}

// PostUpdate is a semantic partial patch: nil fields are left untouched.
type PostUpdate struct {
	Status      *string `json:"status"`
	ScheduledAt *string `json:"scheduled_at"`
}
