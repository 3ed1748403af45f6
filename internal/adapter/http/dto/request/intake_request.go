package request

import "strings"

// IntakeRequest is the inbound payload for the intake endpoint: the pasted
// client message plus an optional platform tag.
type IntakeRequest struct {
	RawText  string `json:"raw_text" binding:"required"`
	Platform string `json:"platform"`
}

func (r IntakeRequest) ResolveRawText() string {
	if v := strings.TrimSpace(r.RawText); v != "" {
		return r.RawText
	}
	return ""
}

func (r IntakeRequest) ResolvePlatform() string {
	return strings.TrimSpace(r.Platform)
}
