package fv

// Idea is a proposed project, the precursor to a fundable campaign.
type Idea struct {
	ID                   int64   `json:"id"`
	Title                string  `json:"title"`
	Description          string  `json:"description"`
	FundingGoal          int64   `json:"funding_goal"`
	CurrentFunding       int64   `json:"current_funding"`
	LegalEntity          string  `json:"legal_entity"`
	Status               string  `json:"status,omitempty"`
	ContactInfo          string  `json:"contact_info"`
	Category             string  `json:"category"`
	BusinessRegistration int     `json:"business_registration"`
	CreatedAt            int64   `json:"created_at"`
	UpdatedAt            int64   `json:"updated_at"`
	DocIDs               []int64 `json:"doc_ids,omitempty"`
}

// CampaignCard is the list view of a campaign, joined with its idea's
// title and category. Monetary fields are in base units.
type CampaignCard struct {
	ID           int64  `json:"id"`
	IdeaID       int64  `json:"idea_id"`
	Title        string `json:"title"`
	Category     string `json:"category"`
	AmountRaised int64  `json:"amount_raised"`
	Goal         int64  `json:"goal"`
	EndDate      int64  `json:"end_date"`
	DaysLeft     int64  `json:"days_left"`
}

// Ended reports whether the campaign's funding window has closed.
func (c *CampaignCard) Ended() bool {
	return c.DaysLeft < 0
}

// CampaignWithIdea is a campaign card joined with its full idea record.
type CampaignWithIdea struct {
	Campaign CampaignCard `json:"campaign"`
	Idea     Idea         `json:"idea"`
}

// CampaignStatus filters campaign listings.
type CampaignStatus string

const (
	CampaignActive CampaignStatus = "active"
	CampaignEnded  CampaignStatus = "ended"
)

// Doc is a document attached to an idea.
type Doc struct {
	ID          int64  `json:"id"`
	IdeaID      int64  `json:"idea_id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
	UploadedAt  int64  `json:"uploaded_at"`
}
