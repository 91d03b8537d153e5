package fv

import (
	"context"
	"fmt"
)

// CreateIdeaRequest carries the fields for a new idea. FundingGoal is
// in base units; the caller converts from the display amount first.
type CreateIdeaRequest struct {
	Title                string `json:"title"`
	Description          string `json:"description"`
	FundingGoal          int64  `json:"funding_goal"`
	LegalEntity          string `json:"legal_entity"`
	ContactInfo          string `json:"contact_info"`
	Category             string `json:"category"`
	BusinessRegistration int    `json:"business_registration"`
}

// CreateIdea submits a new idea and returns its id.
func (c *Client) CreateIdea(ctx context.Context, req CreateIdeaRequest) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.post(ctx, "/v1/ideas", req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// GetIdeaByID fetches a single idea.
func (c *Client) GetIdeaByID(ctx context.Context, ideaID int64) (*Idea, error) {
	var idea Idea
	if err := c.get(ctx, fmt.Sprintf("/v1/ideas/%d", ideaID), nil, &idea); err != nil {
		return nil, err
	}
	return &idea, nil
}
