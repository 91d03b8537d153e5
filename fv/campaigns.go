package fv

import (
	"context"
	"fmt"
	"net/url"
)

// GetCampaignCards returns all campaign cards.
func (c *Client) GetCampaignCards(ctx context.Context) ([]*CampaignCard, error) {
	var cards []*CampaignCard
	if err := c.get(ctx, "/v1/campaigns", nil, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// GetCampaignCardsByStatus returns the campaign cards whose funding
// window matches status.
func (c *Client) GetCampaignCardsByStatus(ctx context.Context, status CampaignStatus) ([]*CampaignCard, error) {
	query := url.Values{}
	query.Set("status", string(status))

	var cards []*CampaignCard
	if err := c.get(ctx, "/v1/campaigns", query, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// GetCampaignWithIdea returns a single campaign joined with its idea.
func (c *Client) GetCampaignWithIdea(ctx context.Context, campaignID int64) (*CampaignWithIdea, error) {
	var cwi CampaignWithIdea
	if err := c.get(ctx, fmt.Sprintf("/v1/campaigns/%d", campaignID), nil, &cwi); err != nil {
		return nil, err
	}
	return &cwi, nil
}

// CreateCampaignRequest opens a funding window for an existing idea.
type CreateCampaignRequest struct {
	IdeaID int64 `json:"idea_id"`
	// Goal is in base units.
	Goal int64 `json:"goal"`
	// EndDate is seconds since the Unix epoch.
	EndDate int64 `json:"end_date"`
}

// CreateCampaign creates a campaign linked to an existing idea and
// returns the new campaign id.
func (c *Client) CreateCampaign(ctx context.Context, req CreateCampaignRequest) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.post(ctx, "/v1/campaigns", req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}
