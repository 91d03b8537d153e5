package fv

import (
	"context"
	"fmt"
)

// RegisterUserRequest registers the acting user with the backend.
// Registration is idempotent from the caller's perspective: the call
// fails harmlessly if the user already exists.
type RegisterUserRequest struct {
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
}

// RegisterUser registers the acting user.
func (c *Client) RegisterUser(ctx context.Context, req RegisterUserRequest) error {
	return c.post(ctx, "/v1/users/register", req, nil)
}

// ContributeRequest records a contribution toward a campaign. Amount
// is in base units. PayeePrincipal identifies the backend's custodial
// identity that receives the funds.
type ContributeRequest struct {
	PayeePrincipal string `json:"payee_principal"`
	CampaignID     int64  `json:"campaign_id"`
	Amount         int64  `json:"amount"`
}

// Contribute submits a contribution and returns the contribution id
// to be confirmed with ConfirmPayment.
func (c *Client) Contribute(ctx context.Context, req ContributeRequest) (int64, error) {
	var resp struct {
		ContributionID int64 `json:"contribution_id"`
	}
	if err := c.post(ctx, "/v1/contributions", req, &resp); err != nil {
		return 0, err
	}
	return resp.ContributionID, nil
}

// ConfirmPayment confirms a previously submitted contribution.
func (c *Client) ConfirmPayment(ctx context.Context, contributionID int64, payeePrincipal string) error {
	body := struct {
		PayeePrincipal string `json:"payee_principal"`
	}{PayeePrincipal: payeePrincipal}

	return c.post(ctx, fmt.Sprintf("/v1/contributions/%d/confirm", contributionID), body, nil)
}
