package fv

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carlmjohnson/be"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, WithToken("test-token"))
	be.NilErr(t, err)

	return client
}

func TestNewClientRequiresEndpoint(t *testing.T) {
	_, err := NewClient("")
	be.Nonzero(t, err)
}

func TestGetCampaignCards(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, http.MethodGet, r.Method)
		be.Equal(t, "/v1/campaigns", r.URL.Path)
		be.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		_ = json.NewEncoder(w).Encode([]*CampaignCard{
			{ID: 1, IdeaID: 1, Title: "Eco-Friendly Water Bottles", Category: "Environment", Goal: 10000000000000, DaysLeft: 7},
			{ID: 2, IdeaID: 2, Title: "Indie Pixel Art Game", Category: "Gaming", Goal: 10000000000000, DaysLeft: -5},
		})
	})

	cards, err := client.GetCampaignCards(context.Background())
	be.NilErr(t, err)
	be.Equal(t, 2, len(cards))
	be.Equal(t, "Eco-Friendly Water Bottles", cards[0].Title)
	be.False(t, cards[0].Ended())
	be.True(t, cards[1].Ended())
}

func TestGetCampaignCardsByStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, "active", r.URL.Query().Get("status"))
		_ = json.NewEncoder(w).Encode([]*CampaignCard{{ID: 1}})
	})

	cards, err := client.GetCampaignCardsByStatus(context.Background(), CampaignActive)
	be.NilErr(t, err)
	be.Equal(t, 1, len(cards))
}

func TestCreateIdea(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, http.MethodPost, r.Method)
		be.Equal(t, "/v1/ideas", r.URL.Path)
		be.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req CreateIdeaRequest
		be.NilErr(t, json.NewDecoder(r.Body).Decode(&req))
		be.Equal(t, "Eco-Friendly Water Bottles", req.Title)
		be.Equal(t, int64(10000000000000), req.FundingGoal)

		_ = json.NewEncoder(w).Encode(map[string]int64{"id": 3})
	})

	id, err := client.CreateIdea(context.Background(), CreateIdeaRequest{
		Title:                "Eco-Friendly Water Bottles",
		Description:          "Reusable bottles made from recycled materials",
		FundingGoal:          10000000000000,
		LegalEntity:          "EcoCorp LLC",
		ContactInfo:          "contact@ecocorp.example",
		Category:             "Environment",
		BusinessRegistration: 1,
	})
	be.NilErr(t, err)
	be.Equal(t, int64(3), id)
}

func TestContributeAndConfirm(t *testing.T) {
	var confirmPath string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/contributions":
			var req ContributeRequest
			be.NilErr(t, json.NewDecoder(r.Body).Decode(&req))
			be.Equal(t, int64(2500000000), req.Amount)
			be.Equal(t, "aaaaa-aa", req.PayeePrincipal)
			_ = json.NewEncoder(w).Encode(map[string]int64{"contribution_id": 42})
		default:
			confirmPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
		}
	})

	ctx := context.Background()

	id, err := client.Contribute(ctx, ContributeRequest{
		PayeePrincipal: "aaaaa-aa",
		CampaignID:     1,
		Amount:         2500000000,
	})
	be.NilErr(t, err)
	be.Equal(t, int64(42), id)

	be.NilErr(t, client.ConfirmPayment(ctx, id, "aaaaa-aa"))
	be.Equal(t, "/v1/contributions/42/confirm", confirmPath)
}

func TestAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "idea_id not found"})
	})

	_, err := client.GetIdeaByID(context.Background(), 99)
	be.Nonzero(t, err)

	var apiErr *APIError
	be.True(t, errors.As(err, &apiErr))
	be.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	be.Equal(t, "idea_id not found", apiErr.Message)
}

func TestRegisterUser(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		be.Equal(t, "/v1/users/register", r.URL.Path)
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "already registered"})
	})

	// already-registered comes back as an error the caller may ignore
	err := client.RegisterUser(context.Background(), RegisterUserRequest{
		DisplayName: "alice",
		Email:       "alice@example.com",
	})
	be.Nonzero(t, err)
}
