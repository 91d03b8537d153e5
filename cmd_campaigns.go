package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fundverse/fundtui/fv"
)

// campaignsCmd represents the campaigns command.
var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "Campaign browsing commands",
	Long:  `Commands for browsing and managing FundVerse campaigns.`,
}

// campaignsListCmd represents the campaigns list command.
var campaignsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaign cards",
	Long:  `List all campaign cards, optionally filtered by funding window status.`,
	RunE:  campaignsListRun,
}

// campaignsGetCmd represents the campaigns get command.
var campaignsGetCmd = &cobra.Command{
	Use:   "get <campaign-id>",
	Short: "Show a campaign with its idea",
	Long:  `Show a single campaign joined with the idea it was created from.`,
	Args:  cobra.ExactArgs(1),
	RunE:  campaignsGetRun,
}

// campaignsCreateCmd represents the campaigns create command.
var campaignsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Open a funding window for an idea",
	Long:  `Create a campaign linked to an existing idea.`,
	RunE:  campaignsCreateRun,
}

func init() {
	campaignsCmd.AddCommand(campaignsListCmd)
	campaignsCmd.AddCommand(campaignsGetCmd)
	campaignsCmd.AddCommand(campaignsCreateCmd)

	campaignsListCmd.Flags().String("status", "", "Filter by status: active or ended")
	campaignsListCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")

	campaignsGetCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")

	campaignsCreateCmd.Flags().Int64("idea", 0, "Idea ID to open the campaign for (required)")
	campaignsCreateCmd.Flags().String("goal", "", "Funding goal as a decimal amount (required)")
	campaignsCreateCmd.Flags().String("end-date", "", "Funding window end date (YYYY-MM-DD) (required)")

	_ = campaignsCreateCmd.MarkFlagRequired("idea")
	_ = campaignsCreateCmd.MarkFlagRequired("goal")
	_ = campaignsCreateCmd.MarkFlagRequired("end-date")
}

func campaignsListRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	status, _ := cmd.Flags().GetString("status")

	var cards []*fv.CampaignCard
	switch status {
	case "":
		cards, err = fvc.GetCampaignCards(ctx)
	case string(fv.CampaignActive), string(fv.CampaignEnded):
		cards, err = fvc.GetCampaignCardsByStatus(ctx, fv.CampaignStatus(status))
	default:
		return fmt.Errorf("invalid status: %s (must be 'active' or 'ended')", status)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch campaigns: %w", err)
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cards)
	case tableOutputFormat:
		return outputCampaignsTable(cards)
	default:
		return errors.New("unsupported output format")
	}
}

func outputCampaignsTable(cards []*fv.CampaignCard) error {
	t := createStyledTable("ID", "TITLE", "CATEGORY", "RAISED", "GOAL", "ENDS", "DAYS LEFT")

	for _, card := range cards {
		daysLeft := strconv.FormatInt(card.DaysLeft, 10)
		if card.Ended() {
			daysLeft = "ended"
		}

		t.Row(
			strconv.FormatInt(card.ID, 10),
			card.Title,
			card.Category,
			fv.DisplayAmount(card.AmountRaised),
			fv.DisplayAmount(card.Goal),
			time.Unix(card.EndDate, 0).UTC().Format("2006-01-02"),
			daysLeft,
		)
	}

	fmt.Println(t)

	return nil
}

func campaignsGetRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	campaignID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid campaign ID: %s", args[0])
	}

	cwi, err := fvc.GetCampaignWithIdea(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("failed to fetch campaign %d: %w", campaignID, err)
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(cwi)
	case tableOutputFormat:
		return outputCampaignDetailTable(cwi)
	default:
		return errors.New("unsupported output format")
	}
}

func outputCampaignDetailTable(cwi *fv.CampaignWithIdea) error {
	t := createStyledTable("FIELD", "VALUE")

	t.Row("Campaign ID", strconv.FormatInt(cwi.Campaign.ID, 10))
	t.Row("Title", cwi.Campaign.Title)
	t.Row("Category", cwi.Campaign.Category)
	t.Row("Raised", fv.DisplayAmount(cwi.Campaign.AmountRaised))
	t.Row("Goal", fv.DisplayAmount(cwi.Campaign.Goal))
	t.Row("Ends", time.Unix(cwi.Campaign.EndDate, 0).UTC().Format("2006-01-02"))
	t.Row("Days Left", strconv.FormatInt(cwi.Campaign.DaysLeft, 10))
	t.Row("Idea ID", strconv.FormatInt(cwi.Campaign.IdeaID, 10))
	t.Row("Description", cwi.Idea.Description)
	t.Row("Legal Entity", cwi.Idea.LegalEntity)
	t.Row("Contact", cwi.Idea.ContactInfo)
	if cwi.Idea.Status != "" {
		t.Row("Idea Status", cwi.Idea.Status)
	}

	fmt.Println(t)

	return nil
}

func campaignsCreateRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	ideaID, _ := cmd.Flags().GetInt64("idea")
	goalStr, _ := cmd.Flags().GetString("goal")
	endDateStr, _ := cmd.Flags().GetString("end-date")

	if err := validateFundingGoal(goalStr); err != nil {
		return err
	}

	goal, err := fv.ToBaseUnits(goalStr)
	if err != nil {
		return err
	}

	endDate, err := time.Parse("2006-01-02", endDateStr)
	if err != nil {
		return fmt.Errorf("invalid end date: %s (expected YYYY-MM-DD)", endDateStr)
	}

	req := fv.CreateCampaignRequest{
		IdeaID:  ideaID,
		Goal:    goal,
		EndDate: endDate.Unix(),
	}

	log.Debug("creating campaign", "request", req)

	campaignID, err := fvc.CreateCampaign(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}

	log.Infof("Campaign created successfully with ID: %d", campaignID)
	return nil
}
