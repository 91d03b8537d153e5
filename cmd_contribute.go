package main

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// contributeCmd represents the contribute command.
var contributeCmd = &cobra.Command{
	Use:   "contribute",
	Short: "Contribute to a campaign",
	Long:  `Contribute an amount to a campaign and confirm the payment.`,
	RunE:  contributeRun,
}

func init() {
	contributeCmd.Flags().Int64("campaign", 0, "Campaign ID to contribute to (required)")
	contributeCmd.Flags().String("amount", "", "Contribution amount, greater than 0 and at most 1000 (required)")

	_ = contributeCmd.MarkFlagRequired("campaign")
	_ = contributeCmd.MarkFlagRequired("amount")
}

func contributeRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	campaignID, _ := cmd.Flags().GetInt64("campaign")
	amount, _ := cmd.Flags().GetString("amount")

	request := ContributionRequest{
		Amount:     amount,
		CampaignID: campaignID,
	}

	if errs := request.Validate(); len(errs) > 0 {
		for field, msg := range errs {
			log.Error("invalid field", "field", field, "error", msg)
		}
		return errors.New("contribution not submitted: fix the invalid fields and retry")
	}

	contributionID, err := submitContribution(ctx, fvc, appConfig(), request)
	if err != nil {
		return err
	}

	log.Infof("Contribution %s confirmed with ID: %s",
		amount, strconv.FormatInt(contributionID, 10))
	return nil
}
