package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fundverse/fundtui/fv"
)

// ideaCmd represents the idea command.
var ideaCmd = &cobra.Command{
	Use:   "idea",
	Short: "Idea management commands",
	Long:  `Commands for creating and inspecting FundVerse project ideas.`,
}

// ideaCreateCmd represents the idea create command.
var ideaCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new project idea",
	Long:  `Submit a new project idea to FundVerse.`,
	RunE:  ideaCreateRun,
}

// ideaGetCmd represents the idea get command.
var ideaGetCmd = &cobra.Command{
	Use:   "get <idea-id>",
	Short: "Show an idea",
	Long:  `Fetch a single idea by its ID.`,
	Args:  cobra.ExactArgs(1),
	RunE:  ideaGetRun,
}

func init() {
	ideaCmd.AddCommand(ideaCreateCmd)
	ideaCmd.AddCommand(ideaGetCmd)

	ideaCreateCmd.Flags().String("title", "", "Project title, at most 100 characters (required)")
	ideaCreateCmd.Flags().String("description", "", "Project description, 10 to 500 characters (required)")
	ideaCreateCmd.Flags().String("funding-goal", "", "Funding goal as a decimal amount (required)")
	ideaCreateCmd.Flags().String("legal-entity", "", "Legal entity behind the project (required)")
	ideaCreateCmd.Flags().String("contact", "", "Contact email address (required)")
	ideaCreateCmd.Flags().String("category", "",
		fmt.Sprintf("Project category, one of: %s (required)", strings.Join(categories, ", ")))
	ideaCreateCmd.Flags().String("business-registration", "", "Business registration number (required)")

	_ = ideaCreateCmd.MarkFlagRequired("title")
	_ = ideaCreateCmd.MarkFlagRequired("description")
	_ = ideaCreateCmd.MarkFlagRequired("funding-goal")
	_ = ideaCreateCmd.MarkFlagRequired("legal-entity")
	_ = ideaCreateCmd.MarkFlagRequired("contact")
	_ = ideaCreateCmd.MarkFlagRequired("category")
	_ = ideaCreateCmd.MarkFlagRequired("business-registration")

	ideaGetCmd.Flags().StringP("output", "o", tableOutputFormat, "Output format: table or json")
}

func ideaCreateRun(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	fundingGoal, _ := cmd.Flags().GetString("funding-goal")
	legalEntity, _ := cmd.Flags().GetString("legal-entity")
	contact, _ := cmd.Flags().GetString("contact")
	category, _ := cmd.Flags().GetString("category")
	businessReg, _ := cmd.Flags().GetString("business-registration")

	request := IdeaRequest{
		Title:                title,
		Description:          description,
		FundingGoal:          fundingGoal,
		LegalEntity:          legalEntity,
		ContactInfo:          contact,
		Category:             category,
		BusinessRegistration: businessReg,
	}

	// All fields must pass before anything goes over the wire.
	if errs := request.Validate(); len(errs) > 0 {
		for field, msg := range errs {
			log.Error("invalid field", "field", field, "error", msg)
		}
		return errors.New("idea not created: fix the invalid fields and retry")
	}

	createReq, err := request.ToCreateIdea()
	if err != nil {
		return err
	}

	log.Debug("creating idea", "request", createReq)

	ideaID, err := fvc.CreateIdea(ctx, createReq)
	if err != nil {
		return fmt.Errorf("failed to create idea: %w", err)
	}

	log.Infof("Idea created successfully with ID: %d", ideaID)
	return nil
}

func ideaGetRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	outputFormat, err := validateOutputFormat(cmd)
	if err != nil {
		return err
	}

	ideaID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid idea ID: %s", args[0])
	}

	idea, err := fvc.GetIdeaByID(ctx, ideaID)
	if err != nil {
		return fmt.Errorf("failed to fetch idea %d: %w", ideaID, err)
	}

	switch outputFormat {
	case jsonOutputFormat:
		return outputJSON(idea)
	case tableOutputFormat:
		return outputIdeaTable(idea)
	default:
		return errors.New("unsupported output format")
	}
}

func outputIdeaTable(idea *fv.Idea) error {
	t := createStyledTable("FIELD", "VALUE")

	t.Row("ID", strconv.FormatInt(idea.ID, 10))
	t.Row("Title", idea.Title)
	t.Row("Description", idea.Description)
	t.Row("Funding Goal", fv.DisplayAmount(idea.FundingGoal))
	t.Row("Current Funding", fv.DisplayAmount(idea.CurrentFunding))
	t.Row("Legal Entity", idea.LegalEntity)
	t.Row("Contact", idea.ContactInfo)
	t.Row("Category", idea.Category)
	t.Row("Business Registration", strconv.Itoa(idea.BusinessRegistration))
	if idea.Status != "" {
		t.Row("Status", idea.Status)
	}
	if len(idea.DocIDs) > 0 {
		docs := make([]string, len(idea.DocIDs))
		for i, id := range idea.DocIDs {
			docs[i] = strconv.FormatInt(id, 10)
		}
		t.Row("Docs", strings.Join(docs, ", "))
	}

	fmt.Println(t)

	return nil
}
