package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fundverse/fundtui/fv"
)

// docCmd represents the doc command.
var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Idea document commands",
	Long:  `Commands for uploading and downloading documents attached to ideas.`,
}

// docUploadCmd represents the doc upload command.
var docUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a document for an idea",
	Long:  `Upload a local file as a document attached to an idea.`,
	Args:  cobra.ExactArgs(1),
	RunE:  docUploadRun,
}

// docGetCmd represents the doc get command.
var docGetCmd = &cobra.Command{
	Use:   "get <doc-id>",
	Short: "Download a document",
	Long:  `Download a document by ID and write it to a local file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  docGetRun,
}

func init() {
	docCmd.AddCommand(docUploadCmd)
	docCmd.AddCommand(docGetCmd)

	docUploadCmd.Flags().Int64("idea", 0, "Idea ID the document belongs to (required)")
	docUploadCmd.Flags().String("content-type", "", "Content type of the file (detected when omitted)")

	_ = docUploadCmd.MarkFlagRequired("idea")

	docGetCmd.Flags().StringP("output", "o", "", "Output file path (defaults to the document's stored name)")
}

func docUploadRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	ideaID, _ := cmd.Flags().GetInt64("idea")
	contentType, _ := cmd.Flags().GetString("content-type")

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	req := fv.UploadDocRequest{
		IdeaID:      ideaID,
		Name:        filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}

	log.Debug("uploading document", "idea", ideaID, "name", req.Name, "content_type", contentType, "bytes", len(data))

	docID, err := fvc.UploadDoc(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to upload document: %w", err)
	}

	log.Infof("Document uploaded successfully with ID: %d", docID)
	return nil
}

func docGetRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	docID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid doc ID: %s", args[0])
	}

	doc, err := fvc.GetDoc(ctx, docID)
	if err != nil {
		return fmt.Errorf("failed to fetch document %d: %w", docID, err)
	}

	out, _ := cmd.Flags().GetString("output")
	if out == "" {
		out = doc.Name
	}

	if err := os.WriteFile(out, doc.Data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	log.Infof("Document %d written to %s (%d bytes)", doc.ID, out, len(doc.Data))
	return nil
}
