package fv

import (
	"context"
	"fmt"
)

// UploadDocRequest attaches a document to an idea.
type UploadDocRequest struct {
	IdeaID      int64  `json:"idea_id"`
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

// UploadDoc uploads a document for an idea and returns the new doc id.
func (c *Client) UploadDoc(ctx context.Context, req UploadDocRequest) (int64, error) {
	var resp struct {
		ID int64 `json:"id"`
	}
	if err := c.post(ctx, fmt.Sprintf("/v1/ideas/%d/docs", req.IdeaID), req, &resp); err != nil {
		return 0, err
	}
	return resp.ID, nil
}

// GetDoc fetches a document by id.
func (c *Client) GetDoc(ctx context.Context, docID int64) (*Doc, error) {
	var doc Doc
	if err := c.get(ctx, fmt.Sprintf("/v1/docs/%d", docID), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}
