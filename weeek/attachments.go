// ABOUTME: Attachment upload for tasks via multipart form data.
// ABOUTME: Attachment metadata is passed through from the remote unmodified.

package weeek

import (
	"context"
	"fmt"
	"io"
)

// UploadAttachment uploads a file to a task. The returned record carries the
// remote's storage service and a time-limited access URL, both passed through
// as-is.
func (c *Client) UploadAttachment(ctx context.Context, taskID int, filename string, r io.Reader) (*Attachment, error) {
	raw, err := c.doMultipart(ctx, fmt.Sprintf("/tm/tasks/%d/attachments", taskID), "file", filename, r)
	if err != nil {
		return nil, err
	}
	a, err := unwrapItem[Attachment](raw, "attachment")
	if err != nil {
		return nil, err
	}
	return &a, nil
}
