package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielokoye/invoicescan/internal/common"
)

// textractClient speaks the backend's JSON-over-POST protocol: every
// operation goes to the same endpoint, dispatched by the X-Amz-Target
// header.
type textractClient struct {
	endpoint string
	httpc    *http.Client
	log      *slog.Logger
}

func newTextractClient(endpoint string, httpc *http.Client, log *slog.Logger) *textractClient {
	if httpc == nil {
		httpc = &http.Client{Timeout: 45 * time.Second}
	}
	if log == nil {
		log = slog.Default()
	}
	return &textractClient{endpoint: endpoint, httpc: httpc, log: log}
}

func (c *textractClient) call(ctx context.Context, target string, in, out any) error {
	reqID := uuid.New().String()
	start := time.Now()

	bs, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(bs))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-amz-json-1.1")
	req.Header.Set("X-Amz-Target", "Textract."+target)

	c.log.Debug("textract.request", "req_id", reqID, "target", target, "content_length", len(bs))

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Error("textract.send_error", "req_id", reqID, "target", target, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return &common.BackendError{Provider: "textract", Message: "request failed", Cause: err}
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Warn("textract.response_body_close_error", "req_id", reqID, "error", cerr)
		}
	}()

	raw, _ := io.ReadAll(resp.Body)

	c.log.Debug("textract.response",
		"req_id", reqID,
		"target", target,
		"status", resp.StatusCode,
		"bytes", len(raw),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode/100 != 2 {
		return &common.BackendError{
			Provider: "textract",
			Message:  fmt.Sprintf("%s returned status %d: %s", target, resp.StatusCode, truncate(string(raw), 512)),
		}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &common.BackendError{Provider: "textract", Message: "undecodable response", Cause: err}
	}
	return nil
}
