package backend

import (
	"context"
	"net/url"
	"time"

	"github.com/aleister1102/phishscan/internal/models"
	"github.com/aleister1102/phishscan/internal/session"
)

type predictRequest struct {
	URL string `json:"url"`
}

type bulkRequest struct {
	URLs []string `json:"urls"`
}

// Enrich fetches page metadata for target. The backend reports unreachable
// pages with a 200 and an error field, which is returned as-is.
func (c *Client) Enrich(ctx context.Context, target models.NormalizedURL, sess session.Session) (models.EnrichmentInfo, error) {
	path := PathURLInfo + "?" + url.Values{"url": {target.String()}}.Encode()

	var info models.EnrichmentInfo
	if err := c.get(ctx, path, &sess, &info); err != nil {
		return models.EnrichmentInfo{}, err
	}
	return info, nil
}

// Predict classifies a single address. URL and CheckedAt are filled in when the
// backend leaves them out.
func (c *Client) Predict(ctx context.Context, target models.NormalizedURL, sess session.Session) (models.ScanResult, error) {
	var result models.ScanResult
	if err := c.post(ctx, PathPredict, &sess, predictRequest{URL: target.String()}, &result); err != nil {
		return models.ScanResult{}, err
	}

	if result.URL == "" {
		result.URL = target.String()
	}
	if result.CheckedAt.IsZero() {
		result.CheckedAt = time.Now()
	}
	return result, nil
}

// PredictBulk classifies up to the backend's per-request limit of addresses.
// The bulk endpoint carries no timestamps, so every item gets the response time.
func (c *Client) PredictBulk(ctx context.Context, urls []string, sess session.Session) (models.BulkScanResponse, error) {
	var resp models.BulkScanResponse
	if err := c.post(ctx, PathPredictBulk, &sess, bulkRequest{URLs: urls}, &resp); err != nil {
		return models.BulkScanResponse{}, err
	}

	now := time.Now()
	for i := range resp.Results {
		resp.Results[i].CheckedAt = now
	}
	return resp, nil
}
