package backend

import (
	"context"
	"net/http"

	"github.com/aleister1102/phishscan/internal/models"
	"github.com/aleister1102/phishscan/internal/session"
)

// History lists the user's past scans, newest first as stored by the backend.
func (c *Client) History(ctx context.Context, sess session.Session) ([]models.ScanResult, error) {
	var results []models.ScanResult
	if err := c.get(ctx, PathHistory, &sess, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// Statistics returns the aggregate counters behind the dashboard charts.
func (c *Client) Statistics(ctx context.Context, sess session.Session) (models.Statistics, error) {
	var stats models.Statistics
	if err := c.get(ctx, PathStatistics, &sess, &stats); err != nil {
		return models.Statistics{}, err
	}
	return stats, nil
}

// Profile returns the account of the session's user.
func (c *Client) Profile(ctx context.Context, sess session.Session) (models.Profile, error) {
	var profile models.Profile
	if err := c.get(ctx, PathProfile, &sess, &profile); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// UpdateProfile changes the username and/or display name.
func (c *Client) UpdateProfile(ctx context.Context, sess session.Session, update models.ProfileUpdate) (models.ProfileUpdateResponse, error) {
	var resp models.ProfileUpdateResponse
	err := c.do(ctx, call{
		method:  http.MethodPut,
		path:    PathProfile,
		session: &sess,
		body:    update,
		out:     &resp,
	})
	if err != nil {
		return models.ProfileUpdateResponse{}, err
	}
	return resp, nil
}
