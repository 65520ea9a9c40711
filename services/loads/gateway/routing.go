package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/naqla-app/naqla/internal/pkg/models"
)

// EstimateRoute asks the routing service for the distance and travel time
// between an origin and a destination
func (g *LoadGW) EstimateRoute(ctx context.Context, originLat, originLng, destLat, destLng float64) (*models.RouteEstimate, error) {
	params := url.Values{}
	params.Set("origin_lat", strconv.FormatFloat(originLat, 'f', -1, 64))
	params.Set("origin_lng", strconv.FormatFloat(originLng, 'f', -1, 64))
	params.Set("dest_lat", strconv.FormatFloat(destLat, 'f', -1, 64))
	params.Set("dest_lng", strconv.FormatFloat(destLng, 'f', -1, 64))

	endpoint := fmt.Sprintf("%s/route?%s", g.routingClient.BaseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create routing request: %w", err)
	}

	resp, err := g.routingClient.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("routing request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("routing service returned status %d", resp.StatusCode)
	}

	var estimate models.RouteEstimate
	if err := json.NewDecoder(resp.Body).Decode(&estimate); err != nil {
		return nil, fmt.Errorf("failed to decode routing response: %w", err)
	}

	return &estimate, nil
}
