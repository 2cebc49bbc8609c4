// Package geo defines the forward-geocoding contract used when a
// listing is created or its location changes.  The external geocoding
// provider is a black box behind the Geocoder interface; when no API
// token is configured a static fallback returns the zero point so
// listing creation never depends on the network.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geocoder resolves a place description to a point.
type Geocoder interface {
	Forward(ctx context.Context, place string) (Point, error)
}

// New returns a Mapbox-backed geocoder when a token is configured and
// the static fallback otherwise.
func New(token string) Geocoder {
	if token == "" {
		return Static{}
	}
	return &Client{Token: token, HTTP: &http.Client{Timeout: 5 * time.Second}}
}

// Static is the no-network fallback geocoder.  It always resolves to
// the zero point.
type Static struct{}

// Forward implements Geocoder.
func (Static) Forward(ctx context.Context, place string) (Point, error) {
	return Point{}, nil
}

// Client calls the Mapbox forward-geocoding REST API.
type Client struct {
	Token string
	HTTP  *http.Client
}

const mapboxEndpoint = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// Forward resolves place to the first feature returned by the API.
// Zero results yield the zero point without error; transport and
// decode failures are returned to the caller, which degrades to the
// fallback point.
func (g *Client) Forward(ctx context.Context, place string) (Point, error) {
	u := fmt.Sprintf("%s/%s.json?access_token=%s&limit=1",
		mapboxEndpoint, url.PathEscape(place), url.QueryEscape(g.Token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return Point{}, err
	}
	resp, err := g.HTTP.Do(req)
	if err != nil {
		return Point{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Point{}, fmt.Errorf("geocoding request failed: %s", resp.Status)
	}

	var body struct {
		Features []struct {
			Center [2]float64 `json:"center"` // [lng, lat]
		} `json:"features"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Point{}, err
	}
	if len(body.Features) == 0 {
		return Point{}, nil
	}
	c := body.Features[0].Center
	return Point{Lat: c[1], Lng: c[0]}, nil
}
