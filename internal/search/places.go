// Package search wraps the place-search provider the forms use to turn
// free text into a concrete name + coordinates.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"cortado/internal/model"
)

const fusionAPIBase = "https://api.yelp.com/v3"

// Service is the place-search capability the UI depends on. Resolve
// returning (nil, nil) means the selected suggestion has no usable
// name or coordinates; callers treat that as a normal empty outcome,
// distinct from an in-flight query.
type Service interface {
	Suggest(ctx context.Context, query, near string) ([]Suggestion, error)
	Resolve(ctx context.Context, s Suggestion) (*model.ResolvedPlace, error)
}

// Suggestion is one ranked completion for a query fragment.
type Suggestion struct {
	Title    string
	Subtitle string
	PlaceID  string
}

// Client talks to the Yelp Fusion API, biased toward coffee and study
// spots.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a place-search client.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    fusionAPIBase,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

// Suggest returns ranked suggestions for a query fragment. The near
// hint biases ranking; it may be empty.
func (c *Client) Suggest(ctx context.Context, query, near string) ([]Suggestion, error) {
	if strings.TrimSpace(query) == "" {
		return []Suggestion{}, nil
	}

	params := url.Values{}
	params.Set("term", query)
	params.Set("categories", "coffee,cafes,coffeeroasteries,tea")
	params.Set("limit", "8")
	params.Set("sort_by", "best_match")
	if near != "" {
		params.Set("location", near)
	} else {
		params.Set("location", "Orange, CA")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/businesses/search?%s", c.baseURL, params.Encode()), nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API error: status %d", resp.StatusCode)
	}

	var result businessSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("JSON decode error: %w", err)
	}

	suggestions := make([]Suggestion, 0, len(result.Businesses))
	for _, b := range result.Businesses {
		suggestions = append(suggestions, Suggestion{
			Title:    b.Name,
			Subtitle: b.subtitle(),
			PlaceID:  b.ID,
		})
	}
	return suggestions, nil
}

// Resolve fetches the concrete place behind a suggestion. A business
// without a name or coordinates yields (nil, nil).
func (c *Client) Resolve(ctx context.Context, s Suggestion) (*model.ResolvedPlace, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/businesses/%s", c.baseURL, url.PathEscape(s.PlaceID)), nil)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API error: status %d", resp.StatusCode)
	}

	var b businessDetail
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return nil, fmt.Errorf("JSON decode error: %w", err)
	}

	if b.Name == "" || b.Coordinates == nil {
		return nil, nil
	}

	return &model.ResolvedPlace{
		Name: b.Name,
		Location: model.Coordinate{
			Latitude:  b.Coordinates.Latitude,
			Longitude: b.Coordinates.Longitude,
		},
	}, nil
}

// API response types

type businessSearchResponse struct {
	Businesses []businessDetail `json:"businesses"`
	Total      int              `json:"total"`
}

type businessDetail struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Coordinates *coordinates `json:"coordinates"`
	Location    *location    `json:"location"`
	Categories  []category   `json:"categories"`
}

func (b businessDetail) subtitle() string {
	var parts []string
	if b.Location != nil {
		if b.Location.Address1 != "" {
			parts = append(parts, b.Location.Address1)
		}
		if b.Location.City != "" {
			parts = append(parts, b.Location.City)
		}
	}
	if len(parts) == 0 && len(b.Categories) > 0 {
		parts = append(parts, b.Categories[0].Title)
	}
	return strings.Join(parts, ", ")
}

type category struct {
	Alias string `json:"alias"`
	Title string `json:"title"`
}

type coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type location struct {
	Address1 string `json:"address1"`
	City     string `json:"city"`
	State    string `json:"state"`
	ZipCode  string `json:"zip_code"`
}
