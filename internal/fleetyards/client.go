// Package fleetyards provides image-only access to the FleetYards API.
// All ship data (specs, hardpoints, items) comes from the scunpacked
// catalog; FleetYards is consulted solely for store images.
package fleetyards

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Lucky44/SC-fleet-manager/internal/models"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// --- Raw API response types (image fields only) ---

type apiShip struct {
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Media *apiMedia `json:"media"`
}

type apiMedia struct {
	StoreImage *apiImage `json:"storeImage"`
}

type apiImage struct {
	Source string `json:"source"`
	Small  string `json:"small"`
	Large  string `json:"large"`
}

// FetchAllShipImages retrieves store images for every ship model, keyed by
// lowercase ship name for matching against the catalog.
func (c *Client) FetchAllShipImages(ctx context.Context) (map[string]models.ShipImages, error) {
	images := make(map[string]models.ShipImages)
	page := 1
	perPage := 50

	for {
		url := fmt.Sprintf("%s/v1/models?page=%d&perPage=%d", c.baseURL, page, perPage)
		log.Debug().Str("url", url).Int("page", page).Msg("fetching ship images page")

		body, err := c.doGet(ctx, url)
		if err != nil {
			return images, fmt.Errorf("fetching page %d: %w", page, err)
		}

		var apiShips []apiShip
		if err := json.Unmarshal(body, &apiShips); err != nil {
			return images, fmt.Errorf("parsing page %d: %w", page, err)
		}

		if len(apiShips) == 0 {
			break
		}

		for _, as := range apiShips {
			if as.Name == "" || as.Media == nil || as.Media.StoreImage == nil {
				continue
			}
			img := as.Media.StoreImage
			large := img.Large
			if large == "" {
				large = img.Source
			}
			if large == "" && img.Small == "" {
				continue
			}
			images[strings.ToLower(strings.TrimSpace(as.Name))] = models.ShipImages{
				Large: large,
				Small: img.Small,
			}
		}

		log.Info().Int("page", page).Int("count", len(apiShips)).Int("images_total", len(images)).Msg("fetched ship images page")

		if len(apiShips) < perPage {
			break
		}

		page++
		time.Sleep(500 * time.Millisecond)
	}

	return images, nil
}

func (c *Client) doGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 10<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		limit := len(body)
		if limit > 200 {
			limit = 200
		}
		return nil, fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(body[:limit]))
	}
	return body, nil
}
