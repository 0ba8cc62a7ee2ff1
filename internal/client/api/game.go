package api

import (
	"context"
	"net/http"

	"github.com/dangtv/coinclub/internal/client/models"
)

// OpenChest plays the treasure chest once.
func (c *Client) OpenChest(ctx context.Context) (*models.ChestOutcome, error) {
	var res models.ChestOutcome
	if err := c.do(ctx, http.MethodPost, "/private/chest-open", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// Inventory lists the caller's treasure items.
func (c *Client) Inventory(ctx context.Context) ([]models.InventoryItem, error) {
	var res struct {
		Items []models.InventoryItem `json:"items"`
	}
	if err := c.do(ctx, http.MethodGet, "/private/inventory", nil, nil, &res); err != nil {
		return nil, err
	}
	return res.Items, nil
}

// MergeResult reports the coins granted by a dragon merge.
type MergeResult struct {
	Message string `json:"message"`
	Coins   int64  `json:"coins"`
}

// MergeDragon trades a full set of dragon balls for coins.
func (c *Client) MergeDragon(ctx context.Context) (*MergeResult, error) {
	var res MergeResult
	if err := c.do(ctx, http.MethodPost, "/private/merge-dragon", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
