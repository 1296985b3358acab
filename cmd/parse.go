package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/theirongolddev/bakecost/internal/model"
)

// parseID parses a positional record id.
func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive integer", arg)
	}
	return id, nil
}

// parseItems parses repeated --item ID=QTY values in order. Quantity range
// checks are left to the store so the CLI and TUI reject the same inputs.
func parseItems(items []string) ([]model.LinkInput, error) {
	links := make([]model.LinkInput, 0, len(items))
	for _, item := range items {
		idText, qtyText, ok := strings.Cut(item, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --item %q: want INGREDIENT_ID=QUANTITY", item)
		}
		id, err := parseID(idText)
		if err != nil {
			return nil, fmt.Errorf("invalid --item %q: %w", item, err)
		}
		qty, err := strconv.ParseFloat(strings.TrimSpace(qtyText), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --item %q: quantity %q is not a number", item, qtyText)
		}
		links = append(links, model.LinkInput{IngredientID: id, Quantity: qty})
	}
	return links, nil
}
