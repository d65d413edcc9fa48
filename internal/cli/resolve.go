package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/stockpile/internal/repository"
)

// resolveItemID accepts a full item id or a unique prefix of one, as shown
// by `item list`.
func resolveItemID(ctx context.Context, a *App, arg string) (string, error) {
	if _, err := a.Inventory.GetByID(ctx, arg); err == nil {
		return arg, nil
	} else if !errors.Is(err, repository.ErrNotFound) {
		return "", err
	}

	items, err := a.Inventory.List(ctx, "")
	if err != nil {
		return "", err
	}
	var matches []string
	for _, it := range items {
		if strings.HasPrefix(it.ID, arg) {
			matches = append(matches, it.ID)
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("item %s: %w", arg, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("item id %q is ambiguous (%d matches)", arg, len(matches))
	}
}
