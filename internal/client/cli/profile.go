package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/patinfly/internal/client/rental"
)

// runProfile показывает профиль; args это id велосипедов, скрываемых из истории
func (c *Cli) runProfile(ctx context.Context, args []string) error {
	profile, err := c.rentalService.Profile(ctx)
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}

	for _, id := range args {
		profile.History = rental.RemoveFromHistory(profile.History, id)
	}

	return render(c.io, "profile", profile)
}
