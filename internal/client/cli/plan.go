package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/patinfly/internal/models"
)

type planView struct {
	Plan *models.SystemPricingPlan
	Lang string
}

func (c *Cli) runPlan(ctx context.Context, args []string) error {
	version := ""
	if len(args) > 0 {
		version = args[0]
	}

	plan, err := c.rentalService.PricingPlan(ctx, version)
	if err != nil {
		return fmt.Errorf("failed to get pricing plan: %w", err)
	}

	return render(c.io, "plan", planView{Plan: plan, Lang: c.opts.Lang})
}
