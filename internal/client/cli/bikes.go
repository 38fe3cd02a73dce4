package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/patinfly/internal/client/rental"
)

func (c *Cli) runList(ctx context.Context, args []string) error {
	category := strings.Join(args, " ")
	bikes := c.rentalService.ListBikes(ctx, category)
	return render(c.io, "bikes", bikes)
}

func (c *Cli) runShow(ctx context.Context, args []string) error {
	id, err := requireID(args, "show")
	if err != nil {
		return err
	}

	bike, err := c.rentalService.GetBike(ctx, id)
	if err != nil {
		if errors.Is(err, rental.ErrBikeNotFound) {
			return fmt.Errorf("bike not found with ID: %s", id)
		}
		return fmt.Errorf("failed to get bike: %w", err)
	}

	return render(c.io, "bike", bike)
}

func (c *Cli) runCategories(ctx context.Context) error {
	categories := c.rentalService.Categories(ctx)

	c.io.Println("=== Categories ===")
	c.io.Println()
	if len(categories) == 0 {
		c.io.Println("No categories found.")
		return nil
	}
	for _, name := range categories {
		c.io.Printf("- %s\n", name)
	}
	c.io.Println()
	c.io.Println("Use 'patinfly list <category>' to see bikes of a category.")
	return nil
}

func (c *Cli) runReserve(ctx context.Context, args []string) error {
	id, err := requireID(args, "reserve")
	if err != nil {
		return err
	}

	bike, err := c.rentalService.Reserve(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to reserve bike: %w", err)
	}

	c.io.Printf("✓ Bike %s (%s) reserved\n", bike.Name, bike.ID)
	return nil
}

func (c *Cli) runRent(ctx context.Context, args []string) error {
	id, err := requireID(args, "rent")
	if err != nil {
		return err
	}

	bike, err := c.rentalService.Rent(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to rent bike: %w", err)
	}

	c.io.Printf("✓ Bike %s (%s) rented. Battery: %d%%\n", bike.Name, bike.ID, bike.BatteryLevel)
	return nil
}

func (c *Cli) runRelease(ctx context.Context, args []string) error {
	id, err := requireID(args, "release")
	if err != nil {
		return err
	}

	bike, err := c.rentalService.Release(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to release bike: %w", err)
	}

	c.io.Printf("✓ Bike %s (%s) released\n", bike.Name, bike.ID)
	return nil
}
