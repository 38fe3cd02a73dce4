package cli

import (
	"context"
)

func (c *Cli) runStatus(ctx context.Context) error {
	status := c.rentalService.ServerStatus(ctx)
	if err := render(c.io, "status", status); err != nil {
		return err
	}
	if status.IsError() {
		c.io.Println("Server is unreachable, cached and bundled data will be used.")
	}
	return nil
}
