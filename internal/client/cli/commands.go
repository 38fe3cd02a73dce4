package cli

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownCommand неизвестная команда
var ErrUnknownCommand = errors.New("unknown command")

// Run выполняет команду; args не включают саму команду
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "status":
		return c.runStatus(ctx)
	case "list":
		return c.runList(ctx, args)
	case "show":
		return c.runShow(ctx, args)
	case "categories":
		return c.runCategories(ctx)
	case "reserve":
		return c.runReserve(ctx, args)
	case "rent":
		return c.runRent(ctx, args)
	case "release":
		return c.runRelease(ctx, args)
	case "login":
		return c.runLogin(ctx)
	case "profile":
		return c.runProfile(ctx, args)
	case "plan":
		return c.runPlan(ctx, args)
	case "version":
		return render(c.io, "version", c.opts.Build)
	case "help", "":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// requireID возвращает первый аргумент как id велосипеда
func requireID(args []string, command string) (string, error) {
	if len(args) == 0 || args[0] == "" {
		return "", fmt.Errorf("missing bike ID. Usage: patinfly %s <id>", command)
	}
	return args[0], nil
}
