package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/iudanet/patinfly/internal/client/auth"
	"github.com/iudanet/patinfly/internal/client/iocli"
	"github.com/iudanet/patinfly/internal/client/rental"
)

// PasswordEnv переменная окружения с паролем для login
const PasswordEnv = "PATINFLY_PASSWORD"

// Passwords альтернативные источники пароля
type Passwords struct {
	FromFile string
	FromArgs string
}

// BuildInfo версия клиента, заполняется через ldflags
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// Options параметры командной строки, влияющие на команды
type Options struct {
	Passwords Passwords
	Build     BuildInfo
	// Email для login без интерактивного запроса
	Email string
	// Lang язык названий тарифов
	Lang string
}

type Cli struct {
	io            iocli.IO
	authService   auth.Service
	rentalService rental.Service
	opts          Options
}

func New(io iocli.IO, authService auth.Service, rentalService rental.Service, opts Options) *Cli {
	if opts.Lang == "" {
		opts.Lang = "en"
	}
	return &Cli{
		io:            io,
		authService:   authService,
		rentalService: rentalService,
		opts:          opts,
	}
}

// getPassword retrieves login password from various sources with priority:
// 1. Environment variable PATINFLY_PASSWORD
// 2. File specified in passwords.FromFile
// 3. Command-line parameter
// 4. Interactive prompt (fallback)
func (c *Cli) getPassword(passwords Passwords) (string, error) {
	if envPassword := os.Getenv(PasswordEnv); envPassword != "" {
		return envPassword, nil
	}

	if passwords.FromFile != "" {
		content, err := os.ReadFile(passwords.FromFile)
		if err != nil {
			return "", fmt.Errorf("failed to read password file: %w", err)
		}
		// Убираем trailing newline/whitespace
		password := strings.TrimSpace(string(content))
		if password == "" {
			return "", fmt.Errorf("password file is empty")
		}
		return password, nil
	}

	if passwords.FromArgs != "" {
		return passwords.FromArgs, nil
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return "", fmt.Errorf("failed to read password from stdin: %w", err)
	}
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	return password, nil
}

// PrintUsage выводит справку
func (c *Cli) PrintUsage() {
	_ = render(c.io, "usage", nil)
}
