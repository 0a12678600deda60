package admin

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/officeless-platform/officeless-self-service-portal/internal/infrastructure/auth"
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative helpers",
	}

	cmd.AddCommand(newHashPasswordCommand())

	return cmd
}

func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Generate a bcrypt hash for the admin password",
		Long:  `Read a password from the terminal and print the bcrypt hash to put under admin.password_hash in the config.`,
		RunE:  runHashPassword,
	}
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	fd := int(os.Stdin.Fd())

	var password string
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = string(raw)
	} else {
		// Piped input, e.g. echo -n secret | portal admin hash-password
		buf := make([]byte, 1024)
		n, err := os.Stdin.Read(buf)
		if err != nil && n == 0 {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimRight(string(buf[:n]), "\r\n")
	}

	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	fmt.Println(hash)
	return nil
}
