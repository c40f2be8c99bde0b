package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/memsource/internal/auth"
	"github.com/fivetwenty-io/memsource/internal/constants"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
	"github.com/fivetwenty-io/memsource/pkg/msclient"
)

// NewLoginCommand creates the login command.
func NewLoginCommand() *cobra.Command {
	var (
		username string
		password string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to Memsource",
		Long:  "Exchange a username and password for an API token and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())

			if username == "" {
				username = viper.GetString("username")
			}

			if username == "" {
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Username: ")
				line, _ := reader.ReadString('\n')
				username = strings.TrimSpace(line)
			}

			if username == "" {
				return constants.ErrUsernameRequired
			}

			if password == "" {
				secret, err := readPassword(cmd.ErrOrStderr(), reader)
				if err != nil {
					return err
				}

				password = secret
			}

			if password == "" {
				return constants.ErrPasswordRequired
			}

			return runLogin(commandContext(cmd), cmd.OutOrStdout(), username, password)
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "user name (prompted when omitted)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted without echo when omitted)")

	return cmd
}

// readPassword reads without echo from a terminal and falls back to a plain
// line when stdin is piped.
func readPassword(prompt io.Writer, reader *bufio.Reader) (string, error) {
	_, _ = fmt.Fprint(prompt, "Password: ")

	fd := int(syscall.Stdin) //nolint:unconvert // syscall.Stdin is not an int on every platform
	if term.IsTerminal(fd) {
		bytePassword, err := term.ReadPassword(fd)
		_, _ = fmt.Fprintln(prompt)

		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}

		return string(bytePassword), nil
	}

	line, _ := reader.ReadString('\n')

	return strings.TrimRight(line, "\r\n"), nil
}

func runLogin(ctx context.Context, w io.Writer, username, password string) error {
	endpoint := currentEndpoint()
	logger := newLogger()

	login, err := msclient.Login(ctx, &memsource.Config{
		Endpoint: endpoint,
		Username: username,
		Password: password,
		Logger:   logger,
		Debug:    logger != nil,
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	manager := auth.NewConfigTokenManager(NewConfigPersister(), endpoint, nil)

	err = manager.SetToken(&auth.Token{Value: login.Token, Expires: login.Expires}, &login.User)
	if err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	summary := map[string]string{
		"endpoint": endpoint,
		"username": login.User.UserName,
		"expires":  login.Expires,
	}

	structured, err := writeStructured(w, summary)
	if structured || err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "Logged in to %s as %s\n", endpoint, login.User.UserName)

	if login.Expires != "" {
		_, _ = fmt.Fprintf(w, "Token expires %s\n", login.Expires)
	}

	return nil
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out of Memsource",
		Long:  "Remove the stored API token from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			err := newTokenManager().Clear()
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Successfully logged out")

			return nil
		},
	}
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged in user",
		Long:  "Ask the server which user the stored token belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			session, err := getSession(ctx)
			if err != nil {
				return err
			}

			whoami, err := session.Auth().Whoami(ctx)
			if err != nil {
				return fmt.Errorf("failed to look up user: %w", err)
			}

			structured, err := writeStructured(cmd.OutOrStdout(), whoami.User)
			if structured || err != nil {
				return err
			}

			return displayUserTable(cmd.OutOrStdout(), &whoami.User)
		},
	}
}

func displayUserTable(w io.Writer, user *memsource.User) error {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)

	return renderProperties(w, [][]string{
		{"User Name", displayValue(user.UserName)},
		{"Name", displayValue(name)},
		{"Email", displayValue(user.Email)},
		{"Role", displayStatus(user.Role)},
		{"ID", displayValue(user.ID)},
		{"UID", displayValue(user.UID)},
	})
}

// commandContext returns the command's context, which is nil when the
// command runs outside Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
