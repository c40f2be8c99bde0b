package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/memsource/internal/constants"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

// NewClientsCommand creates the clients command group.
func NewClientsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "clients",
		Aliases: []string{"client"},
		Short:   "Manage clients",
		Long:    "List, inspect and create the customers projects are done for",
	}

	cmd.AddCommand(newClientsListCommand())
	cmd.AddCommand(newClientsGetCommand())
	cmd.AddCommand(newClientsCreateCommand())

	return cmd
}

func newClientsListCommand() *cobra.Command {
	var (
		name     string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List clients",
		Long:  "List all clients, one page at a time",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := listOptions(page, pageSize, map[string]string{"name": name})
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			session, err := getSession(ctx)
			if err != nil {
				return err
			}

			clients, err := session.Clients().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list clients: %w", err)
			}

			structured, err := writeStructured(cmd.OutOrStdout(), clients.Content)
			if structured || err != nil {
				return err
			}

			if len(clients.Content) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No clients found")

				return nil
			}

			rows := make([][]string, 0, len(clients.Content))
			for _, client := range clients.Content {
				rows = append(rows, []string{client.ID, client.Name, displayValue(client.ExternalID)})
			}

			err = renderTable(cmd.OutOrStdout(), []string{"ID", "Name", "External ID"}, rows)
			if err != nil {
				return err
			}

			pageFooter(cmd.OutOrStdout(), clients.PageNumber, clients.TotalPages, clients.TotalElements)

			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "filter by client name")
	cmd.Flags().IntVar(&page, "page", 0, "zero-based page number")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.DefaultPageSize, "results per page")

	return cmd
}

func newClientsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get CLIENT_ID",
		Short: "Get client details",
		Long:  "Display detailed information about a specific client",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			session, err := getSession(ctx)
			if err != nil {
				return err
			}

			client, err := session.Clients().Find(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get client: %w", err)
			}

			return outputClient(cmd.OutOrStdout(), client)
		},
	}
}

func newClientsCreateCommand() *cobra.Command {
	var (
		externalID string
		note       string
		settings   []string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a client",
		Long:  "Create a client record. The server uses the given identifier as the client name.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := parseOptions(settings)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			session, err := getSession(ctx)
			if err != nil {
				return err
			}

			client, err := session.Clients().Create(ctx, args[0], externalID, note, options)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}

			return outputClient(cmd.OutOrStdout(), client)
		},
	}

	cmd.Flags().StringVar(&externalID, "external-id", "", "identifier of the client in another system")
	cmd.Flags().StringVar(&note, "note", "", "client note")
	cmd.Flags().StringArrayVar(&settings, "set", nil, "extra client field as key=value (repeatable)")

	return cmd
}

func outputClient(w io.Writer, client *memsource.Client) error {
	structured, err := writeStructured(w, client)
	if structured || err != nil {
		return err
	}

	return renderProperties(w, [][]string{
		{"ID", client.ID},
		{"UID", displayValue(client.UID)},
		{"Name", client.Name},
		{"External ID", displayValue(client.ExternalID)},
		{"Note", displayValue(client.Note)},
	})
}
