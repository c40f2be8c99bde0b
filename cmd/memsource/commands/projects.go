package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/memsource/internal/constants"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project", "proj"},
		Short:   "Manage projects",
		Long:    "List, inspect and create Memsource translation projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsCreateCommand())

	return cmd
}

func newProjectsListCommand() *cobra.Command {
	var (
		name     string
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List the projects visible to the logged in user, one page at a time",
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

			projects, err := session.Projects().List(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to list projects: %w", err)
			}

			return outputProjectsList(cmd.OutOrStdout(), projects)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "filter by project name")
	cmd.Flags().IntVar(&page, "page", 0, "zero-based page number")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.DefaultPageSize, "results per page")

	return cmd
}

func outputProjectsList(w io.Writer, projects *memsource.Page[memsource.Project]) error {
	structured, err := writeStructured(w, projects.Content)
	if structured || err != nil {
		return err
	}

	if len(projects.Content) == 0 {
		_, _ = fmt.Fprintln(w, "No projects found")

		return nil
	}

	rows := make([][]string, 0, len(projects.Content))
	for _, project := range projects.Content {
		rows = append(rows, []string{
			project.ID,
			project.UID,
			project.Name,
			displayValue(project.SourceLang),
			displayValue(strings.Join(project.TargetLangs, ", ")),
			displayStatus(project.Status),
		})
	}

	err = renderTable(w, []string{"ID", "UID", "Name", "Source", "Targets", "Status"}, rows)
	if err != nil {
		return err
	}

	pageFooter(w, projects.PageNumber, projects.TotalPages, projects.TotalElements)

	return nil
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_ID",
		Short: "Get project details",
		Long:  "Display detailed information about a specific project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			session, err := getSession(ctx)
			if err != nil {
				return err
			}

			project, err := session.Projects().Find(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			return outputProject(cmd.OutOrStdout(), project)
		},
	}
}

func newProjectsCreateCommand() *cobra.Command {
	var (
		sourceLang  string
		targetLangs []string
		clientID    string
		deadline    string
		note        string
		settings    []string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a project",
		Long:  "Create a translation project from a source language into one or more target languages",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := parseOptions(settings)
			if err != nil {
				return err
			}

			if clientID != "" {
				options["client"] = map[string]interface{}{"id": clientID}
			}

			if note != "" {
				options["note"] = note
			}

			if deadline != "" {
				dateDue, err := parseDeadline(deadline)
				if err != nil {
					return err
				}

				options["dateDue"] = dateDue
			}

			ctx := commandContext(cmd)

			session, err := getSession(ctx)
			if err != nil {
				return err
			}

			project, err := session.Projects().Create(ctx, args[0], sourceLang, targetLangs, options)
			if err != nil {
				return fmt.Errorf("failed to create project: %w", err)
			}

			return outputProject(cmd.OutOrStdout(), project)
		},
	}

	cmd.Flags().StringVarP(&sourceLang, "source", "s", "", "source language code")
	cmd.Flags().StringSliceVarP(&targetLangs, "target", "t", nil, "target language code (repeatable)")
	cmd.Flags().StringVar(&clientID, "client-id", "", "ID of the client the project is for")
	cmd.Flags().StringVar(&deadline, "deadline", "", "due date, in any common date format")
	cmd.Flags().StringVar(&note, "note", "", "project note")
	cmd.Flags().StringArrayVar(&settings, "set", nil, "extra project field as key=value (repeatable)")

	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("target")

	return cmd
}

func outputProject(w io.Writer, project *memsource.Project) error {
	structured, err := writeStructured(w, project)
	if structured || err != nil {
		return err
	}

	rows := [][]string{
		{"ID", project.ID},
		{"UID", displayValue(project.UID)},
		{"Internal ID", displayValue(formatInternalID(project.InternalID))},
		{"Name", project.Name},
		{"Status", displayStatus(project.Status)},
		{"Source Language", displayValue(project.SourceLang)},
		{"Target Languages", displayValue(strings.Join(project.TargetLangs, ", "))},
		{"Created", displayValue(project.DateCreated)},
		{"Due", displayValue(project.DateDue)},
		{"Owner", displayValue(project.Owner.UserName)},
	}

	if project.Client != nil {
		rows = append(rows, []string{"Client", displayValue(project.Client.Name)})
	}

	if project.Note != "" {
		rows = append(rows, []string{"Note", project.Note})
	}

	return renderProperties(w, rows)
}

func formatInternalID(id int64) string {
	if id == 0 {
		return ""
	}

	return strconv.FormatInt(id, 10)
}
