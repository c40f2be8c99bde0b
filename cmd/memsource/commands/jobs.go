package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/memsource/internal/constants"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

// NewJobsCommand creates the jobs command group.
func NewJobsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "jobs",
		Aliases: []string{"job"},
		Short:   "Manage jobs",
		Long:    "List, inspect and upload the jobs of a project",
	}

	cmd.AddCommand(newJobsListCommand())
	cmd.AddCommand(newJobsGetCommand())
	cmd.AddCommand(newJobsCreateCommand())

	return cmd
}

func newJobsListCommand() *cobra.Command {
	var (
		page     int
		pageSize int
	)

	cmd := &cobra.Command{
		Use:   "list PROJECT_ID",
		Short: "List jobs",
		Long:  "List the jobs of a project, one page at a time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := listOptions(page, pageSize, nil)
			if err != nil {
				return err
			}

			ctx := commandContext(cmd)

			session, err := getSession(ctx)
			if err != nil {
				return err
			}

			jobs, err := session.Jobs().List(ctx, args[0], params)
			if err != nil {
				return fmt.Errorf("failed to list jobs: %w", err)
			}

			return outputJobsList(cmd.OutOrStdout(), jobs)
		},
	}

	cmd.Flags().IntVar(&page, "page", 0, "zero-based page number")
	cmd.Flags().IntVar(&pageSize, "page-size", constants.DefaultPageSize, "results per page")

	return cmd
}

func outputJobsList(w io.Writer, jobs *memsource.Page[memsource.Job]) error {
	structured, err := writeStructured(w, jobs.Content)
	if structured || err != nil {
		return err
	}

	if len(jobs.Content) == 0 {
		_, _ = fmt.Fprintln(w, "No jobs found")

		return nil
	}

	err = renderJobsTable(w, jobs.Content)
	if err != nil {
		return err
	}

	pageFooter(w, jobs.PageNumber, jobs.TotalPages, jobs.TotalElements)

	return nil
}

func renderJobsTable(w io.Writer, jobs []memsource.Job) error {
	rows := make([][]string, 0, len(jobs))
	for _, job := range jobs {
		rows = append(rows, []string{
			job.UID,
			displayValue(job.InnerID),
			job.Filename,
			displayValue(job.TargetLang),
			displayStatus(job.Status),
			displayValue(job.DateDue),
		})
	}

	return renderTable(w, []string{"UID", "Inner ID", "Filename", "Target", "Status", "Due"}, rows)
}

func newJobsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_ID JOB_UID",
		Short: "Get job details",
		Long:  "Display detailed information about a job of a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := commandContext(cmd)

			session, err := getSession(ctx)
			if err != nil {
				return err
			}

			job, err := session.Jobs().Find(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get job: %w", err)
			}

			structured, err := writeStructured(cmd.OutOrStdout(), job)
			if structured || err != nil {
				return err
			}

			rows := [][]string{
				{"UID", job.UID},
				{"Inner ID", displayValue(job.InnerID)},
				{"Filename", job.Filename},
				{"Target Language", displayValue(job.TargetLang)},
				{"Status", displayStatus(job.Status)},
				{"Due", displayValue(job.DateDue)},
			}

			if job.Project != nil {
				rows = append(rows, []string{"Project", displayValue(job.Project.Name)})
			}

			return renderProperties(cmd.OutOrStdout(), rows)
		},
	}
}

type jobsCreateOptions struct {
	projectID   string
	files       []string
	filename    string
	targetLangs []string
	options     map[string]interface{}
}

func newJobsCreateCommand() *cobra.Command {
	var (
		filename    string
		targetLangs []string
		settings    []string
	)

	cmd := &cobra.Command{
		Use:   "create PROJECT_ID FILE...",
		Short: "Upload files as jobs",
		Long: `Upload one or more files into a project. Each file becomes one job per
target language. Files the server cannot import are reported and the
remaining files are still uploaded.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := parseOptions(settings)
			if err != nil {
				return err
			}

			if filename != "" && len(args) > 2 {
				return constants.ErrFilenameWithManyFiles
			}

			ctx := commandContext(cmd)

			session, err := newSession(ctx, constants.UploadHTTPTimeout)
			if err != nil {
				return err
			}

			return runJobsCreate(ctx, cmd, session.Jobs(), &jobsCreateOptions{
				projectID:   args[0],
				files:       args[1:],
				filename:    filename,
				targetLangs: targetLangs,
				options:     options,
			})
		},
	}

	cmd.Flags().StringVar(&filename, "filename", "", "name to give the uploaded file (single file only)")
	cmd.Flags().StringSliceVarP(&targetLangs, "target", "t", nil, "target language code (repeatable)")
	cmd.Flags().StringArrayVar(&settings, "set", nil, "extra job option as key=value (repeatable)")

	_ = cmd.MarkFlagRequired("target")

	return cmd
}

// runJobsCreate uploads every file and keeps going past failures; all
// failures are returned together at the end.
func runJobsCreate(ctx context.Context, cmd *cobra.Command, jobsClient memsource.JobsClient, opts *jobsCreateOptions) error {
	var (
		result  *multierror.Error
		batches []*memsource.JobBatch
	)

	for _, path := range opts.files {
		batch, err := uploadJobFile(ctx, jobsClient, path, opts)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("%s: %w", path, err))

			continue
		}

		for _, unsupported := range batch.UnsupportedFiles {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s was not imported (unsupported file %s)\n", path, unsupported)
		}

		batches = append(batches, batch)
	}

	err := outputJobBatches(cmd.OutOrStdout(), batches)
	if err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

func uploadJobFile(ctx context.Context, jobsClient memsource.JobsClient, path string, opts *jobsCreateOptions) (*memsource.JobBatch, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if !info.Mode().IsRegular() {
		return nil, constants.ErrNotRegularFile
	}

	batch, err := jobsClient.Create(ctx, opts.projectID, path, opts.filename, opts.targetLangs, opts.options)
	if err != nil {
		return nil, fmt.Errorf("failed to create jobs: %w", err)
	}

	return batch, nil
}

func outputJobBatches(w io.Writer, batches []*memsource.JobBatch) error {
	structured, err := writeStructured(w, batches)
	if structured || err != nil {
		return err
	}

	var jobs []memsource.Job
	for _, batch := range batches {
		jobs = append(jobs, batch.Jobs...)
	}

	if len(jobs) == 0 {
		_, _ = fmt.Fprintln(w, "No jobs created")

		return nil
	}

	return renderJobsTable(w, jobs)
}
