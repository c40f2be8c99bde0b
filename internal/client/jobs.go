package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/fivetwenty-io/memsource/internal/constants"
	"github.com/fivetwenty-io/memsource/internal/http"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

const targetLangsKey = "targetLangs"

// JobsClient implements memsource.JobsClient.
//
// Jobs live under a project, so unlike the other resources every call takes
// the owning project's ID.
type JobsClient struct {
	httpClient *http.Client
	fs         afero.Fs
}

// NewJobsClient creates a new jobs client reading uploads from the OS filesystem.
func NewJobsClient(httpClient *http.Client) *JobsClient {
	return &JobsClient{
		httpClient: httpClient,
		fs:         afero.NewOsFs(),
	}
}

// WithFs sets the filesystem Create reads uploads from.
func (c *JobsClient) WithFs(fs afero.Fs) *JobsClient {
	c.fs = fs

	return c
}

func jobsPath(projectID string) string {
	return constants.APIPathProjects + "/" + url.PathEscape(projectID) + "/" + constants.APIPathJobs
}

// List implements memsource.JobsClient.List.
func (c *JobsClient) List(ctx context.Context, projectID string, params *memsource.ListOptions) (*memsource.Page[memsource.Job], error) {
	if projectID == "" {
		return nil, memsource.ErrProjectIDRequired
	}

	return newResource[memsource.Job, memsource.Page[memsource.Job]](c.httpClient, jobsPath(projectID)).List(ctx, params)
}

// Find implements memsource.JobsClient.Find.
func (c *JobsClient) Find(ctx context.Context, projectID, jobUID string) (*memsource.Job, error) {
	if projectID == "" {
		return nil, memsource.ErrProjectIDRequired
	}

	return newResource[memsource.Job, memsource.Page[memsource.Job]](c.httpClient, jobsPath(projectID)).Find(ctx, jobUID)
}

// Create implements memsource.JobsClient.Create. The whole file at path is
// read into memory; an empty filename defaults to the path's base name.
func (c *JobsClient) Create(ctx context.Context, projectID, path, filename string, targetLangs []string, options map[string]interface{}) (*memsource.JobBatch, error) {
	data, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return nil, fmt.Errorf("reading upload %s: %w", path, err)
	}

	if filename == "" {
		filename = filepath.Base(path)
	}

	return c.CreateFromBytes(ctx, projectID, data, filename, targetLangs, options)
}

// CreateFromBytes implements memsource.JobsClient.CreateFromBytes.
//
// options and targetLangs travel as JSON in the Memsource header. A
// targetLangs key in options is rejected rather than silently overridden.
func (c *JobsClient) CreateFromBytes(ctx context.Context, projectID string, data []byte, filename string, targetLangs []string, options map[string]interface{}) (*memsource.JobBatch, error) {
	switch {
	case projectID == "":
		return nil, memsource.ErrProjectIDRequired
	case filename == "":
		return nil, memsource.ErrFilenameRequired
	}

	if _, ok := options[targetLangsKey]; ok {
		return nil, memsource.ErrConflictingTargetLangs
	}

	metadata, err := json.Marshal(mergeOptions(options, map[string]interface{}{
		targetLangsKey: targetLangs,
	}))
	if err != nil {
		return nil, fmt.Errorf("encoding job options: %w", err)
	}

	req := &http.Request{
		Method: "POST",
		Path:   jobsPath(projectID),
		Headers: map[string]string{
			"Content-Type":                     constants.ContentTypeOctetStream,
			constants.HeaderJobMetadata:        string(metadata),
			constants.HeaderContentDisposition: contentDisposition(filename, detectEncoding(data)),
		},
		RawBody: data,
	}

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("creating job: %w", err)
	}

	return decode[memsource.JobBatch](resp)
}
