package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/go-hclog"
	"github.com/iancoleman/strcase"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/memsource/internal/auth"
	"github.com/fivetwenty-io/memsource/internal/constants"
	"github.com/fivetwenty-io/memsource/pkg/memsource"
	"github.com/fivetwenty-io/memsource/pkg/msclient"
)

// ValidateOutput checks the --output value.
func ValidateOutput(format string) error {
	err := validation.Validate(format,
		validation.In(constants.FormatTable, constants.FormatJSON, constants.FormatYAML),
	)
	if err != nil {
		return fmt.Errorf("%w: %q", constants.ErrInvalidOutput, format)
	}

	return nil
}

func outputFormat() string {
	format := viper.GetString("output")
	if format == "" {
		return constants.FormatTable
	}

	return format
}

// currentEndpoint resolves the endpoint from flags, environment and config.
func currentEndpoint() string {
	return msclient.NormalizeEndpoint(viper.GetString("endpoint"))
}

func newLogger() memsource.Logger {
	if !viper.GetBool("verbose") {
		return nil
	}

	return memsource.NewHCLogger(hclog.New(&hclog.LoggerOptions{
		Name:   "memsource",
		Level:  hclog.Debug,
		Output: os.Stderr,
	}))
}

// newTokenManager loads the stored token for the current endpoint.
func newTokenManager() *auth.ConfigTokenManager {
	return auth.NewConfigTokenManager(NewConfigPersister(), currentEndpoint(), &auth.Token{
		Value:   viper.GetString("token"),
		Expires: viper.GetString("token_expires"),
	})
}

// getSession builds a session from the stored token. No request is made.
func getSession(ctx context.Context) (memsource.Session, error) {
	return newSession(ctx, constants.DefaultHTTPTimeout)
}

func newSession(ctx context.Context, timeout time.Duration) (memsource.Session, error) {
	token, err := newTokenManager().GetToken(ctx)
	if err != nil {
		if errors.Is(err, auth.ErrNoToken) {
			return nil, constants.ErrNotLoggedIn
		}

		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	logger := newLogger()

	session, err := msclient.New(ctx, &memsource.Config{
		Endpoint:    currentEndpoint(),
		Token:       token,
		HTTPTimeout: timeout,
		Logger:      logger,
		Debug:       logger != nil,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

func writeYAML(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}

	return encoder.Close()
}

// writeStructured writes v as JSON or YAML and reports whether the current
// output format was structured at all.
func writeStructured(w io.Writer, v interface{}) (bool, error) {
	switch outputFormat() {
	case constants.FormatJSON:
		return true, writeJSON(w, v)
	case constants.FormatYAML:
		return true, writeYAML(w, v)
	default:
		return false, nil
	}
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(toAny(header)...)

	for _, row := range rows {
		_ = table.Append(row)
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func renderProperties(w io.Writer, rows [][]string) error {
	return renderTable(w, []string{"Property", "Value"}, rows)
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, value := range values {
		out[i] = value
	}

	return out
}

// displayValue substitutes N/A for empty table cells.
func displayValue(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}

// displayStatus turns API enums such as ASSIGNED_TO_LINGUIST into
// "Assigned To Linguist".
func displayStatus(status string) string {
	if status == "" {
		return constants.NotAvailable
	}

	words := strings.ToLower(strings.ReplaceAll(status, "_", " "))

	return cases.Title(language.English).String(words)
}

// parseOptions turns repeated key=value flags into API options. Keys are
// converted to lowerCamelCase and values are read as YAML scalars, so
// "use-tm=true" becomes {"useTm": true}.
func parseOptions(pairs []string) (map[string]interface{}, error) {
	options := make(map[string]interface{}, len(pairs))

	for _, pair := range pairs {
		parts := strings.SplitN(pair, "=", constants.KeyValueSplitParts)
		if len(parts) != constants.KeyValueSplitParts || strings.TrimSpace(parts[0]) == "" {
			return nil, fmt.Errorf("%w: %q", constants.ErrInvalidOptionValue, pair)
		}

		var value interface{}

		err := yaml.Unmarshal([]byte(parts[1]), &value)
		if err != nil || value == nil {
			value = parts[1]
		}

		options[strcase.ToLowerCamel(strings.TrimSpace(parts[0]))] = value
	}

	return options, nil
}

// parseDeadline accepts most human date formats and returns RFC 3339 in UTC.
func parseDeadline(value string) (string, error) {
	parsed, err := dateparse.ParseAny(value)
	if err != nil {
		return "", fmt.Errorf("invalid deadline %q: %w", value, err)
	}

	return parsed.UTC().Format(time.RFC3339), nil
}

func listOptions(page, pageSize int, filters map[string]string) (*memsource.ListOptions, error) {
	err := validation.Errors{
		"page":      validation.Validate(page, validation.Min(0)),
		"page-size": validation.Validate(pageSize, validation.Required, validation.Min(1), validation.Max(constants.MaxPageSize)),
	}.Filter()
	if err != nil {
		return nil, fmt.Errorf("invalid paging: %w", err)
	}

	options := memsource.NewListOptions().WithPage(page).WithPageSize(pageSize)

	for key, value := range filters {
		if value != "" {
			options.WithFilter(key, value)
		}
	}

	return options, nil
}

func pageFooter(w io.Writer, pageNumber, totalPages, totalElements int) {
	if totalPages > 1 {
		_, _ = fmt.Fprintf(w, "Page %d of %d (%d total)\n", pageNumber+1, totalPages, totalElements)
	}
}
