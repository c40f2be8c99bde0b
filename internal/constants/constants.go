package constants

import "time"

// API endpoint and resource paths.
const (
	// DefaultEndpoint is the Memsource cloud API base URL.
	DefaultEndpoint = "https://cloud.memsource.com/web/api2/v1/"

	// APIPathLogin authenticates a user.
	APIPathLogin = "auth/login"

	// APIPathWhoAmI describes the token's user.
	APIPathWhoAmI = "auth/whoAmI"

	// APIPathClients for clients endpoint.
	APIPathClients = "clients"

	// APIPathProjects for projects endpoint.
	APIPathProjects = "projects"

	// APIPathLanguages for languages endpoint.
	APIPathLanguages = "languages"

	// APIPathJobs is the jobs segment nested under a project.
	APIPathJobs = "jobs"
)

// HTTP header names and values.
const (
	// TokenQueryParam carries the auth token on every authenticated request.
	TokenQueryParam = "token"

	// HeaderJobMetadata carries JSON job options on uploads.
	HeaderJobMetadata = "Memsource"

	// HeaderContentDisposition names the uploaded file.
	HeaderContentDisposition = "Content-Disposition"

	// ContentTypeJSON is the default request content type.
	ContentTypeJSON = "application/json"

	// ContentTypeOctetStream is used for raw file uploads.
	ContentTypeOctetStream = "application/octet-stream"

	// DefaultUserAgent is sent unless overridden.
	DefaultUserAgent = "memsource-go"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// UploadHTTPTimeout is used for job uploads.
	UploadHTTPTimeout = 5 * time.Minute
)

// HTTP status codes commonly used.
const (
	// HTTPStatusOK represents a successful HTTP response.
	HTTPStatusOK = 200

	// HTTPStatusMultipleChoices is the first non-success status.
	HTTPStatusMultipleChoices = 300
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 50

	// MaxPageSize is the largest page the API accepts.
	MaxPageSize = 50
)

// Display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the number of spaces for JSON and YAML indentation.
	JSONIndentSize = 2

	// KeyValueSplitParts is the number of parts when splitting key=value strings.
	KeyValueSplitParts = 2
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// Encoding names used in upload content dispositions.
const (
	// EncodingUTF8 is the fallback encoding name.
	EncodingUTF8 = "UTF-8"
)
