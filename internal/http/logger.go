package http

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

// leveledLogger forwards go-retryablehttp's leveled log calls to a memsource.Logger.
// URLs are logged with the token query parameter masked.
type leveledLogger struct {
	logger memsource.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, toFields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, toFields(keysAndValues))
}

func toFields(keysAndValues []interface{}) map[string]interface{} {
	fields := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		fields[key] = scrub(key, keysAndValues[i+1])
	}

	if len(keysAndValues)%2 == 1 {
		fields["EXTRA_VALUE_AT_END"] = keysAndValues[len(keysAndValues)-1]
	}

	return fields
}

func scrub(key string, value interface{}) interface{} {
	if err, ok := value.(error); ok {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return fmt.Sprintf("%s %s: %v", urlErr.Op, scrub("url", urlErr.URL), urlErr.Err)
		}

		return value
	}

	if key != "url" {
		return value
	}

	switch v := value.(type) {
	case *url.URL:
		return redactURL(v)
	case string:
		parsed, err := url.Parse(v)
		if err != nil {
			return v
		}

		return redactURL(parsed)
	default:
		return value
	}
}
