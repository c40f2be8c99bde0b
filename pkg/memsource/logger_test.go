package memsource_test

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"

	"github.com/fivetwenty-io/memsource/pkg/memsource"
)

func TestHCLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := memsource.NewHCLogger(hclog.New(&hclog.LoggerOptions{
		Name:       "memsource",
		Level:      hclog.Info,
		Output:     &buf,
		JSONFormat: true,
	}))

	logger.Debug("hidden", nil)
	logger.Info("HTTP Response", map[string]interface{}{"status": 200, "bytes": 12})
	logger.Warn("slow", map[string]interface{}{"duration": "2s"})
	logger.Error("failed", nil)

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, `"@message":"HTTP Response"`)
	assert.Contains(t, output, `"status":200`)
	assert.Contains(t, output, `"duration":"2s"`)
	assert.Contains(t, output, `"@level":"error"`)
	assert.Equal(t, "memsource", logger.Unwrap().Name())
}

func TestHCLogger_NilDiscards(t *testing.T) {
	t.Parallel()

	logger := memsource.NewHCLogger(nil)

	assert.NotPanics(t, func() {
		logger.Info("message", map[string]interface{}{"k": "v"})
	})
}
