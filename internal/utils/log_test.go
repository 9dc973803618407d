package utils

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger_ServiceTag(t *testing.T) {
	InitLogger()

	var buf bytes.Buffer
	log.Logger = log.Logger.Output(&buf)

	LogInfo("startup", map[string]interface{}{"port": 8080})

	out := buf.String()
	assert.Contains(t, out, `"service":"sales-agent-api"`)
	assert.Contains(t, out, `"port":8080`)
	assert.Contains(t, out, "startup")
}
