package errors

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler() (*ErrorHandler, *bytes.Buffer) {
	log := logrus.New()
	buf := &bytes.Buffer{}
	log.SetOutput(buf)
	log.SetFormatter(&logrus.JSONFormatter{})
	return NewErrorHandler(log), buf
}

func TestHandleErrorNil(t *testing.T) {
	h, buf := newTestHandler()

	assert.Equal(t, ExitCodeOK, h.HandleError(nil))
	assert.Empty(t, buf.String())
}

func TestHandleErrorAppError(t *testing.T) {
	h, buf := newTestHandler()

	code := h.HandleError(WrapInferenceError(fmt.Errorf("npu hang"), 9))
	assert.Equal(t, ExitCodeFailure, code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, string(ErrorTypeInference), entry["error_type"])
	assert.Equal(t, "inference failed on frame 9", entry["msg"])
	assert.Contains(t, entry["error"], "npu hang")
}

func TestHandleErrorUsage(t *testing.T) {
	h, _ := newTestHandler()

	code := h.HandleError(NewUsageError("expected 2 arguments"))
	assert.Equal(t, ExitCodeUsage, code)
}

func TestHandleErrorPlain(t *testing.T) {
	h, buf := newTestHandler()

	code := h.HandleError(fmt.Errorf("something odd"))
	assert.Equal(t, ExitCodeFailure, code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, string(ErrorTypeInternal), entry["error_type"])
}
