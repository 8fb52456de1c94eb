package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{"", LevelInfo, false},
		{"warning", LevelWarning, false},
		{"Error", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCalcAdapter(t *testing.T) {
	var buf bytes.Buffer
	Setup(&buf, false)
	prev := GetLevel()
	t.Cleanup(func() {
		SetLevel(prev)
		Setup(os.Stderr, false)
	})

	SetLevel(LevelInfo)
	Calc().Debugf("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetLevel(LevelTrace)
	Calc().Debugf("shown %d", 2)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "shown 2", rec["msg"])
	assert.Equal(t, "DEBUG", rec["level"])
	assert.Equal(t, "calculation", rec["component"])

	buf.Reset()
	Trace("deep")
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "TRACE", rec["level"])
}

func TestCountStatus(t *testing.T) {
	before4, before5, before429 := Total4xxErrors.Load(), Total5xxErrors.Load(), Total429Errors.Load()
	CountStatus(200)
	CountStatus(404)
	CountStatus(429)
	CountStatus(503)
	assert.Equal(t, before4+2, Total4xxErrors.Load())
	assert.Equal(t, before429+1, Total429Errors.Load())
	assert.Equal(t, before5+1, Total5xxErrors.Load())
}
