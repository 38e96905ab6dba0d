package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/mart/internal/core/domain"
)

func TestMirrorStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		status     domain.MirrorStatus
		isTerminal bool
	}{
		{domain.MirrorStatusPending, false},
		{domain.MirrorStatusDownloading, false},
		{domain.MirrorStatusDownloaded, true},
		{domain.MirrorStatusCached, true},
		{domain.MirrorStatusFailed, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isTerminal, tt.status.IsTerminal())
		})
	}
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", domain.LogLevelDebug.String())
	assert.Equal(t, "INFO", domain.LogLevelInfo.String())
	assert.Equal(t, "WARN", domain.LogLevelWarn.String())
	assert.Equal(t, "ERROR", domain.LogLevelError.String())
	assert.Equal(t, "INFO", domain.LogLevel(42).String())
}
