package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestInitLoggerLevels(t *testing.T) {
	defer func() { Logger = zap.NewNop().Sugar() }()

	InitLogger(true)
	assert.True(t, Logger.Desugar().Core().Enabled(zap.DebugLevel))

	InitLogger(false)
	assert.False(t, Logger.Desugar().Core().Enabled(zap.DebugLevel))
	assert.True(t, Logger.Desugar().Core().Enabled(zap.InfoLevel))
}
