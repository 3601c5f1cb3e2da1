package logging_test

import (
	"testing"
	"trail-tools/trtools/logging"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	require := require.New(t)

	tests := map[string]struct {
		verbose bool
		debug   bool
	}{
		"quiet":   {verbose: false, debug: false},
		"verbose": {verbose: true, debug: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			log, err := logging.New(tc.verbose)
			require.NoError(err)
			require.Equal(tc.debug, log.Core().Enabled(zapcore.DebugLevel))
			require.True(log.Core().Enabled(zapcore.InfoLevel))
		})
	}
}
