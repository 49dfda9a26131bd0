package discover_test

import (
	"testing"

	"github.com/fwojciec/icondeck/discover"
	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0 B", discover.FormatBytes(0))
	assert.Equal(t, "512 B", discover.FormatBytes(512))
	assert.Equal(t, "1.0 KB", discover.FormatBytes(1024))
	assert.Equal(t, "1.5 KB", discover.FormatBytes(1536))
	assert.Equal(t, "2.0 MB", discover.FormatBytes(2*1024*1024))
}
