package dbtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	nine, err := Parse("09:00")
	require.NoError(t, err)
	assert.Equal(t, 540, nine.Minutes())
	assert.Equal(t, "09:00", nine.String())

	five, err := Parse(" 17:00:00 ")
	require.NoError(t, err)
	assert.True(t, nine.Before(five))
	assert.False(t, five.Before(nine))

	for _, bad := range []string{"", "9am", "25:00", "12:61"} {
		_, err := Parse(bad)
		assert.Error(t, err, bad)
	}
}
