package clipboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryWriteAll(t *testing.T) {
	m := &Memory{}

	require.NoError(t, m.WriteAll("first"))
	require.NoError(t, m.WriteAll("s3cr3t!"))

	assert.Equal(t, "s3cr3t!", m.Text())
	assert.Equal(t, 2, m.Writes())
}

func TestMemoryKeepsTextVerbatim(t *testing.T) {
	m := &Memory{}
	text := ` \"'{}[]~`

	require.NoError(t, m.WriteAll(text))
	assert.Equal(t, text, m.Text())
}

func TestDetectReturnsClipboard(t *testing.T) {
	var c Clipboard = Detect()
	assert.NotNil(t, c)
}
