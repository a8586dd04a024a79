package demo

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/squaremat/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Style.Color = false
	return cfg
}

func TestRunDefaultWalkthrough(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf, plainConfig()))
	out := buf.String()

	assert.Contains(t, out, "Sum (left + right)\n10 10 10\n10 10 10\n10 10 10\n")
	assert.Contains(t, out, "Product (left * right)\n30 24 18\n")
	assert.Contains(t, out, "Element-wise product (left % right)\n9 16 21\n")
	assert.Contains(t, out, "Determinant of left: 0\n")
	assert.Contains(t, out, "Scalar modulo (left % 3)\n1 2 0\n")
	assert.Contains(t, out, "Power (left ^ 2)\n30 36 42\n")

	// left was pre-incremented: sums are 54 against 45.
	assert.Contains(t, out, "left == right: false\n")
	assert.Contains(t, out, "left != right: true\n")
	assert.Contains(t, out, "left <  right: false\n")
	assert.Contains(t, out, "left >  right: true\n")
	assert.Contains(t, out, "left <= right: false\n")
	assert.Contains(t, out, "left >= right: true\n")

	// special is decremented twice before the final determinant.
	assert.Contains(t, out, "Determinant of special: -7\n")
}

func TestRunPostIncrementSnapshot(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Run(&buf, plainConfig()))
	out := buf.String()

	i := strings.Index(out, "Post-increment (copy of left++)")
	require.GreaterOrEqual(t, i, 0)
	section := out[i:]
	assert.Contains(t, section, "before:\n2 3 4\n5 6 7\n8 9 10\nresult:\n2 3 4\n5 6 7\n8 9 10\nafter:\n3 4 5\n")
}

func TestRunRenderOptions(t *testing.T) {
	cfg := plainConfig()
	cfg.Render.Delimiter = ", "
	cfg.Render.Brackets = true

	var buf bytes.Buffer
	require.NoError(t, Run(&buf, cfg))
	assert.Contains(t, buf.String(), "[10, 10, 10]\n")
}

func TestRunInvalidConfig(t *testing.T) {
	cfg := plainConfig()
	cfg.Operands.Right = [][]float64{{1}}

	var buf bytes.Buffer
	err := Run(&buf, cfg)
	require.ErrorIs(t, err, config.ErrInvalidConfig)
	require.Zero(t, buf.Len())
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestRunWriteError(t *testing.T) {
	require.ErrorIs(t, Run(failingWriter{}, plainConfig()), errWrite)
}
