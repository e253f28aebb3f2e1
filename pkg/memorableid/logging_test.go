package memorableid_test

import (
	"bytes"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/memid/pkg/logger"
	"github.com/dmitrymomot/memid/pkg/memorableid"
	"github.com/dmitrymomot/memid/pkg/wordlist"
)

func TestGeneratorLogging(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))

	provider := wordlist.NewFSProvider(fstest.MapFS{
		"Shapes.txt": {Data: []byte("Star\n")},
	})
	gen := memorableid.MustNew(
		memorableid.Using(wordlist.Shapes).AttemptUpTo(2),
		memorableid.WithProvider(provider),
		memorableid.WithLogger(log),
	)

	_, err := gen.Generate()
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	_, err = gen.Generate()
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"candidate rejected"`)
	assert.Contains(t, out, `"reason":"duplicate"`)
	assert.Contains(t, out, `"candidate":"Star"`)
	assert.Contains(t, out, `"component":"memorableid"`)
	assert.Contains(t, out, `"msg":"attempts exhausted"`)
	assert.Contains(t, out, `"level":"WARN"`)
}
