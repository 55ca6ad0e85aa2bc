package tagstr_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/itsatony/go-tagstr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// E2E Integration Tests - Zero Mocks
// These tests exercise the full system from public API through to final output.

const contractCSVCell = tagstr.ContractID("csv-cell")

// escapeCSV quotes a cell unless it is already marked safe.
func escapeCSV(v any) string {
	if c, ok := v.(tagstr.Contracted); ok && c.Contract() == contractCSVCell {
		return c.Content()
	}
	s := fmt.Sprint(v)
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

// newCSVTag builds a tag that dedents its template once and folds
// escaped values in on every call.
func newCSVTag(opts ...tagstr.Option) *tagstr.Tag[struct{}, []string, string] {
	return tagstr.MustBuild(
		func(chunks *tagstr.Chunks) ([]string, error) {
			trimmed, err := tagstr.Trim(chunks, tagstr.TrimEOLAtStart(), tagstr.TrimEOLAtEnd())
			if err != nil {
				return nil, err
			}
			return trimmed.Cooked, nil
		},
		func(_ struct{}, cooked []string, _ *tagstr.Chunks, values []any) (string, error) {
			var b strings.Builder
			for i, chunk := range cooked {
				b.WriteString(chunk)
				if i < len(values) {
					b.WriteString(escapeCSV(values[i]))
				}
			}
			return b.String(), nil
		},
		opts...,
	)
}

func TestE2E_CSVTagEscapesValues(t *testing.T) {
	csv := newCSVTag()
	row := tagstr.Lit("\n    id,name,note\n    1,", ",", "\n    ")

	result, err := csv.Invoke(row, "Ada, Countess", "plain")

	require.NoError(t, err)
	assert.Equal(t, "id,name,note\n1,\"Ada, Countess\",plain", result)
}

func TestE2E_TypedStringSkipsEscaping(t *testing.T) {
	csv := newCSVTag()
	row := tagstr.Lit("a,", ",c")
	safe := tagstr.NewTypedString(`"already,quoted"`, contractCSVCell)

	result, err := csv.Invoke(row, safe)

	require.NoError(t, err)
	assert.Equal(t, `a,"already,quoted",c`, result)
}

func TestE2E_TemplateAnalyzedOnceAcrossCalls(t *testing.T) {
	csv := newCSVTag()
	row := tagstr.Lit("\n    x,", "\n    ")

	for i := 0; i < 10; i++ {
		result, err := csv.Invoke(row, i)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("x,%d", i), result)
	}

	stats := csv.CacheStats()
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, int64(9), stats.Hits)
}

func TestE2E_ConfiguredTagsStayIndependent(t *testing.T) {
	type options struct{ Header string }
	tag := tagstr.MustBuild(
		func(chunks *tagstr.Chunks) (int, error) { return chunks.Len(), nil },
		func(cfg options, _ int, chunks *tagstr.Chunks, _ []any) (string, error) {
			return cfg.Header + chunks.Cooked[0], nil
		},
	)

	withHeader := tag.Configure(options{Header: "# "})
	plain := tag.Configure(options{})
	chunks := tagstr.Lit("body")

	headered, err := withHeader.Invoke(chunks)
	require.NoError(t, err)
	unheadered, err := plain.Invoke(chunks)
	require.NoError(t, err)

	assert.Equal(t, "# body", headered)
	assert.Equal(t, "body", unheadered)
}

func TestE2E_InvalidShapeSurfacesBeforeUserCode(t *testing.T) {
	csv := newCSVTag()

	_, err := csv.Invoke(tagstr.Lit("a,", ",b"), "only-one-of-two", "extra", "args")

	require.Error(t, err)
	assert.True(t, tagstr.IsInvalidInput(err))
}

func TestE2E_WithLoggerAndCacheConfig(t *testing.T) {
	config, err := tagstr.ParseCacheConfig([]byte("max_entries: 8\n"))
	require.NoError(t, err)

	csv := newCSVTag(
		tagstr.WithLogger(zap.NewNop()),
		tagstr.WithCacheConfig(config),
	)

	result, err := csv.Invoke(tagstr.Lit("v=", ""), 1)
	require.NoError(t, err)
	assert.Equal(t, "v=1", result)
}

func TestE2E_DetectorGuardsDynamicCallSites(t *testing.T) {
	// A dynamic dispatcher receives untyped arguments and routes tagged
	// calls through the detector before invoking.
	dispatch := func(args ...any) (string, error) {
		if !tagstr.StrictCheck(args[0], len(args)) {
			return "", fmt.Errorf("not a tagged call")
		}
		chunks, err := tagstr.FromLoose(args[0].(*tagstr.LooseChunks))
		if err != nil {
			return "", err
		}
		return newCSVTag().Invoke(chunks, args[1:]...)
	}

	result, err := dispatch(&tagstr.LooseChunks{
		Items: []any{"x,", ""},
		Raw:   []any{"x,", ""},
	}, "y")
	require.NoError(t, err)
	assert.Equal(t, "x,y", result)

	_, err = dispatch("not chunks", "y")
	require.Error(t, err)
}
