package errors_test

import (
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/agentstation/pricemap/pkg/errors"
)

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := pkgerrors.NewValidationError("undercut_amount", -1.0, "must not be negative")
		assert.Equal(t, "validation failed for field undercut_amount: must not be negative", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
		assert.False(t, errors.Is(err, pkgerrors.ErrUnknownSource))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid configuration"}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("unknown source", func(t *testing.T) {
		err := fmt.Errorf("applying options: %w", pkgerrors.UnknownSource("competitor_c"))
		assert.True(t, pkgerrors.IsValidationError(err))
		assert.True(t, errors.Is(err, pkgerrors.ErrUnknownSource))
		assert.Contains(t, err.Error(), `"competitor_c" is not a catalog source`)

		var ve *pkgerrors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "source", ve.Field)
	})
}

func TestSourceError(t *testing.T) {
	t.Run("missing column", func(t *testing.T) {
		err := pkgerrors.NewMissingColumnError("cost_catalog", "Plan Size")
		assert.Equal(t, `source cost_catalog: column "Plan Size" not found`, err.Error())
		assert.True(t, pkgerrors.IsMissingColumn(err))
		assert.False(t, pkgerrors.IsEmptyCatalog(err))
	})

	t.Run("empty catalog", func(t *testing.T) {
		err := pkgerrors.NewSourceError("cost_catalog", pkgerrors.ErrEmptyCatalog)
		assert.Equal(t, "source cost_catalog: empty catalog", err.Error())
		assert.True(t, pkgerrors.IsEmptyCatalog(err))
		assert.False(t, pkgerrors.IsMissingColumn(err))
	})

	t.Run("wrapped in fmt", func(t *testing.T) {
		err := fmt.Errorf("loading: %w", pkgerrors.NewMissingColumnError("competitor_a", "Plan Name"))
		var srcErr *pkgerrors.SourceError
		require.True(t, errors.As(err, &srcErr))
		assert.Equal(t, "competitor_a", srcErr.Source)
		assert.Equal(t, "Plan Name", srcErr.Column)
	})
}

func TestConfigError(t *testing.T) {
	base := errors.New("file not found")
	err := pkgerrors.NewConfigError("viper", "cannot read config", base)
	assert.Equal(t, "configuration error in viper: cannot read config", err.Error())
	assert.ErrorIs(t, err, base)

	assert.Equal(t, "configuration error: bad value", (&pkgerrors.ConfigError{Message: "bad value"}).Error())
}

func TestWrapParse(t *testing.T) {
	assert.Nil(t, pkgerrors.WrapParse("csv", "cost.csv", nil))

	t.Run("plain error", func(t *testing.T) {
		err := pkgerrors.WrapParse("csv", "default.csv", pkgerrors.ErrEmptyCatalog)
		assert.Equal(t, "parse error in csv file default.csv: empty catalog", err.Error())
		assert.True(t, pkgerrors.IsEmptyCatalog(err))
	})

	t.Run("csv position", func(t *testing.T) {
		_, csvErr := csv.NewReader(strings.NewReader("Network,Price\nMTN,3\"50\n")).ReadAll()
		require.Error(t, csvErr)

		err := pkgerrors.WrapParse("csv", "cost.csv", csvErr)
		var pe *pkgerrors.ParseError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, 2, pe.Line)
		assert.Positive(t, pe.Column)
		assert.Equal(t, csv.ErrBareQuote.Error(), pe.Message)
		assert.True(t, strings.HasPrefix(err.Error(), "parse error in csv at cost.csv:2:"))
	})

	t.Run("no file", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "yaml", Message: "syntax error"}
		assert.Equal(t, "yaml parse error: syntax error", err.Error())
	})
}

func TestWrapIO(t *testing.T) {
	assert.Nil(t, pkgerrors.WrapIO("open", "cost.csv", nil))

	base := errors.New("permission denied")
	err := pkgerrors.WrapIO("open", "/data/cost.csv", base)
	assert.Equal(t, "IO error during open of /data/cost.csv: permission denied", err.Error())
	assert.ErrorIs(t, err, base)

	assert.Equal(t, "IO error during write: disk full",
		(&pkgerrors.IOError{Operation: "write", Err: errors.New("disk full")}).Error())
}

func TestWrapResource(t *testing.T) {
	assert.Nil(t, pkgerrors.WrapResource("load", "config", "", nil))

	err := pkgerrors.WrapResource("create", "pricemap", "", errors.New("bad option"))
	assert.Equal(t, "failed to create pricemap: bad option", err.Error())

	var re *pkgerrors.ResourceError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "create", re.Operation)
}
