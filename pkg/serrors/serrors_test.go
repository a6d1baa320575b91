package serrors_test

import (
	"io"
	"naturals/pkg/serrors"
	"strconv"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	require.NotEqual(t, serrors.ErrInvalidInput, serrors.ErrInternal)
	require.Equal(t, "INVALID_INPUT", serrors.ErrInvalidInput.Error())
	require.Equal(t, "INTERNAL", serrors.ErrInternal.Error())
}

func TestErrorFormatting(t *testing.T) {
	e1 := serrors.With(serrors.ErrInvalidInput, "token %q is not an integer", "abc")
	require.Equal(t, `token "abc" is not an integer`, e1.Error())

	e2 := serrors.Wrap(serrors.ErrInvalidInput, io.EOF, "reading token")
	require.Equal(t, "reading token: EOF", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrInternal)
	require.Equal(t, "INTERNAL", e3.Error())

	var nilErr *serrors.Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	_, cause := strconv.ParseInt("99999999999999999999", 10, 64)
	e := serrors.Wrap(serrors.ErrInvalidInput, cause, "parsing")

	require.ErrorIs(t, e, serrors.ErrInvalidInput)
	require.ErrorIs(t, e, strconv.ErrRange)
	require.NotErrorIs(t, e, serrors.ErrInternal)

	wrapped := errors.Wrap(e, "reading input")
	require.ErrorIs(t, wrapped, serrors.ErrInvalidInput)
	require.ErrorIs(t, wrapped, strconv.ErrRange)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"broken pipe"}
	e := serrors.Wrap(serrors.ErrInternal, base, "writing output")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrInternal, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrInvalidInput,
		serrors.KindOf(errors.Wrap(serrors.KindOnly(serrors.ErrInvalidInput), "outer")))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))
}

func TestAccessors(t *testing.T) {
	e := serrors.Wrap(serrors.ErrInvalidInput, io.EOF, "no token")
	require.Equal(t, serrors.ErrInvalidInput, e.Kind())
	require.Equal(t, "no token", e.Message())
	require.Equal(t, io.EOF, e.Cause())
}
