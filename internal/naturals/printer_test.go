package naturals_test

import (
	"bytes"
	"naturals/internal/naturals"
	"naturals/pkg/domain"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/require"
)

var errShortWrite = errors.New("short write")

func TestWriteParity(t *testing.T) {
	tests := []struct {
		value domain.InputValue
		want  string
	}{
		{value: 4, want: "4 is even.\n"},
		{value: 7, want: "7 is odd.\n"},
		{value: -3, want: "-3 is odd.\n"},
		{value: -4, want: "-4 is even.\n"},
		{value: 0, want: "0 is even.\n"},
	}

	for _, tt := range tests {
		t.Run(tt.value.String(), func(t *testing.T) {
			var buf bytes.Buffer
			parity, err := naturals.WriteParity(&buf, tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, buf.String())
			require.Equal(t, domain.ParityOf(tt.value), parity)
		})
	}
}

func TestWriteSequence(t *testing.T) {
	tests := []struct {
		name    string
		value   domain.InputValue
		want    string
		printed int
	}{
		{name: "one", value: 1, want: "First 1 natural numbers: 1 \n", printed: 1},
		{name: "four", value: 4, want: "First 4 natural numbers: 1 2 3 4 \n", printed: 4},
		{name: "zero", value: 0, want: naturals.NonPositiveMessage + "\n"},
		{name: "negative", value: -9, want: naturals.NonPositiveMessage + "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printed, err := naturals.WriteSequence(&buf, tt.value)
			require.NoError(t, err)
			require.Equal(t, tt.want, buf.String())
			require.Equal(t, tt.printed, printed)
		})
	}
}

type limitedWriter struct {
	remaining int
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if w.remaining <= 0 {
		return 0, errShortWrite
	}
	w.remaining--

	return len(p), nil
}

func TestWriteSequence_StopsOnWriteError(t *testing.T) {
	// header plus three numbers succeed, the fourth number fails
	w := &limitedWriter{remaining: 4}

	printed, err := naturals.WriteSequence(w, 10)
	require.ErrorIs(t, err, errShortWrite)
	require.Equal(t, 3, printed)
}
