package naturals

import (
	"bufio"
	"io"
	"naturals/pkg/domain"
	"naturals/pkg/serrors"
	"strconv"

	"github.com/go-faster/errors"
)

// inputReader pulls whitespace-delimited tokens from the user's input.
type inputReader struct {
	scanner *bufio.Scanner
}

func newInputReader(r io.Reader) *inputReader {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	return &inputReader{scanner: scanner}
}

// Read consumes the next token and parses it. Anything after the token is
// left unread.
func (r *inputReader) Read() (domain.InputValue, error) {
	if !r.scanner.Scan() {
		err := r.scanner.Err()
		switch {
		case err == nil:
			return 0, serrors.Wrap(serrors.ErrInvalidInput, io.EOF, "no integer entered")
		case errors.Is(err, bufio.ErrTooLong):
			return 0, serrors.Wrap(serrors.ErrInvalidInput, err, "token too long")
		default:
			return 0, serrors.Wrap(serrors.ErrInternal, err, "could not read input")
		}
	}

	return ParseValue(r.scanner.Text())
}

// ParseValue parses a single base-10 token, with an optional sign, into an
// InputValue. Malformed tokens and values that do not fit in an int yield
// an ErrInvalidInput error wrapping the strconv cause.
func ParseValue(token string) (domain.InputValue, error) {
	n, err := strconv.Atoi(token)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrInvalidInput, err, "could not parse %q", token)
	}

	return domain.InputValue(n), nil
}
