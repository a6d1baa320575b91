package naturals

import (
	"fmt"
	"io"
	"naturals/pkg/domain"
	"strconv"
)

// Fixed user-facing messages.
const (
	PromptMessage       = "Enter a number: "
	InvalidInputMessage = "Invalid input. Please enter an integer."
	NonPositiveMessage  = "Please enter a positive number to print natural numbers."
)

// WriteParity writes "<n> is even." or "<n> is odd." on its own line.
func WriteParity(w io.Writer, v domain.InputValue) (domain.Parity, error) {
	parity := domain.ParityOf(v)
	if _, err := fmt.Fprintf(w, "%d is %s.\n", v, parity); err != nil {
		return parity, err
	}

	return parity, nil
}

// WriteSequence writes "First <n> natural numbers: 1 2 ... n " followed by a
// newline when v is positive, and NonPositiveMessage otherwise. It returns
// how many numbers were written.
func WriteSequence(w io.Writer, v domain.InputValue) (int, error) {
	if !v.Positive() {
		_, err := fmt.Fprintln(w, NonPositiveMessage)

		return 0, err
	}

	if _, err := fmt.Fprintf(w, "First %d natural numbers: ", v); err != nil {
		return 0, err
	}

	n := int(v)
	buf := make([]byte, 0, 24)
	for i := 1; ; i++ {
		buf = strconv.AppendInt(buf[:0], int64(i), 10)
		buf = append(buf, ' ')
		if _, err := w.Write(buf); err != nil {
			return i - 1, err
		}
		// n may be math.MaxInt, so the bound is checked before incrementing.
		if i == n {
			break
		}
	}

	if _, err := io.WriteString(w, "\n"); err != nil {
		return n, err
	}

	return n, nil
}
