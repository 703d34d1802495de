package num

import "github.com/pkg/errors"

// Sentinel errors for recoverable conditions. Each is propagated through an
// ordinary return value, never a partial result.
var (
	// ErrDivByZero is returned by Divide, Divmod and Modulo when the
	// divisor is zero, and by Raisemod when the modulus is zero.
	ErrDivByZero = errors.New("num: division by zero")

	// ErrNegativeExponent is returned by Raisemod when the exponent is
	// negative.
	ErrNegativeExponent = errors.New("num: negative exponent in raisemod")

	// ErrNegativeRadicand is the reason Sqrt reports failure (false) for a
	// negative operand. Sqrt itself does not return it; it is exposed so
	// callers who want an error value for that case have something to wrap.
	ErrNegativeRadicand = errors.New("num: negative radicand in sqrt")
)

// errorf builds an error the same way github.com/pkg/errors.Errorf does,
// giving Diagnostics.Errorf a stack-trace-carrying error rather than a bare
// fmt.Errorf.
func errorf(format string, args ...any) error {
	return errors.Errorf(format, args...)
}

// ExponentOverflowError reports that an exponent passed to Raise does not
// fit the host's native exponent range. This is a hard error reported
// through the host error callback, not a recoverable return; Raise reports
// it by panicking with this value (see Diagnostics.Errorf).
type ExponentOverflowError struct {
	Exponent string
}

func (e *ExponentOverflowError) Error() string {
	return "num: exponent too large in raise: " + e.Exponent
}
