package num

import (
	"os"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Diagnostics is the pair of host-provided sinks for reporting conditions
// that fall outside a plain return value: Warnf for recoverable oddities (a
// non-zero scale where an integer is expected) and Errorf for hard failures
// (an exponent that overflows the host's native range in Raise). The
// library never decides how these surface to an end user; it only calls
// them.
type Diagnostics interface {
	Warnf(format string, args ...any)
	Errorf(format string, args ...any) error
}

// zerologDiagnostics backs the default Diagnostics with a zerolog logger.
type zerologDiagnostics struct {
	logger zerolog.Logger
}

// NewZerologDiagnostics returns a Diagnostics that logs warnings and errors
// through zerolog.
func NewZerologDiagnostics(logger zerolog.Logger) Diagnostics {
	return zerologDiagnostics{logger: logger}
}

func (d zerologDiagnostics) Warnf(format string, args ...any) {
	d.logger.Warn().Msgf(format, args...)
}

func (d zerologDiagnostics) Errorf(format string, args ...any) error {
	d.logger.Error().Msgf(format, args...)
	return errorf(format, args...)
}

// diagBox gives atomic.Value a single concrete type to Store regardless of
// which Diagnostics implementation is installed; atomic.Value panics if
// successive Store calls carry different concrete types.
type diagBox struct{ d Diagnostics }

var diag atomic.Value // holds diagBox

func init() {
	diag.Store(diagBox{NewZerologDiagnostics(zerolog.New(os.Stderr).With().Timestamp().Logger())})
}

// SetDiagnostics installs d as the package-wide Diagnostics sink, replacing
// the zerolog-backed default.
func SetDiagnostics(d Diagnostics) {
	diag.Store(diagBox{d})
}

func currentDiagnostics() Diagnostics {
	return diag.Load().(diagBox).d
}
