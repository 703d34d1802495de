package num

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type recordingDiagnostics struct {
	warnings []string
	errors   []string
}

func (r *recordingDiagnostics) Warnf(format string, args ...any) {
	r.warnings = append(r.warnings, format)
}

func (r *recordingDiagnostics) Errorf(format string, args ...any) error {
	r.errors = append(r.errors, format)
	return errorf(format, args...)
}

func TestSetDiagnosticsAcceptsDifferentConcreteTypes(t *testing.T) {
	first := &recordingDiagnostics{}
	SetDiagnostics(first)
	currentDiagnostics().Warnf("first warning")
	require.Equal(t, []string{"first warning"}, first.warnings)

	// Installing a Diagnostics implementation with a different concrete type
	// than the zerolog-backed default (or than a prior custom one) must not
	// panic: the package's atomic.Value storage has to tolerate that.
	SetDiagnostics(NewZerologDiagnostics(zerolog.Nop()))
	require.NotPanics(t, func() {
		currentDiagnostics().Warnf("second warning")
	})

	second := &recordingDiagnostics{}
	SetDiagnostics(second)
	currentDiagnostics().Warnf("third warning")
	require.Equal(t, []string{"third warning"}, second.warnings)
}
