package timestamps

import (
	"fmt"
	"math"
	"time"

	"github.com/abdul-hamid-achik/toolbox/packages/core/arith"
)

// Formatter builds markup tokens relative to a clock.
type Formatter struct {
	now func() time.Time
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithClock replaces the wall clock used by Now and FromNow.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		f.now = now
	}
}

func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var defaultFormatter = NewFormatter()

// FromDate renders the instant ms milliseconds after the Unix epoch.
func (f *Formatter) FromDate(ms float64, format Format) (string, error) {
	if err := validate(format); err != nil {
		return "", err
	}
	seconds := math.Floor(ms / 1000)
	return fmt.Sprintf("<t:%s:%s>", arith.FormatNumber(seconds), format.Code()), nil
}

// Now renders the current wall-clock time.
func (f *Formatter) Now(format Format) (string, error) {
	return f.FromDate(f.nowMillis(), format)
}

// FromNow renders the current time shifted by a signed offset in milliseconds.
func (f *Formatter) FromNow(ms float64, format Format) (string, error) {
	return f.FromDate(f.nowMillis()+ms, format)
}

func (f *Formatter) nowMillis() float64 {
	return float64(f.now().UnixMilli())
}

// FromDate renders the instant ms milliseconds after the Unix epoch.
func FromDate(ms float64, format Format) (string, error) {
	return defaultFormatter.FromDate(ms, format)
}

// Now renders the current wall-clock time.
func Now(format Format) (string, error) {
	return defaultFormatter.Now(format)
}

// FromNow renders the current time shifted by ms milliseconds.
func FromNow(ms float64, format Format) (string, error) {
	return defaultFormatter.FromNow(ms, format)
}

// FromTime renders t, truncated to whole seconds.
func FromTime(t time.Time, format Format) (string, error) {
	return defaultFormatter.FromDate(float64(t.UnixMilli()), format)
}
