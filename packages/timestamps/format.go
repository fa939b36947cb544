package timestamps

import (
	"fmt"
	"strings"

	apperrors "github.com/abdul-hamid-achik/toolbox/packages/core/errors"
)

// Format names one of the markup display styles.
type Format string

const (
	Relative  Format = "RELATIVE"
	Date      Format = "DATE"
	Time      Format = "TIME"
	ShortTime Format = "SHORT_TIME"
	Full      Format = "FULL"
)

// DefaultFormat is used when a caller does not pick a format.
const DefaultFormat = Full

var codes = map[Format]string{
	Relative:  "R",
	Date:      "D",
	Time:      "T",
	ShortTime: "t",
	Full:      "F",
}

// Formats returns every recognized format in display order.
func Formats() []Format {
	return []Format{Relative, Date, Time, ShortTime, Full}
}

// Code returns the single-character markup code, or "" for an unknown format.
func (f Format) Code() string {
	return codes[f]
}

// Valid reports whether f is a recognized format.
func (f Format) Valid() bool {
	_, ok := codes[f]
	return ok
}

func (f Format) String() string {
	return string(f)
}

// ParseFormat resolves a format tag. Tags are matched exactly.
func ParseFormat(s string) (Format, error) {
	f := Format(s)
	if err := validate(f); err != nil {
		return "", err
	}
	return f, nil
}

func validate(f Format) error {
	if f.Valid() {
		return nil
	}
	return apperrors.NewInvalidArgument("", "format", "one of "+formatList(), fmt.Sprintf("%q", string(f)))
}

func formatList() string {
	names := make([]string, 0, len(codes))
	for _, f := range Formats() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
