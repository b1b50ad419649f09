package profile

import (
	"context"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// displayWidth returns the number of fixed-width console cells needed for s.
// ASCII counts one cell per byte, uax11 measures everything else.
func displayWidth(s string) int {
	width, start := 0, -1
	for i, r := range s {
		if r < utf8.RuneSelf {
			if start >= 0 {
				width += wideWidth(s[start:i])
				start = -1
			}
			width++
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		width += wideWidth(s[start:])
	}
	return width
}

func wideWidth(s string) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), uax11.LatinContext)
}

func padLeft(s string, width int) string {
	if w := displayWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

// Report writes a table of the series to w, followed by the estimated slope.
// If slope is NaN, the slope line is omitted. Colors are used only if
// colored is set.
func Report(w io.Writer, title string, series Series, slope float64, colored bool) error {
	head := color.New(color.FgBlue, color.Bold)
	hint := color.New(color.FgRed)
	if !colored {
		head.DisableColor()
		hint.DisableColor()
	}
	rows := make([][2]string, 0, len(series)+1)
	rows = append(rows, [2]string{"n", "ms"})
	for _, pt := range series {
		rows = append(rows, [2]string{strconv.Itoa(pt.N), strconv.FormatFloat(pt.Millis, 'f', 3, 64)})
	}
	var wn, wms int
	for _, r := range rows {
		wn = max(wn, displayWidth(r[0]))
		wms = max(wms, displayWidth(r[1]))
	}
	if _, err := head.Fprintf(w, "%s\n", title); err != nil {
		return err
	}
	for i, r := range rows {
		line := padLeft(r[0], wn) + "  " + padLeft(r[1], wms) + "\n"
		var err error
		if i == 0 {
			_, err = head.Fprint(w, line)
		} else {
			_, err = io.WriteString(w, line)
		}
		if err != nil {
			return err
		}
	}
	if !math.IsNaN(slope) {
		_, err := hint.Fprintf(w, "estimated slope = %.3f\n", slope)
		return err
	}
	return nil
}

// Run is a convenience function which profiles timeable, writes a report to
// w and returns the estimated slope.
func Run(ctx context.Context, w io.Writer, title string, timeable Timeable, cfg Config, colored bool) (float64, error) {
	p, err := New(title, timeable, cfg)
	if err != nil {
		return 0, err
	}
	series, err := p.TimingLoop(ctx)
	if err != nil {
		return 0, err
	}
	slope, err := EstimateSlope(series)
	if err != nil {
		T().Errorf("profile %s: %v", title, err)
		if rerr := Report(w, title, series, math.NaN(), colored); rerr != nil {
			return 0, rerr
		}
		return 0, err
	}
	return slope, Report(w, title, series, slope, colored)
}
