package chart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"

	"powercli/pkg/contracts/domain"
)

// Sub-metering overlay colors, in series order.
var (
	subMetering1Color = color.Black
	subMetering2Color = color.RGBA{R: 255, A: 255}
	subMetering3Color = color.RGBA{B: 255, A: 255}
)

// seriesPoints builds the plottable points for one series. Readings without a
// timestamp or with a nil value are skipped; order follows the input, which
// is chronological.
func seriesPoints(readings []domain.Reading, value func(domain.Reading) *float64) plotter.XYs {
	var pts plotter.XYs
	for _, r := range readings {
		if !r.HasTimestamp() {
			continue
		}
		v := value(r)
		if v == nil {
			continue
		}
		pts = append(pts, plotter.XY{X: float64(r.Timestamp.Unix()), Y: *v})
	}
	return pts
}

// newTimePlot creates a panel with a time-formatted x axis.
func newTimePlot() *plot.Plot {
	p := plot.New()
	p.X.Tick.Marker = plot.TimeTicks{Format: "Mon"}
	return p
}

// addLine attaches a connected-line series to the panel.
func addLine(p *plot.Plot, pts plotter.XYs, c color.Color) (*plotter.Line, error) {
	if len(pts) == 0 {
		return nil, fmt.Errorf("no plottable points")
	}
	l, err := plotter.NewLine(pts)
	if err != nil {
		return nil, fmt.Errorf("failed to build line: %w", err)
	}
	l.LineStyle.Color = c
	p.Add(l)
	return l, nil
}

// activePowerPanel is the plot2.png chart: Global_active_power against time,
// labeled y axis, no x label.
func activePowerPanel(readings []domain.Reading) (*plot.Plot, error) {
	p := newTimePlot()
	p.Y.Label.Text = "Global Active Power (kilowatts)"

	pts := seriesPoints(readings, func(r domain.Reading) *float64 { return r.GlobalActivePower })
	if _, err := addLine(p, pts, color.Black); err != nil {
		return nil, fmt.Errorf("active power panel: %w", err)
	}
	return p, nil
}

// subMeteringPanel overlays the three sub-metering series with a top-right
// legend. The y range spans the min/max over all three series so no overlay
// is clipped.
func subMeteringPanel(readings []domain.Reading) (*plot.Plot, error) {
	p := newTimePlot()
	p.Y.Label.Text = "Energy sub metering"

	series := []struct {
		name  string
		value func(domain.Reading) *float64
		color color.Color
	}{
		{"Sub_metering_1", func(r domain.Reading) *float64 { return r.SubMetering1 }, subMetering1Color},
		{"Sub_metering_2", func(r domain.Reading) *float64 { return r.SubMetering2 }, subMetering2Color},
		{"Sub_metering_3", func(r domain.Reading) *float64 { return r.SubMetering3 }, subMetering3Color},
	}

	plotted := 0
	for _, s := range series {
		pts := seriesPoints(readings, s.value)
		if len(pts) == 0 {
			continue
		}
		l, err := addLine(p, pts, s.color)
		if err != nil {
			return nil, fmt.Errorf("sub metering panel: %w", err)
		}
		p.Legend.Add(s.name, l)
		plotted++
	}
	if plotted == 0 {
		return nil, fmt.Errorf("sub metering panel: no plottable points")
	}

	if min, max, ok := subMeteringRange(readings); ok {
		p.Y.Min, p.Y.Max = min, max
	}

	p.Legend.Top = true
	return p, nil
}

// voltagePanel plots Voltage against time with column-name axis labels.
func voltagePanel(readings []domain.Reading) (*plot.Plot, error) {
	p := newTimePlot()
	p.X.Label.Text = "datetime"
	p.Y.Label.Text = "Voltage"

	pts := seriesPoints(readings, func(r domain.Reading) *float64 { return r.Voltage })
	if _, err := addLine(p, pts, color.Black); err != nil {
		return nil, fmt.Errorf("voltage panel: %w", err)
	}
	return p, nil
}

// reactivePowerPanel plots Global_reactive_power against time with
// column-name axis labels.
func reactivePowerPanel(readings []domain.Reading) (*plot.Plot, error) {
	p := newTimePlot()
	p.X.Label.Text = "datetime"
	p.Y.Label.Text = "Global_reactive_power"

	pts := seriesPoints(readings, func(r domain.Reading) *float64 { return r.GlobalReactivePower })
	if _, err := addLine(p, pts, color.Black); err != nil {
		return nil, fmt.Errorf("reactive power panel: %w", err)
	}
	return p, nil
}

// subMeteringRange computes the y range spanning every non-nil value of the
// three sub-metering series, so the overlay axis covers all of them.
func subMeteringRange(readings []domain.Reading) (min, max float64, ok bool) {
	for _, r := range readings {
		for _, v := range []*float64{r.SubMetering1, r.SubMetering2, r.SubMetering3} {
			if v == nil {
				continue
			}
			if !ok {
				min, max, ok = *v, *v, true
				continue
			}
			if *v < min {
				min = *v
			}
			if *v > max {
				max = *v
			}
		}
	}
	return min, max, ok
}
