package dataprocessing

import (
	"log/slog"
	"math"

	"powercli/pkg/contracts/domain"
)

// DailySummary aggregates one calendar day of readings for the report
// exporters. Mean/min/max are computed over non-nil values only; Missing
// counts readings whose active power was absent.
type DailySummary struct {
	Date            string  `json:"date" csv:"Date"`
	Readings        int     `json:"readings" csv:"Readings"`
	Missing         int     `json:"missing" csv:"Missing"`
	MeanActivePower float64 `json:"mean_active_power" csv:"MeanActivePower"`
	MinActivePower  float64 `json:"min_active_power" csv:"MinActivePower"`
	MaxActivePower  float64 `json:"max_active_power" csv:"MaxActivePower"`
	MeanVoltage     float64 `json:"mean_voltage" csv:"MeanVoltage"`
	SubMetering1    float64 `json:"sub_metering_1_total" csv:"SubMetering1Total"`
	SubMetering2    float64 `json:"sub_metering_2_total" csv:"SubMetering2Total"`
	SubMetering3    float64 `json:"sub_metering_3_total" csv:"SubMetering3Total"`
}

// Summarizer produces per-day aggregates from a normalized dataset.
type Summarizer struct {
	logger *slog.Logger
}

// NewSummarizer creates a summarizer instance.
func NewSummarizer(logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{logger: logger}
}

// Summarize groups readings by their Date string, preserving first-appearance
// order (the source file is chronological).
func (s *Summarizer) Summarize(ds domain.Dataset) []DailySummary {
	type acc struct {
		summary    DailySummary
		powerSum   float64
		powerCount int
		voltSum    float64
		voltCount  int
	}

	var order []string
	byDate := make(map[string]*acc)

	for _, r := range ds.Readings {
		a, ok := byDate[r.Date]
		if !ok {
			a = &acc{summary: DailySummary{
				Date:           r.Date,
				MinActivePower: math.Inf(1),
				MaxActivePower: math.Inf(-1),
			}}
			byDate[r.Date] = a
			order = append(order, r.Date)
		}

		a.summary.Readings++

		if r.GlobalActivePower != nil {
			v := *r.GlobalActivePower
			a.powerSum += v
			a.powerCount++
			if v < a.summary.MinActivePower {
				a.summary.MinActivePower = v
			}
			if v > a.summary.MaxActivePower {
				a.summary.MaxActivePower = v
			}
		} else {
			a.summary.Missing++
		}

		if r.Voltage != nil {
			a.voltSum += *r.Voltage
			a.voltCount++
		}

		if r.SubMetering1 != nil {
			a.summary.SubMetering1 += *r.SubMetering1
		}
		if r.SubMetering2 != nil {
			a.summary.SubMetering2 += *r.SubMetering2
		}
		if r.SubMetering3 != nil {
			a.summary.SubMetering3 += *r.SubMetering3
		}
	}

	summaries := make([]DailySummary, 0, len(order))
	for _, date := range order {
		a := byDate[date]
		if a.powerCount > 0 {
			a.summary.MeanActivePower = a.powerSum / float64(a.powerCount)
		} else {
			a.summary.MinActivePower = 0
			a.summary.MaxActivePower = 0
		}
		if a.voltCount > 0 {
			a.summary.MeanVoltage = a.voltSum / float64(a.voltCount)
		}
		summaries = append(summaries, a.summary)
	}

	s.logger.Info("daily summaries computed",
		slog.Int("days", len(summaries)),
		slog.Int("readings", len(ds.Readings)))

	return summaries
}
