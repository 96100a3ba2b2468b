package history

import (
	"fmt"
	"math"
	"time"
)

// TrendPoint is one run enriched with deltas against the previous run and a
// moving average over the report window.
type TrendPoint struct {
	Timestamp      time.Time `json:"timestamp"`
	RunID          string    `json:"run_id"`
	FileCount      int       `json:"file_count"`
	FunctionCount  int       `json:"function_count"`
	ClassCount     int       `json:"class_count"`
	ErrorCount     int       `json:"error_count"`
	DeltaFiles     int       `json:"delta_files"`
	DeltaFunctions int       `json:"delta_functions"`
	DeltaClasses   int       `json:"delta_classes"`
	DeltaErrors    int       `json:"delta_errors"`
	FileGrowthPct  float64   `json:"file_growth_pct"`
	AvgFunctions   float64   `json:"avg_functions"`
	AvgErrors      float64   `json:"avg_errors"`
	WindowHours    float64   `json:"window_hours"`
}

type TrendReport struct {
	SchemaVersion int          `json:"schema_version"`
	Since         time.Time    `json:"since"`
	Until         time.Time    `json:"until"`
	Window        string       `json:"window"`
	RunCount      int          `json:"run_count"`
	Points        []TrendPoint `json:"points"`
}

// BuildTrendReport turns an ordered run list into per-run deltas. Runs must be
// sorted oldest first, the order LoadRuns returns them in.
func BuildTrendReport(runs []Run, window time.Duration) (TrendReport, error) {
	if len(runs) == 0 {
		return TrendReport{}, fmt.Errorf("no runs available")
	}

	points := make([]TrendPoint, 0, len(runs))
	for i, current := range runs {
		point := TrendPoint{
			Timestamp:     current.Timestamp,
			RunID:         current.RunID,
			FileCount:     current.FileCount,
			FunctionCount: current.FunctionCount,
			ClassCount:    current.ClassCount,
			ErrorCount:    current.ErrorCount,
		}

		if i > 0 {
			prev := runs[i-1]
			point.DeltaFiles = current.FileCount - prev.FileCount
			point.DeltaFunctions = current.FunctionCount - prev.FunctionCount
			point.DeltaClasses = current.ClassCount - prev.ClassCount
			point.DeltaErrors = current.ErrorCount - prev.ErrorCount
			if prev.FileCount > 0 {
				point.FileGrowthPct = round2((float64(point.DeltaFiles) / float64(prev.FileCount)) * 100)
			}
		}

		avgFunctions, avgErrors := movingAverages(runs, i, window)
		point.AvgFunctions = round2(avgFunctions)
		point.AvgErrors = round2(avgErrors)
		point.WindowHours = round2(window.Hours())
		points = append(points, point)
	}

	return TrendReport{
		SchemaVersion: SchemaVersion,
		Since:         runs[0].Timestamp,
		Until:         runs[len(runs)-1].Timestamp,
		Window:        window.String(),
		RunCount:      len(points),
		Points:        points,
	}, nil
}

func movingAverages(runs []Run, index int, window time.Duration) (float64, float64) {
	if window <= 0 {
		return float64(runs[index].FunctionCount), float64(runs[index].ErrorCount)
	}

	cutoff := runs[index].Timestamp.Add(-window)
	var functionsTotal int
	var errorsTotal int
	count := 0
	for i := index; i >= 0; i-- {
		if runs[i].Timestamp.Before(cutoff) {
			break
		}
		functionsTotal += runs[i].FunctionCount
		errorsTotal += runs[i].ErrorCount
		count++
	}
	if count == 0 {
		return 0, 0
	}
	return float64(functionsTotal) / float64(count), float64(errorsTotal) / float64(count)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
