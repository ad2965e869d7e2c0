package stats

import (
	"github.com/katalvlaran/relgraph/uniqueness"
)

// Aggregate is the dataset-level view over many scene summaries.
type Aggregate struct {
	Scenes        int `json:"scenes"`
	TotalObjects  int `json:"total_objects"`
	TotalEdges    int `json:"total_edges"`
	TotalPatterns int `json:"total_unique_patterns"`

	Edge1Total  int `json:"edge1_total"`
	Edge2Total  int `json:"edge2_total"`
	Edge2Global int `json:"edge2_global"`

	Both     int `json:"objects_with_both"`
	Only1Hop int `json:"objects_with_only_1hop"`
	Only2Hop int `json:"objects_with_only_2hop"`
	Neither  int `json:"objects_with_neither"`

	AvgObjects  float64 `json:"avg_objects_per_scene"`
	AvgPatterns float64 `json:"avg_patterns_per_scene"`
	// AvgCoverage is the mean per-scene coverage, in percent.
	AvgCoverage float64 `json:"avg_coverage_pct"`
	// Coverage is the pooled share of covered objects, in percent.
	Coverage float64 `json:"coverage_pct"`
}

// Compute folds summaries into an Aggregate. Empty input yields the zero value.
func Compute(summaries []uniqueness.Summary) Aggregate {
	var a Aggregate
	if len(summaries) == 0 {
		return a
	}

	var coverage float64
	for _, s := range summaries {
		a.TotalObjects += s.TotalObjects
		a.TotalEdges += s.TotalEdges
		a.TotalPatterns += s.TotalUniquePatterns
		a.Edge1Total += s.Edge1Total
		a.Edge2Total += s.Edge2Total
		a.Edge2Global += s.Edge2Global
		a.Both += s.Both
		a.Only1Hop += s.Only1Hop
		a.Only2Hop += s.Only2Hop
		a.Neither += s.Neither
		coverage += s.Coverage
	}

	a.Scenes = len(summaries)
	n := float64(a.Scenes)
	a.AvgObjects = float64(a.TotalObjects) / n
	a.AvgPatterns = float64(a.TotalPatterns) / n
	a.AvgCoverage = 100 * coverage / n
	a.Coverage = a.Percent(a.TotalObjects - a.Neither)

	return a
}

// Percent returns count as a percentage of TotalObjects (0 when empty).
func (a Aggregate) Percent(count int) float64 {
	if a.TotalObjects == 0 {
		return 0
	}

	return 100 * float64(count) / float64(a.TotalObjects)
}
