package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/scene"
	"github.com/katalvlaran/relgraph/stats"
	"github.com/katalvlaran/relgraph/uniqueness"
)

type analyzeFlags struct {
	out           string
	format        string
	workers       int
	invert        bool
	dropInvalid   bool
	ignoreUnknown bool
	parallel      int
}

// batchOutput is the JSON document written by `relgraph analyze`.
type batchOutput struct {
	Reports   []*uniqueness.Report `json:"reports"`
	Aggregate stats.Aggregate      `json:"aggregate"`
}

func newAnalyzeCmd(a *app) *cobra.Command {
	var f analyzeFlags
	cmd := &cobra.Command{
		Use:   "analyze FILE...",
		Short: "Analyze CLEVR scene files",
		Long: `Analyze one or more CLEVR-style scene JSON files.

Each file yields a report (per-object unique patterns and class); the
aggregate over all files is appended.

Examples:
  relgraph analyze CLEVR_val_000000.json
  relgraph analyze scenes/*.json --format text
  relgraph analyze scenes/*.json --invert --out report.json`,
		Args: cobra.MinimumNArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if f.format != "json" && f.format != "text" {
				return fmt.Errorf("--format must be json or text, got %q", f.format)
			}
			if f.workers < 0 || f.parallel < 0 {
				return fmt.Errorf("--workers and --parallel cannot be negative")
			}
			if !cmd.Flags().Changed("workers") {
				f.workers = a.cfg.Analysis.Workers
			}
			if !cmd.Flags().Changed("invert") {
				f.invert = a.cfg.Analysis.InvertLabels
			}
			if !cmd.Flags().Changed("drop-invalid") {
				f.dropInvalid = a.cfg.Graph.DropInvalid
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := analyzeFiles(cmd.Context(), a, f, args)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if f.out != "" {
				file, err := os.Create(f.out)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			if f.format == "text" {
				return writeText(w, out)
			}
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	cmd.Flags().StringVarP(&f.out, "out", "o", "", "write output to file instead of stdout")
	cmd.Flags().StringVar(&f.format, "format", "json", "output format: json or text")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "two-hop workers per scene (0 = GOMAXPROCS)")
	cmd.Flags().IntVar(&f.parallel, "parallel", 1, "scenes analyzed concurrently (0 = unlimited)")
	cmd.Flags().BoolVar(&f.invert, "invert", false, "phrase two-hop pairs from the terminus' side")
	cmd.Flags().BoolVar(&f.dropInvalid, "drop-invalid", false, "drop malformed relations with a warning")
	cmd.Flags().BoolVar(&f.ignoreUnknown, "ignore-unknown", false, "skip relationship labels outside the alphabet")

	return cmd
}

// analyzeFiles runs the pipeline per file, keeping argument order.
func analyzeFiles(ctx context.Context, a *app, f analyzeFlags, paths []string) (*batchOutput, error) {
	reports := make([]*uniqueness.Report, len(paths))

	eg, egctx := errgroup.WithContext(ctx)
	if f.parallel > 0 {
		eg.SetLimit(f.parallel)
	}
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			rep, err := analyzeFile(egctx, a, f, path)
			if err != nil {
				return err
			}
			reports[i] = rep
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	sums := make([]uniqueness.Summary, len(reports))
	for i, r := range reports {
		sums[i] = r.Summary
	}

	return &batchOutput{Reports: reports, Aggregate: stats.Compute(sums)}, nil
}

func analyzeFile(ctx context.Context, a *app, f analyzeFlags, path string) (*uniqueness.Report, error) {
	s, err := scene.Load(path)
	if err != nil {
		return nil, err
	}

	gopts := []core.Option{core.WithLogger(a.logger)}
	if f.dropInvalid {
		gopts = append(gopts, core.WithDropInvalid())
	}
	sopts := []scene.Option{scene.WithCoreOptions(gopts...), scene.WithLogger(a.logger)}
	if f.ignoreUnknown {
		sopts = append(sopts, scene.WithIgnoreUnknownLabels())
	}
	g, err := s.Graph(sopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rep, err := uniqueness.Analyze(ctx, g,
		uniqueness.WithWorkers(f.workers),
		uniqueness.WithInvertedLabels(f.invert),
		uniqueness.WithSceneName(s.Name()),
		uniqueness.WithLogger(a.logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Info("scene analyzed", "file", path, "objects", rep.Summary.TotalObjects, "coverage", rep.Coverage)

	return rep, nil
}

// writeText prints one summary row per scene and the dataset totals.
func writeText(w io.Writer, out *batchOutput) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SCENE\tOBJECTS\tEDGES\t1HOP\t2HOP\t2HOP-GLOBAL\tBOTH\tONLY1\tONLY2\tNEITHER\tCOVERAGE")
	for _, r := range out.Reports {
		s := r.Summary
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%d\t%.1f%%\n",
			r.Scene, s.TotalObjects, s.TotalEdges, s.Edge1Total, s.Edge2Total, s.Edge2Global,
			s.Both, s.Only1Hop, s.Only2Hop, s.Neither, 100*s.Coverage)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	ag := out.Aggregate
	_, err := fmt.Fprintf(w, "\nscenes: %d  objects: %d  avg objects/scene: %.1f  avg patterns/scene: %.1f\n"+
		"both: %.1f%%  only_1hop: %.1f%%  only_2hop: %.1f%%  neither: %.1f%%  coverage: %.1f%%\n",
		ag.Scenes, ag.TotalObjects, ag.AvgObjects, ag.AvgPatterns,
		ag.Percent(ag.Both), ag.Percent(ag.Only1Hop), ag.Percent(ag.Only2Hop), ag.Percent(ag.Neither), ag.Coverage)

	return err
}
