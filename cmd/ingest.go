package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/leadflow-cli/internal/dedup"
	"github.com/sells-group/leadflow-cli/internal/model"
	"github.com/sells-group/leadflow-cli/internal/pipeline"
	"github.com/sells-group/leadflow-cli/internal/source"
)

var (
	ingestSources  []string
	ingestDir      string
	ingestParallel int
	ingestDays     int
	ingestLimit    int
	ingestProfiles string
	ingestJSON     bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Run the lead ingestion pipeline",
	Long:  "Pulls candidates from the configured sources, classifies and scores them, and inserts new leads. Records whose source_id already exists are skipped.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		profiles := source.Builtin()
		overlay := ingestProfiles
		if overlay == "" {
			overlay = cfg.Ingest.ProfileOverlay
		}
		if overlay != "" {
			profiles, err = source.LoadProfileOverlay(overlay, profiles)
			if err != nil {
				return err
			}
		}

		adapters, err := buildAdapters(selectedSources(), candidateDir())
		if err != nil {
			return err
		}
		if len(adapters) == 0 {
			return eris.New("ingest: no sources to run")
		}

		gw := dedup.NewGateway(st, dedup.NewCache())
		orch := pipeline.NewOrchestrator(pipeline.New(profiles, gw), gw, parallelism())

		summary, err := orch.Run(ctx, adapters)
		if err != nil {
			return eris.Wrap(err, "ingest")
		}

		if ingestJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(summary)
		}
		formatSummary(os.Stdout, summary)
		return nil
	},
}

func selectedSources() []string {
	if len(ingestSources) > 0 {
		return ingestSources
	}
	if len(cfg.Ingest.Sources) > 0 {
		return cfg.Ingest.Sources
	}
	return source.Names()
}

func candidateDir() string {
	if ingestDir != "" {
		return ingestDir
	}
	return cfg.Ingest.CandidateDir
}

func parallelism() int {
	if ingestParallel > 0 {
		return ingestParallel
	}
	return cfg.Ingest.Parallelism
}

// buildAdapters resolves each selected source to its feed. A JSON dump in
// the candidate directory always wins; the permits source falls back to
// the live open-data portals. Sources with neither are skipped, because
// their originating scrapers export dumps out of band.
func buildAdapters(names []string, dir string) ([]source.Adapter, error) {
	var adapters []source.Adapter
	for _, name := range names {
		if dir != "" {
			path := filepath.Join(dir, name+".json")
			if _, err := os.Stat(path); err == nil {
				adapters = append(adapters, source.FileAdapter{SourceName: name, Path: path})
				continue
			}
		}

		if name == source.SourcePermits {
			for _, portal := range source.PermitPortals() {
				portal.DaysBack = daysBack()
				portal.Limit = rowLimit()
				adapters = append(adapters, source.NewSocrataAdapter(portal))
			}
			continue
		}

		zap.L().Warn("ingest: no candidate feed for source, skipping",
			zap.String("source", name),
		)
	}
	return adapters, nil
}

func daysBack() int {
	if ingestDays > 0 {
		return ingestDays
	}
	return cfg.Ingest.DaysBack
}

func rowLimit() int {
	if ingestLimit > 0 {
		return ingestLimit
	}
	return cfg.Ingest.Limit
}

func formatSummary(w *os.File, summary model.RunSummary) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOURCE\tSCRAPED\tINSERTED\tSKIPPED\tERRORS")
	for _, r := range summary.Sources {
		status := ""
		if r.Err != "" {
			status = "  (" + r.Err + ")"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d%s\n", r.Source, r.Scraped, r.Inserted, r.Skipped, r.Errors, status)
	}
	fmt.Fprintf(tw, "TOTAL\t%d\t%d\t%d\t%d\n", summary.Scraped, summary.Inserted, summary.Skipped, summary.Errors)
	tw.Flush()
}

func init() {
	ingestCmd.Flags().StringSliceVar(&ingestSources, "sources", nil, "comma-separated source names (default all)")
	ingestCmd.Flags().StringVar(&ingestDir, "from-dir", "", "directory of per-source JSON candidate dumps")
	ingestCmd.Flags().IntVar(&ingestParallel, "parallel", 0, "number of sources ingesting concurrently")
	ingestCmd.Flags().IntVar(&ingestDays, "days-back", 0, "how many days of signals to request")
	ingestCmd.Flags().IntVar(&ingestLimit, "limit", 0, "max rows per feed")
	ingestCmd.Flags().StringVar(&ingestProfiles, "profiles", "", "YAML file of profile overrides")
	ingestCmd.Flags().BoolVar(&ingestJSON, "json", false, "emit the run summary as JSON")
	rootCmd.AddCommand(ingestCmd)
}
