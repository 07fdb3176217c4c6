package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/leadflow-cli/internal/model"
	"github.com/sells-group/leadflow-cli/internal/store"
)

var (
	leadsPriority string
	leadsSource   string
	leadsState    string
	leadsMinScore int
	leadsLimit    int
	leadsOffset   int
	leadsOutput   string
)

var leadsCmd = &cobra.Command{
	Use:   "leads",
	Short: "List scored leads",
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

		filter := store.LeadFilter{
			Priority: model.Priority(leadsPriority),
			Source:   leadsSource,
			State:    leadsState,
			MinScore: leadsMinScore,
			Limit:    leadsLimit,
			Offset:   leadsOffset,
		}

		leads, err := st.ListLeads(ctx, filter)
		if err != nil {
			return eris.Wrap(err, "leads list")
		}

		switch leadsOutput {
		case "json":
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(leads)
		case "yaml":
			return yaml.NewEncoder(os.Stdout).Encode(leads)
		case "table":
			if len(leads) == 0 {
				fmt.Fprintln(os.Stderr, "No leads found.")
				return nil
			}
			formatLeads(os.Stdout, leads)
			return nil
		default:
			return eris.Errorf("unknown output format: %s", leadsOutput)
		}
	},
}

func formatLeads(w *os.File, leads []model.Lead) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SCORE\tPRIORITY\tCOMPANY\tINDUSTRY\tCITY\tSTATE\tSIGNAL\tSOURCE")
	for _, l := range leads {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.Score, l.Priority, l.CompanyName, l.Industry, l.City, l.State, l.SignalType, l.Source)
	}
	tw.Flush()
}

func init() {
	leadsCmd.Flags().StringVar(&leadsPriority, "priority", "", "filter by priority (HIGH, MEDIUM, LOW)")
	leadsCmd.Flags().StringVar(&leadsSource, "source", "", "filter by source name")
	leadsCmd.Flags().StringVar(&leadsState, "state", "", "filter by state code")
	leadsCmd.Flags().IntVar(&leadsMinScore, "min-score", 0, "minimum score")
	leadsCmd.Flags().IntVar(&leadsLimit, "limit", 50, "max rows")
	leadsCmd.Flags().IntVar(&leadsOffset, "offset", 0, "rows to skip")
	leadsCmd.Flags().StringVarP(&leadsOutput, "output", "o", "table", "output format (table, json, yaml)")
	rootCmd.AddCommand(leadsCmd)
}
