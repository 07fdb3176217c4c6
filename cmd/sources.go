package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sells-group/leadflow-cli/internal/source"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List known sources and their profiles",
	RunE: func(cmd *cobra.Command, _ []string) error {
		profiles := source.Builtin()
		overlay := cfg.Ingest.ProfileOverlay
		if overlay != "" {
			var err error
			profiles, err = source.LoadProfileOverlay(overlay, profiles)
			if err != nil {
				return err
			}
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "SOURCE\tCLASSIFIER\tRULES\tCITIES\tDEFAULT CITY")
		for _, name := range source.Names() {
			p, ok := profiles[name]
			if !ok {
				continue
			}
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n",
				name, classifierKind(p), len(p.Rules), len(p.Gazetteer), p.DefaultCity)
		}
		tw.Flush()
		return nil
	},
}

func classifierKind(p source.Profile) string {
	switch {
	case p.FixedIndustry != "":
		return "fixed: " + p.FixedIndustry
	case len(p.Codes) > 0:
		return "industry codes"
	case p.KeywordField == source.KeywordFieldCode:
		return "code keywords"
	default:
		return "name keywords"
	}
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}
