package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/railops/sectionctl/config"
	"github.com/railops/sectionctl/core/controller"
	"github.com/railops/sectionctl/core/override"
	"github.com/railops/sectionctl/core/ranking"
	"github.com/railops/sectionctl/infra/csvsource"
	"github.com/railops/sectionctl/infra/logger"
	"github.com/railops/sectionctl/pkg/export"
)

var rankFormat string

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Run one evaluation cycle and print the recommendations",
	RunE:  runRank,
}

func init() {
	rankCmd.Flags().StringVarP(&rankFormat, "format", "f", "table", "output format: table, json or csv")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logg := logger.New("rank-command")
	source := csvsource.New(cfg.Data, logg)
	engine := ranking.NewEngine(cfg.Engine)
	store := override.NewStore(nil)

	ctrl, err := controller.New(source, engine, store, nil, nil, logg)
	if err != nil {
		return fmt.Errorf("controller: %w", err)
	}
	res, err := ctrl.Evaluate(cmd.Context())
	if err != nil {
		return err
	}

	switch rankFormat {
	case "json":
		return export.WriteJSON(os.Stdout, res.Recommendations)
	case "csv":
		return export.WriteCSV(os.Stdout, res.Recommendations)
	case "table":
		printTable(res)
		return nil
	default:
		return fmt.Errorf("unknown format: %s", rankFormat)
	}
}

func printTable(res *controller.CycleResult) {
	if len(res.Recommendations) == 0 {
		fmt.Println("No recommendations. Either no trains are waiting or no platforms are available.")
		return
	}
	fmt.Printf("Ranked %d trains against %d available platform lines.\n\n",
		res.TrainCount, res.AvailablePlatforms)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tTRAIN\tPRIORITY\tDELAY (s)\tPLATFORM")
	for _, rec := range res.Recommendations {
		platform := "unassigned"
		if rec.Assigned {
			platform = rec.PlatformID
			if rec.LineID != "" {
				platform += ", " + rec.LineID
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%d\t%.0f\t%s\n",
			rec.Rank, rec.Train.DisplayName(), rec.Train.Priority, rec.Train.Delay, platform)
	}
	_ = w.Flush()
}
