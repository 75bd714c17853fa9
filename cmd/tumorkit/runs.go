package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/tumorkit/internal/report"
	"github.com/san-kum/tumorkit/internal/storage"
)

func runsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "saved distribution fits",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved fits",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print the ranking of a saved fit",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	cmd.AddCommand(listCmd, showCmd)
	return cmd
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs")
		return nil
	}
	return report.WriteRuns(os.Stdout, runs)
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	rows, err := st.LoadRanking(args[0])
	if err != nil {
		return err
	}

	fmt.Println(report.KV("run", meta.ID))
	fmt.Println(report.KV("source", meta.Source))
	fmt.Println(report.KV("column", meta.Column))
	fmt.Println(report.KV("samples", meta.SampleSize))
	fmt.Println(report.KV("time", meta.Timestamp.Format("2006-01-02 15:04:05")))
	fmt.Println(report.Best.Render(fmt.Sprintf("best: %s  p=%.4g  D=%.4f", meta.Best, meta.BestP, meta.BestD)))
	fmt.Println()
	return report.WriteRankRows(os.Stdout, rows)
}
