package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/san-kum/tumorkit/internal/simmeta"
)

var (
	metaFolder   string
	metaFilter   string
	metaOutput   string
	metaSimplify bool
	latexOutput  string
)

func metadataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metadata",
		Short: "simulation metadata tables",
	}

	parseCmd := &cobra.Command{
		Use:   "parse",
		Short: "collect the parameters of every run below a folder into a csv",
		RunE:  parseMetadata,
	}
	parseCmd.Flags().StringVar(&metaFolder, "folder", "", "folder to scan")
	parseCmd.Flags().StringVar(&metaFilter, "filter", simmeta.DefaultFilter, "parameter group")
	parseCmd.Flags().StringVar(&metaOutput, "output", "", "csv name without extension")
	parseCmd.Flags().BoolVar(&metaSimplify, "simplify", false, "drop parameters equal in every run")

	translateCmd := &cobra.Command{
		Use:   "translate [metadata-file]",
		Short: "write the parameters of one run as LaTeX",
		Args:  cobra.ExactArgs(1),
		RunE:  translateMetadata,
	}
	translateCmd.Flags().StringVar(&metaFilter, "filter", simmeta.DefaultFilter, "parameter group")
	translateCmd.Flags().StringVar(&latexOutput, "output", "metadata.tex", "LaTeX output file")

	cmd.AddCommand(parseCmd, translateCmd)
	return cmd
}

func parseMetadata(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	mc := cfg.Metadata
	if cmd.Flags().Changed("folder") {
		mc.Folder = metaFolder
	}
	if cmd.Flags().Changed("filter") || mc.Filter == "" {
		mc.Filter = metaFilter
	}
	if cmd.Flags().Changed("output") {
		mc.Output = metaOutput
	}
	if cmd.Flags().Changed("simplify") {
		mc.Simplify = metaSimplify
	}

	logger.Info("scanning folder", "folder", mc.Folder)
	files, err := simmeta.Search(mc.Folder)
	if err != nil {
		return err
	}
	logger.Info("found metadata files", "count", len(files))

	t, err := simmeta.Collect(files, mc.Filter)
	if err != nil {
		return err
	}
	if mc.Simplify {
		logger.Info("simplifying metadata")
		t.Simplify()
	}

	path := mc.Output + ".csv"
	if err := t.WriteCSV(path); err != nil {
		return err
	}
	fmt.Printf("%d runs, %d parameters -> %s\n", len(t.Rows), len(t.Columns), path)
	return nil
}

func translateMetadata(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	filter := cfg.Metadata.Filter
	if cmd.Flags().Changed("filter") || filter == "" {
		filter = metaFilter
	}
	if err := requireFile(args[0]); err != nil {
		return err
	}

	logger.Info("reading metadata", "file", args[0])
	ps, err := simmeta.Parse(args[0], filter)
	if err != nil {
		return err
	}
	translated := simmeta.Translate(ps)
	if err := simmeta.WriteLatex(latexOutput, translated); err != nil {
		return err
	}
	fmt.Printf("%d of %d parameters -> %s\n", len(translated), len(ps), latexOutput)
	return nil
}
