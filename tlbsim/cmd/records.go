package cmd

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sarchlab/tlbsim/datarecording"
	"github.com/sarchlab/tlbsim/mem/trace"
	"github.com/sarchlab/tlbsim/report"
	"github.com/spf13/cobra"
)

type recordsOptions struct {
	outcome string
	limit   int
}

func newRecordsCmd() *cobra.Command {
	opts := &recordsOptions{}

	cmd := &cobra.Command{
		Use:   "records <file.sqlite3>",
		Short: "List the translations recorded with --record.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return listRecords(cmd, opts, args[0])
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&opts.outcome, "outcome", "",
		"Only list translations with this outcome, hit or miss.")
	cmd.Flags().IntVar(&opts.limit, "limit", 0,
		"Maximum number of translations to list. 0 lists all.")

	return cmd
}

func listRecords(
	cmd *cobra.Command,
	opts *recordsOptions,
	filename string,
) error {
	if _, err := os.Stat(filename); err != nil {
		return err
	}

	reader, err := datarecording.NewReader(filename)
	if err != nil {
		return err
	}
	defer reader.Close()

	params := datarecording.QueryParams{Limit: opts.limit}
	switch opts.outcome {
	case "":
	case "hit", "miss":
		params.Where = "Outcome = ?"
		params.Args = []any{opts.outcome}
	default:
		return fmt.Errorf("unknown outcome %q, use hit or miss", opts.outcome)
	}

	records, err := trace.ReadTranslations(cmd.Context(), reader, params)
	if err != nil {
		return err
	}

	t := report.NewTable()
	t.AppendHeader(table.Row{
		"Seq", "Kind", "Outcome", "VAddr", "PAddr", "Page", "Frame",
	})

	for _, r := range records {
		t.AppendRow(table.Row{
			r.Seq, r.Kind, r.Outcome,
			fmt.Sprintf("0x%x", r.VAddr), fmt.Sprintf("0x%x", r.PAddr),
			r.PageNum, r.FrameNum,
		})
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), t.Render())

	return err
}
