package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Neumenon/urncode40/batch"
	"github.com/Neumenon/urncode40/urncode40"
)

// inputs returns the positional arguments, or the lines of stdin when there
// are none.
func (a *app) inputs(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	r := batch.NewReader(cmd.InOrStdin(), batch.WithMaxLine(a.cfg.MaxLineBytes), batch.WithSkipBlank())
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	lines := make([]string, len(records))
	for i, rec := range records {
		lines[i] = rec.Text
	}
	return lines, nil
}

// each applies fn to every input, printing results and logging failures.
func (a *app) each(cmd *cobra.Command, args []string, op string, fn batch.Func) error {
	inputs, err := a.inputs(cmd, args)
	if err != nil {
		return err
	}
	failed := 0
	out := cmd.OutOrStdout()
	for _, in := range inputs {
		res, err := fn(in)
		if err != nil {
			failed++
			a.log.WithFields(logrus.Fields{"op": op, "input": in}).Error(err)
			continue
		}
		a.log.WithFields(logrus.Fields{"op": op, "in": len(in), "out": len(res)}).Debug("ok")
		fmt.Fprintln(out, res)
	}
	if failed > 0 {
		return errFailed
	}
	return nil
}

func (a *app) encodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode [text...]",
		Short: "Encode text to URN Code 40 hex",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each(cmd, args, "encode", urncode40.Encode)
		},
	}
}

func (a *app) decodeCmd() *cobra.Command {
	var preserve bool
	cmd := &cobra.Command{
		Use:   "decode [hex...]",
		Short: "Decode URN Code 40 hex to text",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.each(cmd, args, "decode", a.decoder(cmd, preserve))
		},
	}
	cmd.Flags().BoolVar(&preserve, "preserve-padding", false, "Keep padding before extension blocks as spaces")
	return cmd
}

// decoder returns the decode function for the configured padding policy.
// An explicit --preserve-padding flag wins over the config file.
func (a *app) decoder(cmd *cobra.Command, preserve bool) batch.Func {
	opts := urncode40.DecodeOptions{PreserveTrailingPadding: a.cfg.PreserveTrailingPadding}
	if cmd.Flags().Changed("preserve-padding") {
		opts.PreserveTrailingPadding = preserve
	}
	return func(s string) (string, error) {
		return urncode40.DecodeWithOptions(s, opts)
	}
}

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [text...]",
		Short: "Report whether text can be encoded",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := a.inputs(cmd, args)
			if err != nil {
				return err
			}
			failed := 0
			for _, in := range inputs {
				status := "ok"
				if !urncode40.Validate(in) {
					status = "invalid"
					failed++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", status, in)
			}
			if failed > 0 {
				return errFailed
			}
			return nil
		},
	}
}

func (a *app) inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect hex",
		Short: "Print the blocks of an encoded stream",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, err := urncode40.Inspect(args[0])
			if err != nil {
				return err
			}
			return writeBlocks(cmd.OutOrStdout(), blocks)
		},
	}
}

func writeBlocks(w io.Writer, blocks []urncode40.Block) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "OFFSET\tKIND\tRAW\tTEXT")
	for _, b := range blocks {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%q\n", b.Offset, b.Kind, b.Raw, b.Text)
	}
	return tw.Flush()
}

func (a *app) batchCmd() *cobra.Command {
	var (
		format    string
		maxLine   int
		skipBlank bool
		preserve  bool
	)
	cmd := &cobra.Command{
		Use:       "batch encode|decode [file]",
		Short:     "Encode or decode a file line by line",
		Long:      "Encode or decode every line of a file (or stdin). Files ending in .gz or .zst are decompressed.",
		Args:      cobra.RangeArgs(1, 2),
		ValidArgs: []string{"encode", "decode"},
		RunE: func(cmd *cobra.Command, args []string) error {
			var fn batch.Func
			switch args[0] {
			case "encode":
				fn = urncode40.Encode
			case "decode":
				fn = a.decoder(cmd, preserve)
			default:
				return fmt.Errorf("unknown batch operation %q", args[0])
			}

			if cmd.Flags().Changed("format") {
				a.cfg.Format = format
			}
			if cmd.Flags().Changed("max-line") {
				a.cfg.MaxLineBytes = maxLine
			}
			if err := a.cfg.Validate(); err != nil {
				return err
			}
			f, _ := batch.ParseFormat(a.cfg.Format)

			path := ""
			if len(args) == 2 {
				path = args[1]
			}
			var in io.ReadCloser
			if path == "" || path == "-" {
				in = io.NopCloser(cmd.InOrStdin())
			} else {
				var err error
				if in, err = batch.Open(path); err != nil {
					return err
				}
			}
			defer in.Close()

			opts := []batch.ReaderOption{batch.WithMaxLine(a.cfg.MaxLineBytes)}
			if skipBlank {
				opts = append(opts, batch.WithSkipBlank())
			}
			stats, err := batch.Run(batch.NewReader(in, opts...), batch.NewWriter(cmd.OutOrStdout(), f), fn)
			for _, rerr := range stats.Errors {
				a.log.WithField("line", rerr.Line).Warn(rerr.Err)
			}
			a.log.WithFields(logrus.Fields{
				"op":      args[0],
				"records": stats.Records,
				"failed":  stats.Failed,
				"ratio":   fmt.Sprintf("%.3f", stats.Ratio()),
			}).Info("batch complete")
			if err != nil {
				return err
			}
			if stats.Failed > 0 {
				return errFailed
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&format, "format", "plain", "Output format: plain or tsv")
	flags.IntVar(&maxLine, "max-line", batch.DefaultMaxLine, "Maximum line length in bytes")
	flags.BoolVar(&skipBlank, "skip-blank", false, "Ignore empty lines")
	flags.BoolVar(&preserve, "preserve-padding", false, "Keep padding before extension blocks as spaces (decode)")
	return cmd
}
