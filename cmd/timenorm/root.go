package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/amirhossein-jamali/timenorm/internal/domain/calendar"
	"github.com/amirhossein-jamali/timenorm/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/timenorm/internal/domain/port/core"
	"github.com/amirhossein-jamali/timenorm/internal/domain/usecase/parser"
	"github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/timenorm/internal/infrastructure/adapter/time"
	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type rootOptions struct {
	preferEnd bool
	now       string
	verbose   bool
	asJSON    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "timenorm",
		Short:         "Normalize free-form time expressions",
		Long:          "timenorm turns loosely written dates, periods and durations into canonical UTC instants and intervals.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.BoolVar(&opts.preferEnd, "prefer-end", false, "resolve whole-unit matches to their end, e.g. \"2009\" means the end of 2009")
	flags.StringVar(&opts.now, "now", "", "reference time for relative expressions, itself any parseable expression; defaults to the wall clock")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log parser decisions to stderr")
	flags.BoolVar(&opts.asJSON, "json", false, "print results as JSON")

	root.AddCommand(
		newParseCmd(opts),
		newIntervalCmd(opts),
		newDurationCmd(opts),
		newHumanizeCmd(opts),
		newDiffCmd(opts),
	)
	return root
}

// build assembles a parser from the global flags
func (o *rootOptions) build() (*parser.Parser, error) {
	log := logger.NewNoopLogger()
	if o.verbose {
		log = logger.NewZapLogger(logger.Options{Level: coreport.LogLevelDebug, Output: "stderr"})
	}

	tp := timeprovider.NewRealTimeProvider()
	if o.now != "" {
		// --now is itself an expression, read against the wall clock
		at, ok := parser.NewParser(tp, log).ParseLenient(o.now)
		if !ok {
			return nil, fmt.Errorf("invalid --now %q: not a time", o.now)
		}
		tp = timeprovider.NewFixedTimeProvider(at.Std())
	}

	return parser.NewParser(tp, log, parser.WithPreferEnd(o.preferEnd)), nil
}

func (o *rootOptions) print(w io.Writer, v any, text string) error {
	if !o.asJSON {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

type parseOutput struct {
	Input       string   `json:"input"`
	Instant     string   `json:"instant"`
	Interval    string   `json:"interval"`
	Granularity string   `json:"granularity"`
	Strategy    string   `json:"strategy"`
	Warnings    []string `json:"warnings,omitempty"`
}

func newParseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "parse <expression>",
		Short:   "Resolve an expression to one instant",
		Example: "  timenorm parse 18/11/09\n  timenorm parse --prefer-end last month",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.build()
			if err != nil {
				return err
			}
			input := joinArgs(args)
			res, err := p.ParseDetailed(input)
			if err != nil {
				return err
			}

			at := res.Interval.Start()
			if p.PreferEnd() {
				at = res.Interval.End()
			}
			out := parseOutput{
				Input:       input,
				Instant:     at.ISOString(),
				Interval:    res.Interval.ISOString(),
				Granularity: res.Granularity.String(),
				Strategy:    res.Strategy,
			}
			for _, w := range res.Warnings {
				out.Warnings = append(out.Warnings, w.Error())
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w.Error())
			}
			return opts.print(cmd.OutOrStdout(), out, out.Instant)
		},
	}
}

type intervalOutput struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Text   string `json:"text"`
	Length string `json:"length"`
}

func newIntervalCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "interval <expression>",
		Short:   "Resolve an expression to the span it covers",
		Example: "  timenorm interval Nov 2009\n  timenorm interval 18 Nov 2009 to 23 Nov 2009",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.build()
			if err != nil {
				return err
			}
			iv, err := p.ParseInterval(joinArgs(args))
			if err != nil {
				return err
			}
			out := intervalOutput{
				Start:  iv.Start().ISOString(),
				End:    iv.End().ISOString(),
				Text:   iv.String(),
				Length: iv.Length().String(),
			}
			return opts.print(cmd.OutOrStdout(), out, iv.ISOString())
		},
	}
}

func newDurationCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "duration <expression>",
		Short:   "Read a length of time",
		Example: "  timenorm duration 1.5 hrs",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.build()
			if err != nil {
				return err
			}
			d, err := p.ParseDuration(joinArgs(args))
			if err != nil {
				return err
			}
			return opts.print(cmd.OutOrStdout(), d, d.String())
		},
	}
}

type humanizeOutput struct {
	Instant  string `json:"instant"`
	Relative string `json:"relative"`
	Interval string `json:"interval,omitempty"`
}

func newHumanizeCmd(opts *rootOptions) *cobra.Command {
	var minUnit string

	cmd := &cobra.Command{
		Use:     "humanize <expression>",
		Short:   "Describe an expression relative to now",
		Example: "  timenorm humanize --now 2023-06-15T10:30:00Z last week",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := entity.ParseTimeUnit(minUnit)
			if err != nil {
				return err
			}
			p, err := opts.build()
			if err != nil {
				return err
			}
			res, err := p.ParseDetailed(joinArgs(args))
			if err != nil {
				return err
			}

			now := p.Now()
			at := res.Interval.Start()
			if p.PreferEnd() {
				at = res.Interval.End()
			}
			out := humanizeOutput{
				Instant:  at.ISOString(),
				Relative: calendar.FormatRelative(at, now, unit),
			}
			text := out.Relative
			if !res.Interval.IsPoint() {
				out.Interval = calendar.FormatInterval(res.Interval, now)
				text = out.Interval
			}
			return opts.print(cmd.OutOrStdout(), out, text)
		},
	}
	cmd.Flags().StringVar(&minUnit, "min-unit", "second", "smallest unit worth mentioning")
	return cmd
}

type diffOutput struct {
	From     string          `json:"from"`
	To       string          `json:"to"`
	Duration entity.Duration `json:"duration"`
}

func newDiffCmd(opts *rootOptions) *cobra.Command {
	var unitName string

	cmd := &cobra.Command{
		Use:     "diff <from> <to>",
		Short:   "Signed distance between two expressions",
		Example: "  timenorm diff 2020-01-01 2020-03-01 --unit month\n  timenorm diff yesterday now",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := opts.build()
			if err != nil {
				return err
			}
			from, err := p.Parse(args[0])
			if err != nil {
				return err
			}
			to, err := p.Parse(args[1])
			if err != nil {
				return err
			}

			var d entity.Duration
			if unitName == "" {
				d = entity.NewDuration(float64(from.DiffMillis(to)), entity.Millisecond).FixUnits()
			} else {
				unit, err := entity.ParseTimeUnit(unitName)
				if err != nil {
					return err
				}
				d = from.Diff(to, unit)
			}
			out := diffOutput{From: from.ISOString(), To: to.ISOString(), Duration: d}
			return opts.print(cmd.OutOrStdout(), out, d.String())
		},
	}
	cmd.Flags().StringVar(&unitName, "unit", "", "express the result in this unit; defaults to the best fit")
	return cmd
}
