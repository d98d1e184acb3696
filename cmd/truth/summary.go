package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Veraticus/the-truth-is-out-there/internal/common"
	"github.com/Veraticus/the-truth-is-out-there/internal/coordinator"
	"github.com/Veraticus/the-truth-is-out-there/internal/dataset"
	"github.com/Veraticus/the-truth-is-out-there/internal/debounce"
	"github.com/Veraticus/the-truth-is-out-there/internal/dimension"
	"github.com/Veraticus/the-truth-is-out-there/internal/model"
	"github.com/Veraticus/the-truth-is-out-there/internal/report"
	"github.com/Veraticus/the-truth-is-out-there/internal/selection"
)

// summaryOptions are the filters a headless run applies, in order: text
// first, then at most one brush.
type summaryOptions struct {
	text   string
	source string
	keys   string
	years  string
	rect   string
}

func summaryCmd() *cobra.Command {
	var opts summaryOptions

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print every panel's counts without the dashboard",
		Long: `Run the dashboard's filtering headlessly and print each dimension's counts.

Examples:
  truth summary --text light
  truth summary --source category --keys disk,light
  truth summary --years 1999-2001
  truth summary --rect 30,-125,50,-100`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			recs, err := loadRecords(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			col, err := runSummary(dataset.New(recs), opts)
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), col.Snapshot(), col.AllRows())
		},
	}

	cmd.Flags().StringVar(&opts.text, "text", "", "Description filter (substring, or /regex/)")
	cmd.Flags().StringVar(&opts.source, "source", "", "Panel to brush with --keys (timeline, month, hour, category, duration)")
	cmd.Flags().StringVar(&opts.keys, "keys", "", "Comma separated keys to select on --source")
	cmd.Flags().StringVar(&opts.years, "years", "", "Year range to brush on the timeline, e.g. 1999-2001")
	cmd.Flags().StringVar(&opts.rect, "rect", "", "Map rectangle as lat,lng,lat,lng")
	cmd.MarkFlagsRequiredTogether("source", "keys")
	cmd.MarkFlagsMutuallyExclusive("keys", "years", "rect")

	return cmd
}

// runSummary drives a coordinator with opts and returns what it published.
func runSummary(store *dataset.Store, opts summaryOptions) (*report.Collector, error) {
	coord := coordinator.New(store,
		coordinator.WithScheduler(debounce.Immediate{}),
		coordinator.WithLogger(slog.Default()))

	col := report.NewCollector()
	if err := col.Register(coord); err != nil {
		return nil, err
	}
	coord.Start()

	if opts.text != "" {
		coord.SetTextFilter(opts.text)
	}

	source, sel, err := opts.brush()
	if err != nil {
		return nil, err
	}
	if source == "" {
		return col, nil
	}
	if sel.Empty() {
		slog.Warn("Selection matches no known keys; showing everything", "source", source)
	}
	coord.BrushEnd(source, sel)
	return col, nil
}

// brush translates the brush flags into a selection.
func (o summaryOptions) brush() (model.ViewID, selection.Selection, error) {
	switch {
	case o.years != "":
		lo, hi, err := parseYears(o.years)
		if err != nil {
			return "", selection.Selection{}, err
		}
		keys := make([]model.Key, 0, hi-lo+1)
		for y := lo; y <= hi; y++ {
			keys = append(keys, dimension.YearKey(y))
		}
		return model.ViewTimeline, selection.NewTimeSeries(model.ViewTimeline).Translate(selection.KeySet{Keys: keys}), nil

	case o.rect != "":
		corners, err := parseRect(o.rect)
		if err != nil {
			return "", selection.Selection{}, err
		}
		return model.ViewMap, selection.NewGeo(model.ViewMap).Translate(corners), nil

	case o.source != "":
		view, ok := model.ParseViewID(o.source)
		if !ok {
			return "", selection.Selection{}, badFlag("source", o.source, "unknown panel")
		}
		d, ok := dimension.ForView(view)
		if !ok {
			return "", selection.Selection{}, badFlag("source", o.source, "use --rect for the map")
		}
		var tr selection.Translator = selection.NewBand(view, d)
		if view == model.ViewTimeline {
			tr = selection.NewTimeSeries(view)
		}
		return view, tr.Translate(selection.KeySet{Keys: dimension.ParseKeys(d, o.keys)}), nil
	}
	return "", selection.Selection{}, nil
}

func parseYears(s string) (int, int, error) {
	from, to, found := strings.Cut(s, "-")
	if !found {
		to = from
	}
	lo, err := strconv.Atoi(strings.TrimSpace(from))
	if err != nil {
		return 0, 0, badFlag("years", s, "want YEAR or YEAR-YEAR")
	}
	hi, err := strconv.Atoi(strings.TrimSpace(to))
	if err != nil {
		return 0, 0, badFlag("years", s, "want YEAR or YEAR-YEAR")
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo, hi, nil
}

func parseRect(s string) (selection.Corners, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return selection.Corners{}, badFlag("rect", s, "want lat,lng,lat,lng")
	}

	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return selection.Corners{}, badFlag("rect", s, "want lat,lng,lat,lng")
		}
		v[i] = f
	}
	return selection.Corners{
		A: selection.LatLng{Lat: v[0], Lng: v[1]},
		B: selection.LatLng{Lat: v[2], Lng: v[3]},
	}, nil
}

func badFlag(name, value, reason string) error {
	return common.NewUserError(fmt.Sprintf("Invalid --%s %q: %s", name, value, reason), common.ErrInvalidConfig)
}
