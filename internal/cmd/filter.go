package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/analytics"
	cerrors "github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/errors"
)

var (
	filterPeriod string
	filterFrom   string
	filterTo     string
	filterType   string
)

// addFilterFlags registers the shared date/type filter flags.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&filterPeriod, "period", "all", "Time period: all, today, yesterday, 7d, 14d, 30d, 60d, 90d")
	cmd.Flags().StringVar(&filterFrom, "from", "", "Custom start date (YYYY-MM-DD), overrides --period")
	cmd.Flags().StringVar(&filterTo, "to", "", "Custom end date (YYYY-MM-DD), overrides --period")
	cmd.Flags().StringVar(&filterType, "type", "", "Post type filter (default: all types)")
}

// buildFilter resolves the filter flags into an analytics filter.
func buildFilter() (analytics.Filter, error) {
	if filterFrom != "" || filterTo != "" {
		f := analytics.Filter{PostType: filterType}
		var err error
		if filterFrom != "" {
			f.From, err = time.Parse("2006-01-02", filterFrom)
			if err != nil {
				return f, cerrors.ValidationError("from", "expected YYYY-MM-DD")
			}
		}
		if filterTo != "" {
			f.To, err = time.Parse("2006-01-02", filterTo)
			if err != nil {
				return f, cerrors.ValidationError("to", "expected YYYY-MM-DD")
			}
		}
		return f, nil
	}

	f, err := analytics.PresetFilter(filterPeriod, time.Now())
	if err != nil {
		return f, cerrors.ValidationError("period", err.Error())
	}
	f.PostType = filterType
	return f, nil
}
