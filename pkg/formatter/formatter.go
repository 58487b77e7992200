package formatter

import (
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/adimStrong/Juan365-Socmed-Mainpage/pkg/output"
)

// Bold styles table section headings.
var Bold = color.New(color.Bold)

// Number formats a metric count with comma grouping
func Number(n int64) string {
	return humanize.Comma(n)
}

// NumberF formats a fractional metric rounded to the nearest whole count
func NumberF(f float64) string {
	return humanize.Comma(int64(f + 0.5))
}

// PrintSuccess prints a success message
func PrintSuccess(format string, args ...interface{}) {
	output.PrintSuccess(format, args...)
}

// PrintError prints an error message
func PrintError(format string, args ...interface{}) {
	output.PrintError(format, args...)
}

// PrintInfo prints an info message
func PrintInfo(format string, args ...interface{}) {
	output.PrintInfo(format, args...)
}

// PrintWarning prints a warning message
func PrintWarning(format string, args ...interface{}) {
	output.PrintWarning(format, args...)
}

// PrintTable prints data as a table using the centralized output service
func PrintTable(headers []string, rows [][]string) {
	output.PrintList("", rows, headers)
}

// PrintObject prints an object based on output format
func PrintObject(data interface{}, name string) error {
	return output.Print(name, data)
}

// PrintKeyValue prints key-value pairs using the centralized output service
func PrintKeyValue(data map[string]interface{}) error {
	return output.PrintRecord("", data)
}
