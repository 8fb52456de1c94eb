package output

import (
	"fmt"
	"strings"

	"github.com/mutualfundportal/portal/internal/domain"
)

// Render formats a report with the named formatter.
func Render(report *domain.Report, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	return f.Format(report)
}

// GenerateReport writes the report in the named format to a timestamped
// file in dir and returns the file names. "all" writes the text, CSV and
// HTML reports together.
func GenerateReport(report *domain.Report, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range []string{"console", "csv", "html"} {
			file, err := WriteFormatted(GetFormatterByName(name), report, dir, Extension(name))
			if err != nil {
				return files, err
			}
			files = append(files, file)
		}
		return files, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	file, err := WriteFormatted(f, report, dir, Extension(format))
	if err != nil {
		return nil, err
	}
	return []string{file}, nil
}

// unsupported enriches the error with available formatters and aliases.
func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
