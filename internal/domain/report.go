package domain

// ReportEntry is one executed calculation within a report.
type ReportEntry struct {
	Name       string `json:"name" yaml:"name"`
	Calculator Kind   `json:"calculator" yaml:"calculator"`
	Title      string `json:"title" yaml:"title"`
	Result     Result `json:"result" yaml:"result"`
}

// Report groups the results of a worksheet run for output formatting.
type Report struct {
	Profile BasicInfo     `json:"profile" yaml:"profile"`
	Entries []ReportEntry `json:"entries" yaml:"entries"`
}
