package domain

// CalculationRequest is one calculator invocation as entered in a form:
// raw field values keyed by catalog field id, percentages as 0-100.
type CalculationRequest struct {
	Name       string             `json:"name,omitempty" yaml:"name,omitempty"`
	Calculator string             `json:"calculator" yaml:"calculator"`
	Fields     map[string]float64 `json:"fields" yaml:"fields"`
}

// Worksheet is a saved planning session: the holder's profile and the
// calculations to run against it.
type Worksheet struct {
	Profile      BasicInfo            `json:"profile" yaml:"profile"`
	Calculations []CalculationRequest `json:"calculations" yaml:"calculations"`
}
