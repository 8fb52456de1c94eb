package domain

// FieldType tells the form layer how to read a raw field value.
type FieldType string

const (
	// FieldNumber is a non-negative whole number (ages, years).
	FieldNumber FieldType = "number"
	// FieldCurrency is a monetary amount.
	FieldCurrency FieldType = "currency"
	// FieldPercent is entered as 0-100 and divided by 100 before calculation.
	FieldPercent FieldType = "percent"
)

// Upper bounds for whole-number fields. Ages and horizons drive row loops,
// so they are capped well above any real plan.
const (
	MaxAge     = 150
	MaxYears   = 100
	MaxCalYear = 9999
)

// Field describes one form input of a calculator. Optional fields default
// to zero when omitted. Max bounds number fields.
type Field struct {
	ID       string    `json:"id" yaml:"id"`
	Label    string    `json:"label" yaml:"label"`
	Type     FieldType `json:"type" yaml:"type"`
	Unit     string    `json:"unit,omitempty" yaml:"unit,omitempty"`
	Optional bool      `json:"optional,omitempty" yaml:"optional,omitempty"`
	Max      float64   `json:"max,omitempty" yaml:"max,omitempty"`
}

// Calculator is a catalog entry. NeedsAge marks calculators that read the
// current age from the basic info profile instead of a form field.
type Calculator struct {
	ID          Kind    `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	Description string  `json:"description" yaml:"description"`
	NeedsAge    bool    `json:"needsAge" yaml:"needs_age"`
	Fields      []Field `json:"modalInputs" yaml:"fields"`
}

// ExpenseCategoryCount is the number of positional cash surplus categories.
const ExpenseCategoryCount = 15

// ExpenseCategories names the positional cash surplus entries. Only the first
// three are reported individually; the rest are summed as other expenses.
var ExpenseCategories = [ExpenseCategoryCount]Field{
	{ID: "insurance", Label: "Insurance Premium", Type: FieldCurrency, Unit: "₹/month", Optional: true},
	{ID: "savings", Label: "Savings", Type: FieldCurrency, Unit: "₹/month", Optional: true},
	{ID: "loanEmi", Label: "Loan EMI", Type: FieldCurrency, Unit: "₹/month", Optional: true},
	{ID: "rent", Label: "Rent", Type: FieldCurrency, Unit: "₹/month", Optional: true},
	{ID: "groceries", Label: "Groceries", Type: FieldCurrency, Unit: "₹/month", Optional: true},
	{ID: "utilityBills", Label: "Utility Bills", Type: FieldCurrency, Unit: "₹/month", Optional: true},
	{ID: "schoolFees", Label: "School Fees", Type: FieldCurrency, Unit: "₹/month", Optional: true},
	{ID: "maintenance", Label: "Maintenance", Type: FieldCurrency, Unit: "₹/month", Optional: true},
	{ID: "transport", Label: "Transport", Type: FieldCurrency, Unit: "₹/month", Optional: true},
	{ID: "medical", Label: "Medical", Type: FieldCurrency, Unit: "₹/month", Optional: true},
	{ID: "entertainment", Label: "Entertainment", Type: FieldCurrency, Unit: "₹/month", Optional: true},
	{ID: "clothing", Label: "Clothing", Type: FieldCurrency, Unit: "₹/month", Optional: true},
	{ID: "travel", Label: "Travel", Type: FieldCurrency, Unit: "₹/month", Optional: true},
	{ID: "donations", Label: "Donations", Type: FieldCurrency, Unit: "₹/month", Optional: true},
	{ID: "miscellaneous", Label: "Miscellaneous", Type: FieldCurrency, Unit: "₹/month", Optional: true},
}

var catalog = []Calculator{
	{
		ID:          KindLifeline,
		Name:        "Lifeline Calculator",
		Description: "Project monthly expenses to retirement and the corpus needed to fund them.",
		NeedsAge:    true,
		Fields: []Field{
			{ID: "retirementAge", Label: "Desired Retirement Age", Type: FieldNumber, Unit: "years", Max: MaxAge},
			{ID: "currentMonthlyExpense", Label: "Current Monthly Expense", Type: FieldCurrency, Unit: "₹"},
		},
	},
	{
		ID:          KindSalarySaving,
		Name:        "Salary Saving Calculator",
		Description: "Split a growing salary into needs, wants and savings and compound the savings.",
		NeedsAge:    true,
		Fields: []Field{
			{ID: "rate", Label: "Rate of Return", Type: FieldPercent, Unit: "%"},
			{ID: "nominal", Label: "Nominal Rate", Type: FieldPercent, Unit: "%"},
			{ID: "monthlySalary", Label: "Monthly Salary", Type: FieldCurrency, Unit: "₹"},
			{ID: "savingsRate", Label: "Savings Rate", Type: FieldPercent, Unit: "%"},
			{ID: "salaryGrowth", Label: "Salary Growth", Type: FieldPercent, Unit: "%"},
			{ID: "calculateUptoAge", Label: "Calculate Upto Age", Type: FieldNumber, Unit: "years", Max: MaxAge},
		},
	},
	{
		ID:          KindSWP,
		Name:        "SWP Calculator",
		Description: "Track a corpus under a fixed monthly systematic withdrawal.",
		Fields: []Field{
			{ID: "investmentAmount", Label: "Investment Amount", Type: FieldCurrency, Unit: "₹"},
			{ID: "returnRate", Label: "Return Rate", Type: FieldPercent, Unit: "%"},
			{ID: "withdrawalAmount", Label: "Monthly Withdrawal", Type: FieldCurrency, Unit: "₹"},
			{ID: "expectedRate", Label: "Expected Rate", Type: FieldPercent, Unit: "%"},
		},
	},
	{
		ID:          KindCashSurplus,
		Name:        "Cash Surplus Tracker",
		Description: "Compare monthly cash in with categorised expenses.",
		Fields: append([]Field{
			{ID: "cashIn", Label: "Cash In", Type: FieldCurrency, Unit: "₹/month"},
		}, ExpenseCategories[:]...),
	},
	{
		ID:          KindProjection70,
		Name:        "70-Year Projection",
		Description: "Project lumpsum and SIP wealth accumulation over 70 years.",
		Fields: []Field{
			{ID: "lumpsum", Label: "Lumpsum Investment", Type: FieldCurrency, Unit: "₹"},
			{ID: "ror", Label: "Rate of Return", Type: FieldPercent, Unit: "%"},
			{ID: "nominalRate", Label: "Nominal Rate", Type: FieldPercent, Unit: "%"},
			{ID: "monthlyInvestment", Label: "Monthly Investment", Type: FieldCurrency, Unit: "₹"},
			{ID: "startYear", Label: "Start Year", Type: FieldNumber, Max: MaxCalYear},
			{ID: "endYear", Label: "End Year", Type: FieldNumber, Max: MaxCalYear},
		},
	},
	{
		ID:          KindCorpusNeeded,
		Name:        "Corpus Needed Calculator",
		Description: "Measure the gap to a target wealth and ways to bridge it.",
		Fields: []Field{
			{ID: "currentWealth", Label: "Current Wealth", Type: FieldCurrency, Unit: "₹"},
			{ID: "ror", Label: "Rate of Return", Type: FieldPercent, Unit: "%"},
			{ID: "nominalRate", Label: "Nominal Rate", Type: FieldPercent, Unit: "%"},
			{ID: "activeSIP", Label: "Active Monthly SIP", Type: FieldCurrency, Unit: "₹"},
			{ID: "years", Label: "Years", Type: FieldNumber, Unit: "years", Max: MaxYears},
			{ID: "targetWealth", Label: "Target Wealth", Type: FieldCurrency, Unit: "₹"},
		},
	},
}

// Catalog returns the calculator catalog in display order. The returned
// slice is a copy.
func Catalog() []Calculator {
	out := make([]Calculator, len(catalog))
	copy(out, catalog)
	return out
}

// Field returns the field with the given id.
func (c Calculator) Field(id string) (Field, bool) {
	for _, f := range c.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// LookupCalculator returns the catalog entry for kind.
func LookupCalculator(kind Kind) (Calculator, bool) {
	for _, c := range catalog {
		if c.ID == kind {
			return c, true
		}
	}
	return Calculator{}, false
}
