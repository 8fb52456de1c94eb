package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"time"

	"github.com/mutualfundportal/portal/internal/domain"
	"github.com/mutualfundportal/portal/pkg/dateutil"
	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingField is returned when a required form field is absent.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidField is returned for out-of-range or unknown form fields.
	ErrInvalidField = errors.New("invalid field")
)

// InputParser handles parsing of worksheet files and form values
type InputParser struct {
	// Now supplies the date used to derive ages from a date of birth.
	Now func() time.Time
}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{Now: time.Now}
}

func (ip *InputParser) now() time.Time {
	if ip.Now == nil {
		return time.Now()
	}
	return ip.Now()
}

// LoadFromFile loads a worksheet from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Worksheet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates worksheet bytes.
func (ip *InputParser) Parse(data []byte) (*domain.Worksheet, error) {
	var ws domain.Worksheet
	if err := yaml.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&ws); err != nil {
		return nil, fmt.Errorf("worksheet validation failed: %w", err)
	}

	return &ws, nil
}

// ValidateConfiguration validates the loaded worksheet. Field values are
// checked again when each input is built.
func (ip *InputParser) ValidateConfiguration(ws *domain.Worksheet) error {
	if _, err := ws.Profile.CurrentAge(ip.now()); err != nil {
		return fmt.Errorf("profile validation failed: %w", err)
	}
	if ws.Profile.Age < 0 {
		return fmt.Errorf("profile age cannot be negative")
	}
	if ws.Profile.Dependents < 0 {
		return fmt.Errorf("profile dependents cannot be negative")
	}

	if len(ws.Calculations) == 0 {
		return fmt.Errorf("no calculations provided")
	}

	for i, req := range ws.Calculations {
		if _, err := ip.BuildInput(req, ws.Profile); err != nil {
			return fmt.Errorf("calculation %d (%s) validation failed: %w", i, req.Name, err)
		}
	}

	return nil
}

// BuildInput applies the form rules to a request and returns the typed
// calculator input: required fields must be present, number fields must be
// whole numbers between 0 and their Max, percent fields may not exceed 100
// and are divided by 100. Calculators that need the current age read it from
// the profile.
func (ip *InputParser) BuildInput(req domain.CalculationRequest, profile domain.BasicInfo) (domain.Input, error) {
	kind, err := domain.ParseKind(req.Calculator)
	if err != nil {
		return nil, err
	}
	calc, _ := domain.LookupCalculator(kind)

	form, err := readForm(calc, req.Fields)
	if err != nil {
		return nil, err
	}

	currentAge := 0
	if calc.NeedsAge {
		if currentAge, err = profile.CurrentAge(ip.now()); err != nil {
			return nil, err
		}
	}

	switch kind {
	case domain.KindLifeline:
		return domain.LifelineInput{
			CurrentAge:        currentAge,
			RetirementAge:     form.int("retirementAge"),
			MonthlyExpenseNow: form["currentMonthlyExpense"],
		}, nil
	case domain.KindSalarySaving:
		return domain.SalarySavingInput{
			Rate:             form["rate"],
			Nominal:          form["nominal"],
			MonthlySalary:    form["monthlySalary"],
			SavingsRate:      form["savingsRate"],
			SalaryGrowth:     form["salaryGrowth"],
			CalculateUptoAge: form.int("calculateUptoAge"),
			CurrentAge:       currentAge,
		}, nil
	case domain.KindSWP:
		return domain.SWPInput{
			InvestmentAmount: form["investmentAmount"],
			ReturnRate:       form["returnRate"],
			Withdrawal:       form["withdrawalAmount"],
			ExpectedRate:     form["expectedRate"],
		}, nil
	case domain.KindCashSurplus:
		expenses := make([]float64, domain.ExpenseCategoryCount)
		for i, f := range domain.ExpenseCategories {
			expenses[i] = form[f.ID]
		}
		return domain.CashSurplusInput{CashIn: form["cashIn"], ExpensesByCategory: expenses}, nil
	case domain.KindProjection70:
		return domain.Projection70Input{
			LumpsumInvestment: form["lumpsum"],
			ROR:               form["ror"],
			NominalRate:       form["nominalRate"],
			MonthlyInvestment: form["monthlyInvestment"],
			StartYear:         form.int("startYear"),
			EndYear:           form.int("endYear"),
		}, nil
	case domain.KindCorpusNeeded:
		return domain.CorpusNeededInput{
			CurrentWealth: form["currentWealth"],
			ROR:           form["ror"],
			NominalRate:   form["nominalRate"],
			ActiveSIP:     form["activeSIP"],
			Years:         form.int("years"),
			TargetWealth:  form["targetWealth"],
		}, nil
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnknownCalculator, kind)
}

// maxWholeNumber bounds number fields that carry no Max of their own.
const maxWholeNumber = 1e6

// formValues holds field values after percent conversion.
type formValues map[string]float64

func (f formValues) int(id string) int { return int(f[id]) }

func readForm(calc domain.Calculator, raw map[string]float64) (formValues, error) {
	var unknown []string
	for id := range raw {
		if _, ok := calc.Field(id); !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("%w: %s has no field %q", ErrInvalidField, calc.ID, unknown[0])
	}

	out := make(formValues, len(calc.Fields))
	for _, field := range calc.Fields {
		v, ok := raw[field.ID]
		if !ok {
			if field.Optional {
				out[field.ID] = 0
				continue
			}
			return nil, fmt.Errorf("%w: %s is required", ErrMissingField, field.Label)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %s must be a finite number", ErrInvalidField, field.Label)
		}
		switch field.Type {
		case domain.FieldNumber:
			if v < 0 {
				return nil, fmt.Errorf("%w: %s must be at least 0", ErrInvalidField, field.Label)
			}
			if v != math.Trunc(v) {
				return nil, fmt.Errorf("%w: %s must be a whole number", ErrInvalidField, field.Label)
			}
			limit := field.Max
			if limit == 0 {
				limit = maxWholeNumber
			}
			if v > limit {
				return nil, fmt.Errorf("%w: %s must be at most %.0f", ErrInvalidField, field.Label, limit)
			}
		case domain.FieldPercent:
			if v > 100 {
				return nil, fmt.Errorf("%w: %s must be at most 100", ErrInvalidField, field.Label)
			}
			v = v / 100
		}
		out[field.ID] = v
	}
	return out, nil
}

// CreateExampleWorksheet creates an example worksheet exercising every calculator
func (ip *InputParser) CreateExampleWorksheet() *domain.Worksheet {
	dob := dateutil.BirthDateForAge(32, ip.now())

	return &domain.Worksheet{
		Profile: domain.BasicInfo{
			Name:          "Asha Verma",
			Occupation:    "Software Engineer",
			DOB:           dob.Format(domain.DOBLayout),
			Gender:        "Female",
			MaritalStatus: "Married",
			Dependents:    2,
		},
		Calculations: []domain.CalculationRequest{
			{
				Name:       "Retirement lifeline",
				Calculator: string(domain.KindLifeline),
				Fields: map[string]float64{
					"retirementAge":         62,
					"currentMonthlyExpense": 39500,
				},
			},
			{
				Name:       "Salary plan",
				Calculator: string(domain.KindSalarySaving),
				Fields: map[string]float64{
					"rate":             8,
					"nominal":          6,
					"monthlySalary":    85000,
					"savingsRate":      20,
					"salaryGrowth":     7,
					"calculateUptoAge": 40,
				},
			},
			{
				Name:       "Withdrawal plan",
				Calculator: string(domain.KindSWP),
				Fields: map[string]float64{
					"investmentAmount": 5000000,
					"returnRate":       9,
					"withdrawalAmount": 35000,
					"expectedRate":     8,
				},
			},
			{
				Name:       "Monthly cash flow",
				Calculator: string(domain.KindCashSurplus),
				Fields: map[string]float64{
					"cashIn":        150000,
					"insurance":     4500,
					"savings":       25000,
					"loanEmi":       32000,
					"rent":          28000,
					"groceries":     12000,
					"utilityBills":  3500,
					"schoolFees":    9000,
					"transport":     6000,
					"medical":       2500,
					"entertainment": 4000,
				},
			},
			{
				Name:       "Long-term projection",
				Calculator: string(domain.KindProjection70),
				Fields: map[string]float64{
					"lumpsum":           500000,
					"ror":               11,
					"nominalRate":       6,
					"monthlyInvestment": 20000,
					"startYear":         float64(ip.now().Year()),
					"endYear":           float64(ip.now().Year() + 70),
				},
			},
			{
				Name:       "Goal gap",
				Calculator: string(domain.KindCorpusNeeded),
				Fields: map[string]float64{
					"currentWealth": 2500000,
					"ror":           10,
					"nominalRate":   6,
					"activeSIP":     25000,
					"years":         20,
					"targetWealth":  100000000,
				},
			},
		},
	}
}
