package integration

import (
	"testing"

	"github.com/mutualfundportal/portal/internal/calculation"
	"github.com/mutualfundportal/portal/internal/config"
	"github.com/mutualfundportal/portal/internal/domain"
	"github.com/mutualfundportal/portal/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const worksheetPath = "../testdata/example_worksheet.yaml"

func runExample(t *testing.T) *domain.Report {
	t.Helper()
	parser := config.NewInputParser()
	ws, err := parser.LoadFromFile(worksheetPath)
	require.NoError(t, err)

	v, err := validation.NewValidator(validation.DefaultRules()...)
	require.NoError(t, err)

	report, err := calculation.NewEngine().RunWorksheet(ws, parser, v)
	require.NoError(t, err)
	return report
}

func TestEndToEndCalculation(t *testing.T) {
	report := runExample(t)
	require.Len(t, report.Entries, 6)
	assert.Equal(t, "Asha Verma", report.Profile.Name)

	for i, e := range report.Entries {
		assert.Equal(t, domain.AllKinds[i], e.Calculator)
	}

	lifeline := report.Entries[0].Result
	card, ok := lifeline.Card("Desired Age of Retirement")
	require.True(t, ok)
	assert.Equal(t, "62", card.Value.String())
	assert.Equal(t, []string{"32", "42", "52", "62"}, columnStrings(lifeline.Tables[0], "Age"))
	assert.Equal(t, "39500.00", lifeline.Tables[0].Rows[0][1].Value.String())

	cash := report.Entries[3].Result
	surplus, ok := cash.Card("Cash Surplus (₹)")
	require.True(t, ok)
	assert.Equal(t, "23000.00", surplus.Value.String())
	assert.Equal(t, "Remarks: "+calculation.RemarkPositive, cash.Notes[0])

	swp := report.Entries[2].Result
	require.Len(t, swp.Tables, 2)
	assert.Len(t, swp.Tables[0].Rows, len(calculation.SWPHorizons))

	projection := report.Entries[4].Result
	years := columnStrings(projection.Tables[0], "Year")
	require.NotEmpty(t, years)
	assert.Equal(t, "2025", years[0])
	assert.Equal(t, "2095", years[len(years)-1])
}

func TestWorksheetValidation(t *testing.T) {
	parser := config.NewInputParser()

	ws, err := parser.LoadFromFile(worksheetPath)
	require.NoError(t, err)
	assert.NoError(t, parser.ValidateConfiguration(ws))

	ws.Calculations = nil
	assert.Error(t, parser.ValidateConfiguration(ws))

	_, err = parser.LoadFromFile("../testdata/missing.yaml")
	assert.Error(t, err)
}

func TestDeterministicRuns(t *testing.T) {
	first := runExample(t)
	second := runExample(t)
	assert.Equal(t, first, second)
}

func columnStrings(t domain.Table, column string) []string {
	var out []string
	for _, v := range t.Column(column) {
		out = append(out, v.String())
	}
	return out
}
