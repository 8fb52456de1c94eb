package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/mutualfundportal/portal/internal/calculation"
	"github.com/mutualfundportal/portal/internal/config"
	"github.com/mutualfundportal/portal/internal/domain"
	"github.com/shopspring/decimal"
)

// debug_tables prints every table of a worksheet run as CSV, pairing each
// displayed number with the raw float64 it was rounded from. Useful when a
// displayed figure looks off by a cent.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_tables <worksheet-file> [calculator]")
		return
	}
	p := config.NewInputParser()
	ws, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	res, err := calculation.NewEngine().RunWorksheet(ws, p, nil)
	if err != nil {
		panic(err)
	}
	if len(res.Entries) < 1 {
		fmt.Println("no calculations")
		return
	}

	for _, e := range res.Entries {
		if len(os.Args) > 2 && string(e.Calculator) != os.Args[2] {
			continue
		}
		for ti, t := range e.Result.Tables {
			fmt.Printf("# %s table %d\n", e.Calculator, ti+1)

			header := "Index"
			for _, h := range t.Headers {
				header += fmt.Sprintf(",%s,%s_raw", h, h)
			}
			fmt.Println(header)

			for idx, row := range t.Rows {
				line := fmt.Sprintf("%d", idx)
				for _, h := range t.Headers {
					v, _ := row.Get(h)
					line += fmt.Sprintf(",%s,%s", v.String(), raw(v))
				}
				fmt.Println(line)
			}
			fmt.Println()
		}
		for _, c := range e.Result.Cards {
			fmt.Printf("card %s: %s (%s)\n", strings.TrimSpace(c.Title), c.Value.String(), raw(c.Value))
		}
		fmt.Println()
	}
}

func raw(v domain.Value) string {
	f := v.Float()
	if !v.IsNumeric() {
		return ""
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Sprint(f)
	}
	return decimal.NewFromFloat(f).String()
}
