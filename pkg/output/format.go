// Package output provides utilities for formatting and displaying comparison results.
package output

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/iwvelando/mortgage-compare/internal/compare"
	"github.com/iwvelando/mortgage-compare/pkg/datetime"
	"github.com/iwvelando/mortgage-compare/pkg/format"
	"github.com/iwvelando/mortgage-compare/pkg/money"
)

// PrettyFormat outputs a human-readable rather than machine-readable report:
// one summary block per scenario, then the comparison table when there is
// more than one scenario to relate.
func PrettyFormat(results []compare.Result, comparison compare.Comparison) {
	p := message.NewPrinter(language.English)
	for _, result := range results {
		fmt.Printf("--- Results for scenario %s ---\n", result.Name)
		_, _ = p.Printf("Scheduled payment:  $%.2f\n", money.DisplayFloat(result.Summary.Payment))
		_, _ = p.Printf("Periods paid:       %d of %d\n", result.Summary.PeriodsPaid, result.TermMonths)
		if result.PayoffDate != "" {
			fmt.Printf("Payoff date:        %s\n", result.PayoffDate)
		}
		fmt.Printf("Overpayment:        %s\n", result.Strategy)
		_, _ = p.Printf("Total interest:     $%.2f\n", money.DisplayFloat(result.Summary.TotalInterest))
		_, _ = p.Printf("Total principal:    $%.2f\n", money.DisplayFloat(result.Summary.TotalPrincipal))
		_, _ = p.Printf("Total overpayment:  $%.2f\n", money.DisplayFloat(result.Summary.TotalOverpayment))
		_, _ = p.Printf("Points cost:        $%.2f\n", money.DisplayFloat(result.Summary.PointsCost))
		_, _ = p.Printf("Upfront costs:      $%.2f\n", money.DisplayFloat(result.Summary.UpfrontCosts))
		_, _ = p.Printf("Down payment:       $%.2f\n", money.DisplayFloat(result.Summary.DownPayment))
		_, _ = p.Printf("Total cost:         $%.2f\n", money.DisplayFloat(result.Summary.TotalCost))
		fmt.Printf("\n")
	}

	if len(results) < 2 {
		return
	}

	fmt.Printf("--- Comparison against %s ---\n", comparison.Baseline)
	fmt.Printf("%-24s | %-16s | %-16s | %s\n", "Scenario", "Interest Delta", "Total Cost Delta", "Periods")
	fmt.Printf("%-24s | %-16s | %-16s | %s\n", "________", "______________", "________________", "_______")
	for _, delta := range comparison.Deltas {
		fmt.Printf("%-24s | %-16s | %-16s | %+d\n",
			delta.Name,
			format.SignedCurrency(delta.TotalInterest),
			format.SignedCurrency(delta.TotalCost),
			delta.PeriodsPaid,
		)
	}
}

// PrettySchedule outputs the period-by-period table for one scenario. The
// date column is derived from startMonth and left blank when no start month
// is configured.
func PrettySchedule(result compare.Result, startMonth string) {
	fmt.Printf("--- Amortization schedule for scenario %s ---\n", result.Name)
	fmt.Printf("Period | Date    | %-12s | %-12s | %-12s | %-12s | %s\n",
		"Payment", "Interest", "Principal", "Extra", "Balance")
	fmt.Printf("______ | ____    | %-12s | %-12s | %-12s | %-12s | %s\n",
		"_______", "________", "_________", "_____", "_______")
	for _, record := range result.Schedule {
		fmt.Printf("%6d | %-7s | %-12s | %-12s | %-12s | %-12s | %s\n",
			record.Period,
			periodDateOrBlank(startMonth, record.Period),
			format.Currency(record.Payment),
			format.Currency(record.Interest),
			format.Currency(record.Principal),
			format.Currency(record.Extra),
			format.Currency(record.RemainingBalance),
		)
	}
	fmt.Printf("\n")
}

// CsvFormat outputs the scenario summaries in comma-separated value format.
func CsvFormat(results []compare.Result) {
	fmt.Printf(`"scenario","strategy","payment","periodsPaid","payoffDate","totalInterest","totalPrincipal","totalOverpayment","pointsCost","upfrontCosts","downPayment","totalCost"`)
	fmt.Printf("\n")
	for _, result := range results {
		fmt.Printf(`"%s","%s","%s","%d","%s","%s","%s","%s","%s","%s","%s","%s"`,
			result.Name,
			result.Strategy,
			money.StringCents(result.Summary.Payment),
			result.Summary.PeriodsPaid,
			result.PayoffDate,
			money.StringCents(result.Summary.TotalInterest),
			money.StringCents(result.Summary.TotalPrincipal),
			money.StringCents(result.Summary.TotalOverpayment),
			money.StringCents(result.Summary.PointsCost),
			money.StringCents(result.Summary.UpfrontCosts),
			money.StringCents(result.Summary.DownPayment),
			money.StringCents(result.Summary.TotalCost),
		)
		fmt.Printf("\n")
	}
}

// CsvSchedule outputs one scenario's full schedule in comma-separated value
// format.
func CsvSchedule(result compare.Result, startMonth string) {
	fmt.Printf(`"period","date","payment","interest","principal","extra","remainingBalance"`)
	fmt.Printf("\n")
	for _, record := range result.Schedule {
		fmt.Printf(`"%d","%s","%s","%s","%s","%s","%s"`,
			record.Period,
			periodDateOrBlank(startMonth, record.Period),
			money.StringCents(record.Payment),
			money.StringCents(record.Interest),
			money.StringCents(record.Principal),
			money.StringCents(record.Extra),
			money.StringCents(record.RemainingBalance),
		)
		fmt.Printf("\n")
	}
}

func periodDateOrBlank(startMonth string, period int) string {
	if startMonth == "" {
		return ""
	}
	date, err := datetime.PeriodDate(startMonth, period)
	if err != nil {
		return ""
	}
	return date
}
