package mock

import "github.com/fwojciec/qualoffer"

var _ qualoffer.Row = Row(nil)

// Row is an in-memory qualoffer.Row keyed by selector.
// Selectors missing from the map are reported as absent.
type Row map[string]string

func (r Row) Field(selector string) *string {
	v, ok := r[selector]
	if !ok {
		return nil
	}
	return &v
}

// SalaryRow builds a Row with all four salary columns set.
func SalaryRow(name, salary, level, year string) Row {
	return Row{
		qualoffer.ColumnName:   name,
		qualoffer.ColumnSalary: salary,
		qualoffer.ColumnLevel:  level,
		qualoffer.ColumnYear:   year,
	}
}
