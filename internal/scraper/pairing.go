package scraper

import "fmt"

type PairStatus int

const (
	Paired PairStatus = iota
	Truncated
)

func (s PairStatus) String() string {
	if s == Truncated {
		return "truncated"
	}
	return "paired"
}

// PairResult - итог склейки списков имён и зарплат за один сезон.
// Для Truncated: Expected - длина длинного списка, Actual - число строк.
type PairResult struct {
	Rows     []Row
	Status   PairStatus
	Expected int
	Actual   int
}

// Pair drops the header entry of both lists and zips them positionally,
// stopping at the shorter list.
func Pair(names, salaries []string, season int) PairResult {
	names = dropHeader(names)
	salaries = dropHeader(salaries)

	n := min(len(names), len(salaries))
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		rows = append(rows, Row{Name: names[i], Salary: salaries[i], Season: season})
	}

	res := PairResult{Rows: rows, Status: Paired, Expected: n, Actual: n}
	if len(names) != len(salaries) {
		res.Status = Truncated
		res.Expected = max(len(names), len(salaries))
	}
	return res
}

func dropHeader(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return values[1:]
}

// TruncatedError is returned in strict mode when a season's lists disagree.
type TruncatedError struct {
	Season   int
	Expected int
	Actual   int
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("season %d: name and salary lists differ (expected %d rows, paired %d)", e.Season, e.Expected, e.Actual)
}
