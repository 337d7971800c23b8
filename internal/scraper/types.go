package scraper

// Row - одна пара игрок/зарплата за сезон
type Row struct {
	Name   string
	Salary string // сырой текст, без разбора чисел
	Season int
}

// Table накапливает строки всех сезонов; строки только добавляются
type Table struct {
	Rows []Row
}

func NewTable() *Table {
	return &Table{}
}

func (t *Table) Append(rows ...Row) {
	t.Rows = append(t.Rows, rows...)
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// SeasonCounts returns the number of rows per season in first-seen order.
func (t *Table) SeasonCounts() []SeasonCount {
	var counts []SeasonCount
	for _, row := range t.Rows {
		if n := len(counts); n > 0 && counts[n-1].Season == row.Season {
			counts[n-1].Rows++
			continue
		}
		counts = append(counts, SeasonCount{Season: row.Season, Rows: 1})
	}
	return counts
}

type SeasonCount struct {
	Season int
	Rows   int
}

// Site - раскладка одного сайта: базовый URL и фрагменты локаторов
type Site struct {
	Name           string
	Website        string
	NameFragment   string
	SalaryFragment string
}
