package output

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MegandM/web-scrape/internal/scraper"
)

var header = []string{"", "PlayerName", "PlayerSalary", "Season"}

// Path строит путь вида <website>/<first_year>-<last_year>/results.csv
func Path(website string, firstYear, lastYear int) string {
	return filepath.Join(Dir(website, firstYear, lastYear), "results.csv")
}

// Dir is the run directory <website>/<first>-<last>.
func Dir(website string, firstYear, lastYear int) string {
	return filepath.Join(website, fmt.Sprintf("%d-%d", firstYear, lastYear))
}

// WriteCSV writes the table to path, creating parent directories.
// The leading index column restarts at 0 for every season.
func WriteCSV(path string, table *scraper.Table) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		err = errors.Join(err, file.Close())
	}()

	return Write(file, table)
}

func Write(w io.Writer, table *scraper.Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	index := 0
	for i, row := range table.Rows {
		if i > 0 && table.Rows[i-1].Season != row.Season {
			index = 0
		}
		record := []string{strconv.Itoa(index), row.Name, row.Salary, strconv.Itoa(row.Season)}
		if err := cw.Write(record); err != nil {
			return err
		}
		index++
	}

	cw.Flush()
	return cw.Error()
}

// ReadCSV читает файл, записанный WriteCSV
func ReadCSV(path string) (*scraper.Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = file.Close() }()

	return Read(file)
}

func Read(r io.Reader) (*scraper.Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("missing csv header")
	}

	table := scraper.NewTable()
	for line, record := range records[1:] {
		season, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid season %q: %w", line+2, record[3], err)
		}
		table.Append(scraper.Row{Name: record[1], Salary: record[2], Season: season})
	}
	return table, nil
}
