package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/op/go-logging"
	"github.com/patricioibar/olist-dashboard/dataset"
)

var log = logging.MustGetLogger("log")

var (
	ErrMissingFile   = errors.New("dataset file not found")
	ErrMissingColumn = errors.New("required column not found")
)

const byteOrderMark = "\ufeff"

// readTable streams every record of table, passing only the configured
// columns (in configured order) to addRow.
func readTable(dir string, table TableConfig, addRow func(row []string) error) error {
	path := filepath.Join(dir, table.File)
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return fmt.Errorf("could not open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("could not read header of %s: %w", table.File, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], byteOrderMark)
	}

	columnsIdxs, err := findColumnIdxs(table, header)
	if err != nil {
		return err
	}

	row := make([]string, len(columnsIdxs))
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return fmt.Errorf("%s line %d: %w", table.File, line, err)
		}

		for i, idx := range columnsIdxs {
			if idx < len(record) {
				row[i] = record[idx]
			} else {
				row[i] = ""
			}
		}
		if err := addRow(row); err != nil {
			return fmt.Errorf("%s line %d: %w", table.File, line, err)
		}
	}

	log.Debugf("Read %d rows from %s", line-1, table.File)
	return nil
}

func findColumnIdxs(table TableConfig, header []string) ([]int, error) {
	columnsIdxs := []int{}
	for _, col := range table.Columns {
		found := false
		for idx, headerCol := range header {
			if col == strings.TrimSpace(headerCol) {
				columnsIdxs = append(columnsIdxs, idx)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %s in %s", ErrMissingColumn, col, table.File)
		}
	}
	return columnsIdxs, nil
}

func readRecords[T any](dir string, table TableConfig, parse func([]string) (T, error)) ([]T, error) {
	records := make([]T, 0)
	err := readTable(dir, table, func(row []string) error {
		record, err := parse(row)
		if err != nil {
			return err
		}
		records = append(records, record)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// LoadDataset reads the seven tables under dir. Any missing file, missing
// column or malformed value aborts the whole load.
func LoadDataset(dir string) (*dataset.Snapshot, error) {
	orders, err := readRecords(dir, ordersTable, parseOrder)
	if err != nil {
		return nil, err
	}
	items, err := readRecords(dir, itemsTable, parseItem)
	if err != nil {
		return nil, err
	}
	products, err := readRecords(dir, productsTable, parseProduct)
	if err != nil {
		return nil, err
	}
	translations, err := readRecords(dir, translationsTable, parseTranslation)
	if err != nil {
		return nil, err
	}
	payments, err := readRecords(dir, paymentsTable, parsePayment)
	if err != nil {
		return nil, err
	}
	customers, err := readRecords(dir, customersTable, parseCustomer)
	if err != nil {
		return nil, err
	}
	reviews, err := readRecords(dir, reviewsTable, parseReview)
	if err != nil {
		return nil, err
	}

	snapshot, err := dataset.NewSnapshot(orders, items, products, translations, payments, customers, reviews)
	if err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}

	log.Infof(
		"Loaded dataset from %s: %d orders, %d items, %d products, %d payments, %d customers, %d reviews",
		dir, len(orders), len(items), len(products), len(payments), len(customers), len(reviews),
	)
	return snapshot, nil
}
