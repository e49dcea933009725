// Package catalog reads the cocktail dataset into recipes.
//
// The dataset is a CSV file with a header row. The first four columns are, in
// order, title, glass, garnish and recipe text; a later column holds the
// ingredient list as a literal sequence of [amount, name] pairs.
package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matsen/mixology/internal/recipe"
)

// Fixed column positions.
const (
	ColumnTitle = iota
	ColumnGlass
	ColumnGarnish
	ColumnRecipe
)

// DefaultIngredientsColumn is the ingredient column in the reference dataset.
const DefaultIngredientsColumn = 5

// Errors returned while reading a dataset.
var (
	ErrEmptyDataset   = errors.New("dataset contains no cocktails")
	ErrMalformedRow   = errors.New("malformed row")
	ErrDuplicateTitle = errors.New("duplicate cocktail title")
	ErrMissingHeader  = errors.New("dataset has no header row")
)

// Schema locates columns in a dataset.
type Schema struct {
	IngredientsColumn int
}

// DefaultSchema returns the schema of the reference dataset.
func DefaultSchema() Schema {
	return Schema{IngredientsColumn: DefaultIngredientsColumn}
}

// minColumns is the number of columns a row needs under this schema.
func (s Schema) minColumns() int {
	n := ColumnRecipe + 1
	if s.IngredientsColumn+1 > n {
		n = s.IngredientsColumn + 1
	}
	return n
}

// Row is one decoded dataset row.
type Row struct {
	Line         int
	Title        string
	Glass        string
	Garnish      string
	Instructions string
	Ingredients  []recipe.Pair
}

// ToRecipe converts the row into a Recipe.
func (r Row) ToRecipe() *recipe.Recipe {
	return recipe.New(r.Title, r.Glass, r.Garnish, r.Instructions, r.Ingredients)
}

// RowError describes a row that was skipped.
type RowError struct {
	Line  int
	Title string
	Err   error
}

func (e *RowError) Error() string {
	if e.Title != "" {
		return fmt.Sprintf("line %d (%s): %v", e.Line, e.Title, e.Err)
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// ReadCSV reads recipes from a dataset. Rows that cannot be decoded, or whose
// title repeats an earlier row, are skipped and reported as *RowError. A
// dataset that cannot be read at all, or that yields no recipes, returns an
// error (ErrEmptyDataset for the latter).
func ReadCSV(r io.Reader, schema Schema) ([]*recipe.Recipe, []error, error) {
	rows, rowErrs, err := ReadRows(r, schema)
	if err != nil {
		return nil, rowErrs, err
	}

	var recipes []*recipe.Recipe
	seen := make(map[string]int, len(rows))
	for _, row := range rows {
		if first, dup := seen[row.Title]; dup {
			rowErrs = append(rowErrs, &RowError{
				Line:  row.Line,
				Title: row.Title,
				Err:   fmt.Errorf("%w (first seen on line %d)", ErrDuplicateTitle, first),
			})
			continue
		}
		seen[row.Title] = row.Line
		recipes = append(recipes, row.ToRecipe())
	}

	if len(recipes) == 0 {
		return nil, rowErrs, ErrEmptyDataset
	}
	return recipes, rowErrs, nil
}

// ReadRows decodes dataset rows without checking titles for uniqueness.
func ReadRows(r io.Reader, schema Schema) ([]Row, []error, error) {
	if schema.IngredientsColumn <= ColumnRecipe {
		return nil, nil, fmt.Errorf("ingredients column %d overlaps fixed columns", schema.IngredientsColumn)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil, ErrMissingHeader
		}
		return nil, nil, fmt.Errorf("reading header: %w", err)
	}

	var rows []Row
	var rowErrs []error
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				rowErrs = append(rowErrs, &RowError{Line: parseErr.StartLine, Err: fmt.Errorf("%w: %v", ErrMalformedRow, err)})
				continue
			}
			return nil, rowErrs, fmt.Errorf("reading dataset: %w", err)
		}

		line, _ := reader.FieldPos(0)
		row, err := decodeRow(record, schema)
		if err != nil {
			rowErrs = append(rowErrs, &RowError{Line: line, Title: cell(record, ColumnTitle), Err: err})
			continue
		}
		row.Line = line
		rows = append(rows, row)
	}

	return rows, rowErrs, nil
}

// LoadFile reads a dataset from disk.
func LoadFile(path string, schema Schema) ([]*recipe.Recipe, []error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	return ReadCSV(f, schema)
}

func decodeRow(record []string, schema Schema) (Row, error) {
	if len(record) < schema.minColumns() {
		return Row{}, fmt.Errorf("%w: %d columns, need %d", ErrMalformedRow, len(record), schema.minColumns())
	}

	title := strings.TrimSpace(record[ColumnTitle])
	if title == "" {
		return Row{}, fmt.Errorf("%w: empty title", ErrMalformedRow)
	}

	pairs, err := ParsePairs(record[schema.IngredientsColumn])
	if err != nil {
		return Row{}, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}

	return Row{
		Title:        title,
		Glass:        textOrNone(record[ColumnGlass]),
		Garnish:      textOrNone(record[ColumnGarnish]),
		Instructions: textOrNone(record[ColumnRecipe]),
		Ingredients:  pairs,
	}, nil
}

// textOrNone fills empty cells with the "None" sentinel.
func textOrNone(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return recipe.NoneSentinel
	}
	return s
}

func cell(record []string, i int) string {
	if i < len(record) {
		return strings.TrimSpace(record[i])
	}
	return ""
}
