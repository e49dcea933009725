package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"unicode"

	"github.com/matsen/mixology/internal/recipe"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// selectCocktailFields contains the standard field list for SELECT queries.
const selectCocktailFields = `name, glass, garnish, recipe, ingredients_json`

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS cocktails (
			name TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			glass TEXT NOT NULL,
			garnish TEXT NOT NULL,
			recipe TEXT NOT NULL,
			ingredients_json TEXT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS ingredients (
			cocktail TEXT NOT NULL,
			name TEXT NOT NULL,
			amount REAL,
			unit TEXT,
			raw TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_ingredients_name ON ingredients(name);

		-- Full-text search virtual table (standalone, not external content)
		CREATE VIRTUAL TABLE IF NOT EXISTS cocktails_fts USING fts5(
			name,
			ingredients_text,
			glass,
			garnish,
			recipe
		);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildFromJSONL clears the database and rebuilds it from a JSONL file.
func (d *DB) RebuildFromJSONL(jsonlPath string) (int, error) {
	recipes, err := ReadAll(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading JSONL: %w", err)
	}
	return d.Rebuild(recipes)
}

// Rebuild replaces the database contents with recipes.
func (d *DB) Rebuild(recipes []*recipe.Recipe) (int, error) {
	tx, err := d.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"cocktails", "ingredients", "cocktails_fts"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return 0, fmt.Errorf("clearing %s table: %w", table, err)
		}
	}

	cocktailStmt, err := tx.Prepare(`
		INSERT INTO cocktails (name, position, glass, garnish, recipe, ingredients_json)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing cocktails insert: %w", err)
	}
	defer cocktailStmt.Close()

	ingredientStmt, err := tx.Prepare(`
		INSERT INTO ingredients (cocktail, name, amount, unit, raw)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing ingredients insert: %w", err)
	}
	defer ingredientStmt.Close()

	ftsStmt, err := tx.Prepare(`
		INSERT INTO cocktails_fts (name, ingredients_text, glass, garnish, recipe)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for i, r := range recipes {
		ingredientsJSON, err := json.Marshal(r.Ingredients)
		if err != nil {
			return 0, fmt.Errorf("marshaling ingredients for %s: %w", r.Name, err)
		}

		if _, err := cocktailStmt.Exec(r.Name, i, r.Glass, r.Garnish, r.Text, string(ingredientsJSON)); err != nil {
			return 0, fmt.Errorf("inserting cocktail %s: %w", r.Name, err)
		}

		for _, ing := range r.Ingredients {
			if _, err := ingredientStmt.Exec(r.Name, ing.Name, nullableFloat(ing.Amount), nullableStringPtr(ing.Unit), ing.Raw); err != nil {
				return 0, fmt.Errorf("inserting ingredient %s for %s: %w", ing.Name, r.Name, err)
			}
		}

		if _, err := ftsStmt.Exec(r.Name, strings.Join(r.SortedIngredientNames(), ", "), r.Glass, r.Garnish, r.Text); err != nil {
			return 0, fmt.Errorf("inserting fts for %s: %w", r.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing rebuild: %w", err)
	}
	return len(recipes), nil
}

// GetByName retrieves a recipe by exact name. Returns nil, nil if not found.
func (d *DB) GetByName(name string) (*recipe.Recipe, error) {
	row := d.db.QueryRow(`SELECT `+selectCocktailFields+` FROM cocktails WHERE name = ?`, name)
	return scanRecipe(row)
}

// Search performs a full-text search over names, ingredients, glass, garnish
// and recipe text. Results are in library order.
func (d *DB) Search(query string, limit int) ([]*recipe.Recipe, error) {
	return d.match(prepareFTSQuery(query), limit)
}

func (d *DB) match(ftsQuery string, limit int) ([]*recipe.Recipe, error) {
	if ftsQuery == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = -1 // no limit
	}

	rows, err := d.db.Query(`
		SELECT `+selectCocktailFields+`
		FROM cocktails
		WHERE name IN (SELECT name FROM cocktails_fts WHERE cocktails_fts MATCH ?)
		ORDER BY position
		LIMIT ?`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}

// SearchField performs a search on one field: name, ingredient, glass or garnish.
func (d *DB) SearchField(field, value string, limit int) ([]*recipe.Recipe, error) {
	var column string
	switch field {
	case "name":
		column = "name"
	case "ingredient":
		column = "ingredients_text"
	case "glass":
		column = "glass"
	case "garnish":
		column = "garnish"
	default:
		return nil, fmt.Errorf("unknown search field: %s", field)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	return d.match(column+":"+quotePhrase(value), limit)
}

// ListAll returns all recipes in library order, optionally limited.
func (d *DB) ListAll(limit int) ([]*recipe.Recipe, error) {
	query := `SELECT ` + selectCocktailFields + ` FROM cocktails ORDER BY position`
	var args []interface{}

	if limit > 0 {
		query += " LIMIT ?"
		args = []interface{}{limit}
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing cocktails: %w", err)
	}
	defer rows.Close()

	return scanRecipes(rows)
}

// Count returns the total number of cocktails.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM cocktails").Scan(&count)
	return count, err
}

// IngredientUsage is how many cocktails use an ingredient.
type IngredientUsage struct {
	Name      string `json:"name"`
	Cocktails int    `json:"cocktails"`
}

// TopIngredients returns the most used ingredients, most common first.
func (d *DB) TopIngredients(limit int) ([]IngredientUsage, error) {
	rows, err := d.db.Query(`
		SELECT name, COUNT(DISTINCT cocktail) AS n
		FROM ingredients
		GROUP BY name
		ORDER BY n DESC, name
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("counting ingredients: %w", err)
	}
	defer rows.Close()

	var usage []IngredientUsage
	for rows.Next() {
		var u IngredientUsage
		if err := rows.Scan(&u.Name, &u.Cocktails); err != nil {
			return nil, err
		}
		usage = append(usage, u)
	}
	return usage, rows.Err()
}

// scanner interface for sql.Row and sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecipe(s scanner) (*recipe.Recipe, error) {
	var r recipe.Recipe
	var ingredientsJSON string

	err := s.Scan(&r.Name, &r.Glass, &r.Garnish, &r.Text, &ingredientsJSON)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if err := json.Unmarshal([]byte(ingredientsJSON), &r.Ingredients); err != nil {
		return nil, fmt.Errorf("parsing ingredients JSON for %s: %w", r.Name, err)
	}
	r.Normalize()

	return &r, nil
}

func scanRecipes(rows *sql.Rows) ([]*recipe.Recipe, error) {
	var recipes []*recipe.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		if r != nil {
			recipes = append(recipes, r)
		}
	}
	return recipes, rows.Err()
}

func nullableFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullableStringPtr(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// prepareFTSQuery turns free text into an FTS5 query that matches every
// term. Each term is quoted as a phrase so punctuation in names ("#2", "St.",
// "&") is never read as query syntax. Terms with no letters or digits would
// tokenize to nothing and are dropped.
func prepareFTSQuery(query string) string {
	var terms []string
	for _, term := range strings.Fields(query) {
		if strings.IndexFunc(term, isWordRune) < 0 {
			continue
		}
		terms = append(terms, quotePhrase(term))
	}
	return strings.Join(terms, " ")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func quotePhrase(s string) string {
	return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
}
