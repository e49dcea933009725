package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matsen/mixology/internal/recipe"
)

// Constants for output formatting.
const (
	DefaultFindLimit = 20 // Default limit for find command
	TextWrapWidth    = 68 // Recipe text wrap width in detail views
)

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	return writeJSON(os.Stdout, v)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError writes an error message to stderr and returns the exit code.
func outputError(code int, format string, args ...interface{}) int {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	return code
}

// exitWithError outputs an error in the appropriate format (human or JSON) and exits.
func exitWithError(code int, format string, args ...interface{}) {
	exitWithResponse(code, ErrorResponse{Error: fmt.Sprintf(format, args...)})
}

// exitNotFound reports an unknown cocktail along with close matches.
func exitNotFound(name string, suggestions []string) {
	exitWithResponse(ExitNotFound, ErrorResponse{
		Error:       fmt.Sprintf("cocktail not found: %q", name),
		Suggestions: suggestions,
	})
}

func exitWithResponse(code int, resp ErrorResponse) {
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", resp.Error)
		if len(resp.Suggestions) > 0 {
			fmt.Fprintln(os.Stderr, "\nDid you mean:")
			printNumbered(os.Stderr, resp.Suggestions)
		}
	} else {
		outputJSON(resp)
	}
	os.Exit(code)
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	Path   string `json:"path,omitempty"`
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions,omitempty"`
}

// printRecipe writes a cocktail in detail view.
func printRecipe(w io.Writer, r *recipe.Recipe) {
	fmt.Fprintln(w, r.Name)
	fmt.Fprintln(w, strings.Repeat("═", len([]rune(r.Name))))
	fmt.Fprintf(w, "Glass:       %s\n", r.Glass)
	fmt.Fprintf(w, "Garnish:     %s\n", r.Garnish)
	fmt.Fprintf(w, "Ingredients: %s\n", wrapText(formatIngredients(r.Ingredients), TextWrapWidth, "             "))
	fmt.Fprintf(w, "Techniques:  %s\n", strings.Join(r.Techniques, ", "))
	fmt.Fprintf(w, "Recipe:      %s\n", wrapText(r.Text, TextWrapWidth, "             "))
}

// formatIngredients lists ingredients as "Name amount, Name amount".
func formatIngredients(ings []recipe.Ingredient) string {
	parts := make([]string, 0, len(ings))
	for _, ing := range ings {
		parts = append(parts, ing.Display())
	}
	return strings.Join(parts, ", ")
}

// printNumbered writes items as a 1-based numbered list.
func printNumbered(w io.Writer, items []string) {
	for i, item := range items {
		fmt.Fprintf(w, "%d. %s\n", i+1, item)
	}
}

// truncateString shortens s to maxLen runes, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// wrapText wraps text at the given width, indenting continuation lines.
func wrapText(text string, width int, indent string) string {
	if len(text) <= width {
		return text
	}

	var lines []string
	words := strings.Fields(text)
	var currentLine strings.Builder

	for _, word := range words {
		if currentLine.Len() == 0 {
			currentLine.WriteString(word)
		} else if currentLine.Len()+1+len(word) <= width {
			currentLine.WriteString(" ")
			currentLine.WriteString(word)
		} else {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentLine.WriteString(word)
		}
	}
	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, "\n"+indent)
}

// formatIDList formats a list of names as a comma-separated string.
func formatIDList(ids []string) string {
	return strings.Join(ids, ", ")
}

// padRight pads s with spaces to width runes.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
