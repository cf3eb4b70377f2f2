// Package importer loads assignment sheets into the catalog.
package importer

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	numberPattern   = regexp.MustCompile(`[-+]?\d*[.,]?\d+`)
	cleanWhitespace = regexp.MustCompile(`\s+`)
)

// Row is one parent;child;strength line of an assignment sheet.
type Row struct {
	Line     int
	Parent   string
	Child    string
	Strength float64
}

// Read parses an assignment sheet. PDF files are reduced to their plain text
// first; .csv files go through a semicolon separated CSV reader and every other
// extension is read line by line.
func Read(name string, data []byte) ([]Row, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		text, err := extractTextFromPDF(data)
		if err != nil {
			return nil, fmt.Errorf("read pdf %s: %w", filepath.Base(name), err)
		}
		return ParseText(text)
	case ".csv":
		return ParseCSV(bytes.NewReader(data))
	default:
		return ParseText(string(data))
	}
}

// ParseCSV reads semicolon separated records. A first record whose strength
// column is not numeric is treated as a header.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.Comma = ';'
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var rows []Row
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		row, ok, err := parseFields(line, record)
		if err != nil {
			return nil, err
		}
		if ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// ParseText reads one record per line, fields separated by semicolons. Blank
// lines and lines starting with # are skipped.
func ParseText(text string) ([]Row, error) {
	scanner := bufio.NewScanner(strings.NewReader(text))
	var rows []Row
	line := 0
	for scanner.Scan() {
		line++
		raw := strings.TrimSpace(scanner.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		row, ok, err := parseFields(line, strings.Split(raw, ";"))
		if err != nil {
			return nil, err
		}
		if ok {
			rows = append(rows, row)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return rows, nil
}

func parseFields(line int, fields []string) (Row, bool, error) {
	if len(fields) == 1 && strings.TrimSpace(fields[0]) == "" {
		return Row{}, false, nil
	}
	if len(fields) < 3 {
		return Row{}, false, fmt.Errorf("line %d: expected parent;child;strength, got %d fields", line, len(fields))
	}

	row := Row{
		Line:   line,
		Parent: normalizeName(fields[0]),
		Child:  normalizeName(fields[1]),
	}
	strength, ok := parseFirstNumber(fields[2])
	if !ok {
		if line == 1 {
			return Row{}, false, nil
		}
		return Row{}, false, fmt.Errorf("line %d: strength %q is not a number", line, strings.TrimSpace(fields[2]))
	}
	row.Strength = strength
	if row.Parent == "" || row.Child == "" {
		return Row{}, false, fmt.Errorf("line %d: parent and child names are required", line)
	}
	return row, true, nil
}

func normalizeName(value string) string {
	return strings.TrimSpace(cleanWhitespace.ReplaceAllString(value, " "))
}

// parseFirstNumber accepts decimal commas and trailing units such as "35,5 %".
func parseFirstNumber(value string) (float64, bool) {
	match := numberPattern.FindString(strings.TrimSpace(value))
	if match == "" {
		return 0, false
	}
	parsed, err := strconv.ParseFloat(strings.Replace(match, ",", ".", 1), 64)
	if err != nil {
		return 0, false
	}
	return parsed, true
}

func extractTextFromPDF(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var builder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", err
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}
