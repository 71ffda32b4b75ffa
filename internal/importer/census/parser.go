// Package census reads location populations from census-style CSV exports.
package census

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	enc "github.com/MrJamesThe3rd/conectando/internal/encoding"
	"github.com/MrJamesThe3rd/conectando/internal/location"
)

// Parser auto-detects the separator and the header layout, then yields one location per data row.
// Rows before the header (titles, notes) and rows without a name are skipped.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]location.CreateParams, error) {
	utf8r, charset, err := enc.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	data, err := io.ReadAll(utf8r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = detectComma(data)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, nameIdx, popIdx, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching census format found: expected a name and a population column")
	}

	slog.Debug("census file detected", "profile", profile.Name, "charset", charset, "separator", string(reader.Comma))

	return parseRows(rows[headerIdx+1:], nameIdx, popIdx, headerIdx+1)
}

// detectComma picks ';' when the first non-blank line has more semicolons than commas.
func detectComma(data []byte) rune {
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		if strings.Count(line, ";") > strings.Count(line, ",") {
			return ';'
		}

		return ','
	}

	return ','
}

// colIndex maps lower-cased header names to their index in the row.
type colIndex map[string]int

func (c colIndex) find(names []string) (int, bool) {
	for _, n := range names {
		if idx, ok := c[strings.ToLower(n)]; ok {
			return idx, true
		}
	}

	return 0, false
}

func detectProfile(rows [][]string) (*Profile, int, int, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.ToLower(strings.TrimSpace(cell))
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if nameIdx, popIdx, ok := profiles[i].match(cols); ok {
				return &profiles[i], nameIdx, popIdx, rowIdx
			}
		}
	}

	return nil, 0, 0, 0
}

// parseRows converts data rows. headerRowNum is the 0-based index of the header in the file.
func parseRows(rows [][]string, nameIdx, popIdx, headerRowNum int) ([]location.CreateParams, error) {
	var out []location.CreateParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 1 // 1-based

		name := cellValue(row, nameIdx)
		if name == "" {
			continue
		}

		raw := cellValue(row, popIdx)
		if raw == "" {
			return nil, fmt.Errorf("row %d: missing population for %s", rowNum, name)
		}

		population, err := parsePopulation(raw)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", rowNum, err)
		}

		out = append(out, location.CreateParams{Name: name, Population: population})
	}

	return out, nil
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
