package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// readTable parses whitespace-separated "x f" rows. Blank lines and lines
// starting with '#' are skipped; extra columns are an error.
func readTable(r io.Reader) (x, f []float64, err error) {
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}

		fields := strings.Fields(text)
		if len(fields) != tableColumns {
			return nil, nil, fmt.Errorf("line %d: expected %d columns, got %d", line, tableColumns, len(fields))
		}

		xv, err := strconv.ParseFloat(fields[0], floatBits)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: bad x: %w", line, err)
		}
		fv, err := strconv.ParseFloat(fields[1], floatBits)
		if err != nil {
			return nil, nil, fmt.Errorf("line %d: bad f: %w", line, err)
		}
		x = append(x, xv)
		f = append(f, fv)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read table: %w", err)
	}
	return x, f, nil
}

// loadTable reads a table file.
func loadTable(path string) (x, f []float64, err error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open table: %w", err)
	}
	defer func() { _ = file.Close() }()

	x, f, err = readTable(file)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", path, err)
	}
	return x, f, nil
}

// formatFloat prints v with the shortest exact representation.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, floatFormat, floatPrec, floatBits)
}
