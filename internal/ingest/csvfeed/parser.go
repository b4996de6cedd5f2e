package csvfeed

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/claude/paceline/internal/models"
)

// lineRe matches a sensor export line: RUN;15000;1;75
var lineRe = regexp.MustCompile(`^([A-Z]{3})((?:;[0-9]+(?:\.[0-9]+)?)+)$`)

// Parse reads a semicolon-separated sensor export and returns the parsed
// packages. Blank lines and lines starting with # are skipped; anything
// else that does not match the line format is an error naming the line
// number.
func Parse(r io.Reader) ([]models.SensorPackage, error) {
	scanner := bufio.NewScanner(r)
	var packages []models.SensorPackage

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("line %d: malformed package %q", lineNo, line)
		}

		fields := strings.Split(strings.TrimPrefix(m[2], ";"), ";")
		data := make([]float64, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing %q: %w", lineNo, f, err)
			}
			data = append(data, v)
		}

		packages = append(packages, models.SensorPackage{Type: m[1], Data: data})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading export: %w", err)
	}

	return packages, nil
}
