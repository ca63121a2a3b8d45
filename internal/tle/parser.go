// Package tle reads NORAD two-line element sets.
package tle

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// Parse reads 3-line NORAD TLE format from r and returns parsed elements.
// Malformed entries are skipped with a warning log.
func Parse(r io.Reader, logger *slog.Logger) ([]Element, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n ")
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading TLE data: %w", err)
	}

	var elements []Element
	for i := 0; i+2 < len(lines); {
		name := lines[i]
		line1 := lines[i+1]
		line2 := lines[i+2]

		if !strings.HasPrefix(line1, "1 ") || !strings.HasPrefix(line2, "2 ") {
			// Resynchronise on the next line.
			logger.Warn("skipping malformed TLE entry", "line_index", i, "name", name)
			i++
			continue
		}

		e, err := parseElement(name, line1, line2)
		if err != nil {
			logger.Warn("skipping TLE entry", "name", strings.TrimSpace(name), "error", err)
			i += 3
			continue
		}
		elements = append(elements, e)
		i += 3
	}

	return elements, nil
}

func parseElement(name, line1, line2 string) (Element, error) {
	if len(line1) < 32 {
		return Element{}, fmt.Errorf("line1 too short (%d chars)", len(line1))
	}
	if len(line2) < 63 {
		return Element{}, fmt.Errorf("line2 too short (%d chars)", len(line2))
	}

	// Catalog number, line1 cols 3-7.
	numStr := strings.TrimSpace(line1[2:7])
	num, err := strconv.Atoi(numStr)
	if err != nil {
		return Element{}, fmt.Errorf("invalid catalog number %q: %w", numStr, err)
	}

	// Epoch, line1 cols 19-32.
	epoch, err := parseEpoch(strings.TrimSpace(line1[18:32]))
	if err != nil {
		return Element{}, err
	}

	// Eccentricity, line2 cols 27-33, leading decimal point implied.
	eccStr := strings.TrimSpace(line2[26:33])
	ecc, err := strconv.ParseFloat("0."+eccStr, 64)
	if err != nil {
		return Element{}, fmt.Errorf("invalid eccentricity %q: %w", eccStr, err)
	}

	// Mean motion, line2 cols 53-63, rev/day.
	mmStr := strings.TrimSpace(line2[52:63])
	mm, err := strconv.ParseFloat(mmStr, 64)
	if err != nil {
		return Element{}, fmt.Errorf("invalid mean motion %q: %w", mmStr, err)
	}
	if mm <= 0 {
		return Element{}, fmt.Errorf("mean motion %g must be positive", mm)
	}

	return Element{
		CatalogNumber: num,
		Name:          strings.TrimSpace(name),
		Epoch:         epoch,
		Line1:         line1,
		Line2:         line2,
		MeanMotion:    mm,
		Eccentricity:  ecc,
	}, nil
}

// parseEpoch converts a TLE epoch string in YYDDD.DDDDDDDD format to time.Time.
// Year 00-56 → 2000s, 57-99 → 1900s.
func parseEpoch(s string) (time.Time, error) {
	if len(s) < 5 {
		return time.Time{}, fmt.Errorf("epoch string too short: %q", s)
	}

	yearStr := s[:2]
	dayStr := s[2:]

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid epoch year %q: %w", yearStr, err)
	}

	if year >= 57 {
		year += 1900
	} else {
		year += 2000
	}

	dayOfYear, err := strconv.ParseFloat(dayStr, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid epoch day %q: %w", dayStr, err)
	}

	// dayOfYear is 1-based: day 1 = Jan 1.
	t := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	t = t.Add(time.Duration((dayOfYear - 1) * float64(24*time.Hour)))

	return t, nil
}
