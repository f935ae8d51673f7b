package rba

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// MediumEntry is one line of the medium definition: an external metabolite
// and its environmental concentration.
type MediumEntry struct {
	Metabolite    string
	Concentration string
}

// Medium is the ordered medium composition. Order is preserved from the
// source file so converted models diff cleanly against their inputs.
type Medium []MediumEntry

const mediumHeader = "Metabolite\tConcentration"

// ParseMedium parses a tab-separated medium definition. The first line is
// treated as a header and skipped. Each following non-empty line must hold
// exactly two tab-separated columns.
func ParseMedium(content []byte) (Medium, error) {
	scanner := bufio.NewScanner(bytes.NewReader(content))
	var medium Medium
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if lineNum == 1 {
			// header
			continue
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 2 {
			return nil, fmt.Errorf("medium line %d: expected 2 tab-separated columns, got %d: %w",
				lineNum, len(fields), ErrMalformedModel)
		}
		medium = append(medium, MediumEntry{
			Metabolite:    strings.TrimSpace(fields[0]),
			Concentration: strings.TrimSpace(fields[1]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading medium: %w", err)
	}
	return medium, nil
}

// Serialize renders the medium back to its tab-separated form.
func (m Medium) Serialize() []byte {
	var b strings.Builder
	b.WriteString(mediumHeader)
	b.WriteByte('\n')
	for _, e := range m {
		b.WriteString(e.Metabolite)
		b.WriteByte('\t')
		b.WriteString(e.Concentration)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
