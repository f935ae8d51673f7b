package rba

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
)

// WriteFiles serializes every model section into dir using the fixed file
// layout. The directory is created if missing. Writing is all-or-nothing in
// intent but not transactional: the first failing file aborts with
// ErrWriteFailed and earlier files may already exist.
func (m *Model) WriteFiles(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, ErrWriteFailed)
	}

	sections := []struct {
		file string
		doc  interface{}
	}{
		{MetabolismFile, &m.Metabolism},
		{ParametersFile, &m.Parameters},
		{ProteinsFile, &m.Proteins},
		{RNAsFile, &m.RNAs},
		{DNAFile, &m.DNA},
		{EnzymesFile, &m.Enzymes},
		{ProcessesFile, &m.Processes},
	}
	for _, s := range sections {
		if err := writeXML(filepath.Join(dir, s.file), s.doc); err != nil {
			return err
		}
	}

	mediumPath := filepath.Join(dir, MediumFile)
	if err := os.WriteFile(mediumPath, m.Medium.Serialize(), 0o644); err != nil {
		return fmt.Errorf("writing %s: %v: %w", mediumPath, err, ErrWriteFailed)
	}
	return nil
}

func writeXML(path string, doc interface{}) error {
	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling %s: %v: %w", path, err, ErrWriteFailed)
	}
	data = append([]byte(xml.Header), data...)
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %v: %w", path, err, ErrWriteFailed)
	}
	return nil
}
