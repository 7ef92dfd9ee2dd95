// Package loader reads already-fetched record dumps from disk.
//
// Inputs are plain JSON arrays of source or target records; fetching them
// from the live systems is the job of the platform API clients, not this
// tool.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/cmdbkit/cmdbrecon-core/internal/types"
)

// Filter holds the include and exclude glob patterns for record file
// selection inside a dump directory
type Filter struct {
	include []string
	exclude []string
}

// NewFilter creates a Filter with the given include and exclude patterns
func NewFilter(include, exclude []string) *Filter {
	return &Filter{include: include, exclude: exclude}
}

// Files returns the files under dir matching the include patterns and not
// matching any exclude pattern, sorted for deterministic load order.
// The returned paths are relative to dir.
func (f *Filter) Files(dir string) ([]string, error) {
	fsys := os.DirFS(dir)
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range f.include {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				result = append(result, match)
			}
		}
	}

	if len(f.exclude) > 0 {
		filtered := make([]string, 0, len(result))
		for _, path := range result {
			excluded := false
			for _, pattern := range f.exclude {
				match, err := doublestar.Match(pattern, path)
				if err != nil {
					return nil, err
				}
				if match {
					excluded = true
					break
				}
			}
			if !excluded {
				filtered = append(filtered, path)
			}
		}
		result = filtered
	}

	sort.Strings(result)
	return result, nil
}

// SourceRecords loads source records from a JSON file, or from every
// matching file under a directory
func SourceRecords(path string, filter *Filter) ([]*types.SourceRecord, error) {
	var records []*types.SourceRecord
	err := loadInto(path, filter, func(data []byte, file string) error {
		var chunk []*types.SourceRecord
		if err := json.Unmarshal(data, &chunk); err != nil {
			return fmt.Errorf("failed to parse source records from %s: %w", file, err)
		}
		records = append(records, chunk...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// TargetRecords loads target records from a JSON file, or from every
// matching file under a directory
func TargetRecords(path string, filter *Filter) ([]*types.TargetRecord, error) {
	var records []*types.TargetRecord
	err := loadInto(path, filter, func(data []byte, file string) error {
		var chunk []*types.TargetRecord
		if err := json.Unmarshal(data, &chunk); err != nil {
			return fmt.Errorf("failed to parse target records from %s: %w", file, err)
		}
		records = append(records, chunk...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func loadInto(path string, filter *Filter, parse func(data []byte, file string) error) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("path does not exist: %s", path)
		}
		return fmt.Errorf("failed to access path: %w", err)
	}

	if !info.IsDir() {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		return parse(data, path)
	}

	if filter == nil {
		filter = NewFilter([]string{"**/*.json"}, nil)
	}
	files, err := filter.Files(path)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no record files found under %s", path)
	}

	for _, file := range files {
		full := filepath.Join(path, file)
		data, err := os.ReadFile(full)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", full, err)
		}
		if err := parse(data, full); err != nil {
			return err
		}
	}
	return nil
}

// ApplyCrossReferences copies cross-reference codes from ancillary summary
// records onto the organization records they describe. A summary carries the
// code in a trait whose name contains "coreid" or "core_id"; the lexically
// first such trait wins.
func ApplyCrossReferences(orgs []*types.SourceRecord, summaries []*types.SourceRecord) int {
	codes := make(map[string]string)
	for _, summary := range summaries {
		if summary.OrgID == "" {
			continue
		}
		if _, exists := codes[summary.OrgID]; exists {
			continue
		}
		if code := crossReferenceCode(summary); code != "" {
			codes[summary.OrgID] = code
		}
	}

	applied := 0
	for _, org := range orgs {
		code, ok := codes[org.ID]
		if !ok || org.Identifier("coreid") != "" {
			continue
		}
		if org.Identifiers == nil {
			org.Identifiers = make(map[string]string)
		}
		org.Identifiers["coreid"] = code
		applied++
	}
	return applied
}

func crossReferenceCode(summary *types.SourceRecord) string {
	// trait names are sorted so repeated runs pick the same trait
	names := make([]string, 0, len(summary.Traits))
	for name := range summary.Traits {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		lower := strings.ToLower(name)
		if strings.Contains(lower, "coreid") || strings.Contains(lower, "core_id") {
			return strings.TrimSpace(summary.Traits[name])
		}
	}
	return ""
}
