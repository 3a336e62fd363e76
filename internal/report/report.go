package report

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Report is the ordered list of records produced by one comparison.
type Report struct {
	Records []Record `yaml:"records"`
}

// Summary counts records by kind and severity.
type Summary struct {
	Total       int                `yaml:"total"`
	Breaking    int                `yaml:"breaking"`
	NonBreaking int                `yaml:"nonBreaking"`
	ByKind      map[ChangeKind]int `yaml:"byKind"`
}

// Add appends records. Call Sort once all records are in.
func (r *Report) Add(records ...Record) {
	r.Records = append(r.Records, records...)
}

// Sort orders records by type name, change kind, member, then first detail aspect.
func (r *Report) Sort() {
	slices.SortStableFunc(r.Records, compareRecords)
}

func compareRecords(a, b Record) int {
	return cmp.Or(
		strings.Compare(a.TypeName, b.TypeName),
		cmp.Compare(a.Kind, b.Kind),
		strings.Compare(a.Member, b.Member),
		strings.Compare(string(a.firstAspect()), string(b.firstAspect())),
	)
}

// Summary counts the records.
func (r *Report) Summary() Summary {
	s := Summary{ByKind: make(map[ChangeKind]int)}
	for _, rec := range r.Records {
		s.Total++
		s.ByKind[rec.Kind]++
		switch rec.Severity {
		case SeverityBreaking:
			s.Breaking++
		case SeverityNonBreaking:
			s.NonBreaking++
		}
	}

	return s
}

// Changes returns the records other than Unchanged.
func (r *Report) Changes() []Record {
	var out []Record
	for _, rec := range r.Records {
		if rec.Kind != Unchanged {
			out = append(out, rec)
		}
	}

	return out
}

// Breaking returns the breaking records.
func (r *Report) Breaking() []Record {
	var out []Record
	for _, rec := range r.Records {
		if rec.Severity == SeverityBreaking {
			out = append(out, rec)
		}
	}

	return out
}

// HasBreaking returns true if any record is breaking.
func (r *Report) HasBreaking() bool {
	return slices.ContainsFunc(r.Records, func(rec Record) bool {
		return rec.Severity == SeverityBreaking
	})
}

// Error returns a combined error from all breaking records, or nil if none.
func (r *Report) Error() error {
	breaking := r.Breaking()
	if len(breaking) == 0 {
		return nil
	}

	parts := make([]string, len(breaking))
	for i, rec := range breaking {
		parts[i] = rec.String()
	}

	return errors.New(strings.Join(parts, "; "))
}

// YAML renders the report.
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}
