// Package stats tabulates match results into ordered count/percentage
// breakdowns for reporting.
package stats

import (
	"bytes"
	"encoding/json"

	"github.com/cmdbkit/cmdbrecon-core/internal/types"
)

// Bucket is one label's share of a breakdown
type Bucket struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Breakdown maps labels to buckets, preserving first-occurrence insertion
// order. Report consumers rely on the order, and encoding/json sorts plain
// map keys, so marshalling is done by hand.
type Breakdown struct {
	labels  []string
	buckets map[string]*Bucket
}

// NewBreakdown creates an empty Breakdown
func NewBreakdown() *Breakdown {
	return &Breakdown{buckets: make(map[string]*Bucket)}
}

// Add counts one occurrence of the label
func (b *Breakdown) Add(label string) {
	bucket, ok := b.buckets[label]
	if !ok {
		bucket = &Bucket{}
		b.buckets[label] = bucket
		b.labels = append(b.labels, label)
	}
	bucket.Count++
}

// Labels returns the labels in first-occurrence order
func (b *Breakdown) Labels() []string {
	labels := make([]string, len(b.labels))
	copy(labels, b.labels)
	return labels
}

// Get returns the bucket for a label
func (b *Breakdown) Get(label string) (Bucket, bool) {
	bucket, ok := b.buckets[label]
	if !ok {
		return Bucket{}, false
	}
	return *bucket, true
}

// Len returns the number of distinct labels
func (b *Breakdown) Len() int {
	return len(b.labels)
}

// finalize computes percentages against the run total
func (b *Breakdown) finalize(total int) {
	if total == 0 {
		return
	}
	for _, bucket := range b.buckets {
		bucket.Percentage = float64(bucket.Count) / float64(total) * 100
	}
}

// MarshalJSON writes the breakdown as an object in label insertion order
func (b *Breakdown) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range b.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(b.buckets[label])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Stats summarizes a full matching run. Dimension names the category
// breakdown key ("by_hypervisor", "by_email_type", ...); it is empty for
// categories without one.
type Stats struct {
	Total       int
	ByMatchType *Breakdown
	ByAction    *Breakdown
	ByQuality   *Breakdown
	Dimension   string
	ByDimension *Breakdown
}

// Empty reports whether the run had no results
func (s *Stats) Empty() bool {
	return s == nil || s.Total == 0
}

// MarshalJSON writes the stats object; an empty run marshals to {}
func (s *Stats) MarshalJSON() ([]byte, error) {
	if s.Empty() {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	buf.WriteString(`"total":`)
	total, err := json.Marshal(s.Total)
	if err != nil {
		return nil, err
	}
	buf.Write(total)

	sections := []struct {
		key   string
		value *Breakdown
	}{
		{"by_match_type", s.ByMatchType},
		{"by_recommended_action", s.ByAction},
		{"by_data_quality", s.ByQuality},
		{s.Dimension, s.ByDimension},
	}
	for _, section := range sections {
		if section.key == "" || section.value == nil {
			continue
		}
		buf.WriteByte(',')
		key, err := json.Marshal(section.key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := section.value.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Aggregate tabulates match-type, action and quality distributions over the
// result list, plus the category dimension when one is configured. An empty
// result list yields empty stats, never a division error.
func Aggregate(results []*types.MatchResult, dimension string) *Stats {
	s := &Stats{
		Total:       len(results),
		ByMatchType: NewBreakdown(),
		ByAction:    NewBreakdown(),
		ByQuality:   NewBreakdown(),
		Dimension:   dimension,
	}
	if len(results) == 0 {
		return s
	}
	if dimension != "" {
		s.ByDimension = NewBreakdown()
	}

	for _, r := range results {
		s.ByMatchType.Add(r.MatchType.String())
		s.ByAction.Add(r.Action.String())
		s.ByQuality.Add(string(r.Quality))
		if s.ByDimension != nil {
			label := r.Attribute
			if label == "" {
				label = "Unknown"
			}
			s.ByDimension.Add(label)
		}
	}

	s.ByMatchType.finalize(s.Total)
	s.ByAction.finalize(s.Total)
	s.ByQuality.finalize(s.Total)
	if s.ByDimension != nil {
		s.ByDimension.finalize(s.Total)
	}
	return s
}
