package dedupe

import (
	"math"
	"testing"

	"github.com/cmdbkit/cmdbrecon-core/internal/config"
	"github.com/cmdbkit/cmdbrecon-core/internal/types"
)

func newFinder(t *testing.T) *Finder {
	t.Helper()
	return NewFinder(config.Default(), nil)
}

func TestRunExactDuplicateIsHighConfidence(t *testing.T) {
	f := newFinder(t)

	sources := []*types.SourceRecord{
		{
			ID:   "src-1",
			Name: "acme-srv01",
			Identifiers: map[string]string{
				"serial_number": "SN123",
				"mac_address":   "00:11:22:33:44:55",
				"hostname":      "acme-srv01",
			},
		},
	}
	targets := []*types.TargetRecord{
		{
			SysID: "sys-1",
			Name:  "acme-srv01",
			Fields: map[string]string{
				"serial_number": "SN123",
				"mac_address":   "00:11:22:33:44:55",
				"hostname":      "acme-srv01",
			},
		},
	}

	report := f.Run(sources, targets)

	if len(report.HighConfidence) != 1 {
		t.Fatalf("expected 1 high-confidence candidate, got %d", len(report.HighConfidence))
	}
	cand := report.HighConfidence[0]
	if cand.Disposition != DispositionAutomaticUpdate {
		t.Errorf("expected automatic_update, got %v", cand.Disposition)
	}
	if math.Abs(cand.Score-1.0) > 1e-9 {
		t.Errorf("expected score 1.0, got %g", cand.Score)
	}
	if cand.Target == nil || cand.Target.SysID != "sys-1" {
		t.Errorf("unexpected target: %+v", cand.Target)
	}
}

func TestRunNameOnlyMatchIsLowConfidence(t *testing.T) {
	f := newFinder(t)

	sources := []*types.SourceRecord{
		{
			ID:   "src-1",
			Name: "acme-srv01",
			Identifiers: map[string]string{
				"serial_number": "AAA",
				"mac_address":   "11:11",
				"hostname":      "host-a",
			},
		},
	}
	targets := []*types.TargetRecord{
		{
			SysID: "sys-1",
			Name:  "acme-srv01",
			Fields: map[string]string{
				"serial_number": "ZZZ",
				"mac_address":   "99:99",
				"hostname":      "other-b",
			},
		},
	}

	report := f.Run(sources, targets)

	if len(report.LowConfidence) != 1 {
		t.Fatalf("expected 1 low-confidence candidate, got %d", len(report.LowConfidence))
	}
	cand := report.LowConfidence[0]
	if cand.Disposition != DispositionCreateNew {
		t.Errorf("expected create_new, got %v", cand.Disposition)
	}
	if cand.Score >= f.reviewThreshold {
		t.Errorf("expected score below the review threshold, got %g", cand.Score)
	}
}

func TestRunNoPotentialMatch(t *testing.T) {
	f := newFinder(t)

	sources := []*types.SourceRecord{
		{ID: "src-1", Name: "unique-host"},
	}
	targets := []*types.TargetRecord{
		{SysID: "sys-1", Name: "something-else"},
	}

	report := f.Run(sources, targets)

	if len(report.LowConfidence) != 1 {
		t.Fatalf("expected 1 low-confidence candidate, got %d", len(report.LowConfidence))
	}
	cand := report.LowConfidence[0]
	if cand.Target != nil {
		t.Errorf("expected no target, got %+v", cand.Target)
	}
	if cand.Score != 0.0 {
		t.Errorf("expected score 0.0, got %g", cand.Score)
	}
}

func TestFindPotentialMatchesScopesByOrganization(t *testing.T) {
	f := newFinder(t)

	src := &types.SourceRecord{
		ID:          "src-1",
		Name:        "acme-srv01",
		OrgID:       "org-1",
		Identifiers: map[string]string{"serial_number": "SN123"},
	}
	targets := []*types.TargetRecord{
		{SysID: "sys-wrong-org", Name: "acme-srv01", Fields: map[string]string{"company": "org-2", "serial_number": "SN123"}},
		{SysID: "sys-right-org", Name: "acme-srv01", Fields: map[string]string{"company": "org-1", "serial_number": "SN123"}},
	}

	potential := f.findPotentialMatches(src, targets)

	if len(potential) != 1 || potential[0].SysID != "sys-right-org" {
		t.Errorf("expected only the same-organization candidate, got %+v", potential)
	}
}

func TestRunRecoversFromBadRecord(t *testing.T) {
	f := newFinder(t)

	sources := []*types.SourceRecord{
		nil,
		{ID: "src-1", Name: "acme-srv01"},
	}

	report := f.Run(sources, nil)

	if len(report.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(report.Errors))
	}
	if report.Total() != 1 {
		t.Errorf("expected the scan to continue, got total %d", report.Total())
	}
}

func TestScoreUsesConfiguredWeights(t *testing.T) {
	cfg := config.Default()
	cfg.Dedupe.Weights = []*config.WeightConfig{
		{Field: "serial_number", Value: 1.0},
	}
	f := NewFinder(cfg, nil)

	src := &types.SourceRecord{
		ID:          "src-1",
		Name:        "completely different",
		Identifiers: map[string]string{"serial_number": "SN123"},
	}
	target := &types.TargetRecord{
		SysID:  "sys-1",
		Name:   "unrelated name",
		Fields: map[string]string{"serial_number": "SN123"},
	}

	if got := f.Score(src, target); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("expected score 1.0 under serial-only weighting, got %g", got)
	}
}

func TestReportTotal(t *testing.T) {
	r := &Report{
		HighConfidence: []*Candidate{{}, {}},
		LowConfidence:  []*Candidate{{}},
	}
	if r.Total() != 3 {
		t.Errorf("expected total 3, got %d", r.Total())
	}
}
