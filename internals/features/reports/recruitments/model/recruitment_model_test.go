package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func date(s string) *time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return &t
}

func TestIsCompleteRequiresAllFiveStages(t *testing.T) {
	r := RecruitmentModel{
		UserID:      uuid.New(),
		RecruitName: "Nimal Perera",
	}
	if r.IsComplete() {
		t.Fatal("fresh recruit should not be complete")
	}

	r.DateFileSubmitted = date("2026-01-02")
	r.DateExamPassed = date("2026-01-10")
	r.DateDocumentsComplete = date("2026-01-15")
	r.DateAppointed = date("2026-01-20")
	if r.IsComplete() {
		t.Fatal("four of five stages should not be complete")
	}

	r.DateCodeIssued = date("2026-01-25")
	if !r.IsComplete() {
		t.Fatal("all five stages set should be complete")
	}
}

func TestIsCompleteAnyMissingStage(t *testing.T) {
	full := RecruitmentModel{
		DateFileSubmitted:     date("2026-01-02"),
		DateExamPassed:        date("2026-01-10"),
		DateDocumentsComplete: date("2026-01-15"),
		DateAppointed:         date("2026-01-20"),
		DateCodeIssued:        date("2026-01-25"),
	}

	clearers := map[string]func(*RecruitmentModel){
		"file_submitted":     func(r *RecruitmentModel) { r.DateFileSubmitted = nil },
		"exam_passed":        func(r *RecruitmentModel) { r.DateExamPassed = nil },
		"documents_complete": func(r *RecruitmentModel) { r.DateDocumentsComplete = nil },
		"appointed":          func(r *RecruitmentModel) { r.DateAppointed = nil },
		"code_issued":        func(r *RecruitmentModel) { r.DateCodeIssued = nil },
	}

	for name, clear := range clearers {
		r := full
		clear(&r)
		if r.IsComplete() {
			t.Fatalf("missing %s stage should not be complete", name)
		}
	}
}
