package spacedrep

import (
	"reflect"
	"testing"
	"time"
)

func TestRecord_NewQuestion(t *testing.T) {
	sched := NewScheduler()
	at := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.Record("q-1", true, at)

	rs := sched.Get("q-1")
	if rs == nil {
		t.Fatal("expected review state")
	}
	if rs.CorrectStreak != 1 {
		t.Errorf("CorrectStreak = %d, want 1", rs.CorrectStreak)
	}
	if !rs.LastCorrect {
		t.Error("expected LastCorrect")
	}
	if !rs.NextReviewDate().Equal(at.Add(3 * day)) {
		t.Errorf("NextReviewDate = %v, want %v", rs.NextReviewDate(), at.Add(3*day))
	}
}

func TestRecord_IncorrectResetsStreak(t *testing.T) {
	sched := NewScheduler()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.Record("q-1", true, now)
	now = now.Add(3 * day)
	sched.Record("q-1", true, now)
	now = now.Add(7 * day)
	sched.Record("q-1", false, now)

	rs := sched.Get("q-1")
	if rs.CorrectStreak != 0 {
		t.Errorf("CorrectStreak = %d, want 0", rs.CorrectStreak)
	}
	if !rs.IsDue(now) {
		t.Error("expected question due after a miss")
	}
}

func TestRecord_IgnoresOlderAnswers(t *testing.T) {
	sched := NewScheduler()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	sched.Record("q-1", true, now)
	sched.Record("q-1", false, now.Add(-time.Hour))

	if rs := sched.Get("q-1"); !rs.LastCorrect || rs.CorrectStreak != 1 {
		t.Errorf("older answer was applied: %+v", rs)
	}
}

func TestRecord_EmptyIDIgnored(t *testing.T) {
	sched := NewScheduler()
	sched.Record("", true, time.Now())
	if sched.Len() != 0 {
		t.Errorf("Len() = %d, want 0", sched.Len())
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	sched := NewScheduler()
	sched.Record("q-1", true, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	sched.Get("q-1").CorrectStreak = 10
	if got := sched.Get("q-1").CorrectStreak; got != 1 {
		t.Errorf("CorrectStreak = %d, want 1", got)
	}
	if sched.Get("missing") != nil {
		t.Error("expected nil for untracked question")
	}
}

func TestDue_SortedByOverdue(t *testing.T) {
	sched := NewScheduler()
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sched.Record("q-missed", false, base.Add(5*day)) // due day 5
	sched.Record("q-early", true, base)              // due day 3
	sched.Record("q-tie-b", true, base.Add(1*day))   // due day 4
	sched.Record("q-tie-a", true, base.Add(1*day))   // due day 4
	sched.Record("q-fresh", true, base.Add(5*day))   // due day 8

	now := base.Add(6 * day)
	got := sched.Due(now)
	want := []string{"q-early", "q-tie-a", "q-tie-b", "q-missed"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Due() = %v, want %v", got, want)
	}
}

func TestDue_Empty(t *testing.T) {
	sched := NewScheduler()
	if got := sched.Due(time.Now()); len(got) != 0 {
		t.Errorf("Due() = %v, want empty", got)
	}
}
