package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"

	"github.com/adamzur/lesson_tutor/models"
)

func TestTransitionRuleFor(t *testing.T) {
	legal := []struct{ from, to string }{
		{models.StatusPending, models.StatusAccepted},
		{models.StatusPending, models.StatusRejected},
	}
	for _, tr := range legal {
		if _, err := transitionRuleFor(tr.from, tr.to); err != nil {
			t.Errorf("transitionRuleFor(%q, %q) = %v, want nil", tr.from, tr.to, err)
		}
	}

	illegal := []struct{ from, to string }{
		{models.StatusAccepted, models.StatusRejected},
		{models.StatusAccepted, models.StatusPending},
		{models.StatusRejected, models.StatusAccepted},
		{models.StatusRejected, models.StatusPending},
		{models.StatusPending, models.StatusPending},
		{models.StatusAccepted, models.StatusAccepted},
		{"bogus", models.StatusAccepted},
	}
	for _, tr := range illegal {
		if _, err := transitionRuleFor(tr.from, tr.to); !errors.Is(err, ErrInvalidTransition) {
			t.Errorf("transitionRuleFor(%q, %q) = %v, want ErrInvalidTransition", tr.from, tr.to, err)
		}
	}
}

func TestRejectionOpensThread(t *testing.T) {
	reject, err := transitionRuleFor(models.StatusPending, models.StatusRejected)
	if err != nil {
		t.Fatalf("transitionRuleFor(pending, rejected) = %v", err)
	}
	if !reject.opensThread {
		t.Error("rejecting a lesson request should open a conversation")
	}

	accept, err := transitionRuleFor(models.StatusPending, models.StatusAccepted)
	if err != nil {
		t.Fatalf("transitionRuleFor(pending, accepted) = %v", err)
	}
	if accept.opensThread {
		t.Error("accepting a lesson request should not open a conversation")
	}
}

func TestAcceptDeadlineGuard(t *testing.T) {
	now := time.Date(2026, time.September, 7, 12, 0, 0, 0, time.UTC)

	future := &models.LessonRequest{
		Date:      now,
		StartHour: 14,
		EndHour:   15,
	}
	if err := acceptDeadlineGuard(future, now); err != nil {
		t.Errorf("guard rejected a future lesson: %v", err)
	}

	past := &models.LessonRequest{
		Date:      now,
		StartHour: 10,
		EndHour:   11,
	}
	if err := acceptDeadlineGuard(past, now); !errors.Is(err, ErrTemporalViolation) {
		t.Errorf("guard on a started lesson = %v, want ErrTemporalViolation", err)
	}
}

func TestDecisionThreadSeed(t *testing.T) {
	studentID := uuid.New()
	teacherID := uuid.New()
	lesson := &models.LessonRequest{StudentID: studentID, Comment: "can we cover derivatives?"}

	seed := decisionThreadSeed(lesson, teacherID, "sorry, that slot is taken")
	if len(seed) != 2 {
		t.Fatalf("len(seed) = %d, want 2", len(seed))
	}
	if seed[0].SenderID != studentID || seed[0].Content != "can we cover derivatives?" {
		t.Errorf("first message should be the student's creation comment, got %+v", seed[0])
	}
	if seed[1].SenderID != teacherID || seed[1].Content != "sorry, that slot is taken" {
		t.Errorf("second message should be the decision message, got %+v", seed[1])
	}
}

func TestLessonLinkWriteTouchesOnlyTheLink(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true, SkipDefaultTransaction: true})
	if err != nil {
		t.Fatalf("open dry-run db: %v", err)
	}

	lesson := models.LessonRequest{ID: uuid.New(), Status: models.StatusPending}
	tx := lessonLinkWrite(db, &lesson, "https://meet.example.com/abc")
	if tx.Error != nil {
		t.Fatalf("lessonLinkWrite() error: %v", tx.Error)
	}

	sql := tx.Statement.SQL.String()
	if !strings.Contains(sql, "online_lesson_link") {
		t.Errorf("update does not set the link column: %s", sql)
	}
	// A concurrent decision may have changed the status between the read and
	// this write. The update must not carry the stale value along.
	if strings.Contains(sql, "status") {
		t.Errorf("update writes the status column: %s", sql)
	}

	if lesson.OnlineLessonLink == nil || *lesson.OnlineLessonLink != "https://meet.example.com/abc" {
		t.Error("returned lesson does not carry the new link")
	}
}

func TestDecisionThreadSeedSkipsEmpty(t *testing.T) {
	studentID := uuid.New()
	teacherID := uuid.New()

	noComment := &models.LessonRequest{StudentID: studentID}
	seed := decisionThreadSeed(noComment, teacherID, "not this week")
	if len(seed) != 1 {
		t.Fatalf("len(seed) = %d, want 1", len(seed))
	}
	if seed[0].SenderID != teacherID {
		t.Errorf("seed[0].SenderID = %v, want acting party %v", seed[0].SenderID, teacherID)
	}

	withComment := &models.LessonRequest{StudentID: studentID, Comment: "hello"}
	seed = decisionThreadSeed(withComment, teacherID, "")
	if len(seed) != 1 {
		t.Fatalf("len(seed) = %d, want 1", len(seed))
	}
	if seed[0].SenderID != studentID {
		t.Errorf("seed[0].SenderID = %v, want student %v", seed[0].SenderID, studentID)
	}

	if seed := decisionThreadSeed(noComment, teacherID, ""); len(seed) != 0 {
		t.Errorf("len(seed) = %d, want 0 when both texts are empty", len(seed))
	}
}
