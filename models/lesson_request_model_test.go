package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestLessonRequestMinutes(t *testing.T) {
	l := LessonRequest{StartHour: 9, StartMinute: 30, EndHour: 11, EndMinute: 15}
	if got := l.StartMinutes(); got != 570 {
		t.Errorf("StartMinutes() = %d, want 570", got)
	}
	if got := l.EndMinutes(); got != 675 {
		t.Errorf("EndMinutes() = %d, want 675", got)
	}
}

func TestLessonRequestInstants(t *testing.T) {
	l := LessonRequest{
		Date:        time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC),
		StartHour:   9,
		StartMinute: 30,
		EndHour:     11,
		EndMinute:   0,
	}
	wantStart := time.Date(2026, time.September, 7, 9, 30, 0, 0, time.UTC)
	wantEnd := time.Date(2026, time.September, 7, 11, 0, 0, 0, time.UTC)
	if !l.StartsAt().Equal(wantStart) {
		t.Errorf("StartsAt() = %v, want %v", l.StartsAt(), wantStart)
	}
	if !l.EndsAt().Equal(wantEnd) {
		t.Errorf("EndsAt() = %v, want %v", l.EndsAt(), wantEnd)
	}
}

func TestLessonRequestIsParty(t *testing.T) {
	studentID := uuid.New()
	teacherID := uuid.New()
	l := LessonRequest{StudentID: studentID, TeacherID: teacherID}

	if !l.IsParty(studentID) {
		t.Error("student should be a party of the request")
	}
	if !l.IsParty(teacherID) {
		t.Error("teacher should be a party of the request")
	}
	if l.IsParty(uuid.New()) {
		t.Error("a third user should not be a party of the request")
	}
}

func TestValidTag(t *testing.T) {
	if !ValidTag(Subjects, "math") {
		t.Error(`ValidTag(Subjects, "math") = false, want true`)
	}
	if ValidTag(Subjects, "astrology") {
		t.Error(`ValidTag(Subjects, "astrology") = true, want false`)
	}
	if ValidTag(LessonPlaces, "Online") {
		t.Error("tag matching should be case sensitive")
	}
}
