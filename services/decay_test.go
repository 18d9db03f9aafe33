package services

import (
	"testing"

	"github.com/gogumaworld/goguma/models"
)

func markerFor(t *testing.T, svc *DecayService, userID uint) string {
	t.Helper()
	var activity models.UserActivity
	if err := svc.db.Where("user_id = ?", userID).First(&activity).Error; err != nil {
		t.Fatalf("load marker for user %d: %v", userID, err)
	}
	return activity.LastVisitDate
}

func TestDecayFirstVisitCreatesMarker(t *testing.T) {
	db := newTestDB(t)
	svc := NewDecayService(db, 5)
	user, goguma := seedUserWithGoguma(t, db, "alice", 40)

	applied, err := svc.Apply(user.ID, "2026-08-28")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if applied {
		t.Error("applied = true, want false on first visit")
	}

	if got := markerFor(t, svc, user.ID); got != "2026-08-28" {
		t.Errorf("marker = %q, want 2026-08-28", got)
	}
	if got := gogumaHP(t, db, goguma.ID); got != 40 {
		t.Errorf("hp = %d, want unchanged 40 on first visit", got)
	}
}

func TestDecayAppliesPenaltyPerElapsedDay(t *testing.T) {
	db := newTestDB(t)
	svc := NewDecayService(db, 5)
	user, goguma := seedUserWithGoguma(t, db, "bob", 40)

	if err := db.Create(&models.UserActivity{UserID: user.ID, LastVisitDate: "2026-08-25"}).Error; err != nil {
		t.Fatalf("seed marker: %v", err)
	}

	applied, err := svc.Apply(user.ID, "2026-08-28")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !applied {
		t.Error("applied = false, want true when a penalty ran")
	}

	if got := gogumaHP(t, db, goguma.ID); got != 25 {
		t.Errorf("hp = %d, want 40 - 3*5 = 25", got)
	}
	if got := markerFor(t, svc, user.ID); got != "2026-08-28" {
		t.Errorf("marker = %q, want advanced to 2026-08-28", got)
	}
}

func TestDecayFloorsAtZero(t *testing.T) {
	db := newTestDB(t)
	svc := NewDecayService(db, 5)
	user, goguma := seedUserWithGoguma(t, db, "carol", 5)

	if err := db.Create(&models.UserActivity{UserID: user.ID, LastVisitDate: "2026-08-25"}).Error; err != nil {
		t.Fatalf("seed marker: %v", err)
	}

	if _, err := svc.Apply(user.ID, "2026-08-28"); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got := gogumaHP(t, db, goguma.ID); got != 0 {
		t.Errorf("hp = %d, want clamped to 0", got)
	}
}

func TestDecaySameDayIsNoop(t *testing.T) {
	db := newTestDB(t)
	svc := NewDecayService(db, 5)
	user, goguma := seedUserWithGoguma(t, db, "dave", 40)

	if err := db.Create(&models.UserActivity{UserID: user.ID, LastVisitDate: "2026-08-28"}).Error; err != nil {
		t.Fatalf("seed marker: %v", err)
	}

	applied, err := svc.Apply(user.ID, "2026-08-28")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if applied {
		t.Error("applied = true, want false on a same-day visit")
	}

	if got := gogumaHP(t, db, goguma.ID); got != 40 {
		t.Errorf("hp = %d, want unchanged 40", got)
	}
	if got := markerFor(t, svc, user.ID); got != "2026-08-28" {
		t.Errorf("marker = %q, want unchanged", got)
	}
}

func TestDecayClampsBackwardClock(t *testing.T) {
	db := newTestDB(t)
	svc := NewDecayService(db, 5)
	user, goguma := seedUserWithGoguma(t, db, "erin", 40)

	if err := db.Create(&models.UserActivity{UserID: user.ID, LastVisitDate: "2026-08-30"}).Error; err != nil {
		t.Fatalf("seed marker: %v", err)
	}

	applied, err := svc.Apply(user.ID, "2026-08-28")
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if applied {
		t.Error("applied = true, want false on backward clock")
	}

	if got := gogumaHP(t, db, goguma.ID); got != 40 {
		t.Errorf("hp = %d, want no penalty on backward clock", got)
	}
	if got := markerFor(t, svc, user.ID); got != "2026-08-28" {
		t.Errorf("marker = %q, want clamped to 2026-08-28", got)
	}
}

func TestDecayHitsEveryGogumaOfTheUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewDecayService(db, 5)
	user, first := seedUserWithGoguma(t, db, "frank", 30)

	second := models.Goguma{UserID: user.ID, Name: "second", HP: 12}
	if err := db.Create(&second).Error; err != nil {
		t.Fatalf("create second goguma: %v", err)
	}
	_, otherGoguma := seedUserWithGoguma(t, db, "grace", 30)

	if err := db.Create(&models.UserActivity{UserID: user.ID, LastVisitDate: "2026-08-26"}).Error; err != nil {
		t.Fatalf("seed marker: %v", err)
	}

	if _, err := svc.Apply(user.ID, "2026-08-28"); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if got := gogumaHP(t, db, first.ID); got != 20 {
		t.Errorf("first hp = %d, want 20", got)
	}
	if got := gogumaHP(t, db, second.ID); got != 2 {
		t.Errorf("second hp = %d, want 2", got)
	}
	// Another user's goguma is untouched.
	if got := gogumaHP(t, db, otherGoguma.ID); got != 30 {
		t.Errorf("other user's hp = %d, want 30", got)
	}
}
