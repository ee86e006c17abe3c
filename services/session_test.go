package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"deal-checker/models"
)

func TestSessionCommitLatest(t *testing.T) {
	s := NewSessionStore(time.Minute)
	report := &models.RawAnalysisReport{Meta: models.ReportMeta{Title: "A"}}

	_, gen := s.Begin(context.Background(), "sess")
	if !s.Commit("sess", gen, report) {
		t.Fatal("Commit of latest generation should succeed")
	}
	if got := s.Current("sess"); got != report {
		t.Errorf("Current: got %+v, want committed report", got)
	}
}

func TestSessionStaleResponseIsDropped(t *testing.T) {
	s := NewSessionStore(time.Minute)
	first := &models.RawAnalysisReport{Meta: models.ReportMeta{Title: "first"}}
	second := &models.RawAnalysisReport{Meta: models.ReportMeta{Title: "second"}}

	ctx1, gen1 := s.Begin(context.Background(), "sess")
	_, gen2 := s.Begin(context.Background(), "sess")

	if !errors.Is(ctx1.Err(), context.Canceled) {
		t.Errorf("older submission context should be cancelled, got %v", ctx1.Err())
	}
	if !s.Commit("sess", gen2, second) {
		t.Fatal("latest Commit should succeed")
	}
	if s.Commit("sess", gen1, first) {
		t.Error("stale Commit arriving last must be rejected")
	}
	if got := s.Current("sess").Meta.Title; got != "second" {
		t.Errorf("Current: got %q, want second", got)
	}
}

func TestSessionBeginClearsHeldReport(t *testing.T) {
	s := NewSessionStore(time.Minute)
	_, gen := s.Begin(context.Background(), "sess")
	s.Commit("sess", gen, &models.RawAnalysisReport{})

	s.Begin(context.Background(), "sess")
	if s.Current("sess") != nil {
		t.Error("a new submission should discard the held report")
	}
}

func TestSessionFailClearsReport(t *testing.T) {
	s := NewSessionStore(time.Minute)
	_, gen := s.Begin(context.Background(), "sess")
	if !s.Fail("sess", gen) {
		t.Fatal("Fail of latest generation should succeed")
	}
	if s.Current("sess") != nil {
		t.Error("Fail should leave no report")
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	s := NewSessionStore(time.Minute)
	_, genA := s.Begin(context.Background(), "a")
	ctxB, _ := s.Begin(context.Background(), "b")

	s.Commit("a", genA, &models.RawAnalysisReport{})
	if ctxB.Err() != nil {
		t.Error("committing session a must not cancel session b")
	}
	if s.Current("b") != nil {
		t.Error("session b should hold no report")
	}
	if !s.Latest("a", genA) {
		t.Error("genA should still be latest for a")
	}
}
