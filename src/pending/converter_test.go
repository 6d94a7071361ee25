package pending

import (
	"context"
	"errors"
	"testing"
	"time"

	"centavo-server/src/models"

	"github.com/sirupsen/logrus"
)

type fakeStore struct {
	converted []string
	failIDs   map[string]bool
}

func (s *fakeStore) ConvertPending(_ context.Context, p models.PendingIncome, _ time.Time) error {
	if s.failIDs[p.ID] {
		return errors.New("store unavailable")
	}
	s.converted = append(s.converted, p.ID)
	return nil
}

func testConverter(store *fakeStore, now time.Time) *Converter {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewConverter(store, func() time.Time { return now }, log)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestSweepConvertsMaturedPending(t *testing.T) {
	now := time.Date(2024, time.March, 10, 9, 30, 0, 0, time.Local)
	pendings := []models.PendingIncome{
		{ID: "p-yesterday", Value: 500, ExpectedDate: date(2024, time.March, 9)},
		{ID: "p-today", Value: 200, ExpectedDate: date(2024, time.March, 10)},
		{ID: "p-tomorrow", Value: 900, ExpectedDate: date(2024, time.March, 11)},
	}

	store := &fakeStore{}
	n := testConverter(store, now).Sweep(context.Background(), pendings)

	if n != 2 {
		t.Fatalf("Sweep converted %d, want 2", n)
	}
	if len(store.converted) != 2 || store.converted[0] != "p-yesterday" || store.converted[1] != "p-today" {
		t.Errorf("converted = %v, want [p-yesterday p-today]", store.converted)
	}
}

func TestSweepSkipsAlreadyConverted(t *testing.T) {
	now := date(2024, time.March, 10)
	pendings := []models.PendingIncome{
		{ID: "p-1", ExpectedDate: date(2024, time.March, 1), Converted: true},
	}

	store := &fakeStore{}
	if n := testConverter(store, now).Sweep(context.Background(), pendings); n != 0 {
		t.Errorf("Sweep converted %d, want 0", n)
	}
}

func TestSweepFailureDoesNotBlockOthers(t *testing.T) {
	now := date(2024, time.March, 10)
	pendings := []models.PendingIncome{
		{ID: "p-1", ExpectedDate: date(2024, time.March, 8)},
		{ID: "p-2", ExpectedDate: date(2024, time.March, 8)},
		{ID: "p-3", ExpectedDate: date(2024, time.March, 8)},
	}

	store := &fakeStore{failIDs: map[string]bool{"p-2": true}}
	n := testConverter(store, now).Sweep(context.Background(), pendings)

	if n != 2 {
		t.Fatalf("Sweep converted %d, want 2 despite the failure", n)
	}
	if len(store.converted) != 2 || store.converted[0] != "p-1" || store.converted[1] != "p-3" {
		t.Errorf("converted = %v, want [p-1 p-3]", store.converted)
	}
}

func TestSweepComparesDaysNotTimestamps(t *testing.T) {
	// Expected late in the day, swept early in the day: same calendar day
	// still counts as matured.
	now := time.Date(2024, time.March, 10, 0, 15, 0, 0, time.Local)
	pendings := []models.PendingIncome{
		{ID: "p-1", ExpectedDate: time.Date(2024, time.March, 10, 23, 0, 0, 0, time.Local)},
	}

	store := &fakeStore{}
	if n := testConverter(store, now).Sweep(context.Background(), pendings); n != 1 {
		t.Errorf("Sweep converted %d, want 1", n)
	}
}
