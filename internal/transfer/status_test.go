package transfer

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/crossrent/crossrent/internal/ident"
)

func TestStatusFreshTransferIsPending(t *testing.T) {
	t0 := time.Now()
	id := ident.New("cctp", t0).String()

	report := Status(id, t0)
	if report.Status != StatusPending {
		t.Fatalf("expected pending, got %q", report.Status)
	}
	if report.Confirmations != "0/12" {
		t.Fatalf("expected 0/12, got %q", report.Confirmations)
	}
	if report.EstimatedCompletion != "5s remaining" {
		t.Fatalf("expected 5s remaining, got %q", report.EstimatedCompletion)
	}
}

func TestStatusProgressesWithElapsedTime(t *testing.T) {
	t0 := time.Now()
	id := ident.New("cctp", t0).String()

	report := Status(id, t0.Add(2600*time.Millisecond))
	if report.Status != StatusPending {
		t.Fatalf("expected pending, got %q", report.Status)
	}
	if report.Confirmations != "5/12" {
		t.Fatalf("expected 5/12, got %q", report.Confirmations)
	}
	if report.EstimatedCompletion != "3s remaining" {
		t.Fatalf("expected 3s remaining, got %q", report.EstimatedCompletion)
	}
}

func TestStatusCompletesAfterFiveSeconds(t *testing.T) {
	t0 := time.Now()
	id := ident.New("cctp", t0).String()

	report := Status(id, t0.Add(6*time.Second))
	if report.Status != StatusCompleted {
		t.Fatalf("expected completed, got %q", report.Status)
	}
	if report.Confirmations != "12/12" {
		t.Fatalf("expected 12/12, got %q", report.Confirmations)
	}
	if report.EstimatedCompletion != "Complete" {
		t.Fatalf("expected Complete, got %q", report.EstimatedCompletion)
	}
}

func TestStatusConfirmationsCapBeforeCompletion(t *testing.T) {
	t0 := time.Now()
	id := ident.New("cctp", t0).String()

	// 4.9s elapsed: floor(4900/500)=9 confirmations, still pending.
	report := Status(id, t0.Add(4900*time.Millisecond))
	if report.Status != StatusPending || report.Confirmations != "9/12" {
		t.Fatalf("unexpected report at 4.9s: %+v", report)
	}
}

func TestStatusMonotonicProgress(t *testing.T) {
	t0 := time.Now()
	id := ident.New("cctp", t0).String()

	var prevConfirmed int
	completed := false
	for elapsed := time.Duration(0); elapsed <= 7*time.Second; elapsed += 250 * time.Millisecond {
		report := Status(id, t0.Add(elapsed))

		var confirmed, total int
		if _, err := fmt.Sscanf(report.Confirmations, "%d/%d", &confirmed, &total); err != nil {
			t.Fatalf("unparseable confirmations %q: %v", report.Confirmations, err)
		}
		if confirmed < prevConfirmed {
			t.Fatalf("confirmations regressed at %s: %d -> %d", elapsed, prevConfirmed, confirmed)
		}
		if completed && report.Status != StatusCompleted {
			t.Fatalf("transfer un-completed at %s", elapsed)
		}
		prevConfirmed = confirmed
		completed = completed || report.Status == StatusCompleted
	}
	if !completed {
		t.Fatalf("transfer never completed")
	}
}

func TestStatusUnparsableIDReportsZeroElapsed(t *testing.T) {
	report := Status("garbage", time.Now())
	if report.Status != StatusPending || report.Confirmations != "0/12" {
		t.Fatalf("unexpected report for unparsable id: %+v", report)
	}
}

func TestStatusLegacyIDForm(t *testing.T) {
	t0 := time.Now().Add(-6 * time.Second)
	id := "cctp_" + strconv.FormatInt(t0.UnixMilli(), 10)

	report := Status(id, time.Now())
	if report.Status != StatusCompleted {
		t.Fatalf("legacy id did not resolve: %+v", report)
	}
}
