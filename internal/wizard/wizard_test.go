package wizard

import (
	"errors"
	"strings"
	"testing"

	"wearecars/internal/domain"
)

func validDraftPatch() DraftPatch {
	first := "Jane"
	surname := "Doe"
	address := "1 High St, Leeds"
	return DraftPatch{FirstName: &first, Surname: &surname, Address: &address}
}

func TestAdvanceBlockedByFirstFailingRule(t *testing.T) {
	cases := []struct {
		name  string
		patch func(p *DraftPatch)
		field string
	}{
		{"empty first name", func(p *DraftPatch) { empty := "   "; p.FirstName = &empty }, "first_name"},
		{"empty surname", func(p *DraftPatch) { empty := ""; p.Surname = &empty }, "surname"},
		{"whitespace address", func(p *DraftPatch) { ws := "  \t "; p.Address = &ws }, "address"},
		{"invalid license", func(p *DraftPatch) { no := false; p.LicenseValid = &no }, "license_valid"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := New()
			patch := validDraftPatch()
			tc.patch(&patch)
			if err := w.Update(patch); err != nil {
				t.Fatalf("update failed: %v", err)
			}

			err := w.Advance()
			if err == nil {
				t.Fatalf("advance should be refused")
			}
			var verr domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected validation error, got %T", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("wrong failing rule reported: got %s want %s", verr.Field, tc.field)
			}
			if w.Stage() != StageCustomerDetails {
				t.Fatalf("stage moved on failed validation: %v", w.Stage())
			}
		})
	}
}

func TestAdvanceThroughAllStages(t *testing.T) {
	w := New()
	if err := w.Update(validDraftPatch()); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	for _, want := range []Stage{StageRentalDetails, StageExtras, StageSummary} {
		if err := w.Advance(); err != nil {
			t.Fatalf("advance to %v failed: %v", want, err)
		}
		if w.Stage() != want {
			t.Fatalf("stage: got %v want %v", w.Stage(), want)
		}
	}

	if err := w.Advance(); err == nil {
		t.Fatalf("advance past summary should be refused")
	}
	if w.Stage() != StageSummary {
		t.Fatalf("stage changed after refused advance")
	}
}

func TestRetreatKeepsDraftValues(t *testing.T) {
	w := New()

	if err := w.Retreat(); err == nil {
		t.Fatalf("retreat from first stage should be refused")
	}

	if err := w.Update(validDraftPatch()); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := w.Advance(); err != nil {
		t.Fatalf("advance failed: %v", err)
	}
	if err := w.Retreat(); err != nil {
		t.Fatalf("retreat failed: %v", err)
	}
	if w.Stage() != StageCustomerDetails {
		t.Fatalf("stage: got %v want customer details", w.Stage())
	}
	if w.Draft().FirstName != "Jane" || w.Draft().Surname != "Doe" {
		t.Fatalf("draft values lost on retreat: %+v", w.Draft())
	}
}

func TestCancelPrompt(t *testing.T) {
	w := New()

	cancelled, err := w.Cancel(false)
	if err != nil {
		t.Fatalf("declined cancel errored: %v", err)
	}
	if cancelled || w.State() != StateInProgress {
		t.Fatalf("declined cancel must leave wizard untouched")
	}

	cancelled, err = w.Cancel(true)
	if err != nil {
		t.Fatalf("cancel errored: %v", err)
	}
	if !cancelled || w.State() != StateCancelled {
		t.Fatalf("cancel did not close wizard")
	}

	if err := w.Advance(); err == nil {
		t.Fatalf("advance after cancel should fail")
	}
}

func TestUpdateEnforcesWidgetBounds(t *testing.T) {
	w := New()

	age := 17
	if err := w.Update(DraftPatch{Age: &age}); err == nil {
		t.Fatalf("age below 18 accepted")
	}
	days := 29
	if err := w.Update(DraftPatch{Days: &days}); err == nil {
		t.Fatalf("days above 28 accepted")
	}
	bogus := "Lorry"
	if err := w.Update(DraftPatch{CarType: &bogus}); err == nil {
		t.Fatalf("unknown car type accepted")
	}
	if err := w.Update(DraftPatch{FuelType: &bogus}); err == nil {
		t.Fatalf("unknown fuel type accepted")
	}

	d := w.Draft()
	if d.Age != 25 || d.Days != 5 || d.CarType != domain.CarCity {
		t.Fatalf("rejected patch mutated draft: %+v", d)
	}
}

type fakeStore struct {
	customerID int64
	bookingID  int64
	err        error
	calls      int
}

func (f *fakeStore) ConfirmBooking(d Draft, startDate string) (int64, int64, error) {
	f.calls++
	if f.err != nil {
		return 0, 0, f.err
	}
	return f.customerID, f.bookingID, nil
}

func toSummary(t *testing.T, w *Wizard) {
	t.Helper()
	if err := w.Update(validDraftPatch()); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	for w.Stage() != StageSummary {
		if err := w.Advance(); err != nil {
			t.Fatalf("advance failed: %v", err)
		}
	}
}

func TestConfirmOnlyFromSummary(t *testing.T) {
	w := New()
	store := &fakeStore{customerID: 7, bookingID: 11}

	if _, err := w.Confirm(store, "2025-06-01"); err == nil {
		t.Fatalf("confirm from customer stage should be refused")
	}
	if store.calls != 0 {
		t.Fatalf("store called before summary stage")
	}

	toSummary(t, w)
	res, err := w.Confirm(store, "2025-06-01")
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if res.CustomerID != 7 || res.BookingID != 11 {
		t.Fatalf("unexpected result: %+v", res)
	}
	if res.Breakdown.TotalCost != res.Breakdown.BaseCost+res.Breakdown.CarSurcharge+res.Breakdown.FuelSurcharge+res.Breakdown.ExtrasCost {
		t.Fatalf("breakdown does not add up: %+v", res.Breakdown)
	}
	if w.State() != StateConfirmed {
		t.Fatalf("wizard not confirmed")
	}
}

func TestConfirmStoreFailurePreservesDraft(t *testing.T) {
	w := New()
	store := &fakeStore{err: domain.UnavailableError{Msg: "store unavailable"}}

	toSummary(t, w)
	if _, err := w.Confirm(store, "2025-06-01"); !domain.IsUnavailable(err) {
		t.Fatalf("expected unavailable error, got %v", err)
	}
	if w.State() != StateInProgress || w.Stage() != StageSummary {
		t.Fatalf("failed confirm must keep wizard at summary")
	}
	if w.Draft().FirstName != "Jane" {
		t.Fatalf("draft lost after failed confirm")
	}

	// retry succeeds with the same draft
	store.err = nil
	store.customerID, store.bookingID = 1, 2
	if _, err := w.Confirm(store, "2025-06-01"); err != nil {
		t.Fatalf("retry failed: %v", err)
	}
}

func TestRegistryLifecycle(t *testing.T) {
	r := NewRegistry()
	id := r.Open()
	if r.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", r.Len())
	}

	if err := r.With("missing", func(w *Wizard) error { return nil }); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}

	err := r.With(id, func(w *Wizard) error {
		_, err := w.Cancel(true)
		return err
	})
	if err != nil {
		t.Fatalf("cancel via registry failed: %v", err)
	}
	if r.Len() != 0 {
		t.Fatalf("terminal session not dropped, len=%d", r.Len())
	}

	if !strings.Contains(id, "-") {
		t.Fatalf("unexpected session id shape: %s", id)
	}
}
