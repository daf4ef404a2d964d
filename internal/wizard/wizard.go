package wizard

import (
	"wearecars/internal/domain"
	"wearecars/internal/pricing"
	"wearecars/internal/utils"
)

// Stage identifies one of the four ordered wizard steps.
type Stage int

const (
	StageCustomerDetails Stage = iota
	StageRentalDetails
	StageExtras
	StageSummary
)

// State is the lifecycle of a wizard instance. A wizard is InProgress until it
// reaches one of the two terminal states.
type State string

const (
	StateInProgress State = "in_progress"
	StateConfirmed  State = "confirmed"
	StateCancelled  State = "cancelled"
)

func (s Stage) String() string {
	switch s {
	case StageCustomerDetails:
		return "customer_details"
	case StageRentalDetails:
		return "rental_details"
	case StageExtras:
		return "extras"
	case StageSummary:
		return "summary"
	}
	return "unknown"
}

// Draft holds the in-progress booking data. It is never persisted until
// Confirm succeeds and is discarded on cancel.
type Draft struct {
	FirstName        string          `json:"first_name"`
	Surname          string          `json:"surname"`
	Address          string          `json:"address"`
	Age              int             `json:"age"`
	LicenseValid     bool            `json:"license_valid"`
	Days             int             `json:"days"`
	CarType          domain.CarType  `json:"car_type"`
	FuelType         domain.FuelType `json:"fuel_type"`
	UnlimitedMileage bool            `json:"unlimited_mileage"`
	BreakdownCover   bool            `json:"breakdown_cover"`
}

// DefaultDraft mirrors the initial form values of the booking screen.
func DefaultDraft() Draft {
	return Draft{
		Age:          25,
		LicenseValid: true,
		Days:         5,
		CarType:      domain.CarCity,
		FuelType:     domain.FuelPetrol,
	}
}

// ValidateCustomer applies the customer gate in fixed order and stops at the
// first failing rule.
func (d Draft) ValidateCustomer() error {
	if utils.TrimOrEmpty(d.FirstName) == "" {
		return domain.ValidationError{Field: "first_name", Msg: "first name required"}
	}
	if utils.TrimOrEmpty(d.Surname) == "" {
		return domain.ValidationError{Field: "surname", Msg: "surname required"}
	}
	if utils.TrimOrEmpty(d.Address) == "" {
		return domain.ValidationError{Field: "address", Msg: "address required"}
	}
	if !d.LicenseValid {
		return domain.ValidationError{Field: "license_valid", Msg: "customer must have a valid driving license"}
	}
	return nil
}

// Quote recomputes the price breakdown from the current draft values.
func (d Draft) Quote() pricing.Breakdown {
	return pricing.Quote(d.Days, d.CarType, d.FuelType, d.UnlimitedMileage, d.BreakdownCover)
}

// Store persists a finished draft. Both inserts happen inside one transaction
// so a failed booking insert leaves no orphaned customer row.
type Store interface {
	ConfirmBooking(d Draft, startDate string) (customerID, bookingID int64, err error)
}

// Wizard walks a draft through the four stages. Not safe for concurrent use;
// the session registry serializes access per instance.
type Wizard struct {
	stage Stage
	state State
	draft Draft
}

func New() *Wizard {
	return &Wizard{
		stage: StageCustomerDetails,
		state: StateInProgress,
		draft: DefaultDraft(),
	}
}

func (w *Wizard) Stage() Stage { return w.stage }
func (w *Wizard) State() State { return w.state }
func (w *Wizard) Draft() Draft { return w.draft }

func (w *Wizard) ensureOpen() error {
	if w.state != StateInProgress {
		return domain.ValidationError{Field: "wizard", Msg: "wizard already closed"}
	}
	return nil
}

// DraftPatch updates draft fields by key presence, the way the booking form
// writes individual inputs.
type DraftPatch struct {
	FirstName        *string `json:"first_name"`
	Surname          *string `json:"surname"`
	Address          *string `json:"address"`
	Age              *int    `json:"age"`
	LicenseValid     *bool   `json:"license_valid"`
	Days             *int    `json:"days"`
	CarType          *string `json:"car_type"`
	FuelType         *string `json:"fuel_type"`
	UnlimitedMileage *bool   `json:"unlimited_mileage"`
	BreakdownCover   *bool   `json:"breakdown_cover"`
}

// Update applies a patch to the draft. Age and days are enforced structurally
// (like the form widgets); car and fuel types must name a known category.
func (w *Wizard) Update(p DraftPatch) error {
	if err := w.ensureOpen(); err != nil {
		return err
	}
	if p.Age != nil && (*p.Age < domain.MinCustomerAge || *p.Age > domain.MaxCustomerAge) {
		return domain.ValidationError{Field: "age", Msg: "age must be between 18 and 100"}
	}
	if p.Days != nil && (*p.Days < domain.MinRentalDays || *p.Days > domain.MaxRentalDays) {
		return domain.ValidationError{Field: "days", Msg: "rental length must be between 1 and 28 days"}
	}
	if p.CarType != nil && !domain.ValidCarType(*p.CarType) {
		return domain.ValidationError{Field: "car_type", Msg: "unknown car type"}
	}
	if p.FuelType != nil && !domain.ValidFuelType(*p.FuelType) {
		return domain.ValidationError{Field: "fuel_type", Msg: "unknown fuel type"}
	}

	if p.FirstName != nil {
		w.draft.FirstName = *p.FirstName
	}
	if p.Surname != nil {
		w.draft.Surname = *p.Surname
	}
	if p.Address != nil {
		w.draft.Address = *p.Address
	}
	if p.Age != nil {
		w.draft.Age = *p.Age
	}
	if p.LicenseValid != nil {
		w.draft.LicenseValid = *p.LicenseValid
	}
	if p.Days != nil {
		w.draft.Days = *p.Days
	}
	if p.CarType != nil {
		w.draft.CarType = domain.CarType(*p.CarType)
	}
	if p.FuelType != nil {
		w.draft.FuelType = domain.FuelType(*p.FuelType)
	}
	if p.UnlimitedMileage != nil {
		w.draft.UnlimitedMileage = *p.UnlimitedMileage
	}
	if p.BreakdownCover != nil {
		w.draft.BreakdownCover = *p.BreakdownCover
	}
	return nil
}

// Advance moves to the next stage. Leaving the customer stage is gated by the
// validation predicate; a failed gate leaves the stage unchanged and reports
// the first failing rule.
func (w *Wizard) Advance() error {
	if err := w.ensureOpen(); err != nil {
		return err
	}
	if w.stage >= StageSummary {
		return domain.ValidationError{Field: "stage", Msg: "already at summary"}
	}
	if w.stage == StageCustomerDetails {
		if err := w.draft.ValidateCustomer(); err != nil {
			return err
		}
	}
	w.stage++
	return nil
}

// Retreat moves back one stage, never gated.
func (w *Wizard) Retreat() error {
	if err := w.ensureOpen(); err != nil {
		return err
	}
	if w.stage <= StageCustomerDetails {
		return domain.ValidationError{Field: "stage", Msg: "already at first stage"}
	}
	w.stage--
	return nil
}

// Cancel discards the draft when confirmed; declining the prompt leaves the
// wizard untouched. Returns whether the wizard was cancelled.
func (w *Wizard) Cancel(confirm bool) (bool, error) {
	if err := w.ensureOpen(); err != nil {
		return false, err
	}
	if !confirm {
		return false, nil
	}
	w.state = StateCancelled
	w.draft = Draft{}
	return true, nil
}

// Result reports the persisted ids of a confirmed booking.
type Result struct {
	CustomerID int64             `json:"customer_id"`
	BookingID  int64             `json:"booking_id"`
	StartDate  string            `json:"start_date"`
	Breakdown  pricing.Breakdown `json:"breakdown"`
}

// Confirm persists the draft. Only valid from the summary stage; the customer
// gate runs again before anything is written. On store failure the draft and
// stage are preserved so the user can retry.
func (w *Wizard) Confirm(store Store, startDate string) (Result, error) {
	if err := w.ensureOpen(); err != nil {
		return Result{}, err
	}
	if w.stage != StageSummary {
		return Result{}, domain.ValidationError{Field: "stage", Msg: "confirm only allowed from summary"}
	}
	if err := w.draft.ValidateCustomer(); err != nil {
		return Result{}, err
	}

	customerID, bookingID, err := store.ConfirmBooking(w.draft, startDate)
	if err != nil {
		return Result{}, err
	}

	res := Result{
		CustomerID: customerID,
		BookingID:  bookingID,
		StartDate:  startDate,
		Breakdown:  w.draft.Quote(),
	}
	w.state = StateConfirmed
	return res, nil
}
