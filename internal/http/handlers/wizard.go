package handlers

import (
	"net/http"
	"strings"

	"wearecars/internal/http/middleware"
	"wearecars/internal/utils"
	"wearecars/internal/wizard"

	"github.com/gin-gonic/gin"
)

var wizardSessions = wizard.NewRegistry()

func wizardSnapshot(w *wizard.Wizard) gin.H {
	snap := gin.H{
		"stage": w.Stage().String(),
		"state": string(w.State()),
		"draft": w.Draft(),
	}
	if w.Stage() == wizard.StageSummary && w.State() == wizard.StateInProgress {
		quote := w.Draft().Quote()
		snap["breakdown"] = quote
		snap["total"] = utils.FormatPounds(quote.TotalCost)
	}
	return snap
}

// POST /api/wizard
func OpenWizard(c *gin.Context) {
	id := wizardSessions.Open()
	utils.LogEvent(middleware.GetRequestID(c), "wizard", "open", "session="+id)
	c.JSON(http.StatusCreated, gin.H{"session_id": id, "stage": wizard.StageCustomerDetails.String()})
}

// GET /api/wizard/:id
func GetWizard(c *gin.Context) {
	var snap gin.H
	err := wizardSessions.With(c.Param("id"), func(w *wizard.Wizard) error {
		snap = wizardSnapshot(w)
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// PUT /api/wizard/:id/draft
func UpdateWizardDraft(c *gin.Context) {
	var patch wizard.DraftPatch
	if !BindJSONOrError(c, &patch) {
		return
	}

	var snap gin.H
	err := wizardSessions.With(c.Param("id"), func(w *wizard.Wizard) error {
		if err := w.Update(patch); err != nil {
			return err
		}
		snap = wizardSnapshot(w)
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// POST /api/wizard/:id/advance
func AdvanceWizard(c *gin.Context) {
	var snap gin.H
	err := wizardSessions.With(c.Param("id"), func(w *wizard.Wizard) error {
		if err := w.Advance(); err != nil {
			return err
		}
		snap = wizardSnapshot(w)
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// POST /api/wizard/:id/retreat
func RetreatWizard(c *gin.Context) {
	var snap gin.H
	err := wizardSessions.With(c.Param("id"), func(w *wizard.Wizard) error {
		if err := w.Retreat(); err != nil {
			return err
		}
		snap = wizardSnapshot(w)
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

type cancelRequest struct {
	Confirm bool `json:"confirm"`
}

// POST /api/wizard/:id/cancel asks the yes/no question over the wire:
// confirm=false leaves the wizard untouched.
func CancelWizard(c *gin.Context) {
	var req cancelRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	var cancelled bool
	var snap gin.H
	err := wizardSessions.With(c.Param("id"), func(w *wizard.Wizard) error {
		var err error
		cancelled, err = w.Cancel(req.Confirm)
		if err != nil {
			return err
		}
		snap = gin.H{"cancelled": cancelled, "state": string(w.State())}
		return nil
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if cancelled {
		utils.LogEvent(middleware.GetRequestID(c), "wizard", "cancel", "session="+c.Param("id"))
	}
	c.JSON(http.StatusOK, snap)
}

type confirmRequest struct {
	StartDate string `json:"start_date"`
}

// POST /api/wizard/:id/confirm
func ConfirmWizard(c *gin.Context) {
	var req confirmRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondError(c, http.StatusBadRequest, "invalid payload", err)
			return
		}
	}
	startDate := strings.TrimSpace(req.StartDate)
	if startDate == "" {
		startDate = utils.FormatDate(utils.NowUTC())
	}

	svc := bookingService(c)
	var result wizard.Result
	err := wizardSessions.With(c.Param("id"), func(w *wizard.Wizard) error {
		var err error
		result, err = w.Confirm(svc, startDate)
		return err
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking_id":  result.BookingID,
		"customer_id": result.CustomerID,
		"start_date":  result.StartDate,
		"breakdown":   result.Breakdown,
		"total_cost":  utils.FormatPounds(result.Breakdown.TotalCost),
	})
}
