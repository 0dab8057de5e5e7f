package usecase

import (
	"context"
	"errors"
	"time"

	"repairhub/internal/converter"
	"repairhub/internal/delivery/dto"
	"repairhub/internal/domain/entity"
	"repairhub/internal/domain/lifecycle"
	domainRepo "repairhub/internal/domain/repository"
	"repairhub/internal/repository"
	"repairhub/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrBookingNotFound  = errors.New("booking not found")
	ErrEngineerNotFound = errors.New("engineer not found")
	ErrActorNotFound    = errors.New("acting user not found")
	ErrTaskNotOwned     = errors.New("task is not assigned to you")
	ErrReportFrozen     = errors.New("completion report can no longer be modified")
	ErrDraftNotAllowed  = errors.New("report draft can only be saved while work is in progress")
)

// Actor identifies who requests a transition. Name is resolved from the
// user record, so callers only need the authenticated user id and role.
type Actor struct {
	Type   entity.ActorType
	UserID uuid.UUID
}

// TransitionPayload carries the optional inputs a transition may require.
type TransitionPayload struct {
	EngineerID   *uuid.UUID
	HoldReason   string
	UnableReason string
	CancelReason string
	Report       *dto.CompletionReportRequest
}

type BookingLifecycleUsecase interface {
	ApplyTransition(ctx context.Context, bookingID uuid.UUID, to entity.BookingStatus, actor Actor, payload *TransitionPayload) (*dto.BookingResponse, error)
	SaveReportDraft(ctx context.Context, bookingID uuid.UUID, actor Actor, req *dto.CompletionReportRequest) (*dto.CompletionReportResponse, error)
	GetHistory(ctx context.Context, bookingID uuid.UUID) (*dto.HistoryListResponse, error)
}

type bookingLifecycleUsecase struct {
	txm          repository.TxManager
	log          *logrus.Logger
	bookingRepo  domainRepo.BookingRepository
	reportRepo   domainRepo.CompletionReportRepository
	historyRepo  domainRepo.BookingHistoryRepository
	artifactRepo domainRepo.ProofArtifactRepository
	userRepo     domainRepo.UserRepository
	notifier     service.Notifier
}

func NewBookingLifecycleUsecase(
	txm repository.TxManager,
	log *logrus.Logger,
	bookingRepo domainRepo.BookingRepository,
	reportRepo domainRepo.CompletionReportRepository,
	historyRepo domainRepo.BookingHistoryRepository,
	artifactRepo domainRepo.ProofArtifactRepository,
	userRepo domainRepo.UserRepository,
	notifier service.Notifier,
) BookingLifecycleUsecase {
	return &bookingLifecycleUsecase{
		txm:          txm,
		log:          log,
		bookingRepo:  bookingRepo,
		reportRepo:   reportRepo,
		historyRepo:  historyRepo,
		artifactRepo: artifactRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

// ApplyTransition moves a booking to a new status.
//
// Flow:
// 1. Load booking (not found -> ErrBookingNotFound)
// 2. Idempotent accept: target == current status is a no-op success
// 3. lifecycle.Decide validates the edge and builds the side-effect plan
// 4. One transaction: compare-and-swap status update + report freeze +
//    history entry. RowsAffected == 0 means a concurrent transition won
//    the race -> ConflictError, nothing written.
// 5. Dispatch notifications after commit; their failures never roll back
//    the transition.
func (u *bookingLifecycleUsecase) ApplyTransition(ctx context.Context, bookingID uuid.UUID, to entity.BookingStatus, actor Actor, payload *TransitionPayload) (*dto.BookingResponse, error) {
	if payload == nil {
		payload = &TransitionPayload{}
	}

	booking, err := u.bookingRepo.FindByID(u.txm.DB(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	// Idempotent accept: no mutation, no history, no notifications.
	if booking.Status == to {
		return converter.BookingToResponse(booking), nil
	}

	actorUser, err := u.userRepo.FindByID(u.txm.DB(ctx), actor.UserID)
	if err != nil {
		u.log.Warnf("Failed to find acting user %s: %+v", actor.UserID, err)
		return nil, err
	}
	if actorUser == nil {
		return nil, ErrActorNotFound
	}

	input, engineer, draft, err := u.buildInput(ctx, booking, to, payload)
	if err != nil {
		return nil, err
	}

	decision, err := lifecycle.Decide(booking.Status, to, actor.Type, input)
	if err != nil {
		return nil, err
	}

	// An engineer may only act on a task currently assigned to them.
	// Checked after the edge itself validates, so an illegal transition
	// is reported as a conflict even when the booking is unassigned.
	if actor.Type == entity.ActorEngineer && booking.AssignedEngineer != actorUser.FullName {
		return nil, ErrTaskNotOwned
	}

	patch := buildPatch(decision)

	err = u.txm.Transaction(ctx, func(tx *gorm.DB) error {
		rows, err := u.bookingRepo.UpdateStatusIfCurrent(tx, booking.ID, booking.Status, patch)
		if err != nil {
			return err
		}
		if rows == 0 {
			// Lost the race: another transition changed the status
			// after our read.
			return &lifecycle.ConflictError{From: booking.Status, To: to, Actor: actor.Type}
		}

		if decision.FreezeReport {
			if payload.Report != nil {
				report := reportFromRequest(booking.ID, actor.UserID, payload.Report)
				// An inline report without proof refs must not wipe the
				// proofs a saved draft already holds.
				if len(report.ProofImages) == 0 && draft != nil {
					report.ProofImages = draft.ProofImages
				}
				if err := u.reportRepo.Upsert(tx, report); err != nil {
					return err
				}
			}
			if err := u.reportRepo.MarkCompleted(tx, booking.ID); err != nil {
				return err
			}
		}

		return u.historyRepo.Create(tx, &entity.BookingHistory{
			BookingID:      booking.ID,
			PreviousStatus: booking.Status,
			NewStatus:      to,
			ActorType:      actor.Type,
			ActorName:      actorUser.FullName,
			Remarks:        decision.Remarks,
		})
	})
	if err != nil {
		return nil, err
	}

	previous := booking.Status
	applyDecision(booking, decision)

	u.dispatchNotices(booking, decision, engineer)

	u.log.Infof("Booking transitioned: id=%s, %s -> %s, actor=%s (%s)",
		booking.ID, previous, booking.Status, actorUser.FullName, actor.Type)

	return converter.BookingToResponse(booking), nil
}

// SaveReportDraft creates or updates the completion report while work is
// still ongoing, without touching the booking status.
func (u *bookingLifecycleUsecase) SaveReportDraft(ctx context.Context, bookingID uuid.UUID, actor Actor, req *dto.CompletionReportRequest) (*dto.CompletionReportResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.txm.DB(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to find booking %s: %+v", bookingID, err)
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if booking.IsCompleted() {
		return nil, ErrReportFrozen
	}
	if booking.Status != entity.BookingStatusInProgress && booking.Status != entity.BookingStatusHoldOnWork {
		return nil, ErrDraftNotAllowed
	}

	actorUser, err := u.userRepo.FindByID(u.txm.DB(ctx), actor.UserID)
	if err != nil {
		return nil, err
	}
	if actorUser == nil {
		return nil, ErrActorNotFound
	}
	if booking.AssignedEngineer != actorUser.FullName {
		return nil, ErrTaskNotOwned
	}

	report := reportFromRequest(booking.ID, actor.UserID, req)
	if err := u.reportRepo.Upsert(u.txm.DB(ctx), report); err != nil {
		u.log.Warnf("Failed to save report draft for booking %s: %+v", bookingID, err)
		return nil, err
	}

	saved, err := u.reportRepo.FindByBookingID(u.txm.DB(ctx), booking.ID)
	if err != nil || saved == nil {
		return converter.ReportToResponse(report), nil
	}
	return converter.ReportToResponse(saved), nil
}

func (u *bookingLifecycleUsecase) GetHistory(ctx context.Context, bookingID uuid.UUID) (*dto.HistoryListResponse, error) {
	booking, err := u.bookingRepo.FindByID(u.txm.DB(ctx), bookingID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	entries, err := u.historyRepo.FindByBookingID(u.txm.DB(ctx), bookingID)
	if err != nil {
		u.log.Warnf("Failed to load history for booking %s: %+v", bookingID, err)
		return nil, err
	}

	return &dto.HistoryListResponse{
		Entries: converter.HistoryToResponses(entries),
		Total:   len(entries),
	}, nil
}

// buildInput assembles the lifecycle input from the payload plus stored
// state: the engineer being assigned, and report/proof presence for the
// completion check. The saved draft, when one was looked up, is returned
// so the completion path can merge its proofs into an inline report.
func (u *bookingLifecycleUsecase) buildInput(ctx context.Context, booking *entity.Booking, to entity.BookingStatus, payload *TransitionPayload) (lifecycle.Input, *entity.User, *entity.CompletionReport, error) {
	input := lifecycle.Input{
		HoldReason:   payload.HoldReason,
		UnableReason: payload.UnableReason,
		CancelReason: payload.CancelReason,
	}

	var engineer *entity.User
	if payload.EngineerID != nil {
		var err error
		engineer, err = u.userRepo.FindByID(u.txm.DB(ctx), *payload.EngineerID)
		if err != nil {
			return input, nil, nil, err
		}
		if engineer == nil || !engineer.IsEngineer() {
			return input, nil, nil, ErrEngineerNotFound
		}
		input.EngineerName = engineer.FullName
	}

	// Report and proof lookups only matter for the completion check.
	if to != entity.BookingStatusCompleted {
		return input, engineer, nil, nil
	}

	hasReport := payload.Report != nil && payload.Report.WorkPerformed != ""
	hasProof := payload.Report != nil && len(payload.Report.ProofImages) > 0

	var draft *entity.CompletionReport
	if !hasReport || !hasProof {
		var err error
		draft, err = u.reportRepo.FindByBookingID(u.txm.DB(ctx), booking.ID)
		if err != nil {
			return input, nil, nil, err
		}
		if draft != nil {
			hasReport = hasReport || draft.WorkPerformed != ""
			hasProof = hasProof || draft.HasProof()
		}
	}

	if !hasProof {
		artifacts, err := u.artifactRepo.ListByBookingID(u.txm.DB(ctx), booking.ID)
		if err != nil {
			return input, nil, nil, err
		}
		hasProof = len(artifacts) > 0
	}

	input.HasReport = hasReport
	input.HasProof = hasProof
	return input, engineer, draft, nil
}

// buildPatch translates a decision into the conditional update. All three
// reason fields are always written so a stale reason never survives a
// transition out of its status.
func buildPatch(d *lifecycle.Decision) map[string]interface{} {
	patch := map[string]interface{}{
		"status":        d.To,
		"hold_reason":   d.HoldReason,
		"unable_reason": d.UnableReason,
		"cancel_reason": d.CancelReason,
		"updated_at":    time.Now(),
	}
	if d.SetEngineer != "" {
		patch["assigned_engineer"] = d.SetEngineer
	} else if d.ClearEngineer {
		patch["assigned_engineer"] = ""
	}
	return patch
}

// applyDecision mirrors the committed patch onto the in-memory booking so
// the response and notification templates see the new state.
func applyDecision(b *entity.Booking, d *lifecycle.Decision) {
	b.Status = d.To
	b.HoldReason = d.HoldReason
	b.UnableReason = d.UnableReason
	b.CancelReason = d.CancelReason
	if d.SetEngineer != "" {
		b.AssignedEngineer = d.SetEngineer
	} else if d.ClearEngineer {
		b.AssignedEngineer = ""
	}
	b.UpdatedAt = time.Now()
}

func (u *bookingLifecycleUsecase) dispatchNotices(booking *entity.Booking, d *lifecycle.Decision, engineer *entity.User) {
	for _, notice := range d.Notices {
		msg := service.Message{
			Kind:    notice.Kind,
			Booking: booking,
		}

		switch notice.To {
		case lifecycle.AudienceCustomer:
			msg.RecipientRole = entity.RoleCustomer
			customerID := booking.CustomerID
			msg.RecipientID = &customerID
			msg.RecipientEmail = booking.Customer.Email
		case lifecycle.AudienceEngineer:
			if engineer == nil {
				u.log.Warnf("No engineer resolved for notification %s on booking %s", notice.Kind, booking.ID)
				continue
			}
			msg.RecipientRole = entity.RoleEngineer
			engineerID := engineer.ID
			msg.RecipientID = &engineerID
			msg.RecipientEmail = engineer.Email
		case lifecycle.AudienceAdmin:
			msg.RecipientRole = entity.RoleAdmin
		}

		u.notifier.Dispatch(msg)
	}
}

func reportFromRequest(bookingID, engineerID uuid.UUID, req *dto.CompletionReportRequest) *entity.CompletionReport {
	return &entity.CompletionReport{
		BookingID:     bookingID,
		EngineerID:    engineerID,
		WorkPerformed: req.WorkPerformed,
		PartsUsed:     req.PartsUsed,
		TimeSpentMin:  req.TimeSpentMin,
		Notes:         req.Notes,
		ProofImages:   entity.StringArray(req.ProofImages),
	}
}
