package service

import (
	"fmt"

	"repairhub/internal/domain/entity"
)

// renderMessage builds the subject and body for one notification. Templates
// are deliberately plain fmt strings; the wording for work_started and
// work_resumed differs so a customer can tell a fresh start from a resume
// after hold.
func renderMessage(msg Message, baseURL string) (subject, body string) {
	b := msg.Booking
	ref := shortRef(b)
	link := fmt.Sprintf("%s/bookings/%s", baseURL, b.ID)

	switch msg.Kind {
	case entity.NotifyBookingConfirmed:
		subject = fmt.Sprintf("Repair request %s confirmed", ref)
		body = fmt.Sprintf("Your %s repair request has been confirmed. We will assign an engineer shortly.\n\nDetails: %s", b.DeviceType, link)

	case entity.NotifyTaskAssigned:
		subject = fmt.Sprintf("New repair task %s", ref)
		body = fmt.Sprintf("Repair task for %s (%s) at %s has been assigned to %s.\n\nDetails: %s",
			b.DeviceType, b.ServiceType, b.Address, b.AssignedEngineer, link)

	case entity.NotifyTaskRejected:
		subject = fmt.Sprintf("Task %s rejected by engineer", ref)
		body = fmt.Sprintf("The assigned engineer rejected repair task %s. The booking is back in the pool for re-assignment.\n\nDetails: %s", ref, link)

	case entity.NotifyWorkStarted:
		subject = fmt.Sprintf("Work started on repair %s", ref)
		body = fmt.Sprintf("Engineer %s has started work on your %s repair.\n\nDetails: %s", b.AssignedEngineer, b.DeviceType, link)

	case entity.NotifyWorkResumed:
		subject = fmt.Sprintf("Work resumed on repair %s", ref)
		body = fmt.Sprintf("Engineer %s has resumed work on your %s repair after a hold.\n\nDetails: %s", b.AssignedEngineer, b.DeviceType, link)

	case entity.NotifyWorkOnHold:
		subject = fmt.Sprintf("Repair %s is on hold", ref)
		body = fmt.Sprintf("Work on your %s repair is on hold: %s\n\nDetails: %s", b.DeviceType, b.HoldReason, link)

	case entity.NotifyWorkUnable:
		subject = fmt.Sprintf("Repair %s could not be completed", ref)
		reason := b.UnableReason
		if reason == "" {
			reason = "no reason given"
		}
		body = fmt.Sprintf("The engineer was unable to complete repair %s (%s). The booking needs re-assignment.\n\nDetails: %s", ref, reason, link)

	case entity.NotifyBookingCompleted:
		subject = fmt.Sprintf("Repair %s completed", ref)
		body = fmt.Sprintf("Your %s repair has been completed by %s.\n\nDetails: %s", b.DeviceType, b.AssignedEngineer, link)

	case entity.NotifyBookingCancelled:
		subject = fmt.Sprintf("Repair request %s cancelled", ref)
		body = fmt.Sprintf("Your repair request %s has been cancelled: %s\n\nDetails: %s", ref, b.CancelReason, link)

	case entity.NotifyPaymentRecorded:
		subject = fmt.Sprintf("Payment recorded for repair %s", ref)
		body = fmt.Sprintf("A payment of %s has been recorded for repair %s.\n\nDetails: %s", msg.Data["amount"], ref, link)

	default:
		subject = fmt.Sprintf("Update on repair %s", ref)
		body = fmt.Sprintf("Your repair request %s has been updated.\n\nDetails: %s", ref, link)
	}

	return subject, body
}

// shortRef is the human-facing booking reference: the first uuid block.
func shortRef(b *entity.Booking) string {
	id := b.ID.String()
	if len(id) >= 8 {
		id = id[:8]
	}
	return fmt.Sprintf("#%s", id)
}
