package domain_test

import (
	"testing"
	"time"

	"github.com/alnahhas/surgery_clinic_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestVisitStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from domain.VisitStatus
		to   domain.VisitStatus
		want bool
	}{
		{name: "waiting to confirmed", from: domain.VisitWaiting, to: domain.VisitConfirmed, want: true},
		{name: "confirmed back to waiting", from: domain.VisitConfirmed, to: domain.VisitWaiting, want: true},
		{name: "waiting straight to completed", from: domain.VisitWaiting, to: domain.VisitCompleted, want: true},
		{name: "cancelled stays cancelled", from: domain.VisitCancelled, to: domain.VisitCancelled, want: true},
		{name: "cancelled cannot be confirmed", from: domain.VisitCancelled, to: domain.VisitConfirmed, want: false},
		{name: "completed cannot be reopened", from: domain.VisitCompleted, to: domain.VisitWaiting, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestSurgeryStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from domain.SurgeryStatus
		to   domain.SurgeryStatus
		want bool
	}{
		{name: "scheduled to preparing", from: domain.SurgeryScheduled, to: domain.SurgeryPreparing, want: true},
		{name: "preparing back to scheduled", from: domain.SurgeryPreparing, to: domain.SurgeryScheduled, want: true},
		{name: "ongoing to completed", from: domain.SurgeryOngoing, to: domain.SurgeryCompleted, want: true},
		{name: "ongoing cannot go back to preparing", from: domain.SurgeryOngoing, to: domain.SurgeryPreparing, want: false},
		{name: "scheduled cannot complete directly", from: domain.SurgeryScheduled, to: domain.SurgeryCompleted, want: false},
		{name: "cancellation from ongoing", from: domain.SurgeryOngoing, to: domain.SurgeryCancelled, want: true},
		{name: "completed is terminal", from: domain.SurgeryCompleted, to: domain.SurgeryOngoing, want: false},
		{name: "cancelled is terminal", from: domain.SurgeryCancelled, to: domain.SurgeryScheduled, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestAdmissionStatusTransitions(t *testing.T) {
	assert.True(t, domain.AdmissionInpatient.CanTransitionTo(domain.AdmissionDischarged))
	assert.True(t, domain.AdmissionInpatient.CanTransitionTo(domain.AdmissionInpatient))
	assert.False(t, domain.AdmissionDischarged.CanTransitionTo(domain.AdmissionInpatient))
}

func TestEmergencyStatusTransitions(t *testing.T) {
	assert.True(t, domain.EmergencyWaiting.CanTransitionTo(domain.EmergencyTreating))
	assert.True(t, domain.EmergencyObservation.CanTransitionTo(domain.EmergencyAssessing))
	assert.True(t, domain.EmergencyTreating.CanTransitionTo(domain.EmergencyDischarged))
	assert.False(t, domain.EmergencyDischarged.CanTransitionTo(domain.EmergencyWaiting))
	assert.False(t, domain.EmergencyWaiting.CanTransitionTo(domain.EmergencyStatus("lost")))
}

func TestSessionActive(t *testing.T) {
	now := time.Now()
	revoked := now.Add(-time.Minute)

	live := domain.Session{ExpiresAt: now.Add(time.Hour)}
	expired := domain.Session{ExpiresAt: now.Add(-time.Hour)}
	revokedSession := domain.Session{ExpiresAt: now.Add(time.Hour), RevokedAt: &revoked}

	assert.True(t, live.Active(now))
	assert.False(t, expired.Active(now))
	assert.False(t, revokedSession.Active(now))
}

func TestInviteTokenExpiry(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.False(t, domain.InviteToken{}.Expired(now)) // no expiry never expires
	assert.True(t, domain.InviteToken{ExpiresAt: &past}.Expired(now))
	assert.False(t, domain.InviteToken{ExpiresAt: &future}.Expired(now))

	used := domain.InviteToken{IsUsed: true, ExpiresAt: &future}
	assert.False(t, used.Usable(now))
	assert.True(t, domain.InviteToken{ExpiresAt: &future}.Usable(now))
}
