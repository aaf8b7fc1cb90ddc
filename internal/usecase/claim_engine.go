package usecase

import (
	"time"

	"github.com/southsideweekly/contributor-hub/internal/domain"
)

// Slot accounting for a pitch. All mutations of the claim/assignment state go
// through these functions; the structs are never written directly, which keeps
// the per-team invariant assigned <= target.
//
// Every operation is all-or-nothing: a failed precondition leaves the pitch
// untouched.

// AssignedCount counts confirmed contributors whose teams include teamId.
func AssignedCount(p *domain.Pitch, teamId string) int {
	count := 0
	for _, c := range p.AssignmentContributors {
		for _, t := range c.Teams {
			if t == teamId {
				count++
				break
			}
		}
	}
	return count
}

// IsFullyClaimed reports whether every team in scope has all positions filled.
// With no filter the scope is every team slot on the pitch.
func IsFullyClaimed(p *domain.Pitch, teamFilter ...string) bool {
	for _, slot := range p.Teams {
		if len(teamFilter) > 0 && !containsString(teamFilter, slot.TeamId) {
			continue
		}
		if AssignedCount(p, slot.TeamId) != slot.Target {
			return false
		}
	}
	return true
}

// SetTeamTarget sets the position target for teamId, adding the slot if the
// pitch does not carry it yet.
func SetTeamTarget(p *domain.Pitch, teamId string, newTarget int) error {
	if newTarget < 0 {
		return ErrNegativeTarget
	}
	if newTarget < AssignedCount(p, teamId) {
		return ErrTargetBelowAssigned
	}

	for i := range p.Teams {
		if p.Teams[i].TeamId == teamId {
			p.Teams[i].Target = newTarget
			refreshAssignmentStatus(p)
			return nil
		}
	}
	p.Teams = append(p.Teams, domain.TeamSlot{TeamId: teamId, Target: newTarget})
	refreshAssignmentStatus(p)
	return nil
}

// SubmitClaim appends a pending entry for the user. Slot availability is not
// checked here: competing requests for the same slot are arbitrated at
// approval time.
func SubmitClaim(p *domain.Pitch, userId string, teamIds []string, message string, now time.Time) error {
	if p.Status != domain.PitchStatusApproved {
		return ErrPitchNotApproved
	}
	if userId == "" || len(teamIds) == 0 {
		return ErrInvalidInput
	}
	for _, c := range p.AssignmentContributors {
		if c.UserId == userId {
			return ErrDuplicateClaim
		}
	}
	for _, c := range p.PendingContributors {
		if c.UserId == userId {
			return ErrDuplicateClaim
		}
	}

	p.PendingContributors = append(p.PendingContributors, domain.Claim{
		UserId:        userId,
		Teams:         append([]string(nil), teamIds...),
		Message:       message,
		Status:        domain.ClaimStatusPending,
		DateSubmitted: now,
	})
	return nil
}

// ApproveClaim promotes the pending (user, team) pair to an assignment. The
// team is removed from the pending entry, the whole entry is dropped once no
// teams remain on it.
func ApproveClaim(p *domain.Pitch, userId, teamId string) error {
	idx := pendingIndex(p, userId, teamId)
	if idx < 0 {
		return ErrClaimNotFound
	}

	target := 0
	for _, slot := range p.Teams {
		if slot.TeamId == teamId {
			target = slot.Target
			break
		}
	}
	if AssignedCount(p, teamId) >= target {
		return ErrSlotUnavailable
	}

	removeTeamFromPending(p, idx, teamId)

	for i := range p.AssignmentContributors {
		if p.AssignmentContributors[i].UserId == userId {
			if !containsString(p.AssignmentContributors[i].Teams, teamId) {
				p.AssignmentContributors[i].Teams = append(p.AssignmentContributors[i].Teams, teamId)
			}
			refreshAssignmentStatus(p)
			return nil
		}
	}
	p.AssignmentContributors = append(p.AssignmentContributors, domain.Contributor{
		UserId: userId,
		Teams:  []string{teamId},
	})
	refreshAssignmentStatus(p)
	return nil
}

// DeclineClaim removes teamId from the user's pending entry. A missing entry
// is a no-op, declining twice is safe.
func DeclineClaim(p *domain.Pitch, userId, teamId string) {
	idx := pendingIndex(p, userId, teamId)
	if idx < 0 {
		return
	}
	removeTeamFromPending(p, idx, teamId)
}

// RemoveContributor un-assigns a confirmed contributor from teamId, dropping
// the assignment entry once it covers no teams.
func RemoveContributor(p *domain.Pitch, userId, teamId string) error {
	for i := range p.AssignmentContributors {
		if p.AssignmentContributors[i].UserId != userId {
			continue
		}
		teams := removeString(p.AssignmentContributors[i].Teams, teamId)
		if len(teams) == len(p.AssignmentContributors[i].Teams) {
			return ErrClaimNotFound
		}
		if len(teams) == 0 {
			p.AssignmentContributors = append(p.AssignmentContributors[:i], p.AssignmentContributors[i+1:]...)
		} else {
			p.AssignmentContributors[i].Teams = teams
		}
		refreshAssignmentStatus(p)
		return nil
	}
	return ErrClaimNotFound
}

func refreshAssignmentStatus(p *domain.Pitch) {
	if IsFullyClaimed(p) {
		p.AssignmentStatus = domain.AssignmentClaimed
	} else {
		p.AssignmentStatus = domain.AssignmentUnclaimed
	}
}

func pendingIndex(p *domain.Pitch, userId, teamId string) int {
	for i := range p.PendingContributors {
		if p.PendingContributors[i].UserId == userId && containsString(p.PendingContributors[i].Teams, teamId) {
			return i
		}
	}
	return -1
}

func removeTeamFromPending(p *domain.Pitch, idx int, teamId string) {
	teams := removeString(p.PendingContributors[idx].Teams, teamId)
	if len(teams) == 0 {
		p.PendingContributors = append(p.PendingContributors[:idx], p.PendingContributors[idx+1:]...)
		return
	}
	p.PendingContributors[idx].Teams = teams
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func removeString(list []string, s string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
