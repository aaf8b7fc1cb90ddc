package usecase

import (
	"sort"
	"strings"
	"time"

	"github.com/southsideweekly/contributor-hub/internal/domain"
)

// Activity thresholds in calendar months.
const (
	activeMonths         = 3
	recentlyActiveMonths = 12
)

// ClassifyActivity derives the activity class from lastActive relative to
// now. The delta is calendar-based (year*12 + month), not elapsed-days-based,
// and a negative delta clamps to zero.
func ClassifyActivity(lastActive, now time.Time) string {
	months := (now.Year()-lastActive.Year())*12 + int(now.Month()) - int(lastActive.Month())
	if months < 0 {
		months = 0
	}
	switch {
	case months <= activeMonths:
		return domain.ActivityActive
	case months <= recentlyActiveMonths:
		return domain.ActivityRecentlyActive
	default:
		return domain.ActivityInactive
	}
}

// FilterUsersByInterests keeps users sharing at least one interest with the
// filter. An empty filter keeps everything.
func FilterUsersByInterests(users []*domain.User, interests []string) []*domain.User {
	if len(interests) == 0 {
		return users
	}
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if intersects(u.Interests, interests) {
			out = append(out, u)
		}
	}
	return out
}

// FilterUsersByTeams keeps users belonging to at least one of the teams.
func FilterUsersByTeams(users []*domain.User, teams []string) []*domain.User {
	if len(teams) == 0 {
		return users
	}
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if intersects(u.Teams, teams) {
			out = append(out, u)
		}
	}
	return out
}

// FilterUsersByRole keeps users with the given role. Empty role keeps everything.
func FilterUsersByRole(users []*domain.User, role string) []*domain.User {
	if role == "" {
		return users
	}
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if u.Role == role {
			out = append(out, u)
		}
	}
	return out
}

// FilterUsersByActivity keeps users whose derived activity class matches.
func FilterUsersByActivity(users []*domain.User, activity string, now time.Time) []*domain.User {
	if activity == "" {
		return users
	}
	out := make([]*domain.User, 0, len(users))
	for _, u := range users {
		if ClassifyActivity(u.LastActive, now) == activity {
			out = append(out, u)
		}
	}
	return out
}

// FilterPitchesByClaimStatus keeps pitches matching CLAIMED/UNCLAIMED, where
// CLAIMED means every team slot is filled to target.
func FilterPitchesByClaimStatus(pitches []*domain.Pitch, claimStatus string) []*domain.Pitch {
	if claimStatus == "" {
		return pitches
	}
	out := make([]*domain.Pitch, 0, len(pitches))
	for _, p := range pitches {
		status := domain.AssignmentUnclaimed
		if IsFullyClaimed(p) {
			status = domain.AssignmentClaimed
		}
		if status == claimStatus {
			out = append(out, p)
		}
	}
	return out
}

// FilterPitchesByInterest keeps pitches tagged with at least one of the topics.
func FilterPitchesByInterest(pitches []*domain.Pitch, interests []string) []*domain.Pitch {
	if len(interests) == 0 {
		return pitches
	}
	out := make([]*domain.Pitch, 0, len(pitches))
	for _, p := range pitches {
		if intersects(p.Topics, interests) {
			out = append(out, p)
		}
	}
	return out
}

// FilterPitchesByStatus keeps pitches in the given lifecycle status.
func FilterPitchesByStatus(pitches []*domain.Pitch, status string) []*domain.Pitch {
	if status == "" {
		return pitches
	}
	out := make([]*domain.Pitch, 0, len(pitches))
	for _, p := range pitches {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out
}

// SortUsersByName orders lexicographically on last name, then first name.
func SortUsersByName(users []*domain.User) {
	sort.SliceStable(users, func(i, j int) bool {
		li, lj := strings.ToLower(users[i].LastName), strings.ToLower(users[j].LastName)
		if li != lj {
			return li < lj
		}
		return strings.ToLower(users[i].FirstName) < strings.ToLower(users[j].FirstName)
	})
}

// SortPitchesByTitle orders lexicographically on title.
func SortPitchesByTitle(pitches []*domain.Pitch) {
	sort.SliceStable(pitches, func(i, j int) bool {
		return strings.ToLower(pitches[i].Title) < strings.ToLower(pitches[j].Title)
	})
}

// SortPitchesByDeadline orders on deadline; pitches without one sort last.
// descending flips the order of dated pitches.
func SortPitchesByDeadline(pitches []*domain.Pitch, descending bool) {
	sort.SliceStable(pitches, func(i, j int) bool {
		di, dj := pitches[i].Deadline, pitches[j].Deadline
		if di == nil {
			return false
		}
		if dj == nil {
			return true
		}
		if descending {
			return di.After(*dj)
		}
		return di.Before(*dj)
	})
}

func intersects(a, b []string) bool {
	for _, x := range a {
		for _, y := range b {
			if x == y {
				return true
			}
		}
	}
	return false
}
