package domain

import "time"

// Pitch lifecycle statuses.
const (
	PitchStatusPending  = "PENDING"
	PitchStatusApproved = "APPROVED"
	PitchStatusDeclined = "DECLINED"
)

// Assignment statuses, recomputed from slot accounting.
const (
	AssignmentUnclaimed = "UNCLAIMED"
	AssignmentClaimed   = "CLAIMED"
)

// Claim statuses.
const (
	ClaimStatusPending = "PENDING"
)

// User roles.
const (
	RoleContributor = "CONTRIBUTOR"
	RoleStaff       = "STAFF"
	RoleAdmin       = "ADMIN"
)

// Onboarding statuses.
const (
	OnboardingScheduled = "ONBOARDING_SCHEDULED"
	Onboarded           = "ONBOARDED"
	OnboardingStalled   = "STALLED"
)

// Derived activity classes, never stored.
const (
	ActivityActive         = "ACTIVE"
	ActivityRecentlyActive = "RECENTLY_ACTIVE"
	ActivityInactive       = "INACTIVE"
)

// Resource visibility.
const (
	VisibilityGeneral = "GENERAL"
	VisibilityTeams   = "TEAMS"
)

type User struct {
	Id               string    `json:"user_id"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
	OnboardingStatus string    `json:"onboarding_status"`
	Interests        []string  `json:"interests"`
	Teams            []string  `json:"teams"`
	LastActive       time.Time `json:"last_active"`
	CreatedAt        time.Time `json:"-"`
}

type Team struct {
	Id     string `json:"team_id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Active bool   `json:"active"`
}

type Interest struct {
	Id     string `json:"interest_id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Active bool   `json:"active"`
}

type Issue struct {
	Id           string    `json:"issue_id"`
	ReleaseDate  time.Time `json:"release_date"`
	DeadlineDate time.Time `json:"deadline_date"`
	Type         string    `json:"type"`
}

// IssuePitch ties a pitch to a publication cycle with a per-issue status.
type IssuePitch struct {
	IssueId string `json:"issue_id"`
	PitchId string `json:"pitch_id"`
	Status  string `json:"status"`
}

type Resource struct {
	Id         string    `json:"resource_id"`
	Name       string    `json:"name"`
	Link       string    `json:"link"`
	Visibility string    `json:"visibility"`
	Teams      []string  `json:"teams"`
	CreatedAt  time.Time `json:"-"`
}

// TeamSlot is the per-team position target on a pitch.
type TeamSlot struct {
	TeamId string `json:"team_id"`
	Target int    `json:"target"`
}

// Contributor is a confirmed assignment of a user onto one or more teams.
type Contributor struct {
	UserId string   `json:"user_id"`
	Teams  []string `json:"teams"`
}

// Claim is an outstanding request to fill team slots, not yet approved.
type Claim struct {
	UserId        string    `json:"user_id"`
	Teams         []string  `json:"teams"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	DateSubmitted time.Time `json:"date_submitted"`
}

type Pitch struct {
	Id                     string        `json:"pitch_id"`
	Title                  string        `json:"title"`
	Description            string        `json:"description"`
	Link                   string        `json:"link"`
	Status                 string        `json:"status"`
	AssignmentStatus       string        `json:"assignment_status"`
	Deadline               *time.Time    `json:"deadline"`
	ConflictOfInterest     bool          `json:"conflict_of_interest"`
	AuthorId               string        `json:"author_id"`
	WriterId               string        `json:"writer_id"`
	PrimaryEditorId        string        `json:"primary_editor_id"`
	SecondEditorId         string        `json:"second_editor_id"`
	ThirdEditorId          string        `json:"third_editor_id"`
	Topics                 []string      `json:"topics"`
	Teams                  []TeamSlot    `json:"teams"`
	AssignmentContributors []Contributor `json:"assignment_contributors"`
	PendingContributors    []Claim       `json:"pending_contributors"`
	Issues                 []IssuePitch  `json:"issues"`
	Version                int           `json:"-"`
	CreatedAt              time.Time     `json:"-"`
}

type UserFeedback struct {
	Id        string    `json:"feedback_id"`
	StaffId   string    `json:"staff_id"`
	UserId    string    `json:"user_id"`
	PitchId   string    `json:"pitch_id"`
	Stars     int       `json:"stars"`
	Reasoning string    `json:"reasoning"`
	CreatedAt time.Time `json:"created_at"`
}

type PitchFeedback struct {
	Id        string    `json:"feedback_id"`
	PitchId   string    `json:"pitch_id"`
	UserId    string    `json:"user_id"`
	Stars     int       `json:"stars"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
