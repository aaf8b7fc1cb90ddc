package domain

// Populated variants: id references resolved into display-ready objects.
// Produced only at the view-building boundary, never stored.

// TopicRef is a resolved topic tag.
type TopicRef struct {
	Id    string `json:"interest_id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// TeamSlotView is a team slot with its display info resolved.
type TeamSlotView struct {
	TeamId string `json:"team_id"`
	Name   string `json:"name"`
	Color  string `json:"color"`
	Target int    `json:"target"`
}

// TeamContributors groups the confirmed contributors of one team.
type TeamContributors struct {
	TeamId       string  `json:"team_id"`
	TeamName     string  `json:"team_name"`
	Contributors []*User `json:"contributors"`
}

// AggregatedPitch is a pitch with every foreign key resolved. Missing
// references resolve to placeholder values rather than being dropped.
type AggregatedPitch struct {
	Pitch         *Pitch              `json:"pitch"`
	Author        *User               `json:"author"`
	Writer        *User               `json:"writer"`
	PrimaryEditor *User               `json:"primary_editor"`
	SecondEditor  *User               `json:"second_editor"`
	ThirdEditor   *User               `json:"third_editor"`
	Topics        []*TopicRef         `json:"topics"`
	Teams         []*TeamSlotView     `json:"teams"`
	ByTeam        []*TeamContributors `json:"contributors_by_team"`
	Issues        []*Issue            `json:"issues"`
}
