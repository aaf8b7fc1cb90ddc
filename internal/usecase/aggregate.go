package usecase

import (
	"sort"

	"github.com/southsideweekly/contributor-hub/internal/domain"
	"github.com/southsideweekly/contributor-hub/internal/infrastructure/models/result"
	"go.uber.org/zap"
)

// Lookups are the reference collections the aggregator resolves ids against.
// Passed in explicitly so the builder stays a pure projection.
type Lookups struct {
	Users     map[string]*domain.User
	Teams     map[string]*domain.Team
	Interests map[string]*domain.Interest
	Issues    map[string]*domain.Issue
}

// NewLookups indexes a loaded reference bundle by id.
func NewLookups(data *result.ReferenceDataResult) Lookups {
	l := Lookups{
		Users:     make(map[string]*domain.User, len(data.Users)),
		Teams:     make(map[string]*domain.Team, len(data.Teams)),
		Interests: make(map[string]*domain.Interest, len(data.Interests)),
		Issues:    make(map[string]*domain.Issue, len(data.Issues)),
	}
	for _, u := range data.Users {
		l.Users[u.Id] = u
	}
	for _, t := range data.Teams {
		l.Teams[t.Id] = t
	}
	for _, i := range data.Interests {
		l.Interests[i.Id] = i
	}
	for _, i := range data.Issues {
		l.Issues[i.Id] = i
	}
	return l
}

// AggregatePitch resolves a pitch's foreign-key references into a
// display-ready structure. A dangling id is a data-integrity warning, not a
// fatal error: the builder substitutes a placeholder and keeps going, partial
// display beats no display.
func AggregatePitch(p *domain.Pitch, l Lookups, log *zap.Logger) *domain.AggregatedPitch {
	view := &domain.AggregatedPitch{
		Pitch:         p,
		Author:        resolveUser(p.AuthorId, l, log),
		Writer:        resolveUser(p.WriterId, l, log),
		PrimaryEditor: resolveUser(p.PrimaryEditorId, l, log),
		SecondEditor:  resolveUser(p.SecondEditorId, l, log),
		ThirdEditor:   resolveUser(p.ThirdEditorId, l, log),
	}

	view.Topics = make([]*domain.TopicRef, 0, len(p.Topics))
	for _, id := range p.Topics {
		if interest, ok := l.Interests[id]; ok {
			view.Topics = append(view.Topics, &domain.TopicRef{
				Id:    interest.Id,
				Name:  interest.Name,
				Color: interest.Color,
			})
			continue
		}
		log.Warn("dangling interest reference", zap.String("pitch_id", p.Id), zap.String("interest_id", id))
		view.Topics = append(view.Topics, &domain.TopicRef{Id: id})
	}

	view.Teams = make([]*domain.TeamSlotView, 0, len(p.Teams))
	for _, slot := range p.Teams {
		tv := &domain.TeamSlotView{TeamId: slot.TeamId, Target: slot.Target}
		if team, ok := l.Teams[slot.TeamId]; ok {
			tv.Name = team.Name
			tv.Color = team.Color
		} else {
			log.Warn("dangling team reference", zap.String("pitch_id", p.Id), zap.String("team_id", slot.TeamId))
		}
		view.Teams = append(view.Teams, tv)
	}

	view.Issues = make([]*domain.Issue, 0, len(p.Issues))
	for _, ip := range p.Issues {
		if issue, ok := l.Issues[ip.IssueId]; ok {
			view.Issues = append(view.Issues, issue)
			continue
		}
		log.Warn("dangling issue reference", zap.String("pitch_id", p.Id), zap.String("issue_id", ip.IssueId))
		view.Issues = append(view.Issues, &domain.Issue{Id: ip.IssueId})
	}

	view.ByTeam = GroupContributorsByTeam(p.AssignmentContributors, l)
	return view
}

// GroupContributorsByTeam inverts the contributor->teams mapping into
// team->contributors. Output is sorted by team display name so downstream
// snapshots stay stable.
func GroupContributorsByTeam(contributors []domain.Contributor, l Lookups) []*domain.TeamContributors {
	byTeam := make(map[string]*domain.TeamContributors)
	for _, c := range contributors {
		user, ok := l.Users[c.UserId]
		if !ok {
			user = &domain.User{Id: c.UserId}
		}
		for _, teamId := range c.Teams {
			group, ok := byTeam[teamId]
			if !ok {
				group = &domain.TeamContributors{TeamId: teamId}
				if team, found := l.Teams[teamId]; found {
					group.TeamName = team.Name
				}
				byTeam[teamId] = group
			}
			group.Contributors = append(group.Contributors, user)
		}
	}

	groups := make([]*domain.TeamContributors, 0, len(byTeam))
	for _, g := range byTeam {
		groups = append(groups, g)
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].TeamName != groups[j].TeamName {
			return groups[i].TeamName < groups[j].TeamName
		}
		return groups[i].TeamId < groups[j].TeamId
	})
	return groups
}

// resolveUser maps a user id to its record, an empty-user sentinel when the
// id is blank or unknown.
func resolveUser(id string, l Lookups, log *zap.Logger) *domain.User {
	if id == "" {
		return &domain.User{}
	}
	if user, ok := l.Users[id]; ok {
		return user
	}
	log.Warn("dangling user reference", zap.String("user_id", id))
	return &domain.User{Id: id}
}
