package result

import "github.com/southsideweekly/contributor-hub/internal/domain"

// ReferenceDataResult bundles the lookup collections the aggregator resolves
// ids against, loaded in one pass.
type ReferenceDataResult struct {
	Users     []*domain.User
	Teams     []*domain.Team
	Interests []*domain.Interest
	Issues    []*domain.Issue
}
