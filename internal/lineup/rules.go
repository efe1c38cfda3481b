package lineup

import "cricket-roster/internal/domain"

const (
	TeamSize = 11

	MinAllRounders = 1
	MaxAllRounders = 4
	MinBatsmen     = 3
	MaxBatsmen     = 5
	MinBowlers     = 3
	MaxBowlers     = 5
)

// RoleQuota bounds how many players of one role a lineup holds.
type RoleQuota struct {
	Role        domain.Role
	MinRequired int
	MaxAllowed  int
}

// Rules drive a build. Quotas are seeded in slice order.
//
// The maximums are only honoured when EnforceMaximums is set; the default
// rules leave them unenforced, so the greedy fill may exceed them.
type Rules struct {
	TeamSize        int
	Quotas          []RoleQuota
	EnforceMaximums bool
}

func DefaultRules() Rules {
	return Rules{
		TeamSize: TeamSize,
		Quotas: []RoleQuota{
			{Role: domain.RoleAllRounder, MinRequired: MinAllRounders, MaxAllowed: MaxAllRounders},
			{Role: domain.RoleBatsman, MinRequired: MinBatsmen, MaxAllowed: MaxBatsmen},
			{Role: domain.RoleBowler, MinRequired: MinBowlers, MaxAllowed: MaxBowlers},
		},
	}
}

// StrictRules is DefaultRules with the role maximums enforced during the fill.
func StrictRules() Rules {
	r := DefaultRules()
	r.EnforceMaximums = true
	return r
}

func (r Rules) quotaFor(role domain.Role) (RoleQuota, bool) {
	for _, q := range r.Quotas {
		if q.Role == role {
			return q, true
		}
	}
	return RoleQuota{}, false
}
