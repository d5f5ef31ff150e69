// Package relations decides whether two living entities should treat each
// other as allies.
package relations

import "github.com/google/uuid"

// Living is the view of an entity the relationship checks need.
type Living interface {
	UUID() uuid.UUID
	// Team returns the scoreboard team name, or "" when the entity has none.
	Team() string
	// Attacker is the entity that last hurt this one, or nil.
	Attacker() Living
	// Attacking is the entity this one is currently targeting, or nil.
	Attacking() Living
	Hostile() bool
}

// Tameable is implemented by entities that can have an owner.
type Tameable interface {
	Owner() (uuid.UUID, bool)
}

// IsFriendly reports whether a and b are allies. An entity is always friendly
// with itself; otherwise both must consider the other friendly.
func IsFriendly(a, b Living) bool {
	if same(a, b) {
		return true
	}
	return friendlyTowards(a, b) && friendlyTowards(b, a)
}

// IsSameTeam reports whether a belongs to a team and b is on it too.
func IsSameTeam(a, b Living) bool {
	if a.Team() == "" {
		return false
	}
	return a.Team() == b.Team()
}

func friendlyTowards(a, b Living) bool {
	if tame, ok := a.(Tameable); ok {
		if owner, ok := tame.Owner(); ok && owner == b.UUID() {
			return true
		}
	}
	if same(a.Attacker(), b) || same(a.Attacking(), b) {
		return false
	}
	if IsSameTeam(a, b) {
		return true
	}
	return a.Hostile() == b.Hostile()
}

func same(a, b Living) bool {
	if a == nil || b == nil {
		return false
	}
	return a.UUID() == b.UUID()
}
