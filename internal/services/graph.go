package services

import (
	"finch/internal/models"
)

// Connection graph reader: pure computation over candidate users whose
// follow edges (both directions) are already loaded. No storage access.

// followsRequester reports whether the candidate follows the requester,
// read off the candidate's outgoing edges.
func followsRequester(requesterID uint, u *models.User) bool {
	for _, edge := range u.Following {
		if edge.FolloweeID == requesterID {
			return true
		}
	}
	return false
}

// followedByRequester reports whether the requester follows the candidate,
// read off the candidate's incoming edges.
func followedByRequester(requesterID uint, u *models.User) bool {
	for _, edge := range u.Followers {
		if edge.FollowerID == requesterID {
			return true
		}
	}
	return false
}

// isMutual is the single mutuality predicate shared by Rerank and
// MutualOnly, so MutualOnly's output is always a subsequence of Rerank's
// first group.
func isMutual(requesterID uint, u *models.User) bool {
	return followsRequester(requesterID, u) && followedByRequester(requesterID, u)
}

// connectionDegree: 2 mutual, 1 one-directional, 0 unconnected.
func connectionDegree(requesterID uint, u *models.User) int {
	degree := 0
	if followsRequester(requesterID, u) {
		degree++
	}
	if followedByRequester(requesterID, u) {
		degree++
	}
	return degree
}

// Rerank orders candidates so mutual connections of the requester come
// first, then one-directional connections, then strangers. Within each
// group the input order is preserved (stable partition, not a sort).
func Rerank(requesterID uint, candidates []models.User) []models.User {
	var mutual, oneWay, rest []models.User
	for _, u := range candidates {
		switch connectionDegree(requesterID, &u) {
		case 2:
			mutual = append(mutual, u)
		case 1:
			oneWay = append(oneWay, u)
		default:
			rest = append(rest, u)
		}
	}

	out := make([]models.User, 0, len(candidates))
	out = append(out, mutual...)
	out = append(out, oneWay...)
	out = append(out, rest...)
	return out
}

// MutualOnly keeps exactly the candidates in a mutual-follow relationship
// with the requester, preserving input order.
func MutualOnly(requesterID uint, candidates []models.User) []models.User {
	mutual := make([]models.User, 0, len(candidates))
	for _, u := range candidates {
		if isMutual(requesterID, &u) {
			mutual = append(mutual, u)
		}
	}
	return mutual
}
