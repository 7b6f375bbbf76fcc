package model

import "time"

// FollowEdge is a directed edge: follower follows followee.
// The pair is unique, self-edges are rejected before storage.
type FollowEdge struct {
	FollowerID UserID
	FolloweeID UserID
	CreatedAt  time.Time
}
