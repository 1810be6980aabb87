// Package models defines the view models handed to the UI layer: users and
// the session, characters, settlement cards and guestbook comments.
package models

// User is the signed-in member. It is persisted as JSON in the auth_user
// storage slot, hence the camelCase tags.
type User struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StudentID string `json:"studentId"`
}

// Session is the observable auth state.
//
// IsAuthenticated holds exactly when both a token and a user are stored.
// RegisterToken is non-empty only between a Kakao exchange for an unknown
// account and the completion of signup.
type Session struct {
	IsAuthenticated bool
	User            *User
	IsLoading       bool
	RegisterToken   string
}

// Anonymous is the initial and post-logout session.
func Anonymous() Session {
	return Session{}
}
