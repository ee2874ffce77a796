package model

// Session is the result of a successful authentication.
type Session struct {
	Token   string
	IsAdmin bool
}
