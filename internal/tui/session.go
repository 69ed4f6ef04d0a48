package tui

import "sync/atomic"

var sessionEmail atomic.Value

func setSessionEmail(email string) {
	sessionEmail.Store(email)
}

func getSessionEmail() string {
	email, _ := sessionEmail.Load().(string)
	return email
}

func clearSessionEmail() {
	sessionEmail.Store("")
}
