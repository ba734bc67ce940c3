// Package services contains the application services of the CLI: account
// registration and login, and task management scoped to a session.
package services

import "time"

// Session represents the user a menu loop is currently acting on behalf of.
// It is passed explicitly into every task operation instead of living in
// ambient package state, so multiple sessions could coexist in one process.
type Session struct {
	Username  string
	StartedAt time.Time
}
