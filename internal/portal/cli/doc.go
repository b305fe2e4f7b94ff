// Package cli is the EduPortal terminal client: an interactive shell over the
// identity store that stands in for the portal's sign-in page and navigation
// bar.
//
// Commands: help, register, login, logout, whoami, dashboard, exit/quit.
package cli
