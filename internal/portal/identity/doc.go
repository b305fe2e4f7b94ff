// Package identity implements the portal's account registry and session.
//
// A Store owns two storage entries: the registry (every account with its
// password digest, rewritten in full on each change) and the session (the
// signed-in account without its digest, absent when signed out). The store is
// the only writer of both; everything else reads the session through
// CurrentSession and IsAuthenticated.
//
// Authenticate on an email that already exists does not check the password
// unless the store is built WithPasswordCheck(true). An unknown email signs up
// a student or teacher on the spot. Admin accounts can neither sign up nor
// sign in through the store.
package identity
