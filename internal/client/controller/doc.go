// Package controller maps front-end events to the authentication API and
// back to the page.
//
// A Controller owns no markup. It is handed a View (the page), a
// session.State (the current user) and the services it needs, and exposes
// one method per event:
//
//   - Login, Signup  form submissions
//   - Logout         the logout control
//   - Start          page load: restore a remembered user, load stories,
//     show the logged-in view if a user is present
//
// Failures never escape as panics or partially applied state: an API error
// leaves the session and the storage area untouched and produces exactly one
// Alert on the View.
package controller
