// Package web renders the snoozer page in the browser with vecty.
//
// Page implements controller.View. Form submissions are handed to the
// controller on a separate goroutine so network calls never block the
// browser event loop; every view mutation triggers a rerender.
package web
