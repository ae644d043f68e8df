// Package views holds the login, registration and user-management screens as
// UI-agnostic state machines. A view calls one gateway per action, records
// the outcome in its Status as a localised message and asks its Navigator to
// change route. The CLI renders Status and drives the views from commands.
//
// Views own their delayed actions (redirect after registering, closing the
// edit dialog, clearing a success message). Close cancels whatever is still
// pending.
package views
