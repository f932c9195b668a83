// Package viewstate holds the presentation state behind each screen of the
// TUI. A holder owns a snapshot of what its screen shows, refreshes it from
// the services (on the live journal feed, on auth changes, or on demand),
// and hands coalesced updates to the render loop over a channel.
//
// Holders never retry failed loads on their own; a failed load lands in the
// snapshot's Err field and stays there until the user triggers a reload.
package viewstate
