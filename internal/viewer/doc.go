// Package viewer implements the navigation and layout state of a paged
// document viewer.
//
// # Overview
//
// A Controller tracks which page is current, how pages are paired into
// spreads, the reading direction, the zoom settings and whether the display
// is fullscreen. Every mutation goes through a named method that leaves the
// state valid, so observers never see an intermediate value.
//
// # Spreads and anchors
//
// A spread is the set of pages shown together:
//
//	single mode:           {1} {2} {3} ...
//	double, cover on:      {1} {2,3} {4,5} ...
//	double, cover off:     {1,2} {3,4} {5,6} ...
//
// The last spread is clipped to the document. CurrentPage is always the
// anchor of its spread, which is the spread's last page. All navigation
// derives from this single rule:
//
//   - GoToPage clamps the target and moves to the anchor of its spread
//   - NextPage goes to the page after the current spread
//   - PreviousPage goes to the page before the current spread
//   - PagesToDisplay lists the pages of the current spread
//
// With the cover enabled, forward navigation from the first page visits
// 1, 3, 5, ... and displays [1], [2 3], [4 5], ...
//
// # Collaborators
//
// The controller reads the page count from a PageCounter on every mutation,
// and on Refresh after the document itself changed. It drives fullscreen
// through a Fullscreen service. Both are interfaces so
// tests can substitute fakes.
//
// # Concurrency
//
// Methods are safe for concurrent use. ToggleFullScreen releases the lock
// while waiting on the platform; a second toggle issued during that window
// is dropped. Platform notifications arrive through SyncFullScreen or
// WatchFullScreen and are idempotent.
//
// # Observers
//
// Subscribe registers a callback that receives a State snapshot after each
// change. Callbacks run on the goroutine that made the change, outside the
// controller lock, so they may call back into the controller.
package viewer
