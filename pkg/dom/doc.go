// Package dom provides the small, single-threaded document model the expertise
// typeahead runs against: elements with ordered attributes, text nodes,
// `<select multiple>` options, click listeners, focus tracking and a virtual
// timer queue.
//
// Documents are parsed from and serialised to HTML with golang.org/x/net/html,
// so host pages rendered on the server can be mounted, driven and written back
// out without a browser. Nothing in this package is safe for concurrent use;
// callers serialise access the way a browser event loop does.
package dom
