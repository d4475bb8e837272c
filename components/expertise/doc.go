// Package expertise provides a small net/http handler that serves expertise
// typeahead suggestions as JSON options for a fixed catalog.
//
// The handler responds to GET and HEAD requests. The query parameter filters
// labels with the same case-insensitive substring match the in-page component
// uses, repeated selected parameters exclude labels the caller has already
// chosen, and limit caps the result count. Results keep catalog order.
package expertise
