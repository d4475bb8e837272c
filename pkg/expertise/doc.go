// Package expertise implements the expertise typeahead: a searchable "add tag"
// control layered over a hidden `<select multiple>`.
//
// The select stays in the document as the single source of truth for what is
// selected and keeps taking part in form submission. The component injects an
// autocomplete input before it, offers the not-yet-selected option labels as
// suggestions, and projects the selected options into a list of removable
// tokens.
//
// Adding is a two-step flow. Confirming a suggestion in the autocomplete only
// reveals the add affordance; clicking the affordance commits the value,
// redraws the tokens, clears the input and schedules focus back onto it after
// RefocusDelay. Clicking a token deselects its option.
//
// Option labels are the join key between suggestions and options. Matching on
// add and remove is exact and case-sensitive, and every option sharing a label
// toggles together.
package expertise
