package converter

import (
	"net/url"
	"strings"

	"go-doctor-directory/internal/domain/entity"
)

// Query string keys shared with the presentation layer.
const (
	QueryKeySearch           = "search"
	QueryKeyConsultationType = "consultationType"
	QueryKeySpecialties      = "specialties"
	QueryKeySortBy           = "sortBy"
)

// FilterStateToQuery encodes state as a query string without a leading "?".
// Cleared fields are omitted and keys always appear in the order search,
// consultationType, specialties, sortBy.
func FilterStateToQuery(state entity.FilterState) string {
	var parts []string

	if state.Search != "" {
		parts = append(parts, QueryKeySearch+"="+url.QueryEscape(state.Search))
	}
	if state.ConsultationType != entity.ConsultationTypeUnset && state.ConsultationType.Valid() {
		parts = append(parts, QueryKeyConsultationType+"="+url.QueryEscape(string(state.ConsultationType)))
	}
	if specialties := cleanSpecialties(state.Specialties); len(specialties) > 0 {
		parts = append(parts, QueryKeySpecialties+"="+url.QueryEscape(strings.Join(specialties, ",")))
	}
	if state.SortBy != entity.SortUnset && state.SortBy.Valid() {
		parts = append(parts, QueryKeySortBy+"="+url.QueryEscape(string(state.SortBy)))
	}

	return strings.Join(parts, "&")
}

// QueryToFilterState decodes a query string, with or without a leading "?".
// It never fails: unknown keys, undecodable pairs and unrecognized tokens
// fall back to the cleared value of their field.
func QueryToFilterState(query string) entity.FilterState {
	// ParseQuery keeps every pair it could decode alongside its error.
	values, _ := url.ParseQuery(strings.TrimPrefix(query, "?"))

	state := entity.FilterState{
		Search: values.Get(QueryKeySearch),
	}

	if mode := entity.ConsultationType(values.Get(QueryKeyConsultationType)); mode.Valid() {
		state.ConsultationType = mode
	}
	if raw := values.Get(QueryKeySpecialties); raw != "" {
		state.Specialties = cleanSpecialties(strings.Split(raw, ","))
	}
	if sortBy := entity.SortOption(values.Get(QueryKeySortBy)); sortBy.Valid() {
		state.SortBy = sortBy
	}

	return state
}

// cleanSpecialties drops empty names and repeats, keeping first-seen order.
func cleanSpecialties(names []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}
