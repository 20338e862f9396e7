// Package note models the host application's note: an ordered set of named
// text fields. It also maps concrete field names ("Reading", "English", ...)
// onto the semantic roles the fill pipeline understands, so decks with
// differently named fields all work without code changes.
package note
