// Package qualoffer computes the MLB qualifying offer value from a published
// table of player salaries. It fetches the salary page, extracts one record
// per table row, classifies each record as a valid salary or a bad record,
// and averages the highest salaries.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, gopretty/).
package qualoffer

// QualifyingOfferSize is the number of top salaries averaged into the
// qualifying offer value.
const QualifyingOfferSize = 125

// DefaultSourceURL is the salary page fetched when no other source is
// requested or the requested source cannot be retrieved.
const DefaultSourceURL = "https://questionnaire-148920.appspot.com/swe/data.html"
