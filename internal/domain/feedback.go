package domain

// Feedback mirrors one row of the feedback table: a traveller's rating of a
// saved trip. The table is part of the schema only; no repository or
// endpoint reads or writes it. Rating has no range constraint.
type Feedback struct {
	ID       int64
	TripID   int64
	Rating   int
	Comments string
}
