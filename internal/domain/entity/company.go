package entity

// Company is keyed by a slug code derived from caller input at creation time.
// The code is immutable after insert; only name and description can change.
type Company struct {
	Code        string
	Name        string
	Description *string // nullable column
}
