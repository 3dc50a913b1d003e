package models

import "time"

type RecordType string

const (
	RecordPoint     RecordType = "point"
	RecordRedeem    RecordType = "redeem"
	RecordAdopt     RecordType = "adopt"
	RecordMilestone RecordType = "milestone"
)

// GrowthRecord is an immutable audit entry. StudentName is captured by value
// so the entry survives renames.
type GrowthRecord struct {
	ID          string     `json:"id"`
	StudentName string     `json:"student_name"`
	Timestamp   time.Time  `json:"timestamp"`
	Type        RecordType `json:"type"`
	Description string     `json:"description"`
	ValueChange string     `json:"value_change,omitempty"`
}
