package models

// TimeWindow is one contiguous open period (morning or evening) within a day.
// Times are 24-hour "HH:MM" strings; the window is half-open, so a slot
// starting exactly at EndTime is never offered.
type TimeWindow struct {
	StartTime string `bson:"startTime" json:"startTime"`
	EndTime   string `bson:"endTime" json:"endTime"`
	IsActive  bool   `bson:"isActive" json:"isActive"`
}

// DaySchedule is one weekday's booking configuration. IsAvailable gates the
// whole day; each window is additionally toggleable on its own.
type DaySchedule struct {
	Day         string     `bson:"day" json:"day"` // lowercase weekday name, e.g. "monday"
	IsAvailable bool       `bson:"isAvailable" json:"isAvailable"`
	Morning     TimeWindow `bson:"morning" json:"morning"`
	Evening     TimeWindow `bson:"evening" json:"evening"`
}

// WeeklyAvailability is the professional's recurring weekly schedule.
type WeeklyAvailability struct {
	Days []DaySchedule `bson:"days" json:"days"`
}
