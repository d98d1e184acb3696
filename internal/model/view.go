package model

// DimensionID names one of the five grouping axes.
type DimensionID string

// The five fixed dimensions.
const (
	DimensionYear           DimensionID = "year"
	DimensionMonth          DimensionID = "month"
	DimensionHourOfDay      DimensionID = "hour"
	DimensionCategory       DimensionID = "category"
	DimensionDurationBucket DimensionID = "duration"
)

// ViewID names a dashboard view.
type ViewID string

// The dashboard views. Every view except the map owns one dimension.
const (
	ViewMap      ViewID = "map"
	ViewTimeline ViewID = "timeline"
	ViewMonth    ViewID = "month"
	ViewHour     ViewID = "hour"
	ViewCategory ViewID = "category"
	ViewDuration ViewID = "duration"
)

// ParseViewID converts user input into a known ViewID.
func ParseViewID(s string) (ViewID, bool) {
	switch v := ViewID(s); v {
	case ViewMap, ViewTimeline, ViewMonth, ViewHour, ViewCategory, ViewDuration:
		return v, true
	}
	return "", false
}

// DefaultView returns the view that draws a dimension on the dashboard.
func DefaultView(dim DimensionID) ViewID {
	switch dim {
	case DimensionYear:
		return ViewTimeline
	case DimensionMonth:
		return ViewMonth
	case DimensionHourOfDay:
		return ViewHour
	case DimensionCategory:
		return ViewCategory
	case DimensionDurationBucket:
		return ViewDuration
	}
	return ""
}
