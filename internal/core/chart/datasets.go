package chart

// Dashboard sample datasets. These mirror the demo numbers the rest of
// the analytics stack reports so the dashboard stays consistent with
// the chat responses when no database is reachable.

func revenueBySalesperson() []Point {
	return []Point{
		{Label: "Emily Davis", Value: 61000},
		{Label: "Carol Williams", Value: 52000},
		{Label: "Alice Johnson", Value: 45000},
		{Label: "Bob Smith", Value: 38500},
		{Label: "Frank Miller", Value: 33500},
		{Label: "David Brown", Value: 29000},
	}
}

func meetingOutcomes() []Point {
	return []Point{
		{Label: "Successful", Value: 3},
		{Label: "Follow-up Needed", Value: 1},
		{Label: "No Interest", Value: 1},
		{Label: "Rescheduled", Value: 0},
	}
}

func leadStatuses() []Point {
	return []Point{
		{Label: "New", Value: 1},
		{Label: "Qualified", Value: 2},
		{Label: "Contacted", Value: 1},
		{Label: "Converted", Value: 1},
	}
}

func revenueByRegion() []Point {
	return []Point{
		{Label: "North", Value: 45000},
		{Label: "South", Value: 38500},
		{Label: "East", Value: 52000},
		{Label: "West", Value: 29000},
		{Label: "Central", Value: 61000},
		{Label: "Northeast", Value: 33500},
	}
}
