package dashboard

import "github.com/crestview/admin/core/calendar"

// Fallback returns the static local snapshot displayed whenever the live
// dashboard cannot be fetched or fails contract validation. Every call
// returns a fresh copy; callers may not mutate shared state through it.
func Fallback() Snapshot {
	return Snapshot{
		Stats: []StatCard{
			{ID: "stat-students", Title: "Total Students", Value: 932, DeltaText: "+28 this month", Icon: "students", Color: "green"},
			{ID: "stat-parents", Title: "Total Parents", Value: 640, DeltaText: "+12 this month", Icon: "parents", Color: "yellow"},
			{ID: "stat-teachers", Title: "Total Teachers", Value: 48, DeltaText: "+2 hired", Icon: "teachers", Color: "blue"},
			{ID: "stat-earnings", Title: "Earnings", Value: 284560, DeltaText: "+8.4% vs last term", Icon: "earnings", Color: "purple"},
		},
		FeesChart: []ChartPoint{
			{Label: "Jan", Income: 42000, Expenses: 28000},
			{Label: "Feb", Income: 46000, Expenses: 31000},
			{Label: "Mar", Income: 52000, Expenses: 34000},
			{Label: "Apr", Income: 60000, Expenses: 39000},
			{Label: "May", Income: 56000, Expenses: 36000},
			{Label: "Jun", Income: 64000, Expenses: 41000},
		},
		Notices: []Notice{
			{
				ID:    "notice-midterms",
				Date:  "2026-02-01",
				Title: "Midterm Exams Schedule Released",
				Body:  "The midterm timetable is available in Academics → Exams. Please ensure all fee dues are cleared by Feb 12.",
			},
			{
				ID:    "notice-pta",
				Date:  "2026-01-28",
				Title: "PTA Meeting — Grade 6 to 10",
				Body:  "Parents are invited for the quarterly PTA meeting in the auditorium. Session starts at 4:00 PM. Please be seated by 3:50 PM.",
			},
			{
				ID:    "notice-library",
				Date:  "2026-01-22",
				Title: "Library Week & Book Donation Drive",
				Body:  "We are collecting age-appropriate books. Drop-off at the library front desk. Volunteers needed — contact Student Council.",
			},
		},
		Activities: []Activity{
			{ID: "act-1", Time: "09:18 AM", Text: "Fee payment received from Student #1842 — Term 2", Kind: "success"},
			{ID: "act-2", Time: "10:04 AM", Text: "New student admission request pending approval", Kind: "info"},
			{ID: "act-3", Time: "11:31 AM", Text: "Bus route delay reported — Route B (traffic)", Kind: "warning"},
			{ID: "act-4", Time: "12:22 PM", Text: "Overdue fees reminder email failed for 3 parents", Kind: "danger"},
			{ID: "act-5", Time: "02:05 PM", Text: "Teacher roster updated for Science department", Kind: "info"},
		},
		Events: []calendar.Event{
			{ID: "evt-debate", Date: "2026-02-05", Title: "Inter-house Debate", Color: calendar.ColorBlue},
			{ID: "evt-fees", Date: "2026-02-12", Title: "Fee Due Date (Term 2)", Color: calendar.ColorRed},
			{ID: "evt-sports", Date: "2026-02-15", Title: "Sports Day Practice", Color: calendar.ColorYellow},
			{ID: "evt-fair", Date: "2026-02-21", Title: "Science Fair", Color: calendar.ColorGreen},
		},
	}
}
