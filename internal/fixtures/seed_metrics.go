package fixtures

import (
	"github.com/shiftsense/shiftsense-backend-go/internal/domain/prediction"
)

// ==========================================
// SEED METRICS
// ==========================================

// BaseMetrics returns the hand-authored seed rows: five clearly at-risk
// employees followed by five clearly healthy ones. Seed index i is
// timestamped i days in the past by the store.
func BaseMetrics() []prediction.EmployeeMetrics {
	return []prediction.EmployeeMetrics{
		{EmployeeID: "EMP201", EmployeeName: "Jessica Torres", ShiftDate: "2024-11-16", AdherencePct: 42, TardinessCount: 6, AuxTimePct: 58, CallsHandled: 38, UnplannedAbsences: 3},
		{EmployeeID: "EMP202", EmployeeName: "Kevin Brown", ShiftDate: "2024-11-16", AdherencePct: 35, TardinessCount: 8, AuxTimePct: 70, CallsHandled: 25, UnplannedAbsences: 4},
		{EmployeeID: "EMP203", EmployeeName: "Linda Chen", ShiftDate: "2024-11-16", AdherencePct: 48, TardinessCount: 5, AuxTimePct: 52, CallsHandled: 55, UnplannedAbsences: 2},
		{EmployeeID: "EMP204", EmployeeName: "Robert Kim", ShiftDate: "2024-11-16", AdherencePct: 31, TardinessCount: 9, AuxTimePct: 65, CallsHandled: 18, UnplannedAbsences: 5},
		{EmployeeID: "EMP205", EmployeeName: "Amanda Lee", ShiftDate: "2024-11-16", AdherencePct: 52, TardinessCount: 7, AuxTimePct: 48, CallsHandled: 62, UnplannedAbsences: 3},
		{EmployeeID: "EMP206", EmployeeName: "Michael Santos", ShiftDate: "2024-11-16", AdherencePct: 94, TardinessCount: 0, AuxTimePct: 14, CallsHandled: 158, UnplannedAbsences: 0},
		{EmployeeID: "EMP207", EmployeeName: "Emma Wilson", ShiftDate: "2024-11-16", AdherencePct: 91, TardinessCount: 1, AuxTimePct: 16, CallsHandled: 145, UnplannedAbsences: 0},
		{EmployeeID: "EMP208", EmployeeName: "James Park", ShiftDate: "2024-11-16", AdherencePct: 96, TardinessCount: 0, AuxTimePct: 11, CallsHandled: 162, UnplannedAbsences: 0},
		{EmployeeID: "EMP209", EmployeeName: "Sofia Garcia", ShiftDate: "2024-11-16", AdherencePct: 89, TardinessCount: 1, AuxTimePct: 18, CallsHandled: 138, UnplannedAbsences: 0},
		{EmployeeID: "EMP210", EmployeeName: "Daniel Cooper", ShiftDate: "2024-11-16", AdherencePct: 93, TardinessCount: 0, AuxTimePct: 15, CallsHandled: 151, UnplannedAbsences: 0},
	}
}

// GenericNames is the name pool for synthetic seed rows.
var GenericNames = []string{
	"John Doe",
	"Jane Smith",
	"Peter Jones",
	"Mary Williams",
	"David Brown",
	"Susan Miller",
	"Michael Wilson",
}

// Narrative strings attached to every seeded prediction.
const (
	SeedAIPrediction     = "Employee shows signs of burnout and may be a flight risk."
	SeedAIRecommendation = "Schedule a 1-on-1 meeting to discuss workload and well-being."
	SeedOTStrategy       = "Offer OT to high-performing peers to cover potential gaps."
	SeedAuxStrategy      = "Review AUX codes for coaching opportunities."
)
