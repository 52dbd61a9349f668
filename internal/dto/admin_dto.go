// FILE: internal/dto/admin_dto.go
package dto

type AdminDashboardResponse struct {
	TotalStudents      int64   `json:"total_students"`
	AssignedStudents   int64   `json:"assigned_students"`
	UnassignedStudents int64   `json:"unassigned_students"`
	TotalRooms         int64   `json:"total_rooms"`
	OccupiedRooms      int64   `json:"occupied_rooms"`
	ActiveGroups       int64   `json:"active_groups"`
	PendingRoomChanges int64   `json:"pending_room_changes"`
	OutstandingFees    int64   `json:"outstanding_fees"`
	CollectedThisMonth float64 `json:"collected_this_month"`
}
