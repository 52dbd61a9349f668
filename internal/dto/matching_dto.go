// FILE: internal/dto/matching_dto.go
package dto

import "github.com/google/uuid"

type MatchSuggestionResponse struct {
	Student StudentSummaryResponse `json:"student"`
	Score   int                    `json:"score"`
}

type MatchSuggestionsResponse struct {
	Suggestions []MatchSuggestionResponse `json:"suggestions"`
	FromCache   bool                      `json:"from_cache"`
}

type FormGroupsRequest struct {
	RoomCapacity int    `json:"room_capacity" validate:"required,min=1,max=4"`
	Gender       string `json:"gender" validate:"required,oneof=Boys Girls"`
	MinScore     *int   `json:"min_score" validate:"omitempty,min=0,max=100"`
}

type FormedGroupResponse struct {
	Members      []StudentSummaryResponse `json:"members"`
	AverageScore int                      `json:"average_score"`
	PairScores   map[string]int           `json:"pair_scores"`
}

type FormGroupsResponse struct {
	Groups    []FormedGroupResponse `json:"groups"`
	PoolSize  int                   `json:"pool_size"`
	Leftovers int                   `json:"leftovers"`
}

type RoomTypeMatchesResponse struct {
	RoomType           string                    `json:"room_type"`
	RequiredRoommates  int                       `json:"required_roommates"`
	PreferredRoommates []MatchSuggestionResponse `json:"preferred_roommates"`
	AiMatches          []MatchSuggestionResponse `json:"ai_matches"`
	TotalMatches       int                       `json:"total_matches"`
}

type CompatibilityCheckResponse struct {
	StudentA uuid.UUID `json:"student_a"`
	StudentB uuid.UUID `json:"student_b"`
	Score    int       `json:"score"`
}
