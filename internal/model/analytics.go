package model

// AnalyticsResponse は学習状況の集計結果
type AnalyticsResponse struct {
	TotalCards       int           `json:"total_cards"`
	StudiedCards     int           `json:"studied_cards"`
	TotalAttempts    int           `json:"total_attempts"`
	AverageAccuracy  float64       `json:"average_accuracy"`
	CardsMastered    int           `json:"cards_mastered"`
	SubjectBreakdown []SubjectStat `json:"subject_breakdown"`
}

type SubjectStat struct {
	Subject   string  `json:"subject"`
	CardCount int     `json:"card_count"`
	Accuracy  float64 `json:"accuracy"`
}
