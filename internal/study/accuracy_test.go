package study_test

import (
	"testing"

	"go_flashcard_study/internal/study"

	"github.com/stretchr/testify/assert"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name       string
		timesSeen  int
		timesWrong int
		want       float64
	}{
		{name: "未学習は100", timesSeen: 0, timesWrong: 0, want: 100},
		{name: "全問正解", timesSeen: 4, timesWrong: 0, want: 100},
		{name: "全問不正解", timesSeen: 3, timesWrong: 3, want: 0},
		{name: "半分正解", timesSeen: 4, timesWrong: 2, want: 50},
		{name: "丸めない", timesSeen: 3, timesWrong: 1, want: 200.0 / 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, study.Accuracy(tt.timesSeen, tt.timesWrong))
		})
	}
}

func TestAccuracy_Bounds(t *testing.T) {
	for seen := 0; seen <= 50; seen++ {
		for wrong := 0; wrong <= seen; wrong++ {
			got := study.Accuracy(seen, wrong)
			assert.GreaterOrEqual(t, got, 0.0, "seen=%d wrong=%d", seen, wrong)
			assert.LessOrEqual(t, got, 100.0, "seen=%d wrong=%d", seen, wrong)
		}
	}
}

func TestRoundAccuracy(t *testing.T) {
	assert.Equal(t, 66.67, study.RoundAccuracy(study.Accuracy(3, 1)))
	assert.Equal(t, 33.33, study.RoundAccuracy(study.Accuracy(3, 2)))
	assert.Equal(t, 100.0, study.RoundAccuracy(100))
}
