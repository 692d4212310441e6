package study_test

import (
	"testing"
	"time"

	"go_flashcard_study/internal/model"
	"go_flashcard_study/internal/study"

	"github.com/stretchr/testify/assert"
)

func ts(day int) *time.Time {
	t := time.Date(2024, 1, day, 0, 0, 0, 0, time.UTC)
	return &t
}

func card(id uint, seen, wrong int, lastSeen *time.Time) model.StudyCard {
	return model.StudyCard{
		ID:         id,
		Subject:    "Mathematics",
		Front:      "front",
		TimesSeen:  seen,
		TimesWrong: wrong,
		LastSeen:   lastSeen,
	}
}

func TestRankFallback(t *testing.T) {
	tests := []struct {
		name  string
		cards []model.StudyCard
		want  []uint
	}{
		{
			name:  "空入力は空",
			cards: []model.StudyCard{},
			want:  []uint{},
		},
		{
			name: "間違い回数の降順",
			cards: []model.StudyCard{
				card(1, 5, 3, ts(20)),
				card(2, 5, 0, ts(1)),
				card(3, 5, 1, ts(10)),
			},
			want: []uint{1, 3, 2},
		},
		{
			name: "同数なら last_seen の古い順、未学習が先頭",
			cards: []model.StudyCard{
				card(1, 2, 1, ts(15)),
				card(2, 2, 1, ts(3)),
				card(3, 0, 0, nil),
				card(4, 4, 1, nil),
			},
			want: []uint{4, 2, 1, 3},
		},
		{
			name: "完全に同じなら入力順",
			cards: []model.StudyCard{
				card(9, 0, 0, nil),
				card(4, 0, 0, nil),
				card(6, 0, 0, nil),
			},
			want: []uint{9, 4, 6},
		},
		{
			name: "正答率は並び順に影響しない",
			cards: []model.StudyCard{
				card(1, 10, 2, ts(5)),
				card(2, 2, 2, ts(5)),
			},
			want: []uint{1, 2},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := study.RankFallback(tt.cards)
			assert.Equal(t, tt.want, study.IDs(got))
		})
	}
}

func TestRankFallback_Properties(t *testing.T) {
	cards := []model.StudyCard{
		card(1, 3, 0, ts(2)),
		card(2, 6, 2, nil),
		card(3, 4, 2, ts(9)),
		card(4, 0, 0, nil),
		card(5, 8, 5, ts(1)),
		card(6, 6, 2, ts(4)),
	}
	input := make([]model.StudyCard, len(cards))
	copy(input, cards)

	first := study.RankFallback(cards)
	second := study.RankFallback(cards)

	t.Run("決定的", func(t *testing.T) {
		assert.Equal(t, first, second)
	})

	t.Run("入力を変更しない", func(t *testing.T) {
		assert.Equal(t, input, cards)
	})

	t.Run("重複も欠落もない", func(t *testing.T) {
		assert.ElementsMatch(t, study.IDs(cards), study.IDs(first))
	})

	t.Run("wrong 降順、同数は last_seen 昇順", func(t *testing.T) {
		epoch := time.Unix(0, 0)
		at := func(c model.StudyCard) time.Time {
			if c.LastSeen == nil {
				return epoch
			}
			return *c.LastSeen
		}
		for i := 1; i < len(first); i++ {
			prev, cur := first[i-1], first[i]
			assert.GreaterOrEqual(t, prev.TimesWrong, cur.TimesWrong)
			if prev.TimesWrong == cur.TimesWrong {
				assert.False(t, at(cur).Before(at(prev)), "ids %d,%d", prev.ID, cur.ID)
			}
		}
	})

	t.Run("正答率を再計算する", func(t *testing.T) {
		for _, c := range first {
			assert.Equal(t, study.RoundAccuracy(study.Accuracy(c.TimesSeen, c.TimesWrong)), c.AccuracyRate)
		}
	})
}

// 3枚のカードの wrong が [3,0,1] のとき、既定順は wrong の多い順になる。
func TestRankFallback_ThreeCards(t *testing.T) {
	cards := []model.StudyCard{
		card(10, 4, 3, ts(28)),
		card(20, 4, 0, nil),
		card(30, 4, 1, ts(2)),
	}

	assert.Equal(t, []uint{10, 30, 20}, study.IDs(study.RankFallback(cards)))
}
