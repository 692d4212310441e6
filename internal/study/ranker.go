package study

import (
	"sort"
	"time"

	"go_flashcard_study/internal/model"
)

// RankFallback は AI を使わない既定の並び順を返します。入力は変更しません。
//
// 並び順: 間違い回数の降順。同数なら last_seen の古い順 (nil はエポック扱い)。
// それも同じなら入力順を保ちます。カードの重複は生じません。
func RankFallback(cards []model.StudyCard) []model.StudyCard {
	ranked := make([]model.StudyCard, len(cards))
	copy(ranked, cards)
	for i := range ranked {
		ranked[i].AccuracyRate = RoundAccuracy(Accuracy(ranked[i].TimesSeen, ranked[i].TimesWrong))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].TimesWrong != ranked[j].TimesWrong {
			return ranked[i].TimesWrong > ranked[j].TimesWrong
		}
		return lastSeenOrEpoch(ranked[i]).Before(lastSeenOrEpoch(ranked[j]))
	})
	return ranked
}

// IDs はカード列をID列に射影します。
func IDs(cards []model.StudyCard) []uint {
	ids := make([]uint, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

func lastSeenOrEpoch(c model.StudyCard) time.Time {
	if c.LastSeen == nil {
		return time.Unix(0, 0).UTC()
	}
	return *c.LastSeen
}
