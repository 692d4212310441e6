package study

import "go_flashcard_study/internal/model"

// NewStudyCard は保存済みのカードと進捗からスナップショットを組み立てます。
// 進捗が未作成のカードはカウンタ0として扱います。
func NewStudyCard(f *model.Flashcard) model.StudyCard {
	card := model.StudyCard{
		ID:      f.ID,
		Subject: f.Subject,
		Front:   f.Front,
		Back:    f.Back,
	}
	if f.Progress != nil {
		card.TimesSeen = f.Progress.TimesSeen
		card.TimesWrong = f.Progress.TimesWrong
		card.LastSeen = f.Progress.LastSeen
	}
	card.AccuracyRate = RoundAccuracy(Accuracy(card.TimesSeen, card.TimesWrong))
	return card
}

// StudyCardFromInput はリクエストボディで渡された統計からスナップショットを組み立てます。
// accuracy_rate はクライアント値を信用せず常に再計算します。
func StudyCardFromInput(in model.StudyCardInput) model.StudyCard {
	card := model.StudyCard{
		ID:       in.ID,
		Subject:  in.Subject,
		Front:    in.Front,
		Back:     in.Back,
		LastSeen: in.LastSeen,
	}
	if in.TimesSeen != nil {
		card.TimesSeen = *in.TimesSeen
	}
	if in.TimesWrong != nil {
		card.TimesWrong = *in.TimesWrong
	}
	card.AccuracyRate = RoundAccuracy(Accuracy(card.TimesSeen, card.TimesWrong))
	return card
}
