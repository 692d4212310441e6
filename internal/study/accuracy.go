package study

import "math"

// Accuracy は正答率(%)を返します。未学習(timesSeen == 0)のカードは 100 とみなします。
// timesWrong <= timesSeen は呼び出し側の前提で、ここでは検査しません。
func Accuracy(timesSeen, timesWrong int) float64 {
	if timesSeen <= 0 {
		return 100
	}
	return 100 * float64(timesSeen-timesWrong) / float64(timesSeen)
}

// RoundAccuracy は表示用に小数第2位で丸めます。
func RoundAccuracy(v float64) float64 {
	return math.Round(v*100) / 100
}
