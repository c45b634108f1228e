package types

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type MarkTestSuite struct {
	suite.Suite
}

func TestMarkSuite(t *testing.T) {
	suite.Run(t, new(MarkTestSuite))
}

func (suite *MarkTestSuite) TestMarksFromEpisode() {
	closes := []float64{100, 101, 102, 103, 104}
	history := &EpisodeHistory{
		BuyDates:  []int{0, 2},
		SellDates: []int{4},
	}

	marks := MarksFromEpisode(history, closes)
	suite.Len(marks, 3)

	suite.Equal(MarkSideBuy, marks[0].Side)
	suite.Equal(0, marks[0].Day)
	suite.Equal(100.0, marks[0].Price)
	suite.Equal(MarkColorGreen, marks[0].Color)

	suite.Equal(MarkSideSell, marks[2].Side)
	suite.Equal(4, marks[2].Day)
	suite.Equal(104.0, marks[2].Price)
	suite.Equal(MarkColorRed, marks[2].Color)
}

func (suite *MarkTestSuite) TestMarksFromEpisodeSkipsOutOfRangeDays() {
	closes := []float64{100, 101}
	history := &EpisodeHistory{
		BuyDates:  []int{-1, 0},
		SellDates: []int{5},
	}

	marks := MarksFromEpisode(history, closes)
	suite.Len(marks, 1)
	suite.Equal(0, marks[0].Day)
}

func (suite *MarkTestSuite) TestMarksFromEpisodeEmpty() {
	marks := MarksFromEpisode(&EpisodeHistory{}, []float64{100})
	suite.Empty(marks)
}
