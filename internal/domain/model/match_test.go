package model_test

import (
	"testing"

	model "github.com/okian/footrank/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMatch(t *testing.T) {
	Convey("Given a Match struct", t, func() {
		Convey("When the home side wins", func() {
			m := model.Match{HomeTeam: "Ajax", AwayTeam: "Feyenoord", HomeScore: 3, AwayScore: 1}

			Convey("Then Winner reports home over away", func() {
				winner, loser, ok := m.Winner()
				So(ok, ShouldBeTrue)
				So(winner, ShouldEqual, "Ajax")
				So(loser, ShouldEqual, "Feyenoord")
				So(m.Draw(), ShouldBeFalse)
			})
		})

		Convey("When the away side wins", func() {
			m := model.Match{HomeTeam: "Ajax", AwayTeam: "Feyenoord", HomeScore: 0, AwayScore: 2}

			Convey("Then Winner reports away over home", func() {
				winner, loser, ok := m.Winner()
				So(ok, ShouldBeTrue)
				So(winner, ShouldEqual, "Feyenoord")
				So(loser, ShouldEqual, "Ajax")
			})
		})

		Convey("When the match is level", func() {
			m := model.Match{HomeTeam: "Ajax", AwayTeam: "Feyenoord", HomeScore: 1, AwayScore: 1}

			Convey("Then there is no winner and Draw is true", func() {
				_, _, ok := m.Winner()
				So(ok, ShouldBeFalse)
				So(m.Draw(), ShouldBeTrue)
			})
		})

		Convey("When team names differ only by case or spacing", func() {
			a := model.Match{HomeTeam: "Inter", AwayTeam: "inter ", HomeScore: 1, AwayScore: 0}

			Convey("Then they stay distinct identities", func() {
				winner, loser, ok := a.Winner()
				So(ok, ShouldBeTrue)
				So(winner, ShouldNotEqual, loser)
			})
		})
	})
}
