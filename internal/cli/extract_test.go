package cli

import (
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/footrank/internal/adapters/csvio"
	"github.com/okian/footrank/internal/domain/model"
)

func TestExportMatches(t *testing.T) {
	Convey("Given extracted rows with missing team names", t, func() {
		in := []model.Match{
			{Season: "2015/2016", HomeTeam: "Arsenal", AwayTeam: "Chelsea", HomeScore: 2, AwayScore: 1},
			{Season: "2015/2016", HomeTeam: "", AwayTeam: "Chelsea", HomeScore: 1, AwayScore: 0},
			{Season: "2015/2016", HomeTeam: "Leicester", AwayTeam: "", HomeScore: 0, AwayScore: 0},
		}
		out := filepath.Join(t.TempDir(), "matches.csv")

		Convey("When exporting the extraction artifact", func() {
			cleaned, err := exportMatches(in, out)

			Convey("Then invalid rows are dropped and accounted for", func() {
				So(err, ShouldBeNil)
				So(cleaned.Dropped, ShouldEqual, 2)
				So(cleaned.Matches, ShouldHaveLength, 1)
			})

			Convey("Then the artifact carries only rankable rows", func() {
				So(err, ShouldBeNil)
				matches, rerr := csvio.ReadMatches(out)
				So(rerr, ShouldBeNil)
				So(matches, ShouldHaveLength, 1)
				So(matches[0].HomeTeam, ShouldEqual, "Arsenal")
			})
		})
	})

	Convey("Given an unwritable output path", t, func() {
		in := []model.Match{
			{Season: "2015/2016", HomeTeam: "Arsenal", AwayTeam: "Chelsea", HomeScore: 2, AwayScore: 1},
		}
		out := filepath.Join(t.TempDir(), "missing-dir", "matches.csv")

		Convey("When exporting the extraction artifact", func() {
			_, err := exportMatches(in, out)

			Convey("Then the write failure surfaces", func() {
				So(err, ShouldNotBeNil)
			})
		})
	})
}
