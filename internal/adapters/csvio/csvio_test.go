package csvio

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/footrank/internal/domain/model"
	"github.com/okian/footrank/internal/domain/types"
	"github.com/okian/footrank/pkg/logger"
)

func init() {
	_ = logger.Init()
}

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "matches.csv")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing temp csv: %v", err)
	}
	return path
}

func TestReadMatches(t *testing.T) {
	Convey("Given enriched extraction output", t, func() {
		path := writeTempCSV(t, strings.Join([]string{
			"season,league_name,country_name,home_team,away_team,home_score,away_score",
			"2015/2016,Premier League,England,Arsenal,Chelsea,2,1",
			"2015/2016,Premier League,England,Chelsea,Leicester,1,1",
		}, "\n"))

		Convey("When reading matches", func() {
			matches, err := ReadMatches(path)

			Convey("Then every row maps with metadata", func() {
				So(err, ShouldBeNil)
				So(matches, ShouldHaveLength, 2)
				So(matches[0].League, ShouldEqual, "Premier League")
				So(matches[0].HomeScore, ShouldEqual, 2)
				So(matches[1].Draw(), ShouldBeTrue)
			})
		})
	})

	Convey("Given the raw header dialect", t, func() {
		path := writeTempCSV(t, strings.Join([]string{
			"home_team,away_team,home_team_goal,away_team_goal",
			"Arsenal,Chelsea,3,0",
		}, "\n"))

		Convey("When reading matches", func() {
			matches, err := ReadMatches(path)

			Convey("Then synonym score columns are accepted", func() {
				So(err, ShouldBeNil)
				So(matches, ShouldHaveLength, 1)
				So(matches[0].HomeScore, ShouldEqual, 3)
				So(matches[0].Season, ShouldEqual, "")
			})
		})
	})

	Convey("Given team names carrying surrounding whitespace", t, func() {
		path := writeTempCSV(t, strings.Join([]string{
			"season,league_name,country_name,home_team,away_team,home_score,away_score",
			"2015/2016,Premier League,England,Arsenal ,Chelsea, 2,1",
			"2015/2016,Premier League,England,Arsenal,Chelsea,1,0",
		}, "\n"))

		Convey("When reading matches", func() {
			matches, err := ReadMatches(path)

			Convey("Then names pass through verbatim and stay distinct", func() {
				So(err, ShouldBeNil)
				So(matches, ShouldHaveLength, 2)
				So(matches[0].HomeTeam, ShouldEqual, "Arsenal ")
				So(matches[1].HomeTeam, ShouldEqual, "Arsenal")
				So(matches[0].HomeTeam, ShouldNotEqual, matches[1].HomeTeam)
			})

			Convey("Then whitespace around a score cell still parses", func() {
				So(err, ShouldBeNil)
				So(matches[0].HomeScore, ShouldEqual, 2)
			})
		})
	})

	Convey("Given rows with unparseable scores", t, func() {
		path := writeTempCSV(t, strings.Join([]string{
			"home_team,away_team,home_score,away_score",
			"Arsenal,Chelsea,two,1",
			"Arsenal,Leicester,1,0",
		}, "\n"))

		Convey("When reading matches", func() {
			matches, err := ReadMatches(path)

			Convey("Then bad rows are skipped, not fatal", func() {
				So(err, ShouldBeNil)
				So(matches, ShouldHaveLength, 1)
				So(matches[0].AwayTeam, ShouldEqual, "Leicester")
			})
		})
	})

	Convey("Given a file without team columns", t, func() {
		path := writeTempCSV(t, "foo,bar\n1,2\n")

		Convey("When reading matches", func() {
			_, err := ReadMatches(path)

			Convey("Then the header is rejected", func() {
				So(errors.Is(err, ErrBadHeader), ShouldBeTrue)
			})
		})
	})

	Convey("Given a path that does not exist", t, func() {
		_, err := ReadMatches(filepath.Join(t.TempDir(), "nope.csv"))

		Convey("Then the missing source sentinel is returned", func() {
			So(errors.Is(err, ErrMissingSource), ShouldBeTrue)
		})
	})
}

func TestWriteArtifacts(t *testing.T) {
	Convey("Given computed rankings", t, func() {
		dir := t.TempDir()

		Convey("When writing the global ranking", func() {
			path := filepath.Join(dir, "team_pagerank.csv")
			entries := []types.Entry{
				{Rank: 1, Team: "Arsenal", Score: 0.625},
				{Rank: 2, Team: "Chelsea", Score: 0.375},
			}
			So(WriteGlobalRanking(path, entries), ShouldBeNil)

			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			lines := strings.Split(strings.TrimSpace(string(data)), "\n")

			Convey("Then the artifact has the team,pagerank layout", func() {
				So(lines[0], ShouldEqual, "team,pagerank")
				So(lines[1], ShouldEqual, "Arsenal,0.625")
				So(lines[2], ShouldEqual, "Chelsea,0.375")
			})
		})

		Convey("When writing season rankings", func() {
			path := filepath.Join(dir, "team_pagerank_with_league.csv")
			rows := []types.SeasonRow{
				{Season: "2015/2016", Team: "Arsenal", Score: 0.5, League: "Premier League", Country: "England"},
				{Season: "2015/2016", Team: "Chelsea", Score: 0.25, League: "", Country: ""},
			}
			So(WriteSeasonRankings(path, rows), ShouldBeNil)

			data, err := os.ReadFile(path)
			So(err, ShouldBeNil)
			lines := strings.Split(strings.TrimSpace(string(data)), "\n")

			Convey("Then metadata gaps stay empty fields", func() {
				So(lines[0], ShouldEqual, "season,team,pagerank,league,country")
				So(lines[1], ShouldEqual, "2015/2016,Arsenal,0.5,Premier League,England")
				So(lines[2], ShouldEqual, "2015/2016,Chelsea,0.25,,")
			})
		})

		Convey("When round-tripping the extraction artifact", func() {
			path := filepath.Join(dir, "matches_with_league.csv")
			in := []model.Match{
				{Season: "2015/2016", League: "Serie A", Country: "Italy",
					HomeTeam: "Juventus", AwayTeam: "Milan", HomeScore: 2, AwayScore: 0},
			}
			So(WriteMatches(path, in), ShouldBeNil)

			out, err := ReadMatches(path)

			Convey("Then the rows survive intact", func() {
				So(err, ShouldBeNil)
				So(out, ShouldResemble, in)
			})
		})
	})
}
