package graph_test

import (
	"testing"

	graph "github.com/okian/footrank/internal/domain/graph"
	model "github.com/okian/footrank/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestBuild(t *testing.T) {
	Convey("Given a graph builder", t, func() {
		Convey("When a decisive match is added", func() {
			g := graph.Build([]model.Match{
				{HomeTeam: "A", AwayTeam: "B", HomeScore: 2, AwayScore: 0},
			})

			Convey("Then exactly one edge points from loser to winner", func() {
				So(g.Weight("B", "A"), ShouldEqual, 1.0)
				So(g.Weight("A", "B"), ShouldEqual, 0.0)
				So(g.NodeCount(), ShouldEqual, 2)
				So(g.EdgeCount(), ShouldEqual, 1)
			})
		})

		Convey("When an away win is added", func() {
			g := graph.Build([]model.Match{
				{HomeTeam: "A", AwayTeam: "B", HomeScore: 0, AwayScore: 1},
			})

			Convey("Then the edge points home to away", func() {
				So(g.Weight("A", "B"), ShouldEqual, 1.0)
				So(g.Weight("B", "A"), ShouldEqual, 0.0)
			})
		})

		Convey("When a draw is added under the bidirectional policy", func() {
			g := graph.Build([]model.Match{
				{HomeTeam: "A", AwayTeam: "B", HomeScore: 1, AwayScore: 1},
			}, graph.WithDrawPolicy(graph.DrawBidirectionalHalfWeight))

			Convey("Then both directions carry half weight", func() {
				So(g.Weight("A", "B"), ShouldEqual, 0.5)
				So(g.Weight("B", "A"), ShouldEqual, 0.5)
				So(g.EdgeCount(), ShouldEqual, 2)
			})
		})

		Convey("When a draw is added under the ignored policy", func() {
			g := graph.Build([]model.Match{
				{HomeTeam: "A", AwayTeam: "B", HomeScore: 1, AwayScore: 1},
			}, graph.WithDrawPolicy(graph.DrawIgnored))

			Convey("Then the graph stays empty", func() {
				So(g.Empty(), ShouldBeTrue)
				So(g.NodeCount(), ShouldEqual, 0)
				So(g.EdgeCount(), ShouldEqual, 0)
			})
		})

		Convey("When the same pair meets twice with the same outcome", func() {
			g := graph.Build([]model.Match{
				{HomeTeam: "A", AwayTeam: "B", HomeScore: 2, AwayScore: 0},
				{HomeTeam: "B", AwayTeam: "A", HomeScore: 0, AwayScore: 3},
			})

			Convey("Then the edge weight accumulates instead of overwriting", func() {
				So(g.Weight("B", "A"), ShouldEqual, 2.0)
				So(g.EdgeCount(), ShouldEqual, 1)
			})
		})

		Convey("When a win is followed by a draw between the same pair", func() {
			// A beats B, then they draw: the worked reference case.
			g := graph.Build([]model.Match{
				{Season: "2015", HomeTeam: "A", AwayTeam: "B", HomeScore: 2, AwayScore: 0},
				{Season: "2015", HomeTeam: "B", AwayTeam: "A", HomeScore: 1, AwayScore: 1},
			})

			Convey("Then weights stack to 1.5 and 0.5", func() {
				So(g.Weight("B", "A"), ShouldEqual, 1.5)
				So(g.Weight("A", "B"), ShouldEqual, 0.5)
				So(g.NodeCount(), ShouldEqual, 2)
				So(g.EdgeCount(), ShouldEqual, 2)
			})
		})

		Convey("When a match pairs a team with itself", func() {
			g := graph.Build([]model.Match{
				{HomeTeam: "A", AwayTeam: "A", HomeScore: 1, AwayScore: 0},
			})

			Convey("Then no self-loop is materialized", func() {
				So(g.Empty(), ShouldBeTrue)
				So(g.Weight("A", "A"), ShouldEqual, 0.0)
			})
		})

		Convey("When no matches are given", func() {
			g := graph.Build(nil)

			Convey("Then the graph is empty, not an error", func() {
				So(g.Empty(), ShouldBeTrue)
				So(g.Nodes(), ShouldBeEmpty)
			})
		})

		Convey("When several teams are involved", func() {
			g := graph.Build([]model.Match{
				{HomeTeam: "C", AwayTeam: "A", HomeScore: 0, AwayScore: 1},
				{HomeTeam: "B", AwayTeam: "A", HomeScore: 0, AwayScore: 2},
			})

			Convey("Then Nodes returns sorted names", func() {
				So(g.Nodes(), ShouldResemble, []string{"A", "B", "C"})
			})

			Convey("And out-weights sum per source node", func() {
				So(g.OutWeight("B"), ShouldEqual, 1.0)
				So(g.OutWeight("A"), ShouldEqual, 0.0) // dangling: A never lost
			})
		})
	})
}

func TestParsePolicy(t *testing.T) {
	Convey("Given the draw policy parser", t, func() {
		Convey("When parsing known spellings", func() {
			p1, err1 := graph.ParsePolicy("bidirectional")
			p2, err2 := graph.ParsePolicy(" Ignored ")

			Convey("Then it maps them to policies", func() {
				So(err1, ShouldBeNil)
				So(p1, ShouldEqual, graph.DrawBidirectionalHalfWeight)
				So(err2, ShouldBeNil)
				So(p2, ShouldEqual, graph.DrawIgnored)
			})
		})

		Convey("When parsing an unknown spelling", func() {
			_, err := graph.ParsePolicy("coinflip")

			Convey("Then it returns the sentinel error", func() {
				So(err, ShouldNotBeNil)
				So(err.Error(), ShouldContainSubstring, "unknown draw policy")
			})
		})

		Convey("When round-tripping through String", func() {
			So(graph.DrawBidirectionalHalfWeight.String(), ShouldEqual, "bidirectional")
			So(graph.DrawIgnored.String(), ShouldEqual, "ignored")
		})
	})
}
