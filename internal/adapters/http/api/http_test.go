package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/footrank/internal/adapters/http/api"
	service "github.com/okian/footrank/internal/app"
	"github.com/okian/footrank/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

// fixedSnapshot builds a small, known ranking state for handler tests.
func fixedSnapshot() *service.Snapshot {
	entries := []types.Entry{
		{Rank: 1, Team: "Barcelona", Score: 0.4},
		{Rank: 2, Team: "Arsenal", Score: 0.35},
		{Rank: 3, Team: "Porto", Score: 0.25},
	}
	var rows []types.SeasonRow
	for i := 0; i < 6; i++ {
		rows = append(rows, types.SeasonRow{
			Season: "2015/2016", Team: "ES-" + string(rune('A'+i)),
			Score: 0.1, League: "La Liga", Country: "Spain",
		})
	}
	rows = append(rows, types.SeasonRow{
		Season: "2014/2015", Team: "Arsenal",
		Score: 0.5, League: "Premier League", Country: "England",
	})
	return service.NewSnapshot(entries, rows)
}

func newTestMux() *http.ServeMux {
	mux := http.NewServeMux()
	api.NewServer(fixedSnapshot()).Register(context.Background(), mux)
	return mux
}

func doGet(mux *http.ServeMux, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestRankingsEndpoint(t *testing.T) {
	Convey("Given the rankings API", t, func() {
		mux := newTestMux()

		Convey("When requesting the global ranking", func() {
			rec := doGet(mux, "/api/rankings?limit=2")

			Convey("Then the top entries come back in order", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var entries []types.Entry
				So(json.Unmarshal(rec.Body.Bytes(), &entries), ShouldBeNil)
				So(entries, ShouldHaveLength, 2)
				So(entries[0].Team, ShouldEqual, "Barcelona")
				So(entries[1].Team, ShouldEqual, "Arsenal")
			})
		})

		Convey("When omitting the limit", func() {
			rec := doGet(mux, "/api/rankings")

			Convey("Then the default limit applies", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var entries []types.Entry
				So(json.Unmarshal(rec.Body.Bytes(), &entries), ShouldBeNil)
				So(entries, ShouldHaveLength, 3)
			})
		})

		Convey("When the server carries a configured default limit", func() {
			custom := http.NewServeMux()
			api.NewServer(fixedSnapshot(), api.WithDefaultLimit(2)).Register(context.Background(), custom)
			rec := doGet(custom, "/api/rankings")

			Convey("Then a limitless request returns that many entries", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var entries []types.Entry
				So(json.Unmarshal(rec.Body.Bytes(), &entries), ShouldBeNil)
				So(entries, ShouldHaveLength, 2)
			})
		})

		Convey("When the limit is not a positive integer", func() {
			So(doGet(mux, "/api/rankings?limit=abc").Code, ShouldEqual, http.StatusBadRequest)
			So(doGet(mux, "/api/rankings?limit=0").Code, ShouldEqual, http.StatusBadRequest)
			So(doGet(mux, "/api/rankings?limit=100000").Code, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When requesting a season ranking", func() {
			rec := doGet(mux, "/api/rankings/2014/2015")

			Convey("Then the season rows come back", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var rows []types.SeasonRow
				So(json.Unmarshal(rec.Body.Bytes(), &rows), ShouldBeNil)
				So(rows, ShouldHaveLength, 1)
				So(rows[0].Team, ShouldEqual, "Arsenal")
				So(rows[0].League, ShouldEqual, "Premier League")
			})
		})

		Convey("When requesting an unknown season", func() {
			rec := doGet(mux, "/api/rankings/1900/1901")

			Convey("Then the API answers 404", func() {
				So(rec.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When using the wrong method", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/rankings", nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)
			So(rec.Code, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestSeasonsEndpoint(t *testing.T) {
	Convey("Given the seasons API", t, func() {
		mux := newTestMux()

		Convey("When listing seasons", func() {
			rec := doGet(mux, "/api/seasons")

			Convey("Then seasons come back sorted ascending", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var resp struct {
					Seasons []string `json:"seasons"`
				}
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(resp.Seasons, ShouldResemble, []string{"2014/2015", "2015/2016"})
			})
		})
	})
}

func TestSummaryEndpoint(t *testing.T) {
	Convey("Given the summary API", t, func() {
		mux := newTestMux()

		Convey("When requesting the summary", func() {
			rec := doGet(mux, "/api/summary")

			Convey("Then the KPIs reflect the snapshot", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var resp map[string]any
				So(json.Unmarshal(rec.Body.Bytes(), &resp), ShouldBeNil)
				So(resp["total_teams"], ShouldEqual, 3)
				So(resp["top_team"], ShouldEqual, "Barcelona")
				So(resp["top_country"], ShouldEqual, "Spain")
				So(resp["top3_share"], ShouldEqual, 100)
			})
		})
	})
}

func TestAggregatesEndpoint(t *testing.T) {
	Convey("Given the aggregates API", t, func() {
		mux := newTestMux()

		Convey("When aggregating by country", func() {
			rec := doGet(mux, "/api/aggregates?dim=country")

			Convey("Then qualifying groups come back", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)

				var aggs []map[string]any
				So(json.Unmarshal(rec.Body.Bytes(), &aggs), ShouldBeNil)
				So(aggs, ShouldHaveLength, 1)
				So(aggs[0]["name"], ShouldEqual, "Spain")
				So(aggs[0]["teams"], ShouldEqual, 6)
			})
		})

		Convey("When the dimension is missing or unknown", func() {
			So(doGet(mux, "/api/aggregates").Code, ShouldEqual, http.StatusBadRequest)
			So(doGet(mux, "/api/aggregates?dim=club").Code, ShouldEqual, http.StatusBadRequest)
		})
	})
}

func TestReportEndpoint(t *testing.T) {
	Convey("Given the report API", t, func() {
		mux := newTestMux()

		Convey("When requesting the report", func() {
			rec := doGet(mux, "/api/report")

			Convey("Then a plain-text report is served", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Header().Get("Content-Type"), ShouldStartWith, "text/plain")
				So(rec.Body.String(), ShouldContainSubstring, "Total teams: 3")
				So(rec.Body.String(), ShouldContainSubstring, "Most influential team: Barcelona")
			})
		})
	})
}

func TestDashboardEndpoint(t *testing.T) {
	Convey("Given the dashboard page", t, func() {
		mux := newTestMux()

		Convey("When fetching /dashboard", func() {
			rec := doGet(mux, "/dashboard")

			Convey("Then the embedded page is served", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(strings.ToLower(rec.Body.String()), ShouldContainSubstring, "<!doctype html>")
			})
		})
	})
}

func TestHealthEndpoint(t *testing.T) {
	Convey("Given the health endpoint", t, func() {
		mux := newTestMux()

		Convey("When scraping /healthz", func() {
			rec := doGet(mux, "/healthz")

			Convey("Then Prometheus metrics are exposed", func() {
				So(rec.Code, ShouldEqual, http.StatusOK)
				So(rec.Body.String(), ShouldContainSubstring, "footrank")
			})
		})
	})
}
