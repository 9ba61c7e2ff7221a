package app_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/hoopstat/internal/adapters/ingest"
	"github.com/okian/hoopstat/internal/adapters/store"
	app "github.com/okian/hoopstat/internal/app"
	"github.com/okian/hoopstat/internal/domain/pipeline"
	"github.com/okian/hoopstat/pkg/logger"
)

const rosterCSV = `Name,Points,Assists,Rebounds,Steals,Turnovers
A,10,2,5,1,1
B,20,0,0,0,0
C,5,1,1,0,3
`

func startedService() *app.Service {
	_ = logger.Init()
	svc := app.New()
	_ = svc.Start(context.Background())
	return svc
}

func TestAnalyze(t *testing.T) {
	Convey("Given a started analyzer service", t, func() {
		svc := startedService()
		defer svc.Stop()
		ctx := context.Background()

		Convey("When analyzing a CSV upload", func() {
			runID, res, err := svc.Analyze(ctx, "roster.csv", strings.NewReader(rosterCSV))
			So(err, ShouldBeNil)
			So(runID, ShouldNotBeEmpty)

			Convey("Then the result is ranked and summarized", func() {
				So(res.Players, ShouldHaveLength, 3)
				So(res.Players[0].Rank, ShouldEqual, 1)
				So(res.Summary.TopScorer, ShouldEqual, "A")
			})

			Convey("And the run is retrievable by its ID", func() {
				rec, err := svc.Run(ctx, runID)
				So(err, ShouldBeNil)
				So(rec.Filename, ShouldEqual, "roster.csv")
				So(rec.Result.Summary.TotalPlayers, ShouldEqual, 3)
			})

			Convey("And the leaderboard honors the limit", func() {
				top, err := svc.Leaderboard(ctx, runID, 2)
				So(err, ShouldBeNil)
				So(top, ShouldHaveLength, 2)
				So(top[0].Name, ShouldEqual, "A")
			})

			Convey("And a limit beyond the roster returns everyone", func() {
				all, err := svc.Leaderboard(ctx, runID, 100)
				So(err, ShouldBeNil)
				So(all, ShouldHaveLength, 3)
			})

			Convey("And the summary endpoint view matches the run", func() {
				summary, err := svc.Summary(ctx, runID)
				So(err, ShouldBeNil)
				So(summary.TotalPlayers, ShouldEqual, 3)
			})

			Convey("And the export stream starts with the fixed header", func() {
				var sb strings.Builder
				So(svc.ExportCSV(ctx, runID, &sb), ShouldBeNil)
				So(sb.String(), ShouldStartWith,
					"Rank,Name,Points,Assists,Rebounds,Steals,Turnovers,Performance Score")
			})
		})

		Convey("When the upload has an unsupported extension", func() {
			_, _, err := svc.Analyze(ctx, "roster.txt", strings.NewReader(rosterCSV))
			So(errors.Is(err, ingest.ErrUnsupportedFormat), ShouldBeTrue)
		})

		Convey("When every row is invalid", func() {
			blank := "Name,Points,Assists,Rebounds,Steals,Turnovers\n,1,1,1,1,1\n"
			_, _, err := svc.Analyze(ctx, "roster.csv", strings.NewReader(blank))
			So(errors.Is(err, pipeline.ErrNoValidRecords), ShouldBeTrue)
		})

		Convey("When asking for an unknown run", func() {
			_, err := svc.Summary(ctx, "missing")
			So(errors.Is(err, store.ErrNotFound), ShouldBeTrue)
		})
	})
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given service construction options", t, func() {
		_ = logger.Init()

		Convey("When creating with defaults", func() {
			svc := app.New()
			So(svc, ShouldNotBeNil)
			So(svc.Start(context.Background()), ShouldBeNil)
			defer svc.Stop()

			Convey("Then a second Start is a no-op", func() {
				So(svc.Start(context.Background()), ShouldBeNil)
			})
		})

		Convey("When injecting a custom store", func() {
			st := store.NewMemStore(store.WithMaxRuns(1))
			svc := app.New(app.WithStore(st))
			So(svc.Start(context.Background()), ShouldBeNil)
			defer svc.Stop()

			_, _, err := svc.Analyze(context.Background(), "a.csv", strings.NewReader(rosterCSV))
			So(err, ShouldBeNil)
			_, _, err = svc.Analyze(context.Background(), "b.csv", strings.NewReader(rosterCSV))
			So(err, ShouldBeNil)

			Convey("Then the injected cap applies", func() {
				So(st.Count(context.Background()), ShouldEqual, 1)
			})
		})

		Convey("When reading service stats", func() {
			svc := startedService()
			defer svc.Stop()

			_, _, err := svc.Analyze(context.Background(), "a.csv", strings.NewReader(rosterCSV))
			So(err, ShouldBeNil)

			stats := svc.GetStats()
			So(stats["stored_runs"], ShouldEqual, 1)
			So(stats["total_runs"], ShouldEqual, int64(1))
			So(stats["total_failures"], ShouldEqual, int64(0))
		})
	})
}
