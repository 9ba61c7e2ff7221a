package export_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	export "github.com/okian/hoopstat/internal/adapters/export"
	"github.com/okian/hoopstat/internal/adapters/ingest"
	"github.com/okian/hoopstat/internal/domain/model"
	"github.com/okian/hoopstat/internal/domain/pipeline"
)

func TestCSVExport(t *testing.T) {
	Convey("Given a ranked result", t, func() {
		players := []model.RankedPlayer{
			{
				ScoredPlayer: model.ScoredPlayer{
					PlayerStat: model.PlayerStat{Name: "A", Points: 10, Assists: 2, Rebounds: 5, Steals: 1, Turnovers: 1},
					Score:      20,
				},
				Rank: 1,
			},
			{
				ScoredPlayer: model.ScoredPlayer{
					PlayerStat: model.PlayerStat{Name: "B", Points: 20},
					Score:      20,
				},
				Rank: 2,
			},
		}

		Convey("When exporting to CSV", func() {
			var buf bytes.Buffer
			So(export.CSV(&buf, players), ShouldBeNil)
			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

			Convey("Then the header carries the fixed column order", func() {
				So(lines[0], ShouldEqual,
					"Rank,Name,Points,Assists,Rebounds,Steals,Turnovers,Performance Score")
			})

			Convey("And rows follow rank order with 2-decimal scores", func() {
				So(lines[1], ShouldEqual, "1,A,10,2,5,1,1,20.00")
				So(lines[2], ShouldEqual, "2,B,20,0,0,0,0,20.00")
			})
		})

		Convey("When re-parsing the export through the ingest pipeline", func() {
			var buf bytes.Buffer
			So(export.CSV(&buf, players), ShouldBeNil)

			table, err := ingest.CSV(bytes.NewReader(buf.Bytes()))
			So(err, ShouldBeNil)

			res, err := pipeline.Run(context.Background(), table)
			So(err, ShouldBeNil)

			Convey("Then the Name -> Score mapping survives the round trip", func() {
				got := map[string]float64{}
				for _, p := range res.Players {
					got[p.Name] = p.Score
				}
				So(got, ShouldResemble, map[string]float64{"A": 20.0, "B": 20.0})
			})
		})

		Convey("When exporting an empty player list", func() {
			var buf bytes.Buffer
			So(export.CSV(&buf, nil), ShouldBeNil)

			Convey("Then only the header is written", func() {
				So(strings.TrimSpace(buf.String()), ShouldEqual,
					"Rank,Name,Points,Assists,Rebounds,Steals,Turnovers,Performance Score")
			})
		})
	})
}
