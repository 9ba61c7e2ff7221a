package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	store "github.com/okian/hoopstat/internal/adapters/store"
	"github.com/okian/hoopstat/internal/domain/model"
	"github.com/okian/hoopstat/internal/domain/pipeline"
)

func resultFor(name string) pipeline.Result {
	return pipeline.Result{
		Players: []model.RankedPlayer{
			{
				ScoredPlayer: model.ScoredPlayer{
					PlayerStat: model.PlayerStat{Name: name, Points: 10},
					Score:      10,
				},
				Rank: 1,
			},
		},
		Summary: model.Summary{TotalPlayers: 1, TopScorer: name},
	}
}

func TestMemStore(t *testing.T) {
	Convey("Given an in-memory run store", t, func() {
		ctx := context.Background()

		Convey("When storing and retrieving a run", func() {
			s := store.NewMemStore()
			defer s.Close()

			runID, err := s.Put(ctx, "roster.csv", resultFor("A"))
			So(err, ShouldBeNil)
			So(runID, ShouldNotBeEmpty)

			rec, err := s.Get(ctx, runID)

			Convey("Then the stored record comes back intact", func() {
				So(err, ShouldBeNil)
				So(rec.RunID, ShouldEqual, runID)
				So(rec.Filename, ShouldEqual, "roster.csv")
				So(rec.Result.Summary.TopScorer, ShouldEqual, "A")
			})

			Convey("And distinct Puts generate distinct run IDs", func() {
				other, err := s.Put(ctx, "other.csv", resultFor("B"))
				So(err, ShouldBeNil)
				So(other, ShouldNotEqual, runID)
				So(s.Count(ctx), ShouldEqual, 2)
			})
		})

		Convey("When looking up an unknown run ID", func() {
			s := store.NewMemStore()
			defer s.Close()

			_, err := s.Get(ctx, "no-such-run")

			Convey("Then the lookup fails with ErrNotFound", func() {
				So(errors.Is(err, store.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When deleting a run", func() {
			s := store.NewMemStore()
			defer s.Close()

			runID, _ := s.Put(ctx, "roster.csv", resultFor("A"))

			Convey("Then the first delete reports presence, the second absence", func() {
				So(s.Delete(ctx, runID), ShouldBeTrue)
				So(s.Delete(ctx, runID), ShouldBeFalse)
				_, err := s.Get(ctx, runID)
				So(errors.Is(err, store.ErrNotFound), ShouldBeTrue)
			})
		})

		Convey("When the store reaches its run cap", func() {
			now := time.Now()
			clock := func() time.Time { return now }
			s := store.NewMemStore(store.WithMaxRuns(2), store.WithClock(clock))
			defer s.Close()

			first, _ := s.Put(ctx, "first.csv", resultFor("A"))
			now = now.Add(time.Second)
			second, _ := s.Put(ctx, "second.csv", resultFor("B"))
			now = now.Add(time.Second)
			third, _ := s.Put(ctx, "third.csv", resultFor("C"))

			Convey("Then the oldest run is evicted", func() {
				_, err := s.Get(ctx, first)
				So(errors.Is(err, store.ErrNotFound), ShouldBeTrue)

				_, err = s.Get(ctx, second)
				So(err, ShouldBeNil)
				_, err = s.Get(ctx, third)
				So(err, ShouldBeNil)
				So(s.Count(ctx), ShouldEqual, 2)
			})
		})

		Convey("When a run outlives its TTL", func() {
			now := time.Now()
			clock := func() time.Time { return now }
			s := store.NewMemStore(store.WithTTL(time.Minute), store.WithClock(clock))
			defer s.Close()

			runID, _ := s.Put(ctx, "roster.csv", resultFor("A"))

			Convey("Then it stays retrievable inside the TTL", func() {
				now = now.Add(59 * time.Second)
				_, err := s.Get(ctx, runID)
				So(err, ShouldBeNil)
			})

			Convey("And reads treat it as absent after expiry", func() {
				now = now.Add(2 * time.Minute)
				_, err := s.Get(ctx, runID)
				So(errors.Is(err, store.ErrNotFound), ShouldBeTrue)
				So(s.Count(ctx), ShouldEqual, 0)
			})
		})
	})
}
