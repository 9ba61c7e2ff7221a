package logger_test

import (
	"context"
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/hoopstat/pkg/logger"
)

func TestLogger(t *testing.T) {
	Convey("Given an initialized global logger", t, func() {
		So(logger.Init(), ShouldBeNil)
		ctx := context.Background()

		Convey("When fetching the global logger", func() {
			l := logger.Get()
			So(l, ShouldNotBeNil)

			Convey("Then all levels log without panicking", func() {
				So(func() {
					l.Debug(ctx, "debug message", logger.String("k", "v"))
					l.Info(ctx, "info message", logger.Int("count", 3))
					l.Warn(ctx, "warn message", logger.Float64("score", 20.5))
					l.Error(ctx, "error message", logger.Err(errors.New("boom")))
				}, ShouldNotPanic)
			})
		})

		Convey("When deriving a named logger", func() {
			named := logger.Named("pipeline")
			So(named, ShouldNotBeNil)
			So(func() { named.Info(ctx, "scoped message") }, ShouldNotPanic)
		})

		Convey("When setting the level from a string", func() {
			So(logger.SetLevelString("debug"), ShouldBeNil)
			So(logger.SetLevelString("WARN"), ShouldBeNil)
			So(logger.SetLevelString(""), ShouldBeNil)
			So(logger.SetLevelString("verbose"), ShouldNotBeNil)
		})

		Convey("When syncing", func() {
			So(logger.Sync(), ShouldBeNil)
		})
	})
}

func TestFields(t *testing.T) {
	Convey("Given the field constructors", t, func() {
		Convey("Then each builds the expected key and value", func() {
			So(logger.String("name", "A"), ShouldResemble, logger.Field{Key: "name", Value: "A"})
			So(logger.Int("rank", 1), ShouldResemble, logger.Field{Key: "rank", Value: 1})
			So(logger.Float64("score", 20.0), ShouldResemble, logger.Field{Key: "score", Value: 20.0})
			So(logger.Any("rows", []int{1, 2}), ShouldResemble, logger.Field{Key: "rows", Value: []int{1, 2}})

			err := errors.New("boom")
			So(logger.Err(err), ShouldResemble, logger.Field{Key: "error", Value: err})
		})
	})
}
