package config_test

import (
	"runtime"
	"testing"

	"github.com/okian/footrank/internal/config"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with default options", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Addr, convey.ShouldEqual, ":9090")
			convey.So(cfg.Damping, convey.ShouldEqual, 0.85)
			convey.So(cfg.Tolerance, convey.ShouldEqual, 1e-9)
			convey.So(cfg.MaxIterations, convey.ShouldEqual, 100)
			convey.So(cfg.WorkerCount, convey.ShouldEqual, runtime.NumCPU())
			convey.So(cfg.TopN, convey.ShouldEqual, 10)
			convey.So(cfg.GlobalDrawPolicy, convey.ShouldEqual, "bidirectional")
			convey.So(cfg.SeasonDrawPolicy, convey.ShouldEqual, "ignored")
		})
	})
}
