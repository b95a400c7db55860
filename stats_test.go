package wirereply

import (
	"sync"
	"testing"

	"github.com/smartystreets/goconvey/convey"
)

func TestDefaultStatistic(t *testing.T) {
	convey.Convey("Test a new metric incr", t, func() {
		d := NewDefaultStatistic()
		d.Incr("404")
		d.Add(BytesStats, 10)
		d.Incr("unknown")
		convey.So(d.Get("404"), convey.ShouldEqual, 1)
		convey.So(d.Get(BytesStats), convey.ShouldEqual, 10)
		convey.So(d.Get("unknown"), convey.ShouldEqual, 0)
		convey.So(d.GetAllStats(), convey.ShouldResemble, map[string]uint64{"404": 1, BytesStats: 10})
	})
	convey.Convey("Test concurrent incr", t, func() {
		d := NewDefaultStatistic()
		wg := &sync.WaitGroup{}
		for i := 0; i < 32; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				d.Incr(ResponseStats)
			}()
		}
		wg.Wait()
		convey.So(d.Get(ResponseStats), convey.ShouldEqual, 32)
	})
	convey.Convey("Test average response size", t, func() {
		d := NewDefaultStatistic()
		convey.So(AverageResponseSize(d), convey.ShouldEqual, 0)
		d.Add(ResponseStats, 3)
		d.Add(BytesStats, 10)
		convey.So(AverageResponseSize(d), convey.ShouldEqual, 3.33)
	})
}
