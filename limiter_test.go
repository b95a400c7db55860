package wirereply

import (
	"sync"
	"testing"
	"time"
)

func TestDeafultLimit(t *testing.T) {
	limit := NewDefaultLimiter(20)
	start := time.Now()
	wg := &sync.WaitGroup{}
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := limit.CheckAndWaitLimiterPass()
			if err != nil {
				t.Errorf("CheckAndWaitLimiterPass error %s", err.Error())
			}
		}()
	}
	wg.Wait()
	interval := time.Since(start).Seconds()
	if interval < 0.4 {
		t.Errorf("DefaultLimiter is not woking")
	}
	t.Logf("task interval is %f", interval)
}
