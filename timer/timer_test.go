package timer_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"Countdown/timer"
	"Countdown/timer/timertest"
)

var _ = Describe("Countdown", func() {
	var (
		sched *timertest.ManualScheduler
		c     *timer.Countdown
	)

	BeforeEach(func() {
		sched = timertest.NewManualScheduler()
		c = timer.NewCountdown(sched)
	})

	It("should start idle with nothing configured", func() {
		Expect(c.State()).To(Equal(timer.StateIdle))
		Expect(c.TimeLeft()).To(Equal(0))
		_, ok := c.Duration()
		Expect(ok).To(BeFalse())
		Expect(c.FormatTimeLeft()).To(Equal("00 : 00"))
	})

	DescribeTable("should format the committed duration",
		func(d int, want string) {
			c.SetDuration(timer.Seconds(d))
			Expect(c.FormatTimeLeft()).To(Equal(want))
			Expect(c.TimeLeft()).To(Equal(d))
			Expect(c.State()).To(Equal(timer.StateIdle))
		},
		Entry("one second", 1, "00 : 01"),
		Entry("under a minute", 59, "00 : 59"),
		Entry("exactly a minute", 60, "01 : 00"),
		Entry("minute and five", 65, "01 : 05"),
		Entry("an hour", 3600, "60 : 00"),
		Entry("over 99 minutes", 6000, "100 : 00"),
	)

	DescribeTable("should ignore durations that are not positive integers",
		func(in timer.Input) {
			c.SetDuration(timer.Seconds(30))
			c.Start()
			sched.Tick()

			c.SetDuration(in)

			Expect(c.State()).To(Equal(timer.StateRunning))
			Expect(c.TimeLeft()).To(Equal(29))
			d, ok := c.Duration()
			Expect(ok).To(BeTrue())
			Expect(d).To(Equal(30))
			Expect(sched.Live()).To(Equal(1))
		},
		Entry("zero", timer.Seconds(0)),
		Entry("negative", timer.Seconds(-4)),
		Entry("unset", timer.Input{}),
		Entry("empty text", timer.ParseInput("")),
		Entry("non-numeric text", timer.ParseInput("abc")),
		Entry("fraction", timer.ParseInput("2.5")),
	)

	It("should not start without time left", func() {
		c.Start()

		Expect(c.State()).To(Equal(timer.StateIdle))
		Expect(sched.Acquired()).To(Equal(0))
	})

	It("should decrement by one on each tick", func() {
		c.SetDuration(timer.Seconds(10))
		c.Start()
		sched.Tick()

		Expect(c.TimeLeft()).To(Equal(9))
		Expect(c.State()).To(Equal(timer.StateRunning))
		Expect(sched.Intervals).To(Equal([]time.Duration{time.Second}))
	})

	It("should hold a single registration when started twice", func() {
		c.SetDuration(timer.Seconds(10))
		c.Start()
		c.Start()
		sched.Tick()

		Expect(sched.Acquired()).To(Equal(1))
		Expect(c.TimeLeft()).To(Equal(9))
	})

	It("should freeze time left while paused", func() {
		c.SetDuration(timer.Seconds(10))
		c.Start()
		sched.TickN(3)
		c.Pause()
		sched.TickN(3)

		Expect(c.State()).To(Equal(timer.StatePaused))
		Expect(c.TimeLeft()).To(Equal(7))
		Expect(c.Resumable()).To(BeTrue())
		Expect(sched.Live()).To(Equal(0))
	})

	It("should ignore pause unless running", func() {
		c.SetDuration(timer.Seconds(10))
		c.Pause()

		Expect(c.State()).To(Equal(timer.StateIdle))
		Expect(c.Resumable()).To(BeFalse())
	})

	It("should expire at zero and never go negative", func() {
		c.SetDuration(timer.Seconds(3))
		c.Start()
		sched.TickN(3)

		Expect(c.State()).To(Equal(timer.StateExpired))
		Expect(c.TimeLeft()).To(Equal(0))
		Expect(sched.Live()).To(Equal(0))

		sched.TickN(5)
		Expect(c.TimeLeft()).To(Equal(0))

		c.Start()
		Expect(c.State()).To(Equal(timer.StateExpired))
		Expect(sched.Acquired()).To(Equal(1))
	})

	It("should run 65 seconds down to expiry", func() {
		c.SetDuration(timer.Seconds(65))
		Expect(c.FormatTimeLeft()).To(Equal("01 : 05"))

		c.Start()
		sched.TickN(64)
		Expect(c.State()).To(Equal(timer.StateRunning))
		Expect(c.FormatTimeLeft()).To(Equal("00 : 01"))

		sched.Tick()
		Expect(c.State()).To(Equal(timer.StateExpired))
		Expect(c.FormatTimeLeft()).To(Equal("00 : 00"))
	})

	It("should resume from where it was paused", func() {
		c.SetDuration(timer.Seconds(5))
		c.Start()
		sched.TickN(2)
		c.Pause()
		Expect(c.FormatTimeLeft()).To(Equal("00 : 03"))

		c.Start()
		Expect(c.State()).To(Equal(timer.StateRunning))
		Expect(c.Resumable()).To(BeFalse())
		sched.TickN(3)

		Expect(c.State()).To(Equal(timer.StateExpired))
		Expect(c.FormatTimeLeft()).To(Equal("00 : 00"))
		Expect(sched.Acquired()).To(Equal(2))
		Expect(sched.Live()).To(Equal(0))
	})

	DescribeTable("should reset from any state",
		func(prepare func()) {
			c.SetDuration(timer.Seconds(20))
			prepare()

			c.Reset()

			Expect(c.State()).To(Equal(timer.StateIdle))
			Expect(c.TimeLeft()).To(Equal(20))
			Expect(sched.Live()).To(Equal(0))
		},
		Entry("idle", func() {}),
		Entry("running", func() {
			c.Start()
			sched.TickN(4)
		}),
		Entry("paused", func() {
			c.Start()
			sched.TickN(4)
			c.Pause()
		}),
		Entry("expired", func() {
			c.Start()
			sched.TickN(20)
		}),
	)

	It("should reset to zero when no duration was committed", func() {
		c.Reset()

		Expect(c.TimeLeft()).To(Equal(0))
		Expect(c.State()).To(Equal(timer.StateIdle))
	})

	It("should discard remaining time when a new duration is set", func() {
		c.SetDuration(timer.Seconds(10))
		c.Start()
		sched.TickN(2)

		c.SetDuration(timer.ParseInput("1:30"))

		Expect(c.State()).To(Equal(timer.StateIdle))
		Expect(c.TimeLeft()).To(Equal(90))
		Expect(sched.Live()).To(Equal(0))
		d, _ := c.Duration()
		Expect(d).To(Equal(90))
	})

	It("should release the schedule on close and ignore later commands", func() {
		c.SetDuration(timer.Seconds(10))
		c.Start()
		sched.Tick()

		c.Close()
		c.Close()

		Expect(sched.Live()).To(Equal(0))
		Expect(c.State()).To(Equal(timer.StatePaused))
		Expect(c.TimeLeft()).To(Equal(9))

		c.Start()
		c.Reset()
		c.SetDuration(timer.Seconds(3))
		Expect(sched.Acquired()).To(Equal(1))
		Expect(c.TimeLeft()).To(Equal(9))
	})

	It("should describe itself in a snapshot", func() {
		c.SetDuration(timer.Seconds(75))
		c.Start()
		sched.Tick()
		c.Pause()

		Expect(c.Snapshot()).To(Equal(timer.Snapshot{
			State:      timer.StatePaused,
			TimeLeft:   74,
			Duration:   75,
			Configured: true,
			Display:    "01 : 14",
			Resumable:  true,
		}))
	})
})

var _ = Describe("Countdown schedule ownership", func() {
	var (
		mockCtrl *gomock.Controller
		sched    *MockScheduler
		handle   *MockHandle
		c        *timer.Countdown
		tick     func()
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		sched = NewMockScheduler(mockCtrl)
		handle = NewMockHandle(mockCtrl)
		c = timer.NewCountdown(sched)
		tick = nil
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	expectAcquire := func() *gomock.Call {
		return sched.EXPECT().
			Every(time.Second, gomock.Any()).
			DoAndReturn(func(_ time.Duration, fn func()) timer.Handle {
				tick = fn
				return handle
			})
	}

	It("should register once with a one second interval", func() {
		expectAcquire().Times(1)

		c.SetDuration(timer.Seconds(5))
		c.Start()
		c.Start()

		Expect(tick).NotTo(BeNil())
	})

	It("should cancel on pause", func() {
		expectAcquire()
		handle.EXPECT().Cancel().Times(1)

		c.SetDuration(timer.Seconds(5))
		c.Start()
		c.Pause()
		c.Pause()
	})

	It("should cancel itself when the countdown expires", func() {
		expectAcquire()
		handle.EXPECT().Cancel().Times(1)

		c.SetDuration(timer.Seconds(2))
		c.Start()
		tick()
		tick()
		tick()

		Expect(c.State()).To(Equal(timer.StateExpired))
		Expect(c.TimeLeft()).To(Equal(0))
	})

	It("should release before acquiring again", func() {
		first := handle
		second := NewMockHandle(mockCtrl)

		gomock.InOrder(
			sched.EXPECT().Every(time.Second, gomock.Any()).Return(first),
			first.EXPECT().Cancel(),
			sched.EXPECT().Every(time.Second, gomock.Any()).Return(second),
			second.EXPECT().Cancel(),
		)

		c.SetDuration(timer.Seconds(5))
		c.Start()
		c.SetDuration(timer.Seconds(8))
		c.Start()
		c.Reset()
	})

	It("should cancel on close", func() {
		expectAcquire()
		handle.EXPECT().Cancel().Times(1)

		c.SetDuration(timer.Seconds(5))
		c.Start()
		c.Close()
		c.Start()
	})

	It("should not touch the scheduler when closed while idle", func() {
		c.SetDuration(timer.Seconds(5))
		c.Close()
		c.Start()

		Expect(c.State()).To(Equal(timer.StateIdle))
	})
})
