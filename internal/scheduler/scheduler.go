package scheduler

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/MrRicesun777/PriceOfEth/internal/model"
	"github.com/MrRicesun777/PriceOfEth/internal/notifier"
	"github.com/MrRicesun777/PriceOfEth/internal/recorder"
)

// PriceSource supplies spot prices and trailing history.
type PriceSource interface {
	FetchSpotPrice() (usd, eur float64, err error)
	FetchHistory(days int, currency string) (model.PriceSeries, error)
}

// Dispatcher delivers text and images to the chat channel.
type Dispatcher interface {
	Send(text string) error
	SendPhoto(path string) error
}

// ChartRenderer produces the chart artifact for a series.
type ChartRenderer interface {
	Render(series model.PriceSeries, windowDays int) (string, error)
}

// Options holds the scheduling knobs.
type Options struct {
	Thresholds model.AlertThresholds
	Interval   string // cron spec for the repeating tick
	DailyHour  int    // local hour of the full update
	WindowDays int    // trailing window of the daily chart
	Location   *time.Location
}

// Scheduler drives the update cycles: a short text-only update every tick,
// plus one full update (chart included) per day during the trigger hour.
type Scheduler struct {
	cron       *cron.Cron
	source     PriceSource
	renderer   ChartRenderer
	dispatcher Dispatcher
	recorder   recorder.Recorder
	opts       Options

	now func() time.Time

	mu            sync.Mutex
	lastDailyFire time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(src PriceSource, rend ChartRenderer, disp Dispatcher, rec recorder.Recorder, opts Options) *Scheduler {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	s := &Scheduler{
		cron:       cron.New(),
		source:     src,
		renderer:   rend,
		dispatcher: disp,
		recorder:   rec,
		opts:       opts,
	}
	s.now = func() time.Time { return time.Now().In(opts.Location) }
	return s
}

// Register adds the repeating tick to the cron schedule.
func (s *Scheduler) Register() error {
	if _, err := s.cron.AddFunc(s.opts.Interval, s.tick); err != nil {
		return fmt.Errorf("register tick: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunStartupUpdate performs the immediate full update on process start.
// It deliberately does not count as the daily fire, so the regular daily
// update still goes out later the same day.
func (s *Scheduler) RunStartupUpdate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runFullCycle(s.now())
}

// tick runs once per interval. The daily trigger fires on the first tick
// inside the trigger hour of a new day, which stays reliable for any poll
// interval up to one hour.
func (s *Scheduler) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Hour() == s.opts.DailyHour && !sameDay(s.lastDailyFire, now) {
		s.lastDailyFire = now
		s.runFullCycle(now)
	}
	s.runShortCycle()
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// runShortCycle sends the text-only price update.
func (s *Scheduler) runShortCycle() {
	defer s.recoverCycle("short")

	log.Println("[INFO] running price update")
	usd, eur, err := s.source.FetchSpotPrice()
	if err != nil {
		log.Printf("[WARN] spot price fetch failed, skipping update: %v", err)
		return
	}

	s.trySend(notifier.FormatShortUpdate(usd, eur, s.opts.Thresholds))
	s.record(&recorder.UpdateEvent{
		Kind:     recorder.KindShort,
		PriceUSD: usd,
		PriceEUR: eur,
		Alert:    s.alertKind(eur),
	})
}

// runFullCycle renders the chart, sends the daily summary, then the image.
func (s *Scheduler) runFullCycle(now time.Time) {
	defer s.recoverCycle("full")

	log.Println("[INFO] running daily update")
	usd, eur, err := s.source.FetchSpotPrice()
	if err != nil {
		log.Printf("[WARN] spot price fetch failed, skipping daily update: %v", err)
		return
	}

	// Reference value: first point of a 2-day window, as yesterday's price.
	var yesterdayEUR *float64
	if ref, err := s.source.FetchHistory(2, "eur"); err != nil {
		log.Printf("[WARN] reference history fetch failed: %v", err)
	} else if len(ref) > 0 {
		v := ref[0].Price
		yesterdayEUR = &v
	}

	series, err := s.source.FetchHistory(s.opts.WindowDays, "eur")
	if err != nil {
		log.Printf("[WARN] chart history fetch failed: %v", err)
	}

	chartPath, renderErr := s.renderer.Render(series, s.opts.WindowDays)

	s.trySend(notifier.FormatDailyUpdate(usd, eur, yesterdayEUR, s.opts.Thresholds, now))

	chartSent := false
	note := ""
	if renderErr != nil {
		log.Printf("[WARN] chart skipped: %v", renderErr)
		note = renderErr.Error()
		s.trySend("⚠️ Could not generate a price chart due to missing data.")
	} else if err := s.dispatcher.SendPhoto(chartPath); err != nil {
		// Image delivery failure must never silently drop the update.
		log.Printf("[ERROR] send chart: %v", err)
		note = err.Error()
		s.trySend(fmt.Sprintf("⚠️ Failed to send the price chart: %v", err))
	} else {
		chartSent = true
	}

	s.record(&recorder.UpdateEvent{
		Kind:      recorder.KindDaily,
		PriceUSD:  usd,
		PriceEUR:  eur,
		Alert:     s.alertKind(eur),
		ChartSent: chartSent,
		Note:      note,
	})
}

func (s *Scheduler) alertKind(eur float64) string {
	switch {
	case eur < s.opts.Thresholds.Low:
		return "BELOW"
	case eur > s.opts.Thresholds.High:
		return "ABOVE"
	default:
		return ""
	}
}

// recoverCycle catches panics at the cycle boundary so a single failed
// cycle never terminates the process.
func (s *Scheduler) recoverCycle(kind string) {
	if r := recover(); r != nil {
		log.Printf("[ERROR] %s cycle panic: %v", kind, r)
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.dispatcher.Send(text); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}

func (s *Scheduler) record(evt *recorder.UpdateEvent) {
	if err := s.recorder.RecordUpdate(evt); err != nil {
		log.Printf("[ERROR] record update: %v", err)
	}
}
