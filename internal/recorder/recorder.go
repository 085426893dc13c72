package recorder

// Update kinds.
const (
	KindShort = "SHORT"
	KindDaily = "DAILY"
)

// UpdateEvent describes one dispatched notification.
type UpdateEvent struct {
	Kind      string // KindShort or KindDaily
	PriceUSD  float64
	PriceEUR  float64
	Alert     string // "BELOW", "ABOVE", or ""
	ChartSent bool
	Note      string
}

// Recorder persists an audit trail of dispatched updates. It is never read
// back at runtime.
type Recorder interface {
	RecordUpdate(evt *UpdateEvent) error
	Close() error
}
