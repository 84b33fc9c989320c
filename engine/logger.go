package engine

// Logger receives search progress notifications. cmd/sparrow's UCI
// loop implements one that prints "info ..." lines; NewEngine installs
// NopLogger until SetLogger is called.
type Logger interface {
	BeginSearch()
	EndSearch()
	PrintPV(stats Stats, score int, pv []Move)
}

// NopLogger discards every notification.
type NopLogger struct{}

func (NopLogger) BeginSearch()                             {}
func (NopLogger) EndSearch()                                {}
func (NopLogger) PrintPV(stats Stats, score int, pv []Move) {}
