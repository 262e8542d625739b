package countdown

// Alerter is the expiry side effect.
//
//go:generate mockgen -source=alerter.go -destination=mock_alerter_test.go -package=countdown
type Alerter interface {
	Alert()
	Silence()
}

type nopAlerter struct{}

func (nopAlerter) Alert()   {}
func (nopAlerter) Silence() {}
