package reminder

import "buddyfridge/internal/utils/mailing"

// Dispatcher is the external notification boundary. Delivery is
// best-effort; a failed dispatch never affects inventory state.
type Dispatcher interface {
	Dispatch(toEmail, title, body string) error
}

type mailDispatcher struct{}

func NewMailDispatcher() Dispatcher {
	return &mailDispatcher{}
}

func (d *mailDispatcher) Dispatch(toEmail, title, body string) error {
	return mailing.SendMail(toEmail, title, body)
}
