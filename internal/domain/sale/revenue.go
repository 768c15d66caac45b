package sale

import "github.com/innoscripta-checkout-register/internal/domain/money"

// RevenueObserver is notified with the final total every time a sale is paid
type RevenueObserver interface {
	OnSaleCompleted(total money.Money)
}

// RevenueObserverFunc adapts a plain function to RevenueObserver
type RevenueObserverFunc func(total money.Money)

// OnSaleCompleted calls f(total)
func (f RevenueObserverFunc) OnSaleCompleted(total money.Money) {
	f(total)
}

// RevenueBroadcaster keeps observers in registration order and notifies them synchronously.
// Registering the same observer twice delivers two notifications.
type RevenueBroadcaster struct {
	observers []RevenueObserver
}

// NewRevenueBroadcaster creates a broadcaster preloaded with the given observers
func NewRevenueBroadcaster(observers ...RevenueObserver) *RevenueBroadcaster {
	b := &RevenueBroadcaster{}
	for _, o := range observers {
		b.Register(o)
	}
	return b
}

// Register appends an observer. Nil observers are ignored.
func (b *RevenueBroadcaster) Register(observer RevenueObserver) {
	if observer == nil {
		return
	}
	b.observers = append(b.observers, observer)
}

// NotifyAll delivers total to every observer once, in order
func (b *RevenueBroadcaster) NotifyAll(total money.Money) {
	for _, o := range b.observers {
		o.OnSaleCompleted(total)
	}
}

// Observers returns a copy of the registered observers
func (b *RevenueBroadcaster) Observers() []RevenueObserver {
	out := make([]RevenueObserver, len(b.observers))
	copy(out, b.observers)
	return out
}

// Len returns the number of registered observers
func (b *RevenueBroadcaster) Len() int {
	return len(b.observers)
}
