package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersSignedUp              uint64
	UserLogins                 uint64
	LoginFailures              uint64
	ContactsCreated            uint64
	ContactListQueries         uint64
	ContactListDurationCount   uint64
	ContactListDurationTotalNs int64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	usersSignedUp              uint64
	userLogins                 uint64
	loginFailures              uint64
	contactsCreated            uint64
	contactListQueries         uint64
	contactListDurationCount   uint64
	contactListDurationTotalNs int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersSignedUp:              atomic.LoadUint64(&m.usersSignedUp),
		UserLogins:                 atomic.LoadUint64(&m.userLogins),
		LoginFailures:              atomic.LoadUint64(&m.loginFailures),
		ContactsCreated:            atomic.LoadUint64(&m.contactsCreated),
		ContactListQueries:         atomic.LoadUint64(&m.contactListQueries),
		ContactListDurationCount:   atomic.LoadUint64(&m.contactListDurationCount),
		ContactListDurationTotalNs: atomic.LoadInt64(&m.contactListDurationTotalNs),
	}
}

// IncUserSignedUp increments the signup counter.
func (m *InMemoryRecorder) IncUserSignedUp() {
	atomic.AddUint64(&m.usersSignedUp, 1)
}

// IncUserLoggedIn increments the successful login counter.
func (m *InMemoryRecorder) IncUserLoggedIn() {
	atomic.AddUint64(&m.userLogins, 1)
}

// IncLoginFailed increments the failed login counter.
func (m *InMemoryRecorder) IncLoginFailed() {
	atomic.AddUint64(&m.loginFailures, 1)
}

// IncContactCreated increments the contact creation counter.
func (m *InMemoryRecorder) IncContactCreated() {
	atomic.AddUint64(&m.contactsCreated, 1)
}

// IncContactListQuery increments the listing query counter.
func (m *InMemoryRecorder) IncContactListQuery() {
	atomic.AddUint64(&m.contactListQueries, 1)
}

// ObserveContactListDuration records a listing query duration.
func (m *InMemoryRecorder) ObserveContactListDuration(duration time.Duration) {
	atomic.AddUint64(&m.contactListDurationCount, 1)
	atomic.AddInt64(&m.contactListDurationTotalNs, duration.Nanoseconds())
}
