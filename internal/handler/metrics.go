package handler

import (
	"fmt"
	"net/http"

	"github.com/contactbook/contactbook/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "contactbook_users_signed_up_total %d\n", snap.UsersSignedUp)
	writeMetric(w, "contactbook_user_logins_total %d\n", snap.UserLogins)
	writeMetric(w, "contactbook_login_failures_total %d\n", snap.LoginFailures)

	writeMetric(w, "contactbook_contacts_created_total %d\n", snap.ContactsCreated)
	writeMetric(w, "contactbook_contact_list_queries_total %d\n", snap.ContactListQueries)
	writeMetric(w, "contactbook_contact_list_duration_seconds_count %d\n", snap.ContactListDurationCount)
	writeMetric(w, "contactbook_contact_list_duration_seconds_sum %.6f\n", float64(snap.ContactListDurationTotalNs)/1e9)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
