package constant

const (
	QueueStreamName = "masjid_events_queue_stream"
)

const (
	NotifyWildcard = "events.notify.>"

	// SubjectCatalogRefresh is broadcast, not queued: every serving
	// instance must reload its own snapshot.
	SubjectCatalogRefresh         = "events.catalog.refresh"
	SubjectSendTicketNotification = "events.notify.send"
)
