package constant

import "time"

const (
	BookingSessionKey     = "booking:session:%s"
	BookingProcessingLock = "booking:processing:%s"
	DeeplinkResolvedKey   = "deeplink:resolved:%s:%s"
)

const (
	BookingSessionDefaultTTL   = 30 * time.Minute
	BookingProcessingLockTTL   = 1 * time.Minute
	DeeplinkResolvedDefaultTTL = 24 * time.Hour
)
