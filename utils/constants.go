// File: utils/constants.go
package utils

import "time"

// DateLayout is the canonical calendar-date format used in storage keys
// and API payloads.
const DateLayout = "2006-01-02"

// ScheduleCachePrefix is the prefix for cached resolved-schedule Redis keys.
const ScheduleCachePrefix = "schedule:"

// ScheduleCacheTTL is the time-to-live for cached schedule entries.
const ScheduleCacheTTL = 10 * time.Minute

// BookingLockPrefix is the prefix for per-booking advisory lock keys.
const BookingLockPrefix = "lock:booking:"

// SlotLockPrefix is the prefix for per-service-day advisory lock keys.
const SlotLockPrefix = "lock:slots:"

// LockTTL bounds how long an advisory lock may be held before it expires
// on its own.
const LockTTL = 10 * time.Second
