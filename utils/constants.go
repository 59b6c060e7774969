// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis token-verification cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for token-verification cache entries.
const AuthCacheTTL = 10 * time.Minute

// CalendarCachePrefix is the prefix for cached open-date lookups.
const CalendarCachePrefix = "calendar:open:"

// CalendarCacheTTL is the time-to-live for cached open-date lookups.
const CalendarCacheTTL = 5 * time.Minute
