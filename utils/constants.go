// File: utils/constants.go
package utils

import "time"

// NumIterations is the PBKDF2 iteration count for password digests.
const NumIterations = 10000

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// BodyReadTimeout bounds how long error rendering may wait on a request body.
const BodyReadTimeout = time.Second
