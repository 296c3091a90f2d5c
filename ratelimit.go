package cryptfolio

// RateLimit holds the number of price calls left in each rate-limit window.
type RateLimit struct {
	Hour   int64
	Minute int64
	Second int64
}
