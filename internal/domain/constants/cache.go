package constants

// Snapshot cache key formats; the first verb is the city id or place key.
// Event snapshots also carry the city-local date they were listed for.
const (
	CacheKeyWeather     = "nomnom:weather:%s"
	CacheKeyCompetitors = "nomnom:competitors:%s"
	CacheKeyEvents      = "nomnom:events:%s:%s"
	CacheKeyBusyness    = "nomnom:busyness:%s"
)
