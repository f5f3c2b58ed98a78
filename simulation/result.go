package simulation

// Result summarizes one run. It is a value and does not change after Run
// returns it.
type Result struct {
	Hits   uint64 `json:"hits"`
	Misses uint64 `json:"misses"`
	Total  uint64 `json:"total"`
	Reads  uint64 `json:"reads"`
	Writes uint64 `json:"writes"`

	HitRate  float64 `json:"hit_rate"`
	MissRate float64 `json:"miss_rate"`
}

func newResult(hits, misses, reads, writes uint64) Result {
	total := hits + misses

	return Result{
		Hits:     hits,
		Misses:   misses,
		Total:    total,
		Reads:    reads,
		Writes:   writes,
		HitRate:  float64(hits) / float64(total),
		MissRate: float64(misses) / float64(total),
	}
}

// EffectiveMemoryCycleRate returns the average number of cycles per memory
// access, m + (1-p)h + pm, where m is the cost of a memory read, h the cost
// of a TLB hit and p the miss rate. Every access pays one memory read. A hit
// adds the TLB access and a miss adds the page table read.
func (r Result) EffectiveMemoryCycleRate(memReadCycles, hitCycles float64) float64 {
	return EffectiveMemoryCycleRate(r.MissRate, memReadCycles, hitCycles)
}

// CycleRateFunc returns EffectiveMemoryCycleRate bound to this result.
func (r Result) CycleRateFunc() func(memReadCycles, hitCycles float64) float64 {
	missRate := r.MissRate

	return func(memReadCycles, hitCycles float64) float64 {
		return EffectiveMemoryCycleRate(missRate, memReadCycles, hitCycles)
	}
}

// EffectiveMemoryCycleRate evaluates m + (1-p)h + pm.
func EffectiveMemoryCycleRate(missRate, memReadCycles, hitCycles float64) float64 {
	return memReadCycles +
		(1-missRate)*hitCycles +
		missRate*memReadCycles
}
