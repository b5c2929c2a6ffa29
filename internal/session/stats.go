package session

import (
	"math"
	"sort"
)

// PlayerStats summarizes the hands of one player.
type PlayerStats struct {
	Name     string  `json:"name"`
	Hands    int     `json:"hands"`
	Won      int     `json:"won"`
	Lost     int     `json:"lost"`
	AsCaller int     `json:"as_caller"`
	Total    int     `json:"total"`
	Best     int     `json:"best"`
	Worst    int     `json:"worst"`
	Mean     float64 `json:"mean"`
	StdDev   float64 `json:"std_dev"`
	P50      float64 `json:"p50"`
	P90      float64 `json:"p90"`
}

// Stats returns per-player statistics in join order.
func (s *Session) Stats() []PlayerStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	payouts := make(map[string][]int, len(s.players))
	out := make([]PlayerStats, len(s.players))
	pos := make(map[string]int, len(s.players))
	for i, p := range s.players {
		out[i] = PlayerStats{Name: p.Name, Total: p.Money}
		pos[p.Name] = i
	}
	for _, h := range s.hands {
		for _, r := range h.Roles {
			st := &out[pos[r.Player]]
			st.Hands++
			if r.Winner {
				st.Won++
			} else {
				st.Lost++
			}
			if r.Caller {
				st.AsCaller++
			}
			payouts[r.Player] = append(payouts[r.Player], r.Money)
		}
	}
	for i := range out {
		fillStats(&out[i], payouts[out[i].Name])
	}
	return out
}

// fillStats computes mean/stddev/percentiles and extremes of per-hand payouts.
func fillStats(st *PlayerStats, xs []int) {
	n := len(xs)
	if n == 0 {
		return
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// population variance
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if n == 1 {
			return float64(cp[0])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	st.Mean = mean
	st.StdDev = math.Sqrt(acc / float64(n))
	st.P50 = percentile(0.50)
	st.P90 = percentile(0.90)
	st.Worst = cp[0]
	st.Best = cp[n-1]
}
