package freq

// DefaultHapaxSample is how many hapax legomena a report lists
const DefaultHapaxSample = 10

// Hapaxes returns, in ranked order, every word that occurs exactly once
func Hapaxes(ranked []Entry) []string {
	var words []string
	for _, e := range ranked {
		if e.Count == 1 {
			words = append(words, e.Word)
		}
	}
	return words
}

// HapaxReport is a bounded sample of hapax legomena with the real total.
// len(Sample) is at most the requested size and may be less than Total.
type HapaxReport struct {
	Sample []string
	Total  int
}

// Hapax builds a report holding the first n hapax legomena in ranked order
func Hapax(ranked []Entry, n int) HapaxReport {
	if n < 0 {
		n = 0
	}
	var report HapaxReport
	for _, e := range ranked {
		if e.Count != 1 {
			continue
		}
		report.Total++
		if len(report.Sample) < n {
			report.Sample = append(report.Sample, e.Word)
		}
	}
	return report
}
