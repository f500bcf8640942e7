// mkfixture writes a synthetic Timely_and_Effective_Care-Hospital.csv for
// manual testing and testdata. Deterministic for a given seed.
// Usage: go run ./cmd/mkfixture --out testdata/Timely_and_Effective_Care-Hospital.csv --facilities 8 --quarters 6
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/gyeh/caretrend/internal/model"
)

var header = []string{
	"Facility ID", "Facility Name", "Address", "City/Town", "State",
	"ZIP Code", "County/Parish", "Telephone Number", "Condition",
	"Measure ID", "Measure Name", "Score", "Sample", "Footnote",
	"Start Date", "End Date",
}

var (
	nameParts = []string{"Mercy", "Riverside", "Lakeview", "St. Anne's", "Summit", "Harbor", "Cedar Grove", "Prairie", "Northgate", "Bellwood", "Fairview", "Oak Hill"}
	nameKinds = []string{"Hospital", "Medical Center", "Regional Medical Center", "Community Hospital"}
	states    = []string{"CA", "TX", "NY", "OH", "WA", "GA"}
)

var measureNames = map[string]string{
	"SEP_1":       "Appropriate care for severe sepsis and septic shock",
	"OP_18b":      "Average (median) time patients spent in the emergency department",
	"SEV_SH_3HR":  "Severe sepsis 3-hour bundle",
	"SEV_SEP_6HR": "Severe sepsis 6-hour bundle",
	"SEP_SH_3HR":  "Septic shock 3-hour bundle",
	"SEP_SH_6HR":  "Septic shock 6-hour bundle",
	// Measures downstream consumers ignore, present in real exports.
	"OP_22": "Left before being seen",
	"IMM_3": "Healthcare workers given influenza vaccination",
}

func main() {
	out := flag.String("out", "Timely_and_Effective_Care-Hospital.csv", "output csv path")
	facilities := flag.Int("facilities", 8, "number of facilities")
	quarters := flag.Int("quarters", 6, "number of reporting quarters")
	seed := flag.Int64("seed", 1, "random seed")
	missing := flag.Float64("missing", 0.1, "fraction of scores written as Not Available")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		fmt.Fprintf(os.Stderr, "write header: %v\n", err)
		os.Exit(1)
	}

	var measureIDs []string
	for _, g := range model.AllMeasureGroups {
		measureIDs = append(measureIDs, g.IDs...)
	}
	measureIDs = append(measureIDs, "OP_22", "IMM_3")

	rows := 0
	for i := 0; i < *facilities; i++ {
		name := fmt.Sprintf("%s %s", nameParts[i%len(nameParts)], nameKinds[rng.Intn(len(nameKinds))])
		id := fmt.Sprintf("%06d", 100000+i)
		state := states[rng.Intn(len(states))]

		for q := 0; q < *quarters; q++ {
			start := time.Date(2021, time.Month(1+3*(q%4)), 1, 0, 0, 0, 0, time.UTC).AddDate(q/4, 0, 0)
			end := start.AddDate(0, 3, -1)

			for _, mid := range measureIDs {
				score := scoreFor(rng, mid)
				if rng.Float64() < *missing {
					score = "Not Available"
				}
				rec := []string{
					id, name, fmt.Sprintf("%d Main St", 100+i), "Springfield", state,
					"90210", "Clark", "(555) 010-" + id[2:], "Sepsis Care",
					mid, measureNames[mid], score, strconv.Itoa(50 + rng.Intn(400)), "",
					start.Format("1/2/06"), end.Format("1/2/06"),
				}
				if err := w.Write(rec); err != nil {
					fmt.Fprintf(os.Stderr, "write row: %v\n", err)
					os.Exit(1)
				}
				rows++
			}
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "flush: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows for %d facilities to %s\n", rows, *facilities, *out)
}

// scoreFor draws a plausible value for the measure: ED minutes for OP_18b,
// a percentage for everything else.
func scoreFor(rng *rand.Rand, measureID string) string {
	if measureID == "OP_18b" {
		return strconv.Itoa(90 + rng.Intn(160))
	}
	return strconv.Itoa(40 + rng.Intn(60))
}
