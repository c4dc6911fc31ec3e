package store

import "fmt"

// Seat definitions for the 151 contested constituencies, expanded from a
// compact per-district table. Each dominant-party entry in a row becomes one
// seat; the party is who is expected to dominate that seat and biases
// simulated vote generation.

const (
	partyNCP = "party-1"
	partyBNP = "party-2"
	partyJP  = "party-3"
	partyJI  = "party-4"
	partyJSD = "party-5"
	partyWP  = "party-6"
	partyBTF = "party-7"
	partyGF  = "party-8"
)

type districtSeatRow struct {
	districtID string
	baseName   string
	divisionID string
	dominant   []string
}

var districtSeatTable = []districtSeatRow{
	// Dhaka Division (38 seats)
	{"dist-1", "Dhaka", "div-1", []string{partyNCP, partyNCP, partyNCP, partyNCP, partyNCP, partyBNP, partyBNP, partyJI}},
	{"dist-2", "Gazipur", "div-1", []string{partyBNP, partyBNP, partyBNP, partyJI}},
	{"dist-3", "Narayanganj", "div-1", []string{partyBNP, partyBNP, partyJI}},
	{"dist-4", "Tangail", "div-1", []string{partyBNP, partyBNP, partyJP}},
	{"dist-5", "Kishoreganj", "div-1", []string{partyJI, partyJI, partyBNP}},
	{"dist-6", "Manikganj", "div-1", []string{partyNCP, partyNCP}},
	{"dist-7", "Munshiganj", "div-1", []string{partyBNP, partyBNP}},
	{"dist-8", "Narsingdi", "div-1", []string{partyNCP, partyNCP}},
	{"dist-9", "Faridpur", "div-1", []string{partyJP, partyJP, partyBNP}},
	{"dist-10", "Gopalganj", "div-1", []string{partyNCP, partyNCP}},
	{"dist-11", "Madaripur", "div-1", []string{partyJP, partyJP}},
	{"dist-12", "Rajbari", "div-1", []string{partyBNP, partyBNP}},
	{"dist-13", "Shariatpur", "div-1", []string{partyJI, partyJI}},

	// Chittagong Division (28 seats)
	{"dist-14", "Chittagong", "div-2", []string{partyBNP, partyBNP, partyBNP, partyBNP, partyJI, partyWP}},
	{"dist-15", "Comilla", "div-2", []string{partyBNP, partyBNP, partyBNP, partyJI}},
	{"dist-16", "Cox's Bazar", "div-2", []string{partyJI, partyJI}},
	{"dist-17", "Feni", "div-2", []string{partyJI, partyJI}},
	{"dist-18", "Noakhali", "div-2", []string{partyJI, partyJI, partyBNP}},
	{"dist-19", "Lakshmipur", "div-2", []string{partyBNP, partyBNP}},
	{"dist-20", "Brahamanbaria", "div-2", []string{partyJI, partyJI, partyBNP}},
	{"dist-21", "Chandpur", "div-2", []string{partyBNP, partyBNP, partyJI}},
	{"dist-22", "Khagrachhari", "div-2", []string{partyBNP}},
	{"dist-23", "Rangamati", "div-2", []string{partyJP}},
	{"dist-24", "Bandarban", "div-2", []string{partyBTF}},

	// Rajshahi Division (20 seats)
	{"dist-25", "Rajshahi", "div-3", []string{partyBNP, partyBNP, partyNCP}},
	{"dist-26", "Bogra", "div-3", []string{partyBNP, partyBNP, partyJI}},
	{"dist-27", "Pabna", "div-3", []string{partyBNP, partyBNP, partyNCP}},
	{"dist-28", "Natore", "div-3", []string{partyJP, partyJP}},
	{"dist-29", "Nawabganj", "div-3", []string{partyJI, partyJI}},
	{"dist-30", "Naogaon", "div-3", []string{partyBNP, partyBNP, partyWP}},
	{"dist-31", "Joypurhat", "div-3", []string{partyJSD}},
	{"dist-32", "Sirajganj", "div-3", []string{partyBNP, partyBNP, partyJI}},

	// Khulna Division (19 seats)
	{"dist-33", "Khulna", "div-4", []string{partyBNP, partyBNP, partyJI}},
	{"dist-34", "Jessore", "div-4", []string{partyBNP, partyBNP, partyNCP}},
	{"dist-35", "Satkhira", "div-4", []string{partyJI, partyJI}},
	{"dist-36", "Narail", "div-4", []string{partyNCP}},
	{"dist-37", "Kushtia", "div-4", []string{partyBNP, partyBNP, partyJI}},
	{"dist-38", "Meherpur", "div-4", []string{partyNCP}},
	{"dist-39", "Chuadanga", "div-4", []string{partyBNP}},
	{"dist-40", "Jhenaidah", "div-4", []string{partyJP, partyJP}},
	{"dist-41", "Magura", "div-4", []string{partyJP}},
	{"dist-42", "Bagerhat", "div-4", []string{partyGF, partyGF}},

	// Barisal Division (10 seats)
	{"dist-43", "Barisal", "div-5", []string{partyJP, partyJP, partyBNP}},
	{"dist-44", "Patuakhali", "div-5", []string{partyBNP, partyBNP}},
	{"dist-45", "Bhola", "div-5", []string{partyJI, partyJI}},
	{"dist-46", "Pirojpur", "div-5", []string{partyBNP}},
	{"dist-47", "Jhalokati", "div-5", []string{partyJP}},
	{"dist-48", "Barguna", "div-5", []string{partyWP}},

	// Sylhet Division (9 seats)
	{"dist-49", "Sylhet", "div-6", []string{partyJI, partyJI, partyBNP}},
	{"dist-50", "Maulvibazar", "div-6", []string{partyJI, partyJI}},
	{"dist-51", "Habiganj", "div-6", []string{partyJI, partyJI}},
	{"dist-52", "Sunamganj", "div-6", []string{partyBNP, partyBNP}},

	// Rangpur Division (16 seats)
	{"dist-53", "Rangpur", "div-7", []string{partyBNP, partyBNP, partyNCP}},
	{"dist-54", "Dinajpur", "div-7", []string{partyBNP, partyBNP, partyJI}},
	{"dist-55", "Gaibandha", "div-7", []string{partyNCP, partyNCP}},
	{"dist-56", "Kurigram", "div-7", []string{partyNCP, partyNCP}},
	{"dist-57", "Lalmonirhat", "div-7", []string{partyBNP, partyBNP}},
	{"dist-58", "Nilphamari", "div-7", []string{partyNCP, partyNCP}},
	{"dist-59", "Thakurgaon", "div-7", []string{partyGF}},
	{"dist-60", "Panchagarh", "div-7", []string{partyWP}},

	// Mymensingh Division (11 seats)
	{"dist-61", "Mymensingh", "div-8", []string{partyBNP, partyBNP, partyJI, partyWP}},
	{"dist-62", "Jamalpur", "div-8", []string{partyBNP, partyBNP, partyJP}},
	{"dist-63", "Netrakona", "div-8", []string{partyNCP, partyNCP}},
	{"dist-64", "Sherpur", "div-8", []string{partyBNP, partyBNP}},
}

// seatDef is a fixed seat definition expanded from districtSeatTable.
type seatDef struct {
	name       string
	seatNumber int
	divisionID string
	districtID string
}

// seatDefs and seatDominance are parallel: seatDominance[i] is the dominant
// party of seatDefs[i].
var (
	seatDefs      []seatDef
	seatDominance []string
)

func init() {
	for _, row := range districtSeatTable {
		for i, partyID := range row.dominant {
			seatDefs = append(seatDefs, seatDef{
				name:       fmt.Sprintf("%s-%d", row.baseName, i+1),
				seatNumber: i + 1,
				divisionID: row.divisionID,
				districtID: row.districtID,
			})
			seatDominance = append(seatDominance, partyID)
		}
	}
}

// RivalParty returns the designated runner-up party for a seat's dominant
// party: BNP and JI rival each other; everyone else runs against BNP.
func RivalParty(dominantPartyID string) string {
	switch dominantPartyID {
	case partyBNP:
		return partyJI
	case partyJI:
		return partyBNP
	default:
		return partyBNP
	}
}

// DominantParty returns the configured dominant party for a seat index,
// falling back to BNP for indexes outside the table.
func DominantParty(seatIndex int) string {
	if seatIndex < 0 || seatIndex >= len(seatDominance) {
		return partyBNP
	}
	return seatDominance[seatIndex]
}

// completionTiers returns the seed-time target fractions of already-reported
// centres, one per seat: 45 seats fully complete, 15 at 80%, 15 at 70%,
// 8 at 60%, 7 at 40%, the remainder not started. Shuffled deterministically
// during seeding.
func completionTiers() []float64 {
	tiers := make([]float64, 0, len(seatDefs))
	for i := 0; i < 45; i++ {
		tiers = append(tiers, 1.0)
	}
	for i := 0; i < 15; i++ {
		tiers = append(tiers, 0.8)
	}
	for i := 0; i < 15; i++ {
		tiers = append(tiers, 0.7)
	}
	for i := 0; i < 8; i++ {
		tiers = append(tiers, 0.6)
	}
	for i := 0; i < 7; i++ {
		tiers = append(tiers, 0.4)
	}
	for len(tiers) < len(seatDefs) {
		tiers = append(tiers, 0.0)
	}
	return tiers
}
