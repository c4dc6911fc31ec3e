package store

import "fmt"

// Candidate and centre name pools used by the seed generator.

var firstNames = []string{
	"Abdul", "Mohammad", "Md.", "Shah", "Kazi", "Syed", "Anwar",
	"Rafiq", "Kamal", "Fazlul", "Nurul", "Mizanur", "Shamsul",
	"Jahangir", "Tariqul", "Hasanul", "Obaidul", "Salahuddin",
	"Amirul", "Habibur", "Matiur", "Lutfur", "Shahjahan", "Iqbal",
	"Ataur", "Mosharraf", "Delwar", "Ziaur", "Selim", "Faruk",
}

var lastNames = []string{
	"Rahman", "Ahmed", "Islam", "Hossain", "Khan", "Chowdhury",
	"Alam", "Uddin", "Miah", "Bhuiyan", "Sarkar", "Siddique",
	"Talukder", "Kabir", "Haque", "Karim", "Mallik", "Mondal",
	"Biswas", "Akter", "Begum", "Khatun", "Sultana", "Jahan",
}

var femaleFirstNames = []string{
	"Hasina", "Khaleda", "Rawshan", "Sayeda", "Fatema", "Nasrin",
	"Tahmina", "Shamima", "Kohinoor", "Jahanara", "Salma", "Rehana",
	"Anjuman", "Parveen", "Kamrun", "Farida", "Bilkis", "Shahida",
}

var femaleLastNames = []string{
	"Begum", "Khatun", "Sultana", "Jahan", "Akter", "Chowdhury",
	"Ahmed", "Islam", "Rahman", "Hossain",
}

// notableCandidate overrides the generated name for a prominent seat+party
// combination.
type notableCandidate struct {
	name    string
	partyID string
	seatID  string
}

var notableCandidates = []notableCandidate{
	{"Nahid Islam", "party-1", "seat-1"},
	{"Khaleda Zia", "party-2", "seat-2"},
	{"Dr. Kamal Hossain", "party-8", "seat-3"},
	{"Hasnat Abdullah", "party-1", "seat-4"},
	{"Mirza Fakhrul Islam Alamgir", "party-2", "seat-6"},
	{"GM Quader", "party-3", "seat-10"},
	{"Motiur Rahman Chowdhury", "party-3", "seat-14"},
	{"Hasanul Haq Inu", "party-5", "seat-5"},
	{"Rashed Khan Menon", "party-6", "seat-9"},
	{"Sarjis Alam", "party-1", "seat-11"},
}

func findNotable(seatID, partyID string) (string, bool) {
	for _, n := range notableCandidates {
		if n.seatID == seatID && n.partyID == partyID {
			return n.name, true
		}
	}
	return "", false
}

var centrePrefixes = []string{
	"Govt.", "Model", "Ideal", "Central", "City", "National",
	"Jubilee", "Peoples", "Community", "Municipal",
}

var centreTypes = []string{
	"High School", "Primary School", "College", "Madrasa",
	"Academy", "Degree College", "Girls School", "School & College",
	"Collegiate School", "Preparatory School",
}

func centreName(seatName string, index int) string {
	prefix := centrePrefixes[index%len(centrePrefixes)]
	kind := centreTypes[index%len(centreTypes)]
	return fmt.Sprintf("%s %s %s", seatName, prefix, kind)
}
