// Package method is the calculation method registry.
//
// Method ids are the Al Adhan API's own numbering and are shared
// verbatim between the local astronomical engine and the remote
// provider; renumbering one without the other would silently change
// which angles a user's saved method id means.
package method

// Params holds the angle parameters for one calculation method.
// An IshaAngle of 60 or more is a sentinel: it is a minute offset
// after Maghrib, not a depression angle.
type Params struct {
	FajrAngle      float64
	IshaAngle      float64
	MaghribMinutes float64
}

// IshaIsMinutes reports whether the Isha parameter is expressed as
// minutes after Maghrib rather than a depression angle.
func (p Params) IshaIsMinutes() bool {
	return p.IshaAngle >= 60
}

// Default is the method used when an unknown id is requested:
// Muslim World League.
const Default = 3

// params maps Al Adhan method ids to their angle parameters.
var params = map[int]Params{
	0:  {FajrAngle: 16, IshaAngle: 14},     // Shia Ithna-Ashari
	1:  {FajrAngle: 18, IshaAngle: 18},     // Karachi
	2:  {FajrAngle: 15, IshaAngle: 15},     // ISNA
	3:  {FajrAngle: 18, IshaAngle: 17},     // Muslim World League
	4:  {FajrAngle: 18.5, IshaAngle: 90},   // Umm Al-Qura: Isha 90 min after Maghrib
	5:  {FajrAngle: 19.5, IshaAngle: 17.5}, // Egyptian General Authority
	7:  {FajrAngle: 17.7, IshaAngle: 14},   // Tehran
	8:  {FajrAngle: 19.5, IshaAngle: 90},   // Gulf Region: Isha 90 min after Maghrib
	9:  {FajrAngle: 18, IshaAngle: 17.5},   // Kuwait
	10: {FajrAngle: 18, IshaAngle: 90},     // Qatar
	11: {FajrAngle: 20, IshaAngle: 18},     // Singapore
	12: {FajrAngle: 12, IshaAngle: 12},     // France
	13: {FajrAngle: 18, IshaAngle: 17},     // Turkey
	14: {FajrAngle: 16, IshaAngle: 15},     // Russia
	16: {FajrAngle: 18.2, IshaAngle: 18.2}, // Dubai
	17: {FajrAngle: 20, IshaAngle: 18},     // JAKIM (Malaysia)
	18: {FajrAngle: 18, IshaAngle: 18},     // Tunisia
	19: {FajrAngle: 18, IshaAngle: 17},     // Algeria
	20: {FajrAngle: 20, IshaAngle: 18},     // KEMENAG (Indonesia)
	21: {FajrAngle: 19, IshaAngle: 17},     // Morocco
	22: {FajrAngle: 12, IshaAngle: 12},     // Lisbon
	23: {FajrAngle: 18, IshaAngle: 18},     // Jordan
}

// names maps method ids to display names, same numbering as params.
var names = map[int]string{
	0:  "Shia Ithna-Ashari (Jafari)",
	1:  "University of Islamic Sciences, Karachi",
	2:  "Islamic Society of North America (ISNA)",
	3:  "Muslim World League (MWL)",
	4:  "Umm Al-Qura University, Makkah",
	5:  "Egyptian General Authority of Survey",
	7:  "Institute of Geophysics, University of Tehran",
	8:  "Gulf Region",
	9:  "Kuwait",
	10: "Qatar",
	11: "Majlis Ugama Islam Singapura (Singapore)",
	12: "Union Organization Islamic de France",
	13: "Diyanet Isleri Baskanligi, Turkey",
	14: "Spiritual Administration of Muslims of Russia",
	15: "Moonsighting Committee Worldwide",
	16: "Dubai",
	17: "JAKIM (Malaysia)",
	18: "Tunisia",
	19: "Algeria",
	20: "KEMENAG (Indonesia)",
	21: "Morocco",
	22: "Comunidade Islamica de Lisboa (Portugal)",
	23: "Ministry of Awqaf, Jordan",
}

// Resolve returns the parameters for the given method id.
// Unknown ids fall back to the Muslim World League parameters.
func Resolve(id int) Params {
	if p, ok := params[id]; ok {
		return p
	}
	return params[Default]
}

// Known reports whether the id has a registered parameter set.
func Known(id int) bool {
	_, ok := params[id]
	return ok
}

// Name returns the display name for a method id, or "Standard Method"
// for ids the registry does not know.
func Name(id int) string {
	if n, ok := names[id]; ok {
		return n
	}
	return "Standard Method"
}

// IDs returns all named method ids in ascending order.
func IDs() []int {
	ids := make([]int, 0, len(names))
	for id := range names {
		ids = append(ids, id)
	}
	// Insertion sort; the table is tiny.
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j] < ids[j-1]; j-- {
			ids[j], ids[j-1] = ids[j-1], ids[j]
		}
	}
	return ids
}
