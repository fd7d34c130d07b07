// Package location holds the static knowledge the location resolver relies on:
// the curated alias table, input normalization and the inference contract.
package location

// Place is a canonical South African city with the variants people type for it.
type Place struct {
	City      string
	Province  string
	Latitude  float64
	Longitude float64
	Aliases   []string
}

// places is curated by hand. Aliases are stored lower-case.
var places = []Place{
	{City: "Johannesburg", Province: "Gauteng", Latitude: -26.2041, Longitude: 28.0473,
		Aliases: []string{"jhb", "joburg", "jozi", "egoli", "jo'burg", "johannesburg cbd", "sandton", "rosebank", "randburg", "soweto", "midrand", "fourways"}},
	{City: "Pretoria", Province: "Gauteng", Latitude: -25.7479, Longitude: 28.2293,
		Aliases: []string{"pta", "tshwane", "centurion", "hatfield", "menlyn"}},
	{City: "Ekurhuleni", Province: "Gauteng", Latitude: -26.1496, Longitude: 28.3263,
		Aliases: []string{"east rand", "germiston", "benoni", "boksburg", "kempton park", "edenvale"}},
	{City: "Cape Town", Province: "Western Cape", Latitude: -33.9249, Longitude: 18.4241,
		Aliases: []string{"cpt", "kaapstad", "mother city", "capetown", "cape town cbd", "sea point", "claremont", "bellville", "camps bay"}},
	{City: "Stellenbosch", Province: "Western Cape", Latitude: -33.9321, Longitude: 18.8602,
		Aliases: []string{"stellies", "stelenbosch"}},
	{City: "Paarl", Province: "Western Cape", Latitude: -33.7342, Longitude: 18.9621,
		Aliases: []string{"franschhoek"}},
	{City: "George", Province: "Western Cape", Latitude: -33.9630, Longitude: 22.4617,
		Aliases: []string{"garden route", "wilderness"}},
	{City: "Durban", Province: "KwaZulu-Natal", Latitude: -29.8587, Longitude: 31.0218,
		Aliases: []string{"dbn", "ethekwini", "durbs", "umhlanga", "ballito", "durban north"}},
	{City: "Pietermaritzburg", Province: "KwaZulu-Natal", Latitude: -29.6006, Longitude: 30.3794,
		Aliases: []string{"pmb", "maritzburg", "msunduzi"}},
	{City: "Gqeberha", Province: "Eastern Cape", Latitude: -33.9608, Longitude: 25.6022,
		Aliases: []string{"port elizabeth", "pe", "nelson mandela bay", "the bay"}},
	{City: "East London", Province: "Eastern Cape", Latitude: -33.0153, Longitude: 27.9116,
		Aliases: []string{"el", "buffalo city", "gonubie"}},
	{City: "Bloemfontein", Province: "Free State", Latitude: -29.0852, Longitude: 26.1596,
		Aliases: []string{"bloem", "mangaung", "bloemfontijn"}},
	{City: "Polokwane", Province: "Limpopo", Latitude: -23.9045, Longitude: 29.4689,
		Aliases: []string{"pietersburg", "pburg"}},
	{City: "Mbombela", Province: "Mpumalanga", Latitude: -25.4753, Longitude: 30.9694,
		Aliases: []string{"nelspruit", "white river"}},
	{City: "Rustenburg", Province: "North West", Latitude: -25.6676, Longitude: 27.2421,
		Aliases: []string{"rusties"}},
	{City: "Mahikeng", Province: "North West", Latitude: -25.8560, Longitude: 25.6403,
		Aliases: []string{"mafikeng", "mmabatho"}},
	{City: "Kimberley", Province: "Northern Cape", Latitude: -28.7282, Longitude: 24.7499,
		Aliases: []string{"diamond city", "sol plaatje"}},
}

var aliasIndex = buildAliasIndex(places)

func buildAliasIndex(list []Place) map[string]*Place {
	idx := make(map[string]*Place, len(list)*8)

	for i := range list {
		p := &list[i]

		idx[Normalize(p.City)] = p
		for _, alias := range p.Aliases {
			idx[Normalize(alias)] = p
		}
	}

	return idx
}

// LookupAlias matches a normalized input against canonical names and aliases.
func LookupAlias(normalized string) (*Place, bool) {
	p, ok := aliasIndex[normalized]

	return p, ok
}

// LookupAliasInText tries the whole input first and then each segment of it, so that
// "Sandton City, Johannesburg" still lands on a city.
func LookupAliasInText(normalized string) (*Place, bool) {
	if p, ok := LookupAlias(normalized); ok {
		return p, true
	}

	segments := Segments(normalized)
	// The most specific part is usually written first, the city last.
	for i := len(segments) - 1; i >= 0; i-- {
		if p, ok := LookupAlias(segments[i]); ok {
			return p, true
		}
	}

	return nil, false
}

// Examples returns a few alias to city pairs used as guidance for inference.
func Examples() []AliasExample {
	return []AliasExample{
		{Alias: "jozi", City: "Johannesburg", Province: "Gauteng"},
		{Alias: "pta", City: "Pretoria", Province: "Gauteng"},
		{Alias: "mother city", City: "Cape Town", Province: "Western Cape"},
		{Alias: "dbn", City: "Durban", Province: "KwaZulu-Natal"},
		{Alias: "port elizabeth", City: "Gqeberha", Province: "Eastern Cape"},
		{Alias: "bloem", City: "Bloemfontein", Province: "Free State"},
		{Alias: "nelspruit", City: "Mbombela", Province: "Mpumalanga"},
	}
}

// AliasExample is a single alias mapping shown to the inference model.
type AliasExample struct {
	Alias    string
	City     string
	Province string
}
