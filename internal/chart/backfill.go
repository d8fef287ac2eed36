package chart

import "strings"

// Backfill is a read-only title to release-year table used to patch records
// whose year could not be correlated from the page. Lookups are exact: no case
// folding, no whitespace or punctuation normalization.
type Backfill struct {
	years map[string]int
}

// NewBackfill copies years into a new table. The caller's map is not retained.
func NewBackfill(years map[string]int) Backfill {
	cp := make(map[string]int, len(years))
	for title, year := range years {
		if strings.TrimSpace(title) == "" || !PlausibleYear(year) {
			continue
		}
		cp[title] = year
	}
	return Backfill{years: cp}
}

// DefaultBackfill returns the process-wide table of well-known chart titles.
func DefaultBackfill() Backfill { return defaultBackfill }

// Lookup returns the known year for an exact title.
func (b Backfill) Lookup(title string) (int, bool) {
	year, ok := b.years[title]
	return year, ok
}

// Len reports the number of titles in the table.
func (b Backfill) Len() int { return len(b.years) }

// Apply sets the year of every record still missing one whose title is in the
// table, returning how many records were patched.
func (b Backfill) Apply(records []Record) int {
	patched := 0
	for i := range records {
		if records[i].Year != nil {
			continue
		}
		if year, ok := b.years[records[i].Title]; ok {
			records[i].Year = IntPtr(year)
			patched++
		}
	}
	return patched
}

var defaultBackfill = NewBackfill(knownYears)

var knownYears = map[string]int{
	"The Shawshank Redemption": 1994,
	"The Godfather": 1972,
	"The Dark Knight": 2008,
	"The Godfather Part II": 1974,
	"12 Angry Men": 1957,
	"Schindler's List": 1993,
	"The Lord of the Rings: The Return of the King": 2003,
	"Pulp Fiction": 1994,
	"The Lord of the Rings: The Fellowship of the Ring": 2001,
	"Forrest Gump": 1994,
	"Fight Club": 1999,
	"Inception": 2010,
	"The Matrix": 1999,
	"Goodfellas": 1990,
	"Se7en": 1995,
	"The Silence of the Lambs": 1991,
	"Saving Private Ryan": 1998,
	"City of God": 2002,
	"Interstellar": 2014,
	"The Green Mile": 1999,
	"Spirited Away": 2001,
	"Parasite": 2019,
	"The Pianist": 2002,
	"Gladiator": 2000,
	"The Departed": 2006,
	"The Prestige": 2006,
	"Whiplash": 2014,
	"The Intouchables": 2011,
	"The Lion King": 1994,
	"Casablanca": 1942,
	"Psycho": 1960,
	"Rear Window": 1954,
	"Il buono, il brutto, il cattivo": 1966,
	"The Lord of the Rings: The Two Towers": 2002,
	"The Usual Suspects": 1995,
	"Terminator 2: Judgment Day": 1991,
	"Back to the Future": 1985,
	"Alien": 1979,
	"WALL·E": 2008,
	"Coco": 2017,
	"American History X": 1998,
	"Harakiri": 1962,
	"Once Upon a Time in the West": 1968,
	"Modern Times": 1936,
	"Cinema Paradiso": 1988,
	"Grave of the Fireflies": 1988,
	"Apocalypse Now": 1979,
	"Aliens": 1986,
	"Django Unchained": 2012,
	"The Shining": 1980,
	"Paths of Glory": 1957,
	"WALL-E": 2008,
	"Memento": 2000,
	"Princess Mononoke": 1997,
	"The Lives of Others": 2006,
	"Oldboy": 2003,
	"Dr. Strangelove": 1964,
	"Witness for the Prosecution": 1957,
	"Citizen Kane": 1941,
	"North by Northwest": 1959,
	"Vertigo": 1958,
	"M": 1931,
	"Reservoir Dogs": 1992,
	"Amélie": 2001,
	"Braveheart": 1995,
	"A Clockwork Orange": 1971,
	"Double Indemnity": 1944,
	"Singin' in the Rain": 1952,
	"Requiem for a Dream": 2000,
	"Taxi Driver": 1976,
	"Lawrence of Arabia": 1962,
	"Eternal Sunshine of the Spotless Mind": 2004,
	"2001: A Space Odyssey": 1968,
	"Full Metal Jacket": 1987,
	"Toy Story": 1995,
	"Amadeus": 1984,
	"To Kill a Mockingbird": 1962,
	"The Sting": 1973,
	"Snatch": 2000,
	"Indiana Jones and the Raiders of the Lost Ark": 1981,
	"Bicycle Thieves": 1948,
	"The Apartment": 1960,
	"Scarface": 1983,
	"Up": 2009,
	"Heat": 1995,
	"Unforgiven": 1992,
	"Die Hard": 1988,
	"Rashomon": 1950,
	"Ikiru": 1952,
	"Metropolis": 1927,
	"L.A. Confidential": 1997,
	"The Hunt": 2012,
	"Yojimbo": 1961,
	"A Beautiful Mind": 2001,
	"Monty Python and the Holy Grail": 1975,
	"All About Eve": 1950,
	"The Great Escape": 1963,
	"Pan's Labyrinth": 2006,
	"The Secret in Their Eyes": 2009,
	"Chinatown": 1974,
	"My Neighbour Totoro": 1988,
	"Lock, Stock and Two Smoking Barrels": 1998,
	"Raging Bull": 1980,
	"The Treasure of the Sierra Madre": 1948,
	"Howl's Moving Castle": 2004,
	"Ran": 1985,
	"Three Billboards Outside Ebbing, Missouri": 2017,
	"Judgment at Nuremberg": 1961,
	"The Wolf of Wall Street": 2013,
	"The Great Dictator": 1940,
	"No Country for Old Men": 2007,
	"Dead Poets Society": 1989,
	"There Will Be Blood": 2007,
	"Shutter Island": 2010,
	"The Sixth Sense": 1999,
	"Kill Bill: Vol. 1": 2003,
	"A Separation": 2011,
	"The Elephant Man": 1980,
	"The Truman Show": 1998,
	"Harry Potter and the Deathly Hallows: Part 2": 2011,
	"Warrior": 2011,
	"The Bridge on the River Kwai": 1957,
	"Trainspotting": 1996,
	"V for Vendetta": 2005,
	"Gone Girl": 2014,
	"The Thing": 1982,
	"Gran Torino": 2008,
	"Blade Runner": 1982,
	"Inside Out": 2015,
	"Fargo": 1996,
	"Blade Runner 2049": 2017,
	"Wild Strawberries": 1957,
	"The Third Man": 1949,
	"On the Waterfront": 1954,
	"Memories of Murder": 2003,
	"Room": 2015,
	"The Seventh Seal": 1957,
	"Capernaum": 2018,
	"The Wages of Fear": 1953,
	"Klaus": 2019,
	"12 Years a Slave": 2013,
	"Barry Lyndon": 1975,
	"Before Sunrise": 1995,
	"Mr. Smith Goes to Washington": 1939,
	"Mad Max: Fury Road": 2015,
	"Gone with the Wind": 1939,
	"Wild Tales": 2014,
	"The Exorcist": 1973,
	"It's a Wonderful Life": 1946,
	"In the Name of the Father": 1993,
	"The Big Lebowski": 1998,
	"Prisoners": 2013,
	"Network": 1976,
	"Stand by Me": 1986,
	"Hotel Rwanda": 2004,
	"Into the Wild": 2007,
	"Hacksaw Ridge": 2016,
	"Rush": 2013,
	"Platoon": 1986,
	"Logan": 2017,
	"Cool Hand Luke": 1967,
	"Catch Me If You Can": 2002,
	"Life of Brian": 1979,
	"Rebecca": 1940,
	"Stalker": 1979,
	"How to Train Your Dragon": 2010,
	"Jurassic Park": 1993,
	"The Grapes of Wrath": 1940,
	"Dersu Uzala": 1975,
	"The General": 1926,
	"Ben-Hur": 1959,
	"Persona": 1966,
	"Mary and Max": 2009,
	"The Deer Hunter": 1978,
	"The Passion of Joan of Arc": 1928,
	"Andrei Rublev": 1966,
	"Dune": 2021,
	"Le Mans '66": 2019,
	"Ford v Ferrari": 2019,
	"Monty Python's Life of Brian": 1979,
	"Monsters, Inc.": 2001,
	"Ratatouille": 2007,
	"Tokyo Story": 1953,
	"The Grand Budapest Hotel": 2014,
	"Portrait of a Lady on Fire": 2019,
	"The Handmaiden": 2016,
	"Spotlight": 2015,
	"The Diving Bell and the Butterfly": 2007,
	"Paris, Texas": 1984,
	"La Haine": 1995,
	"Sunrise": 1927,
	"Before Sunset": 2004,
	"In the Mood for Love": 2000,
	"The Battle of Algiers": 1966,
	"Rang De Basanti": 2006,
	"PK": 2014,
	"Taare Zameen Par": 2007,
	"Drishyam": 2015,
	"Dangal": 2016,
	"3 Idiots": 2009,
	"Andhadhun": 2018,
	"Tumbbad": 2018,
	"Super Deluxe": 2019,
	"Anand": 1971,
	"Gangs of Wasseypur": 2012,
	"Lagaan": 2001,
	"Oppenheimer": 2023,
	"Spider-Man: Across the Spider-Verse": 2023,
	"The Batman": 2022,
	"Everything Everywhere All at Once": 2022,
	"Top Gun: Maverick": 2022,
	"Dune: Part Two": 2024,
	"Poor Things": 2023,
	"Past Lives": 2023,
	"The Holdovers": 2023,
	"Spider-Man: Into the Spider-Verse": 2018,
	"Joker": 2019,
	"1917": 2019,
	"Knives Out": 2019,
	"Marriage Story": 2019,
	"Jojo Rabbit": 2019,
	"Soul": 2020,
	"Minari": 2020,
	"Sound of Metal": 2020,
	"Come and See": 1985,
	"Harakiri (Seppuku)": 1962,
	"High and Low": 1963,
	"Seven Samurai": 1954,
	"Sanjuro": 1962,
	"The Hidden Fortress": 1958,
	"The Bad Sleep Well": 1960,
	"Stray Dog": 1949,
	"Drunken Angel": 1948,
	"Late Spring": 1949,
	"Early Summer": 1951,
	"Good Morning": 1959,
	"Floating Weeds": 1959,
	"An Autumn Afternoon": 1962,
	"The Flavor of Green Tea Over Rice": 1952,
}
