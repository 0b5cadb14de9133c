package volumes

// Genres is the fixed list offered by the genre selector. The values are
// sent as subject: constraints and matched against saved genre strings.
var Genres = []string{
	"Fiction",
	"Fantasy",
	"Science Fiction",
	"Mystery",
	"Thriller",
	"Romance",
	"Horror",
	"Biography & Autobiography",
	"History",
	"Science",
	"Philosophy",
	"Poetry",
	"Self-Help",
	"Business & Economics",
	"Computers",
	"Juvenile Fiction",
}

// IsGenre reports whether g is one of Genres. The empty string means "any".
func IsGenre(g string) bool {
	if g == "" {
		return true
	}
	for _, known := range Genres {
		if known == g {
			return true
		}
	}
	return false
}
