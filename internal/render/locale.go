package render

import (
	"golang.org/x/text/language"

	"github.com/katalvlaran/dispositor/zodiac"
)

// catalog holds the display strings of one language.
type catalog struct {
	planets [zodiac.NumPlanets]string
	signs   [zodiac.NumSigns]string

	headers     [5]string // planet, sign, points, orbit, ruler
	centers     string
	domiciles   string
	receptions  string
	cycles      string
	noCenters   string
	orbitLevel  string // takes the depth
	unreached   string
	pointsInfo  string // takes the score
	totalPoints string // takes the total
}

var catalogs = []catalog{
	{
		planets: [zodiac.NumPlanets]string{
			"Sun", "Moon", "Mercury", "Venus", "Mars", "Jupiter", "Saturn", "Uranus", "Neptune", "Pluto",
		},
		signs: [zodiac.NumSigns]string{
			"Aries", "Taurus", "Gemini", "Cancer", "Leo", "Virgo",
			"Libra", "Scorpio", "Sagittarius", "Capricorn", "Aquarius", "Pisces",
		},
		headers:     [5]string{"Planet", "Sign", "Points", "Orbit", "Ruler"},
		centers:     "Soul Formula centers",
		domiciles:   "Domiciles (planets in their own signs)",
		receptions:  "Mutual receptions",
		cycles:      "Cycles (3+ planets)",
		noCenters:   "No centers found",
		orbitLevel:  "Orbit %d",
		unreached:   "No orbit",
		pointsInfo:  "points: %d",
		totalPoints: "Total points: %d",
	},
	{
		planets: [zodiac.NumPlanets]string{
			"Солнце", "Луна", "Меркурий", "Венера", "Марс", "Юпитер", "Сатурн", "Уран", "Нептун", "Плутон",
		},
		signs: [zodiac.NumSigns]string{
			"Овен", "Телец", "Близнецы", "Рак", "Лев", "Дева",
			"Весы", "Скорпион", "Стрелец", "Козерог", "Водолей", "Рыбы",
		},
		headers:     [5]string{"Планета", "Знак", "Баллы", "Орбита", "Управитель"},
		centers:     "Центры Формулы Души",
		domiciles:   "Обители (планеты в своих знаках)",
		receptions:  "Взаимные рецепции",
		cycles:      "Циклы (3+ планеты)",
		noCenters:   "Центры не найдены",
		orbitLevel:  "Орбита %d",
		unreached:   "Без орбиты",
		pointsInfo:  "баллы: %d",
		totalPoints: "Всего баллов: %d",
	},
}

// supported lists the catalog languages, index-aligned with catalogs.
var supported = []language.Tag{language.English, language.Russian}

var matcher = language.NewMatcher(supported)

// Locale resolves a user-supplied language preference (a BCP 47 tag or an
// Accept-Language style list) to the closest supported language. Anything
// unparsable selects English.
func Locale(pref string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(pref)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, _ := matcher.Match(tags...)

	return supported[idx]
}

// catalogFor returns the strings for tag, falling back to English.
func catalogFor(tag language.Tag) *catalog {
	_, idx, _ := matcher.Match(tag)

	return &catalogs[idx]
}

func (c *catalog) planet(p zodiac.Planet) string {
	if !p.Valid() {
		return p.String()
	}

	return c.planets[p]
}

func (c *catalog) sign(s zodiac.Sign) string {
	if !s.Valid() {
		return s.String()
	}

	return c.signs[s]
}
