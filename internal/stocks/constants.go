package stocks

// MinPrice is the price floor after a random-walk tick.
const MinPrice = 2

// BaseFluctuationPercent caps a tick's movement at ±10% (or enough to
// move one point on very cheap stocks).
const BaseFluctuationPercent = 10.0

// defaultListings seeds the market on first contact.
var defaultListings = []listing{
	{"WICH", 150, 148},
	{"SNAX", 2500, 2498},
	{"COPES", 300, 298},
	{"WKAI", 3500, 3498},
	{"KLONG", 350, 348},
	{"POKE", 4000, 3998},
	{"ROR", 450, 448},
	{"EWGF", 5000, 4998},
	{"DIGI", 550, 548},
	{"BOB", 50, 48},
	{"ALLG", 100, 98},
	{"LJF", 200, 198},
	{"DORG", 300, 298},
	{"GAS", 500, 498},
	{"GOKU", 600, 598},
	{"CLIV", 10, 8},
	{"DAGG", 20, 18},
}

type listing struct {
	symbol       string
	currentPrice int
	lastPrice    int
}
