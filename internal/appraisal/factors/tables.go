package factors

// Industries used by the keyword table and the industry-relevance scorer.
const (
	IndustryFinance    = "finance"
	IndustryTech       = "tech"
	IndustryAI         = "ai"
	IndustryCrypto     = "crypto"
	IndustryHealth     = "health"
	IndustryEcommerce  = "ecommerce"
	IndustryTravel     = "travel"
	IndustryRealEstate = "realestate"
	IndustryLegal      = "legal"
	IndustryEducation  = "education"
	IndustryGaming     = "gaming"
	IndustryEnergy     = "energy"
	IndustryMedia      = "media"
	IndustryFood       = "food"
)

// highValueIndustries and mediumValueIndustries drive the industry-relevance
// tiers; industries in neither set score as generic.
var highValueIndustries = map[string]struct{}{ //nolint: gochecknoglobals
	IndustryFinance: {},
	IndustryTech:    {},
	IndustryAI:      {},
	IndustryCrypto:  {},
	IndustryHealth:  {},
}

var mediumValueIndustries = map[string]struct{}{ //nolint: gochecknoglobals
	IndustryEcommerce:  {},
	IndustryTravel:     {},
	IndustryRealEstate: {},
	IndustryLegal:      {},
	IndustryEducation:  {},
	IndustryGaming:     {},
	IndustryEnergy:     {},
}

// KeywordEntry maps a commercially meaningful keyword to its industry and a
// base value in [0,100].
type KeywordEntry struct {
	Keyword  string
	Industry string
	Value    float64
}

// keywordTable is the static keyword valuation table. The highest-value match
// becomes the keyword factor's base score.
var keywordTable = []KeywordEntry{ //nolint: gochecknoglobals
	{"ai", IndustryAI, 95},
	{"bot", IndustryAI, 70},
	{"gpt", IndustryAI, 80},
	{"neural", IndustryAI, 72},
	{"robot", IndustryAI, 68},

	{"bank", IndustryFinance, 88},
	{"capital", IndustryFinance, 78},
	{"cash", IndustryFinance, 80},
	{"credit", IndustryFinance, 76},
	{"finance", IndustryFinance, 82},
	{"fund", IndustryFinance, 72},
	{"invest", IndustryFinance, 82},
	{"loan", IndustryFinance, 84},
	{"money", IndustryFinance, 80},
	{"pay", IndustryFinance, 86},
	{"trade", IndustryFinance, 74},
	{"wealth", IndustryFinance, 70},

	{"chain", IndustryCrypto, 72},
	{"coin", IndustryCrypto, 84},
	{"crypto", IndustryCrypto, 90},
	{"defi", IndustryCrypto, 74},
	{"nft", IndustryCrypto, 60},
	{"token", IndustryCrypto, 70},
	{"wallet", IndustryCrypto, 76},

	{"app", IndustryTech, 78},
	{"cloud", IndustryTech, 82},
	{"code", IndustryTech, 72},
	{"cyber", IndustryTech, 74},
	{"data", IndustryTech, 80},
	{"dev", IndustryTech, 70},
	{"digital", IndustryTech, 68},
	{"hub", IndustryTech, 62},
	{"lab", IndustryTech, 60},
	{"net", IndustryTech, 58},
	{"smart", IndustryTech, 70},
	{"soft", IndustryTech, 64},
	{"stack", IndustryTech, 60},
	{"tech", IndustryTech, 84},
	{"web", IndustryTech, 72},

	{"care", IndustryHealth, 70},
	{"clinic", IndustryHealth, 68},
	{"doctor", IndustryHealth, 72},
	{"fit", IndustryHealth, 66},
	{"health", IndustryHealth, 84},
	{"med", IndustryHealth, 74},
	{"pharma", IndustryHealth, 70},
	{"wellness", IndustryHealth, 62},

	{"buy", IndustryEcommerce, 76},
	{"cart", IndustryEcommerce, 62},
	{"deal", IndustryEcommerce, 66},
	{"market", IndustryEcommerce, 74},
	{"retail", IndustryEcommerce, 60},
	{"sale", IndustryEcommerce, 68},
	{"sell", IndustryEcommerce, 70},
	{"shop", IndustryEcommerce, 78},
	{"store", IndustryEcommerce, 74},

	{"flight", IndustryTravel, 68},
	{"hotel", IndustryTravel, 76},
	{"tour", IndustryTravel, 62},
	{"travel", IndustryTravel, 78},
	{"trip", IndustryTravel, 70},
	{"vacation", IndustryTravel, 64},

	{"estate", IndustryRealEstate, 72},
	{"home", IndustryRealEstate, 74},
	{"house", IndustryRealEstate, 70},
	{"property", IndustryRealEstate, 66},
	{"realty", IndustryRealEstate, 62},
	{"rent", IndustryRealEstate, 68},

	{"attorney", IndustryLegal, 70},
	{"law", IndustryLegal, 74},
	{"legal", IndustryLegal, 68},

	{"academy", IndustryEducation, 60},
	{"course", IndustryEducation, 62},
	{"learn", IndustryEducation, 68},
	{"school", IndustryEducation, 64},
	{"study", IndustryEducation, 58},

	{"bet", IndustryGaming, 76},
	{"casino", IndustryGaming, 80},
	{"game", IndustryGaming, 74},
	{"play", IndustryGaming, 68},
	{"poker", IndustryGaming, 70},

	{"eco", IndustryEnergy, 62},
	{"energy", IndustryEnergy, 70},
	{"green", IndustryEnergy, 64},
	{"solar", IndustryEnergy, 72},

	{"blog", IndustryMedia, 54},
	{"media", IndustryMedia, 62},
	{"music", IndustryMedia, 64},
	{"news", IndustryMedia, 68},
	{"video", IndustryMedia, 66},

	{"chef", IndustryFood, 56},
	{"food", IndustryFood, 68},
	{"pizza", IndustryFood, 60},
	{"recipe", IndustryFood, 54},
}

// protectedBrands is the static trademark list consulted when the trademark
// adapter is unavailable. Entries are lowercase and at least four characters;
// word-boundary matching additionally requires five (short brands would flag
// too many innocent names).
var protectedBrands = []string{ //nolint: gochecknoglobals
	"adidas",
	"adobe",
	"airbnb",
	"alibaba",
	"amazon",
	"android",
	"disney",
	"ebay",
	"facebook",
	"ferrari",
	"google",
	"gucci",
	"instagram",
	"lego",
	"linkedin",
	"microsoft",
	"netflix",
	"nintendo",
	"nvidia",
	"oracle",
	"paypal",
	"pokemon",
	"porsche",
	"samsung",
	"shopify",
	"spotify",
	"starbucks",
	"tesla",
	"tiktok",
	"toyota",
	"twitter",
	"walmart",
	"whatsapp",
	"youtube",
}

// multiLevelTLDs maps known two-label TLDs to their quality score. Parsing
// prefers the longest match here before falling back to the final label.
var multiLevelTLDs = map[string]float64{ //nolint: gochecknoglobals
	"ac.uk":  60,
	"co.in":  62,
	"co.jp":  72,
	"co.kr":  62,
	"co.nz":  68,
	"co.uk":  70,
	"co.za":  60,
	"com.au": 70,
	"com.br": 65,
	"com.cn": 64,
	"com.mx": 60,
	"com.sg": 64,
	"com.tr": 58,
	"net.au": 62,
	"org.uk": 65,
}

// genericTLDQuality scores single-level TLDs. Country-code TLDs absent from
// this table score via ccTLDCountry; anything else gets the unknown default.
var genericTLDQuality = map[string]float64{ //nolint: gochecknoglobals
	"com": 100,

	"net": 85,
	"org": 85,

	"ai": 80,
	"co": 80,
	"io": 80,

	"app":  75,
	"dev":  75,
	"tech": 75,

	"cloud":  62,
	"online": 55,
	"shop":   60,
	"site":   55,
	"store":  60,
	"xyz":    58,

	"biz":  50,
	"info": 50,
	"me":   62,
	"tv":   66,
}

// ccTLDCountry maps a country-code TLD to its ISO 3166-1 alpha-2 country,
// used for the target-country bonus. Multi-level TLDs map via their final
// label.
var ccTLDCountry = map[string]string{ //nolint: gochecknoglobals
	"at": "at",
	"au": "au",
	"be": "be",
	"br": "br",
	"ca": "ca",
	"ch": "ch",
	"cn": "cn",
	"de": "de",
	"dk": "dk",
	"es": "es",
	"fi": "fi",
	"fr": "fr",
	"ie": "ie",
	"in": "in",
	"it": "it",
	"jp": "jp",
	"kr": "kr",
	"mx": "mx",
	"nl": "nl",
	"no": "no",
	"nz": "nz",
	"pl": "pl",
	"pt": "pt",
	"ru": "ru",
	"se": "se",
	"sg": "sg",
	"tr": "tr",
	"uk": "uk",
	"us": "us",
	"za": "za",
}

const (
	// ccTLDQuality is the default score for a recognized country-code TLD.
	ccTLDQuality = 65
	// unknownTLDQuality is the score for TLDs in no table at all.
	unknownTLDQuality = 40
	// countryBonus is added when the TLD's country matches the caller's
	// target market.
	countryBonus = 10
)

// premiumEligibleTLDs qualify short alphabetic names for the premium
// multiplier.
var premiumEligibleTLDs = map[string]struct{}{ //nolint: gochecknoglobals
	"ai":  {},
	"co":  {},
	"com": {},
	"io":  {},
	"net": {},
	"org": {},
}
