package comps

import (
	"time"

	"appraiser/pkg/domain"
)

func saleDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// embeddedSales is the built-in evidence set used when the sale store is
// empty or unreachable. It mirrors the seed migration: a spread of public
// aftermarket sales across lengths, TLDs and industries so most targets find
// at least weak evidence.
func embeddedSales() []domain.ComparableSale {
	return []domain.ComparableSale{
		{Domain: "voice.com", SoldPrice: 30_000_000, SoldDate: saleDate(2019, time.June, 18), Source: "private"},
		{Domain: "nfts.com", SoldPrice: 15_000_000, SoldDate: saleDate(2022, time.August, 3), Source: "godaddy"},
		{Domain: "crypto.com", SoldPrice: 12_000_000, SoldDate: saleDate(2018, time.July, 6), Source: "private"},
		{Domain: "fund.com", SoldPrice: 9_999_950, SoldDate: saleDate(2008, time.March, 12), Source: "private"},
		{Domain: "fb.com", SoldPrice: 8_500_000, SoldDate: saleDate(2010, time.November, 15), Source: "private"},
		{Domain: "we.com", SoldPrice: 8_000_000, SoldDate: saleDate(2015, time.June, 1), Source: "private"},
		{Domain: "z.com", SoldPrice: 6_784_000, SoldDate: saleDate(2014, time.November, 21), Source: "private"},
		{Domain: "mi.com", SoldPrice: 3_600_000, SoldDate: saleDate(2014, time.April, 22), Source: "private"},
		{Domain: "home.loans", SoldPrice: 500_000, SoldDate: saleDate(2018, time.January, 29), Source: "private"},
		{Domain: "vpn.com", SoldPrice: 1_000_000, SoldDate: saleDate(2017, time.December, 11), Source: "sedo"},
		{Domain: "ice.com", SoldPrice: 3_500_000, SoldDate: saleDate(2018, time.January, 9), Source: "private"},

		{Domain: "cryptopay.com", SoldPrice: 148_000, SoldDate: saleDate(2021, time.February, 8), Source: "sedo"},
		{Domain: "paynow.com", SoldPrice: 122_500, SoldDate: saleDate(2020, time.September, 14), Source: "afternic"},
		{Domain: "solarpanel.com", SoldPrice: 110_000, SoldDate: saleDate(2019, time.May, 20), Source: "sedo"},
		{Domain: "healthplus.com", SoldPrice: 92_000, SoldDate: saleDate(2021, time.October, 4), Source: "godaddy"},
		{Domain: "datalab.ai", SoldPrice: 90_000, SoldDate: saleDate(2023, time.March, 27), Source: "afternic"},
		{Domain: "gamezone.com", SoldPrice: 75_000, SoldDate: saleDate(2018, time.August, 16), Source: "namejet"},
		{Domain: "shopsmart.com", SoldPrice: 65_000, SoldDate: saleDate(2020, time.April, 2), Source: "sedo"},
		{Domain: "investhub.com", SoldPrice: 55_000, SoldDate: saleDate(2022, time.January, 19), Source: "godaddy"},
		{Domain: "traveldeals.com", SoldPrice: 48_000, SoldDate: saleDate(2019, time.November, 7), Source: "sedo"},
		{Domain: "foodbox.com", SoldPrice: 40_000, SoldDate: saleDate(2021, time.June, 23), Source: "flippa"},
		{Domain: "hotelfinder.com", SoldPrice: 38_000, SoldDate: saleDate(2018, time.March, 30), Source: "sedo"},
		{Domain: "cloudtech.io", SoldPrice: 35_000, SoldDate: saleDate(2022, time.July, 12), Source: "afternic"},
		{Domain: "smartdata.io", SoldPrice: 28_000, SoldDate: saleDate(2023, time.September, 5), Source: "godaddy"},
		{Domain: "lawhub.com", SoldPrice: 22_000, SoldDate: saleDate(2020, time.December, 9), Source: "sedo"},
		{Domain: "learnify.com", SoldPrice: 18_000, SoldDate: saleDate(2021, time.August, 25), Source: "flippa"},
		{Domain: "webstore.net", SoldPrice: 15_000, SoldDate: saleDate(2019, time.February, 14), Source: "namejet"},
		{Domain: "coinwallet.io", SoldPrice: 14_500, SoldDate: saleDate(2022, time.May, 31), Source: "godaddy"},
		{Domain: "medcare.org", SoldPrice: 12_000, SoldDate: saleDate(2020, time.July, 21), Source: "sedo"},
		{Domain: "greenenergy.net", SoldPrice: 9_500, SoldDate: saleDate(2021, time.April, 13), Source: "afternic"},
		{Domain: "tripplanner.co", SoldPrice: 7_200, SoldDate: saleDate(2022, time.October, 17), Source: "flippa"},
		{Domain: "rentfast.com", SoldPrice: 6_800, SoldDate: saleDate(2023, time.January, 11), Source: "godaddy"},
		{Domain: "betzone.io", SoldPrice: 5_400, SoldDate: saleDate(2021, time.November, 29), Source: "flippa"},
		{Domain: "newsdaily.net", SoldPrice: 4_100, SoldDate: saleDate(2020, time.May, 6), Source: "sedo"},
		{Domain: "studyroom.org", SoldPrice: 2_900, SoldDate: saleDate(2022, time.February, 22), Source: "flippa"},
		{Domain: "chefbox.co", SoldPrice: 1_850, SoldDate: saleDate(2023, time.June, 8), Source: "godaddy"},
	}
}
