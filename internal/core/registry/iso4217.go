package registry

// isoCurrencies are the active ISO-4217 currencies and funds codes.
var isoCurrencies = []record{
	{code: "AED", numeric: "784", digits: d2, name: "UAE Dirham", symbol: "د.إ"},
	{code: "AFN", numeric: "971", digits: d2, name: "Afghani", symbol: "؋"},
	{code: "ALL", numeric: "008", digits: d2, name: "Lek", symbol: "L"},
	{code: "AMD", numeric: "051", digits: d2, name: "Armenian Dram", symbol: "֏"},
	{code: "AOA", numeric: "973", digits: d2, name: "Kwanza", symbol: "Kz"},
	{code: "ARS", numeric: "032", digits: d2, name: "Argentine Peso", symbol: "$"},
	{code: "AUD", numeric: "036", digits: d2, name: "Australian Dollar", symbol: "$"},
	{code: "AWG", numeric: "533", digits: d2, name: "Aruban Florin", symbol: "ƒ"},
	{code: "AZN", numeric: "944", digits: d2, name: "Azerbaijan Manat", symbol: "₼"},
	{code: "BAM", numeric: "977", digits: d2, name: "Convertible Mark", symbol: "KM"},
	{code: "BBD", numeric: "052", digits: d2, name: "Barbados Dollar", symbol: "$"},
	{code: "BDT", numeric: "050", digits: d2, name: "Taka", symbol: "৳"},
	{code: "BGN", numeric: "975", digits: d2, name: "Bulgarian Lev", symbol: "лв."},
	{code: "BHD", numeric: "048", digits: d3, name: "Bahraini Dinar", symbol: "BD"},
	{code: "BIF", numeric: "108", digits: d0, name: "Burundi Franc", symbol: "FBu"},
	{code: "BMD", numeric: "060", digits: d2, name: "Bermudian Dollar", symbol: "$"},
	{code: "BND", numeric: "096", digits: d2, name: "Brunei Dollar", symbol: "$"},
	{code: "BOB", numeric: "068", digits: d2, name: "Boliviano", symbol: "Bs."},
	{code: "BOV", numeric: "984", digits: d2, name: "Mvdol"},
	{code: "BRL", numeric: "986", digits: d2, name: "Brazilian Real", symbol: "R$"},
	{code: "BSD", numeric: "044", digits: d2, name: "Bahamian Dollar", symbol: "$"},
	{code: "BTN", numeric: "064", digits: d2, name: "Ngultrum", symbol: "Nu."},
	{code: "BWP", numeric: "072", digits: d2, name: "Pula", symbol: "P"},
	{code: "BYN", numeric: "933", digits: d2, name: "Belarusian Ruble", symbol: "Br", validFrom: "2016-07-01"},
	{code: "BZD", numeric: "084", digits: d2, name: "Belize Dollar", symbol: "BZ$"},
	{code: "CAD", numeric: "124", digits: d2, name: "Canadian Dollar", symbol: "$"},
	{code: "CDF", numeric: "976", digits: d2, name: "Congolese Franc", symbol: "FC"},
	{code: "CHE", numeric: "947", digits: d2, name: "WIR Euro", symbol: "CHE"},
	{code: "CHF", numeric: "756", digits: d2, name: "Swiss Franc", symbol: "CHF"},
	{code: "CHW", numeric: "948", digits: d2, name: "WIR Franc", symbol: "CHW"},
	{code: "CLF", numeric: "990", digits: d4, name: "Unidad de Fomento", symbol: "UF"},
	{code: "CLP", numeric: "152", digits: d0, name: "Chilean Peso", symbol: "$"},
	{code: "CNY", numeric: "156", digits: d2, name: "Yuan Renminbi", symbol: "¥"},
	{code: "COP", numeric: "170", digits: d2, name: "Colombian Peso", symbol: "$"},
	{code: "COU", numeric: "970", digits: d2, name: "Unidad de Valor Real"},
	{code: "CRC", numeric: "188", digits: d2, name: "Costa Rican Colon", symbol: "₡"},
	{code: "CUP", numeric: "192", digits: d2, name: "Cuban Peso", symbol: "$"},
	{code: "CVE", numeric: "132", digits: d2, name: "Cabo Verde Escudo", symbol: "$"},
	{code: "CZK", numeric: "203", digits: d2, name: "Czech Koruna", symbol: "Kč"},
	{code: "DJF", numeric: "262", digits: d0, name: "Djibouti Franc", symbol: "Fdj"},
	{code: "DKK", numeric: "208", digits: d2, name: "Danish Krone", symbol: "kr."},
	{code: "DOP", numeric: "214", digits: d2, name: "Dominican Peso", symbol: "RD$"},
	{code: "DZD", numeric: "012", digits: d2, name: "Algerian Dinar", symbol: "د.ج"},
	{code: "EGP", numeric: "818", digits: d2, name: "Egyptian Pound", symbol: "E£"},
	{code: "ERN", numeric: "232", digits: d2, name: "Nakfa", symbol: "Nfk"},
	{code: "ETB", numeric: "230", digits: d2, name: "Ethiopian Birr", symbol: "Br"},
	{code: "EUR", numeric: "978", digits: d2, name: "Euro", symbol: "€", validFrom: "1999-01-01"},
	{code: "FJD", numeric: "242", digits: d2, name: "Fiji Dollar", symbol: "$"},
	{code: "FKP", numeric: "238", digits: d2, name: "Falkland Islands Pound", symbol: "£"},
	{code: "GBP", numeric: "826", digits: d2, name: "Pound Sterling", symbol: "£"},
	{code: "GEL", numeric: "981", digits: d2, name: "Lari", symbol: "₾"},
	{code: "GHS", numeric: "936", digits: d2, name: "Ghana Cedi", symbol: "GH₵", validFrom: "2007-07-03"},
	{code: "GIP", numeric: "292", digits: d2, name: "Gibraltar Pound", symbol: "£"},
	{code: "GMD", numeric: "270", digits: d2, name: "Dalasi", symbol: "D"},
	{code: "GNF", numeric: "324", digits: d0, name: "Guinean Franc", symbol: "FG"},
	{code: "GTQ", numeric: "320", digits: d2, name: "Quetzal", symbol: "Q"},
	{code: "GYD", numeric: "328", digits: d2, name: "Guyana Dollar", symbol: "$"},
	{code: "HKD", numeric: "344", digits: d2, name: "Hong Kong Dollar", symbol: "HK$"},
	{code: "HNL", numeric: "340", digits: d2, name: "Lempira", symbol: "L"},
	{code: "HTG", numeric: "332", digits: d2, name: "Gourde", symbol: "G"},
	{code: "HUF", numeric: "348", digits: d2, name: "Forint", symbol: "Ft"},
	{code: "IDR", numeric: "360", digits: d2, name: "Rupiah", symbol: "Rp"},
	{code: "ILS", numeric: "376", digits: d2, name: "New Israeli Sheqel", symbol: "₪"},
	{code: "INR", numeric: "356", digits: d2, name: "Indian Rupee", symbol: "₹"},
	{code: "IQD", numeric: "368", digits: d3, name: "Iraqi Dinar", symbol: "ع.د"},
	{code: "IRR", numeric: "364", digits: d2, name: "Iranian Rial", symbol: "﷼"},
	{code: "ISK", numeric: "352", digits: d0, name: "Iceland Krona", symbol: "kr"},
	{code: "JMD", numeric: "388", digits: d2, name: "Jamaican Dollar", symbol: "J$"},
	{code: "JOD", numeric: "400", digits: d3, name: "Jordanian Dinar", symbol: "JD"},
	{code: "JPY", numeric: "392", digits: d0, name: "Yen", symbol: "¥"},
	{code: "KES", numeric: "404", digits: d2, name: "Kenyan Shilling", symbol: "KSh"},
	{code: "KGS", numeric: "417", digits: d2, name: "Som", symbol: "сом"},
	{code: "KHR", numeric: "116", digits: d2, name: "Riel", symbol: "៛"},
	{code: "KMF", numeric: "174", digits: d0, name: "Comorian Franc", symbol: "CF"},
	{code: "KPW", numeric: "408", digits: d2, name: "North Korean Won", symbol: "₩"},
	{code: "KRW", numeric: "410", digits: d0, name: "Won", symbol: "₩"},
	{code: "KWD", numeric: "414", digits: d3, name: "Kuwaiti Dinar", symbol: "KD"},
	{code: "KYD", numeric: "136", digits: d2, name: "Cayman Islands Dollar", symbol: "$"},
	{code: "KZT", numeric: "398", digits: d2, name: "Tenge", symbol: "₸"},
	{code: "LAK", numeric: "418", digits: d2, name: "Lao Kip", symbol: "₭"},
	{code: "LBP", numeric: "422", digits: d2, name: "Lebanese Pound", symbol: "ل.ل"},
	{code: "LKR", numeric: "144", digits: d2, name: "Sri Lanka Rupee", symbol: "Rs"},
	{code: "LRD", numeric: "430", digits: d2, name: "Liberian Dollar", symbol: "$"},
	{code: "LSL", numeric: "426", digits: d2, name: "Loti", symbol: "L"},
	{code: "LYD", numeric: "434", digits: d3, name: "Libyan Dinar", symbol: "ل.د"},
	{code: "MAD", numeric: "504", digits: d2, name: "Moroccan Dirham", symbol: "د.م."},
	{code: "MDL", numeric: "498", digits: d2, name: "Moldovan Leu", symbol: "L"},
	{code: "MGA", numeric: "969", digits: z07, name: "Malagasy Ariary", symbol: "Ar"},
	{code: "MKD", numeric: "807", digits: d2, name: "Denar", symbol: "ден"},
	{code: "MMK", numeric: "104", digits: d2, name: "Kyat", symbol: "K"},
	{code: "MNT", numeric: "496", digits: d2, name: "Tugrik", symbol: "₮"},
	{code: "MOP", numeric: "446", digits: d2, name: "Pataca", symbol: "MOP$"},
	{code: "MRU", numeric: "929", digits: z07, name: "Ouguiya", symbol: "UM", validFrom: "2018-01-01"},
	{code: "MUR", numeric: "480", digits: d2, name: "Mauritius Rupee", symbol: "Rs"},
	{code: "MVR", numeric: "462", digits: d2, name: "Rufiyaa", symbol: "Rf"},
	{code: "MWK", numeric: "454", digits: d2, name: "Malawi Kwacha", symbol: "MK"},
	{code: "MXN", numeric: "484", digits: d2, name: "Mexican Peso", symbol: "$"},
	{code: "MXV", numeric: "979", digits: d2, name: "Mexican Unidad de Inversion (UDI)"},
	{code: "MYR", numeric: "458", digits: d2, name: "Malaysian Ringgit", symbol: "RM"},
	{code: "MZN", numeric: "943", digits: d2, name: "Mozambique Metical", symbol: "MTn"},
	{code: "NAD", numeric: "516", digits: d2, name: "Namibia Dollar", symbol: "$"},
	{code: "NGN", numeric: "566", digits: d2, name: "Naira", symbol: "₦"},
	{code: "NIO", numeric: "558", digits: d2, name: "Cordoba Oro", symbol: "C$"},
	{code: "NOK", numeric: "578", digits: d2, name: "Norwegian Krone", symbol: "kr"},
	{code: "NPR", numeric: "524", digits: d2, name: "Nepalese Rupee", symbol: "Rs"},
	{code: "NZD", numeric: "554", digits: d2, name: "New Zealand Dollar", symbol: "$"},
	{code: "OMR", numeric: "512", digits: d3, name: "Rial Omani", symbol: "ر.ع."},
	{code: "PAB", numeric: "590", digits: d2, name: "Balboa", symbol: "B/."},
	{code: "PEN", numeric: "604", digits: d2, name: "Sol", symbol: "S/"},
	{code: "PGK", numeric: "598", digits: d2, name: "Kina", symbol: "K"},
	{code: "PHP", numeric: "608", digits: d2, name: "Philippine Peso", symbol: "₱"},
	{code: "PKR", numeric: "586", digits: d2, name: "Pakistan Rupee", symbol: "Rs"},
	{code: "PLN", numeric: "985", digits: d2, name: "Zloty", symbol: "zł"},
	{code: "PYG", numeric: "600", digits: d0, name: "Guarani", symbol: "₲"},
	{code: "QAR", numeric: "634", digits: d2, name: "Qatari Rial", symbol: "ر.ق"},
	{code: "RON", numeric: "946", digits: d2, name: "Romanian Leu", symbol: "lei", validFrom: "2005-07-01"},
	{code: "RSD", numeric: "941", digits: d2, name: "Serbian Dinar", symbol: "дин."},
	{code: "RUB", numeric: "643", digits: d2, name: "Russian Ruble", symbol: "₽"},
	{code: "RWF", numeric: "646", digits: d0, name: "Rwanda Franc", symbol: "RF"},
	{code: "SAR", numeric: "682", digits: d2, name: "Saudi Riyal", symbol: "ر.س"},
	{code: "SBD", numeric: "090", digits: d2, name: "Solomon Islands Dollar", symbol: "$"},
	{code: "SCR", numeric: "690", digits: d2, name: "Seychelles Rupee", symbol: "SR"},
	{code: "SDG", numeric: "938", digits: d2, name: "Sudanese Pound", symbol: "ج.س."},
	{code: "SEK", numeric: "752", digits: d2, name: "Swedish Krona", symbol: "kr"},
	{code: "SGD", numeric: "702", digits: d2, name: "Singapore Dollar", symbol: "S$"},
	{code: "SHP", numeric: "654", digits: d2, name: "Saint Helena Pound", symbol: "£"},
	{code: "SLE", numeric: "925", digits: d2, name: "Leone", symbol: "Le", validFrom: "2022-04-01"},
	{code: "SOS", numeric: "706", digits: d2, name: "Somali Shilling", symbol: "S"},
	{code: "SRD", numeric: "968", digits: d2, name: "Surinam Dollar", symbol: "$"},
	{code: "SSP", numeric: "728", digits: d2, name: "South Sudanese Pound", symbol: "£"},
	{code: "STN", numeric: "930", digits: d2, name: "Dobra", symbol: "Db", validFrom: "2018-01-01"},
	{code: "SVC", numeric: "222", digits: d2, name: "El Salvador Colon", symbol: "₡"},
	{code: "SYP", numeric: "760", digits: d2, name: "Syrian Pound", symbol: "£"},
	{code: "SZL", numeric: "748", digits: d2, name: "Lilangeni", symbol: "E"},
	{code: "THB", numeric: "764", digits: d2, name: "Baht", symbol: "฿"},
	{code: "TJS", numeric: "972", digits: d2, name: "Somoni", symbol: "SM"},
	{code: "TMT", numeric: "934", digits: d2, name: "Turkmenistan New Manat", symbol: "m"},
	{code: "TND", numeric: "788", digits: d3, name: "Tunisian Dinar", symbol: "د.ت"},
	{code: "TOP", numeric: "776", digits: d2, name: "Pa'anga", symbol: "T$"},
	{code: "TRY", numeric: "949", digits: d2, name: "Turkish Lira", symbol: "₺", validFrom: "2005-01-01"},
	{code: "TTD", numeric: "780", digits: d2, name: "Trinidad and Tobago Dollar", symbol: "TT$"},
	{code: "TWD", numeric: "901", digits: d2, name: "New Taiwan Dollar", symbol: "NT$"},
	{code: "TZS", numeric: "834", digits: d2, name: "Tanzanian Shilling", symbol: "TSh"},
	{code: "UAH", numeric: "980", digits: d2, name: "Hryvnia", symbol: "₴"},
	{code: "UGX", numeric: "800", digits: d0, name: "Uganda Shilling", symbol: "USh"},
	{code: "USD", numeric: "840", digits: d2, name: "US Dollar", symbol: "$"},
	{code: "USN", numeric: "997", digits: d2, name: "US Dollar (Next day)", symbol: "$"},
	{code: "UYI", numeric: "940", digits: d0, name: "Uruguay Peso en Unidades Indexadas (UI)"},
	{code: "UYU", numeric: "858", digits: d2, name: "Peso Uruguayo", symbol: "$U"},
	{code: "UYW", numeric: "927", digits: d4, name: "Unidad Previsional"},
	{code: "UZS", numeric: "860", digits: d2, name: "Uzbekistan Sum", symbol: "so'm"},
	{code: "VED", numeric: "926", digits: d2, name: "Bolívar Soberano", symbol: "Bs.D", validFrom: "2021-10-01"},
	{code: "VES", numeric: "928", digits: d2, name: "Bolívar Soberano", symbol: "Bs.S", validFrom: "2018-08-20"},
	{code: "VND", numeric: "704", digits: d0, name: "Dong", symbol: "₫"},
	{code: "VUV", numeric: "548", digits: d0, name: "Vatu", symbol: "VT"},
	{code: "WST", numeric: "882", digits: d2, name: "Tala", symbol: "WS$"},
	{code: "XAF", numeric: "950", digits: d0, name: "CFA Franc BEAC", symbol: "FCFA"},
	{code: "XAG", numeric: "961", digits: na, name: "Silver"},
	{code: "XAU", numeric: "959", digits: na, name: "Gold"},
	{code: "XBA", numeric: "955", digits: na, name: "Bond Markets Unit European Composite Unit (EURCO)"},
	{code: "XBB", numeric: "956", digits: na, name: "Bond Markets Unit European Monetary Unit (E.M.U.-6)"},
	{code: "XBC", numeric: "957", digits: na, name: "Bond Markets Unit European Unit of Account 9 (E.U.A.-9)"},
	{code: "XBD", numeric: "958", digits: na, name: "Bond Markets Unit European Unit of Account 17 (E.U.A.-17)"},
	{code: "XCD", numeric: "951", digits: d2, name: "East Caribbean Dollar", symbol: "$"},
	{code: "XCG", numeric: "532", digits: d2, name: "Caribbean Guilder", symbol: "Cg", validFrom: "2025-03-31"},
	{code: "XDR", numeric: "960", digits: na, name: "SDR (Special Drawing Right)"},
	{code: "XOF", numeric: "952", digits: d0, name: "CFA Franc BCEAO", symbol: "CFA"},
	{code: "XPD", numeric: "964", digits: na, name: "Palladium"},
	{code: "XPF", numeric: "953", digits: d0, name: "CFP Franc", symbol: "₣"},
	{code: "XPT", numeric: "962", digits: na, name: "Platinum"},
	{code: "XSU", numeric: "994", digits: na, name: "Sucre"},
	{code: "XTS", numeric: "963", digits: na, name: "Codes specifically reserved for testing purposes"},
	{code: "XUA", numeric: "965", digits: na, name: "ADB Unit of Account"},
	{code: "XXX", numeric: "999", digits: na, name: "The codes assigned for transactions where no currency is involved"},
	{code: "YER", numeric: "886", digits: d2, name: "Yemeni Rial", symbol: "﷼"},
	{code: "ZAR", numeric: "710", digits: d2, name: "Rand", symbol: "R"},
	{code: "ZMW", numeric: "967", digits: d2, name: "Zambian Kwacha", symbol: "ZK", validFrom: "2013-01-01"},
	{code: "ZWG", numeric: "924", digits: d2, name: "Zimbabwe Gold", symbol: "ZiG", validFrom: "2024-06-25"},
}
