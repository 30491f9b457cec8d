package registry

// historicCurrencies are withdrawn ISO-4217 codes. A code may appear here and
// in the active table when ISO reused it.
var historicCurrencies = []record{
	{code: "ADF", numeric: "250", digits: d2, name: "Andorran Franc", validTo: "2002-02-17"},
	{code: "ADP", numeric: "020", digits: d0, name: "Andorran Peseta", validTo: "2002-02-28"},
	{code: "AFA", numeric: "004", digits: d2, name: "Afghani", validTo: "2003-01-01"},
	{code: "ANG", numeric: "532", digits: d2, name: "Netherlands Antillean Guilder", symbol: "ƒ", validTo: "2025-06-30"},
	{code: "AOK", numeric: "024", digits: d0, name: "Kwanza", validTo: "1991-03-01"},
	{code: "AON", numeric: "024", digits: d0, name: "New Kwanza", validTo: "2000-02-01"},
	{code: "AOR", numeric: "982", digits: d0, name: "Kwanza Reajustado", validTo: "2000-02-01"},
	{code: "ARA", numeric: "032", digits: d2, name: "Austral", symbol: "₳", validTo: "1992-01-01"},
	{code: "ARP", numeric: "032", digits: d2, name: "Peso Argentino", validTo: "1985-07-01"},
	{code: "ATS", numeric: "040", digits: d2, name: "Schilling", symbol: "öS", validTo: "2002-03-01"},
	{code: "AZM", numeric: "031", digits: d2, name: "Azerbaijanian Manat", validTo: "2005-12-31"},
	{code: "BAD", numeric: "070", digits: d2, name: "Dinar", validTo: "1997-07-31"},
	{code: "BEC", numeric: "993", digits: d2, name: "Convertible Franc", validTo: "1990-03-01"},
	{code: "BEF", numeric: "056", digits: d2, name: "Belgian Franc", symbol: "fr.", validTo: "2002-03-01"},
	{code: "BEL", numeric: "992", digits: d2, name: "Financial Franc", validTo: "1990-03-01"},
	{code: "BGJ", numeric: "100", digits: d2, name: "Lev A/52", validTo: "1989-12-31"},
	{code: "BGK", numeric: "100", digits: d2, name: "Lev A/62", validTo: "1989-12-31"},
	{code: "BGL", numeric: "100", digits: d2, name: "Lev", validTo: "2003-11-05"},
	{code: "BOP", numeric: "068", digits: d2, name: "Peso boliviano", validTo: "1987-02-01"},
	{code: "BRB", numeric: "076", digits: d2, name: "Cruzeiro", validTo: "1986-03-01"},
	{code: "BRC", numeric: "076", digits: d2, name: "Cruzado", validTo: "1989-02-01"},
	{code: "BRE", numeric: "076", digits: d2, name: "Cruzeiro", validTo: "1993-03-01"},
	{code: "BRN", numeric: "076", digits: d2, name: "New Cruzado", validTo: "1990-03-01"},
	{code: "BRR", numeric: "987", digits: d2, name: "Cruzeiro Real", validTo: "1994-07-01"},
	{code: "BUK", numeric: "104", digits: d2, name: "Kyat", validTo: "1990-02-28"},
	{code: "BYB", numeric: "112", digits: d2, name: "Belarusian Ruble", validTo: "2001-01-01"},
	{code: "BYR", numeric: "974", digits: d0, name: "Belarusian Ruble", symbol: "Br", validTo: "2017-01-01"},
	{code: "CHC", numeric: "948", digits: d2, name: "WIR Franc (for electronic)", validTo: "2004-11-01"},
	{code: "CSD", numeric: "891", digits: d2, name: "Serbian Dinar", validTo: "2006-10-31"},
	{code: "CSJ", numeric: "203", digits: d2, name: "Krona A/53", validTo: "1989-12-31"},
	{code: "CSK", numeric: "200", digits: d2, name: "Koruna", validTo: "1993-03-01"},
	{code: "CUC", numeric: "931", digits: d2, name: "Peso Convertible", symbol: "CUC$", validTo: "2021-06-30"},
	{code: "CYP", numeric: "196", digits: d2, name: "Cyprus Pound", symbol: "£", validTo: "2008-01-31"},
	{code: "DDM", numeric: "278", digits: d2, name: "Mark der DDR", validTo: "1990-09-30"},
	{code: "DEM", numeric: "276", digits: d2, name: "Deutsche Mark", symbol: "DM", validTo: "2002-03-01"},
	{code: "ECS", numeric: "218", digits: d0, name: "Sucre", validTo: "2000-09-15"},
	{code: "ECV", numeric: "983", digits: d2, name: "Unidad de Valor Constante (UVC)", validTo: "2000-09-09"},
	{code: "EEK", numeric: "233", digits: d2, name: "Kroon", symbol: "kr", validTo: "2011-01-01"},
	{code: "ESA", numeric: "996", digits: d2, name: "Spanish Peseta", validTo: "1981-12-31"},
	{code: "ESB", numeric: "995", digits: d2, name: "\"A\" Account (convertible Peseta Account)", validTo: "1994-12-31"},
	{code: "ESP", numeric: "724", digits: d0, name: "Spanish Peseta", symbol: "₧", validTo: "2002-03-01"},
	{code: "FIM", numeric: "246", digits: d2, name: "Markka", symbol: "mk", validTo: "2002-03-01"},
	{code: "FRF", numeric: "250", digits: d2, name: "French Franc", symbol: "₣", validTo: "2002-02-17"},
	{code: "GEK", numeric: "268", digits: d0, name: "Georgian Coupon", validTo: "1995-09-25"},
	{code: "GHC", numeric: "288", digits: d2, name: "Cedi", validTo: "2008-01-01"},
	{code: "GHP", numeric: "939", digits: d2, name: "Ghana Cedi", validTo: "2007-06-01"},
	{code: "GNE", numeric: "324", digits: d0, name: "Syli", validTo: "1989-12-31"},
	{code: "GNS", numeric: "324", digits: d0, name: "Syli", validTo: "1986-02-28"},
	{code: "GQE", numeric: "226", digits: d0, name: "Ekwele", validTo: "1986-06-30"},
	{code: "GRD", numeric: "300", digits: d0, name: "Drachma", symbol: "₯", validTo: "2002-03-01"},
	{code: "GWE", numeric: "624", digits: d0, name: "Guinea Escudo", validTo: "1978-12-31"},
	{code: "GWP", numeric: "624", digits: d2, name: "Guinea-Bissau Peso", validTo: "1997-05-31"},
	{code: "HRD", numeric: "191", digits: d2, name: "Croatian Dinar", validTo: "1995-01-01"},
	{code: "HRK", numeric: "191", digits: d2, name: "Kuna", symbol: "kn", validTo: "2023-01-01"},
	{code: "IEP", numeric: "372", digits: d2, name: "Irish Pound", symbol: "£", validTo: "2002-02-09"},
	{code: "ILP", numeric: "376", digits: d3, name: "Pound", validTo: "1980-02-22"},
	{code: "ILR", numeric: "376", digits: d2, name: "Old Shekel", validTo: "1989-12-31"},
	{code: "ISJ", numeric: "352", digits: d2, name: "Old Krona", validTo: "1989-12-31"},
	{code: "ITL", numeric: "380", digits: d0, name: "Italian Lira", symbol: "₤", validTo: "2002-03-01"},
	{code: "LAJ", numeric: "418", digits: d2, name: "Pathet Lao Kip", validTo: "1979-12-31"},
	{code: "LSM", numeric: "426", digits: d2, name: "Loti", validTo: "1985-05-31"},
	{code: "LTL", numeric: "440", digits: d2, name: "Lithuanian Litas", symbol: "Lt", validTo: "2014-12-31"},
	{code: "LTT", numeric: "440", digits: d2, name: "Talonas", validTo: "1993-07-31"},
	{code: "LUC", numeric: "989", digits: d2, name: "Luxembourg Convertible Franc", validTo: "1990-03-31"},
	{code: "LUF", numeric: "442", digits: d2, name: "Luxembourg Franc", validTo: "2002-03-01"},
	{code: "LUL", numeric: "988", digits: d2, name: "Luxembourg Financial Franc", validTo: "1990-03-31"},
	{code: "LVL", numeric: "428", digits: d2, name: "Latvian Lats", symbol: "Ls", validTo: "2014-01-16"},
	{code: "LVR", numeric: "428", digits: d2, name: "Latvian Ruble", validTo: "1994-12-31"},
	{code: "MGF", numeric: "450", digits: d0, name: "Malagasy Franc", validTo: "2004-12-31"},
	{code: "MLF", numeric: "466", digits: d0, name: "Mali Franc", validTo: "1984-11-30"},
	{code: "MRO", numeric: "478", digits: z07, name: "Ouguiya", symbol: "UM", validTo: "2017-12-31"},
	{code: "MTL", numeric: "470", digits: d2, name: "Maltese Lira", symbol: "₤", validTo: "2008-01-01"},
	{code: "MTP", numeric: "470", digits: d2, name: "Maltese Pound", validTo: "1983-06-30"},
	{code: "MVQ", numeric: "462", digits: d2, name: "Maldive Rupee", validTo: "1989-12-31"},
	{code: "MXP", numeric: "484", digits: d2, name: "Mexican Peso", validTo: "1993-01-01"},
	{code: "MZE", numeric: "508", digits: d2, name: "Mozambique Escudo", validTo: "1981-12-31"},
	{code: "MZM", numeric: "508", digits: d2, name: "Mozambique Metical", validTo: "2006-06-30"},
	{code: "NIC", numeric: "558", digits: d2, name: "Cordoba", validTo: "1990-10-31"},
	{code: "NLG", numeric: "528", digits: d2, name: "Netherlands Guilder", symbol: "ƒ", validTo: "2002-03-01"},
	{code: "PEH", numeric: "604", digits: d2, name: "Sol", validTo: "1989-12-31"},
	{code: "PEI", numeric: "604", digits: d2, name: "Inti", validTo: "1991-07-01"},
	{code: "PES", numeric: "604", digits: d2, name: "Sol", validTo: "1986-02-28"},
	{code: "PLZ", numeric: "616", digits: d2, name: "Zloty", validTo: "1997-01-01"},
	{code: "PTE", numeric: "620", digits: d0, name: "Portuguese Escudo", validTo: "2002-03-01"},
	{code: "RHD", numeric: "716", digits: d2, name: "Rhodesian Dollar", validTo: "1978-12-31"},
	{code: "ROK", numeric: "642", digits: d2, name: "Leu A/52", validTo: "1989-12-31"},
	{code: "ROL", numeric: "642", digits: d2, name: "Old Leu", validTo: "2005-06-30"},
	{code: "RUR", numeric: "810", digits: d2, name: "Russian Ruble", validTo: "2004-01-01"},
	{code: "SDD", numeric: "736", digits: d2, name: "Sudanese Dinar", validTo: "2007-07-01"},
	{code: "SDP", numeric: "736", digits: d2, name: "Sudanese Pound", validTo: "1998-06-30"},
	{code: "SIT", numeric: "705", digits: d2, name: "Tolar", validTo: "2007-01-01"},
	{code: "SKK", numeric: "703", digits: d2, name: "Slovak Koruna", symbol: "Sk", validTo: "2009-01-01"},
	{code: "SLL", numeric: "694", digits: d2, name: "Leone", symbol: "Le", validTo: "2023-12-31"},
	{code: "SRG", numeric: "740", digits: d2, name: "Surinam Guilder", validTo: "2003-12-31"},
	{code: "STD", numeric: "678", digits: d2, name: "Dobra", symbol: "Db", validTo: "2017-12-31"},
	{code: "SUR", numeric: "810", digits: d2, name: "Rouble", validTo: "1990-12-31"},
	{code: "TJR", numeric: "762", digits: d0, name: "Tajik Ruble", validTo: "2001-04-30"},
	{code: "TMM", numeric: "795", digits: d2, name: "Turkmenistan Manat", validTo: "2009-01-01"},
	{code: "TPE", numeric: "626", digits: d0, name: "Timor Escudo", validTo: "2002-11-30"},
	{code: "TRL", numeric: "792", digits: d0, name: "Old Turkish Lira", validTo: "2005-12-31"},
	{code: "UAK", numeric: "804", digits: d2, name: "Karbovanet", validTo: "1996-09-30"},
	{code: "UGS", numeric: "800", digits: d0, name: "Uganda Shilling", validTo: "1987-12-31"},
	{code: "UGW", numeric: "800", digits: d0, name: "Old Shilling", validTo: "1989-12-31"},
	{code: "USS", numeric: "998", digits: d2, name: "US Dollar (Same day)", symbol: "$", validTo: "2014-03-28"},
	{code: "UYN", numeric: "858", digits: d2, name: "Old Uruguay Peso", validTo: "1989-12-31"},
	{code: "UYP", numeric: "858", digits: d2, name: "Uruguayan Peso", validTo: "1993-03-01"},
	{code: "VEB", numeric: "862", digits: d2, name: "Bolivar", symbol: "Bs.", validTo: "2008-01-01"},
	{code: "VEF", numeric: "937", digits: d2, name: "Bolívar", symbol: "Bs.F.", validTo: "2018-08-20"},
	{code: "VNC", numeric: "704", digits: d2, name: "Old Dong", validTo: "1989-12-31"},
	{code: "XEU", numeric: "954", digits: na, name: "European Currency Unit (E.C.U)", validTo: "1999-01-01"},
	{code: "XFO", numeric: "000", digits: na, name: "Gold-Franc", validTo: "2006-10-27"},
	{code: "XFU", numeric: "000", digits: na, name: "UIC-Franc", validTo: "2013-11-07"},
	{code: "XRE", numeric: "000", digits: na, name: "RINET Funds Code", validTo: "1999-11-30"},
	{code: "YDD", numeric: "720", digits: d2, name: "Yemeni Dinar", validTo: "1991-09-30"},
	{code: "YUD", numeric: "890", digits: d2, name: "New Yugoslavian Dinar", validTo: "1990-01-01"},
	{code: "YUM", numeric: "891", digits: d2, name: "New Dinar", validTo: "2003-07-02"},
	{code: "YUN", numeric: "890", digits: d2, name: "Yugoslavian Dinar", validTo: "1995-11-30"},
	{code: "ZAL", numeric: "991", digits: d2, name: "Financial Rand", validTo: "1995-03-13"},
	{code: "ZMK", numeric: "894", digits: d2, name: "Zambian Kwacha", validTo: "2012-12-31"},
	{code: "ZRN", numeric: "180", digits: d2, name: "New Zaire", validTo: "1999-06-30"},
	{code: "ZRZ", numeric: "180", digits: d3, name: "Zaire", validTo: "1994-02-28"},
	{code: "ZWC", numeric: "716", digits: d2, name: "Rhodesian Dollar", validTo: "1989-12-31"},
	{code: "ZWD", numeric: "716", digits: d2, name: "Zimbabwe Dollar", validTo: "2006-08-01"},
	{code: "ZWL", numeric: "932", digits: d2, name: "Zimbabwe Dollar", validTo: "2024-08-31"},
	{code: "ZWN", numeric: "942", digits: d2, name: "Zimbabwe Dollar (new)", validTo: "2006-08-31"},
	{code: "ZWR", numeric: "935", digits: d2, name: "Zimbabwe Dollar", validTo: "2009-06-01"},
}
