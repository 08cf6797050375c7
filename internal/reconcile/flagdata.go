package reconcile

// localFlagAssets maps ISO2 codes to bundled flag images.
var localFlagAssets = map[string]string{
	"us": "/flags/us.svg", "ug": "/flags/ug.svg", "do": "/flags/do.svg", "hr": "/flags/hr.svg",
	"zw": "/flags/zw.svg", "cu": "/flags/cu.svg", "ro": "/flags/ro.svg", "br": "/flags/br.svg",
	"kr": "/flags/kr.svg", "mx": "/flags/mx.svg", "gb": "/flags/gb.svg", "ca": "/flags/ca.svg",
	"au": "/flags/au.svg", "nz": "/flags/nz.svg", "ru": "/flags/ru.svg", "jp": "/flags/jp.svg",
	"cn": "/flags/cn.svg", "de": "/flags/de.svg", "es": "/flags/es.svg", "it": "/flags/it.svg",
	"se": "/flags/se.svg", "no": "/flags/no.svg", "fi": "/flags/fi.svg", "pl": "/flags/pl.svg",
	"za": "/flags/za.svg", "ng": "/flags/ng.svg", "il": "/flags/il.svg", "ae": "/flags/ae.svg",
	"ie": "/flags/ie.svg", "nl": "/flags/nl.svg", "be": "/flags/be.svg", "ch": "/flags/ch.svg",
	"cz": "/flags/cz.svg", "sk": "/flags/sk.svg", "at": "/flags/at.svg", "ar": "/flags/ar.svg",
	"cl": "/flags/cl.svg", "co": "/flags/co.svg", "pe": "/flags/pe.svg", "ph": "/flags/ph.svg",
	"th": "/flags/th.svg", "vn": "/flags/vn.svg", "in": "/flags/in.svg", "pk": "/flags/pk.svg",
	"ma": "/flags/ma.svg", "cm": "/flags/cm.svg", "gh": "/flags/gh.svg", "pr": "/flags/pr.svg",
	"pt": "/flags/pt.svg", "dk": "/flags/dk.svg", "hu": "/flags/hu.svg", "fr": "/flags/fr.svg",
	"am": "/flags/am.svg", "ge": "/flags/ge.svg", "ps": "/flags/ps.svg", "kg": "/flags/kg.svg",
	"md": "/flags/md.svg", "bh": "/flags/bh.svg", "kz": "/flags/kz.svg", "tj": "/flags/tj.svg",
	"mm": "/flags/mm.svg", "uz": "/flags/uz.svg", "tr": "/flags/tr.svg", "az": "/flags/az.svg",
}

var iso3ToISO2 = map[string]string{
	"USA": "us", "UGA": "ug", "DOM": "do", "HRV": "hr", "CRO": "hr", "ZWE": "zw",
	"CUB": "cu", "ROU": "ro", "ROM": "ro", "BRA": "br", "KOR": "kr", "MEX": "mx",
	"GBR": "gb", "ENG": "gb", "SCO": "gb", "WAL": "gb", "NIR": "gb", "CAN": "ca",
	"AUS": "au", "NZL": "nz", "RUS": "ru", "JPN": "jp", "CHN": "cn", "DEU": "de",
	"GER": "de", "ESP": "es", "ITA": "it", "SWE": "se", "NOR": "no", "FIN": "fi",
	"POL": "pl", "ZAF": "za", "RSA": "za", "NGA": "ng", "ISR": "il", "ARE": "ae",
	"UAE": "ae", "IRL": "ie", "NLD": "nl", "NED": "nl", "BEL": "be", "CHE": "ch",
	"SUI": "ch", "CZE": "cz", "SVK": "sk", "AUT": "at", "ARG": "ar", "CHL": "cl",
	"CHI": "cl", "COL": "co", "PER": "pe", "PHL": "ph", "PHI": "ph", "THA": "th",
	"VNM": "vn", "VIE": "vn", "IND": "in", "PAK": "pk", "MAR": "ma", "CMR": "cm",
	"GHA": "gh", "PRI": "pr", "PUR": "pr", "PRT": "pt", "POR": "pt", "DNK": "dk",
	"DEN": "dk", "HUN": "hu", "FRA": "fr", "ARM": "am", "GEO": "ge", "PSE": "ps",
	"PLE": "ps", "KGZ": "kg", "MDA": "md", "BHR": "bh", "KAZ": "kz", "TJK": "tj",
	"MMR": "mm", "UZB": "uz", "TUR": "tr", "AZE": "az", "SRB": "rs", "UKR": "ua",
	"BLR": "by", "LTU": "lt", "LVA": "lv", "EST": "ee", "ISL": "is", "ECU": "ec",
	"VEN": "ve", "URY": "uy", "PRY": "py", "BOL": "bo", "JAM": "jm", "HTI": "ht",
	"TTO": "tt", "PAN": "pa", "CRI": "cr", "GTM": "gt", "SLV": "sv", "HND": "hn",
	"NIC": "ni", "EGY": "eg", "TUN": "tn", "DZA": "dz", "SEN": "sn", "COD": "cd",
	"AGO": "ao", "KEN": "ke", "ETH": "et", "IRN": "ir", "IRQ": "iq", "AFG": "af",
	"MNG": "mn", "IDN": "id", "MYS": "my", "SGP": "sg", "TWN": "tw", "HKG": "hk",
	"PRK": "kp", "GRC": "gr", "BGR": "bg", "SVN": "si", "BIH": "ba", "MNE": "me",
	"MKD": "mk", "ALB": "al", "KOS": "xk", "LBN": "lb", "JOR": "jo", "SAU": "sa",
	"TKM": "tm",
}

// countryNameToCode keys are lowercased country names, English and German.
var countryNameToCode = map[string]string{
	"united states": "us", "united states of america": "us", "usa": "us", "america": "us",
	"vereinigte staaten": "us", "uganda": "ug", "dominican republic": "do",
	"dominikanische republik": "do", "croatia": "hr", "kroatien": "hr", "zimbabwe": "zw",
	"simbabwe": "zw", "cuba": "cu", "kuba": "cu", "romania": "ro", "rumänien": "ro",
	"brazil": "br", "brasilien": "br", "south korea": "kr", "korea": "kr", "südkorea": "kr",
	"north korea": "kp", "nordkorea": "kp", "mexico": "mx", "mexiko": "mx",
	"united kingdom": "gb", "great britain": "gb", "england": "gb", "scotland": "gb",
	"wales": "gb", "northern ireland": "gb", "großbritannien": "gb", "schottland": "gb",
	"canada": "ca", "kanada": "ca", "australia": "au", "australien": "au",
	"new zealand": "nz", "neuseeland": "nz", "russia": "ru", "russland": "ru",
	"japan": "jp", "china": "cn", "germany": "de", "deutschland": "de", "spain": "es",
	"spanien": "es", "italy": "it", "italien": "it", "sweden": "se", "schweden": "se",
	"norway": "no", "norwegen": "no", "finland": "fi", "finnland": "fi", "poland": "pl",
	"polen": "pl", "south africa": "za", "südafrika": "za", "nigeria": "ng",
	"israel": "il", "united arab emirates": "ae", "vereinigte arabische emirate": "ae",
	"ireland": "ie", "irland": "ie", "netherlands": "nl", "niederlande": "nl",
	"holland": "nl", "belgium": "be", "belgien": "be", "switzerland": "ch",
	"schweiz": "ch", "czech republic": "cz", "czechia": "cz", "tschechien": "cz",
	"slovakia": "sk", "slowakei": "sk", "austria": "at", "österreich": "at",
	"argentina": "ar", "argentinien": "ar", "chile": "cl", "colombia": "co",
	"kolumbien": "co", "peru": "pe", "philippines": "ph", "philippinen": "ph",
	"thailand": "th", "vietnam": "vn", "india": "in", "indien": "in", "pakistan": "pk",
	"morocco": "ma", "marokko": "ma", "cameroon": "cm", "kamerun": "cm", "ghana": "gh",
	"puerto rico": "pr", "portugal": "pt", "denmark": "dk", "dänemark": "dk",
	"hungary": "hu", "ungarn": "hu", "france": "fr", "frankreich": "fr",
	"armenia": "am", "armenien": "am", "georgia": "ge", "georgien": "ge",
	"palestine": "ps", "palästina": "ps", "kyrgyzstan": "kg", "kirgisistan": "kg",
	"moldova": "md", "moldau": "md", "bahrain": "bh", "kazakhstan": "kz",
	"kasachstan": "kz", "tajikistan": "tj", "tadschikistan": "tj", "myanmar": "mm",
	"uzbekistan": "uz", "usbekistan": "uz", "turkey": "tr", "türkei": "tr",
	"turkiye": "tr", "azerbaijan": "az", "aserbaidschan": "az", "serbia": "rs",
	"serbien": "rs", "ukraine": "ua", "belarus": "by", "weißrussland": "by",
	"lithuania": "lt", "litauen": "lt", "latvia": "lv", "lettland": "lv",
	"estonia": "ee", "estland": "ee", "iceland": "is", "island": "is", "ecuador": "ec",
	"venezuela": "ve", "uruguay": "uy", "paraguay": "py", "bolivia": "bo",
	"bolivien": "bo", "jamaica": "jm", "jamaika": "jm", "haiti": "ht",
	"trinidad and tobago": "tt", "panama": "pa", "costa rica": "cr", "guatemala": "gt",
	"el salvador": "sv", "honduras": "hn", "nicaragua": "ni", "egypt": "eg",
	"ägypten": "eg", "tunisia": "tn", "tunesien": "tn", "algeria": "dz",
	"algerien": "dz", "senegal": "sn", "dr congo": "cd", "democratic republic of the congo": "cd",
	"angola": "ao", "kenya": "ke", "kenia": "ke", "ethiopia": "et", "äthiopien": "et",
	"iran": "ir", "iraq": "iq", "irak": "iq", "afghanistan": "af", "mongolia": "mn",
	"mongolei": "mn", "indonesia": "id", "indonesien": "id", "malaysia": "my",
	"singapore": "sg", "singapur": "sg", "taiwan": "tw", "hong kong": "hk",
	"greece": "gr", "griechenland": "gr", "bulgaria": "bg", "bulgarien": "bg",
	"slovenia": "si", "slowenien": "si", "bosnia and herzegovina": "ba",
	"bosnien und herzegowina": "ba", "montenegro": "me", "north macedonia": "mk",
	"nordmazedonien": "mk", "albania": "al", "albanien": "al", "kosovo": "xk",
	"lebanon": "lb", "libanon": "lb", "jordan": "jo", "jordanien": "jo",
	"saudi arabia": "sa", "saudi-arabien": "sa", "turkmenistan": "tm",
}
