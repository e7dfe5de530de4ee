package winzone

// windowsDisplayNames maps a Windows timezone ID to the display name used
// by Exchange, e.g. "(UTC+01:00) Brussels, Copenhagen, Madrid, Paris".
// The CLDR document carries only the IDs; display names come from the
// Windows registry and change rarely. Unknown IDs get an empty name,
// which EWS accepts.
var windowsDisplayNames = map[string]string{
	"AUS Central Standard Time": "(UTC+09:30) Darwin",
	"AUS Eastern Standard Time": "(UTC+10:00) Canberra, Melbourne, Sydney",
	"Afghanistan Standard Time": "(UTC+04:30) Kabul",
	"Alaskan Standard Time": "(UTC-09:00) Alaska",
	"Aleutian Standard Time": "(UTC-10:00) Aleutian Islands",
	"Altai Standard Time": "(UTC+07:00) Barnaul, Gorno-Altaysk",
	"Arab Standard Time": "(UTC+03:00) Kuwait, Riyadh",
	"Arabian Standard Time": "(UTC+04:00) Abu Dhabi, Muscat",
	"Arabic Standard Time": "(UTC+03:00) Baghdad",
	"Argentina Standard Time": "(UTC-03:00) City of Buenos Aires",
	"Astrakhan Standard Time": "(UTC+04:00) Astrakhan, Ulyanovsk",
	"Atlantic Standard Time": "(UTC-04:00) Atlantic Time (Canada)",
	"Aus Central W. Standard Time": "(UTC+08:45) Eucla",
	"Azerbaijan Standard Time": "(UTC+04:00) Baku",
	"Azores Standard Time": "(UTC-01:00) Azores",
	"Bahia Standard Time": "(UTC-03:00) Salvador",
	"Bangladesh Standard Time": "(UTC+06:00) Dhaka",
	"Belarus Standard Time": "(UTC+03:00) Minsk",
	"Bougainville Standard Time": "(UTC+11:00) Bougainville Island",
	"Canada Central Standard Time": "(UTC-06:00) Saskatchewan",
	"Cape Verde Standard Time": "(UTC-01:00) Cabo Verde Is.",
	"Caucasus Standard Time": "(UTC+04:00) Yerevan",
	"Cen. Australia Standard Time": "(UTC+09:30) Adelaide",
	"Central America Standard Time": "(UTC-06:00) Central America",
	"Central Asia Standard Time": "(UTC+06:00) Astana",
	"Central Brazilian Standard Time": "(UTC-04:00) Cuiaba",
	"Central Europe Standard Time": "(UTC+01:00) Belgrade, Bratislava, Budapest, Ljubljana, Prague",
	"Central European Standard Time": "(UTC+01:00) Sarajevo, Skopje, Warsaw, Zagreb",
	"Central Pacific Standard Time": "(UTC+11:00) Solomon Is., New Caledonia",
	"Central Standard Time": "(UTC-06:00) Central Time (US & Canada)",
	"Central Standard Time (Mexico)": "(UTC-06:00) Guadalajara, Mexico City, Monterrey",
	"Chatham Islands Standard Time": "(UTC+12:45) Chatham Islands",
	"China Standard Time": "(UTC+08:00) Beijing, Chongqing, Hong Kong, Urumqi",
	"Cuba Standard Time": "(UTC-05:00) Havana",
	"Dateline Standard Time": "(UTC-12:00) International Date Line West",
	"E. Africa Standard Time": "(UTC+03:00) Nairobi",
	"E. Australia Standard Time": "(UTC+10:00) Brisbane",
	"E. Europe Standard Time": "(UTC+02:00) Chisinau",
	"E. South America Standard Time": "(UTC-03:00) Brasilia",
	"Easter Island Standard Time": "(UTC-06:00) Easter Island",
	"Eastern Standard Time": "(UTC-05:00) Eastern Time (US & Canada)",
	"Eastern Standard Time (Mexico)": "(UTC-05:00) Chetumal",
	"Egypt Standard Time": "(UTC+02:00) Cairo",
	"Ekaterinburg Standard Time": "(UTC+05:00) Ekaterinburg",
	"FLE Standard Time": "(UTC+02:00) Helsinki, Kyiv, Riga, Sofia, Tallinn, Vilnius",
	"Fiji Standard Time": "(UTC+12:00) Fiji",
	"GMT Standard Time": "(UTC+00:00) Dublin, Edinburgh, Lisbon, London",
	"GTB Standard Time": "(UTC+02:00) Athens, Bucharest",
	"Georgian Standard Time": "(UTC+04:00) Tbilisi",
	"Greenland Standard Time": "(UTC-03:00) Greenland",
	"Greenwich Standard Time": "(UTC+00:00) Monrovia, Reykjavik",
	"Haiti Standard Time": "(UTC-05:00) Haiti",
	"Hawaiian Standard Time": "(UTC-10:00) Hawaii",
	"India Standard Time": "(UTC+05:30) Chennai, Kolkata, Mumbai, New Delhi",
	"Iran Standard Time": "(UTC+03:30) Tehran",
	"Israel Standard Time": "(UTC+02:00) Jerusalem",
	"Jordan Standard Time": "(UTC+02:00) Amman",
	"Kaliningrad Standard Time": "(UTC+02:00) Kaliningrad",
	"Korea Standard Time": "(UTC+09:00) Seoul",
	"Libya Standard Time": "(UTC+02:00) Tripoli",
	"Line Islands Standard Time": "(UTC+14:00) Kiritimati Island",
	"Lord Howe Standard Time": "(UTC+10:30) Lord Howe Island",
	"Magadan Standard Time": "(UTC+11:00) Magadan",
	"Magallanes Standard Time": "(UTC-03:00) Punta Arenas",
	"Marquesas Standard Time": "(UTC-09:30) Marquesas Islands",
	"Mauritius Standard Time": "(UTC+04:00) Port Louis",
	"Middle East Standard Time": "(UTC+02:00) Beirut",
	"Montevideo Standard Time": "(UTC-03:00) Montevideo",
	"Morocco Standard Time": "(UTC+01:00) Casablanca",
	"Mountain Standard Time": "(UTC-07:00) Mountain Time (US & Canada)",
	"Mountain Standard Time (Mexico)": "(UTC-07:00) Chihuahua, La Paz, Mazatlan",
	"Myanmar Standard Time": "(UTC+06:30) Yangon (Rangoon)",
	"N. Central Asia Standard Time": "(UTC+07:00) Novosibirsk",
	"Namibia Standard Time": "(UTC+02:00) Windhoek",
	"Nepal Standard Time": "(UTC+05:45) Kathmandu",
	"New Zealand Standard Time": "(UTC+12:00) Auckland, Wellington",
	"Newfoundland Standard Time": "(UTC-03:30) Newfoundland",
	"Norfolk Standard Time": "(UTC+11:00) Norfolk Island",
	"North Asia East Standard Time": "(UTC+08:00) Irkutsk",
	"North Asia Standard Time": "(UTC+07:00) Krasnoyarsk",
	"North Korea Standard Time": "(UTC+09:00) Pyongyang",
	"Omsk Standard Time": "(UTC+06:00) Omsk",
	"Pacific SA Standard Time": "(UTC-04:00) Santiago",
	"Pacific Standard Time": "(UTC-08:00) Pacific Time (US & Canada)",
	"Pacific Standard Time (Mexico)": "(UTC-08:00) Baja California",
	"Pakistan Standard Time": "(UTC+05:00) Islamabad, Karachi",
	"Paraguay Standard Time": "(UTC-04:00) Asuncion",
	"Qyzylorda Standard Time": "(UTC+05:00) Qyzylorda",
	"Romance Standard Time": "(UTC+01:00) Brussels, Copenhagen, Madrid, Paris",
	"Russia Time Zone 10": "(UTC+11:00) Chokurdakh",
	"Russia Time Zone 11": "(UTC+12:00) Anadyr, Petropavlovsk-Kamchatsky",
	"Russia Time Zone 3": "(UTC+04:00) Izhevsk, Samara",
	"Russian Standard Time": "(UTC+03:00) Moscow, St. Petersburg",
	"SA Eastern Standard Time": "(UTC-03:00) Cayenne, Fortaleza",
	"SA Pacific Standard Time": "(UTC-05:00) Bogota, Lima, Quito, Rio Branco",
	"SA Western Standard Time": "(UTC-04:00) Georgetown, La Paz, Manaus, San Juan",
	"SE Asia Standard Time": "(UTC+07:00) Bangkok, Hanoi, Jakarta",
	"Saint Pierre Standard Time": "(UTC-03:00) Saint Pierre and Miquelon",
	"Sakhalin Standard Time": "(UTC+11:00) Sakhalin",
	"Samoa Standard Time": "(UTC+13:00) Samoa",
	"Sao Tome Standard Time": "(UTC+00:00) Sao Tome",
	"Saratov Standard Time": "(UTC+04:00) Saratov",
	"Singapore Standard Time": "(UTC+08:00) Kuala Lumpur, Singapore",
	"South Africa Standard Time": "(UTC+02:00) Harare, Pretoria",
	"South Sudan Standard Time": "(UTC+02:00) Juba",
	"Sri Lanka Standard Time": "(UTC+05:30) Sri Jayawardenepura",
	"Sudan Standard Time": "(UTC+02:00) Khartoum",
	"Syria Standard Time": "(UTC+02:00) Damascus",
	"Taipei Standard Time": "(UTC+08:00) Taipei",
	"Tasmania Standard Time": "(UTC+10:00) Hobart",
	"Tocantins Standard Time": "(UTC-03:00) Araguaina",
	"Tokyo Standard Time": "(UTC+09:00) Osaka, Sapporo, Tokyo",
	"Tomsk Standard Time": "(UTC+07:00) Tomsk",
	"Tonga Standard Time": "(UTC+13:00) Nuku'alofa",
	"Transbaikal Standard Time": "(UTC+09:00) Chita",
	"Turkey Standard Time": "(UTC+03:00) Istanbul",
	"Turks And Caicos Standard Time": "(UTC-05:00) Turks and Caicos",
	"US Eastern Standard Time": "(UTC-05:00) Indiana (East)",
	"US Mountain Standard Time": "(UTC-07:00) Arizona",
	"UTC": "(UTC) Coordinated Universal Time",
	"UTC+12": "(UTC+12:00) Coordinated Universal Time+12",
	"UTC+13": "(UTC+13:00) Coordinated Universal Time+13",
	"UTC-02": "(UTC-02:00) Coordinated Universal Time-02",
	"UTC-08": "(UTC-08:00) Coordinated Universal Time-08",
	"UTC-09": "(UTC-09:00) Coordinated Universal Time-09",
	"UTC-11": "(UTC-11:00) Coordinated Universal Time-11",
	"Ulaanbaatar Standard Time": "(UTC+08:00) Ulaanbaatar",
	"Venezuela Standard Time": "(UTC-04:00) Caracas",
	"Vladivostok Standard Time": "(UTC+10:00) Vladivostok",
	"Volgograd Standard Time": "(UTC+03:00) Volgograd",
	"W. Australia Standard Time": "(UTC+08:00) Perth",
	"W. Central Africa Standard Time": "(UTC+01:00) West Central Africa",
	"W. Europe Standard Time": "(UTC+01:00) Amsterdam, Berlin, Bern, Rome, Stockholm, Vienna",
	"W. Mongolia Standard Time": "(UTC+07:00) Hovd",
	"West Asia Standard Time": "(UTC+05:00) Ashgabat, Tashkent",
	"West Bank Standard Time": "(UTC+02:00) Gaza, Hebron",
	"West Pacific Standard Time": "(UTC+10:00) Guam, Port Moresby",
	"Yakutsk Standard Time": "(UTC+09:00) Yakutsk",
	"Yukon Standard Time": "(UTC-07:00) Yukon",
}

// goldenZones maps a Windows timezone ID to its CLDR territory-001 zone,
// the representative IANA key used for reverse lookups.
var goldenZones = map[string]string{
	"AUS Central Standard Time": "Australia/Darwin",
	"AUS Eastern Standard Time": "Australia/Sydney",
	"Afghanistan Standard Time": "Asia/Kabul",
	"Alaskan Standard Time": "America/Anchorage",
	"Aleutian Standard Time": "America/Adak",
	"Altai Standard Time": "Asia/Barnaul",
	"Arab Standard Time": "Asia/Riyadh",
	"Arabian Standard Time": "Asia/Dubai",
	"Arabic Standard Time": "Asia/Baghdad",
	"Argentina Standard Time": "America/Buenos_Aires",
	"Astrakhan Standard Time": "Europe/Astrakhan",
	"Atlantic Standard Time": "America/Halifax",
	"Aus Central W. Standard Time": "Australia/Eucla",
	"Azerbaijan Standard Time": "Asia/Baku",
	"Azores Standard Time": "Atlantic/Azores",
	"Bahia Standard Time": "America/Bahia",
	"Bangladesh Standard Time": "Asia/Dhaka",
	"Belarus Standard Time": "Europe/Minsk",
	"Bougainville Standard Time": "Pacific/Bougainville",
	"Canada Central Standard Time": "America/Regina",
	"Cape Verde Standard Time": "Atlantic/Cape_Verde",
	"Caucasus Standard Time": "Asia/Yerevan",
	"Cen. Australia Standard Time": "Australia/Adelaide",
	"Central America Standard Time": "America/Guatemala",
	"Central Asia Standard Time": "Asia/Almaty",
	"Central Brazilian Standard Time": "America/Cuiaba",
	"Central Europe Standard Time": "Europe/Budapest",
	"Central European Standard Time": "Europe/Warsaw",
	"Central Pacific Standard Time": "Pacific/Guadalcanal",
	"Central Standard Time": "America/Chicago",
	"Central Standard Time (Mexico)": "America/Mexico_City",
	"Chatham Islands Standard Time": "Pacific/Chatham",
	"China Standard Time": "Asia/Shanghai",
	"Cuba Standard Time": "America/Havana",
	"Dateline Standard Time": "Etc/GMT+12",
	"E. Africa Standard Time": "Africa/Nairobi",
	"E. Australia Standard Time": "Australia/Brisbane",
	"E. Europe Standard Time": "Europe/Chisinau",
	"E. South America Standard Time": "America/Sao_Paulo",
	"Easter Island Standard Time": "Pacific/Easter",
	"Eastern Standard Time": "America/New_York",
	"Eastern Standard Time (Mexico)": "America/Cancun",
	"Egypt Standard Time": "Africa/Cairo",
	"Ekaterinburg Standard Time": "Asia/Yekaterinburg",
	"FLE Standard Time": "Europe/Kiev",
	"Fiji Standard Time": "Pacific/Fiji",
	"GMT Standard Time": "Europe/London",
	"GTB Standard Time": "Europe/Bucharest",
	"Georgian Standard Time": "Asia/Tbilisi",
	"Greenland Standard Time": "America/Godthab",
	"Greenwich Standard Time": "Atlantic/Reykjavik",
	"Haiti Standard Time": "America/Port-au-Prince",
	"Hawaiian Standard Time": "Pacific/Honolulu",
	"India Standard Time": "Asia/Calcutta",
	"Iran Standard Time": "Asia/Tehran",
	"Israel Standard Time": "Asia/Jerusalem",
	"Jordan Standard Time": "Asia/Amman",
	"Kaliningrad Standard Time": "Europe/Kaliningrad",
	"Korea Standard Time": "Asia/Seoul",
	"Libya Standard Time": "Africa/Tripoli",
	"Line Islands Standard Time": "Pacific/Kiritimati",
	"Lord Howe Standard Time": "Australia/Lord_Howe",
	"Magadan Standard Time": "Asia/Magadan",
	"Magallanes Standard Time": "America/Punta_Arenas",
	"Marquesas Standard Time": "Pacific/Marquesas",
	"Mauritius Standard Time": "Indian/Mauritius",
	"Middle East Standard Time": "Asia/Beirut",
	"Montevideo Standard Time": "America/Montevideo",
	"Morocco Standard Time": "Africa/Casablanca",
	"Mountain Standard Time": "America/Denver",
	"Mountain Standard Time (Mexico)": "America/Chihuahua",
	"Myanmar Standard Time": "Asia/Rangoon",
	"N. Central Asia Standard Time": "Asia/Novosibirsk",
	"Namibia Standard Time": "Africa/Windhoek",
	"Nepal Standard Time": "Asia/Katmandu",
	"New Zealand Standard Time": "Pacific/Auckland",
	"Newfoundland Standard Time": "America/St_Johns",
	"Norfolk Standard Time": "Pacific/Norfolk",
	"North Asia East Standard Time": "Asia/Irkutsk",
	"North Asia Standard Time": "Asia/Krasnoyarsk",
	"North Korea Standard Time": "Asia/Pyongyang",
	"Omsk Standard Time": "Asia/Omsk",
	"Pacific SA Standard Time": "America/Santiago",
	"Pacific Standard Time": "America/Los_Angeles",
	"Pacific Standard Time (Mexico)": "America/Tijuana",
	"Pakistan Standard Time": "Asia/Karachi",
	"Paraguay Standard Time": "America/Asuncion",
	"Qyzylorda Standard Time": "Asia/Qyzylorda",
	"Romance Standard Time": "Europe/Paris",
	"Russia Time Zone 10": "Asia/Srednekolymsk",
	"Russia Time Zone 11": "Asia/Kamchatka",
	"Russia Time Zone 3": "Europe/Samara",
	"Russian Standard Time": "Europe/Moscow",
	"SA Eastern Standard Time": "America/Cayenne",
	"SA Pacific Standard Time": "America/Bogota",
	"SA Western Standard Time": "America/La_Paz",
	"SE Asia Standard Time": "Asia/Bangkok",
	"Saint Pierre Standard Time": "America/Miquelon",
	"Sakhalin Standard Time": "Asia/Sakhalin",
	"Samoa Standard Time": "Pacific/Apia",
	"Sao Tome Standard Time": "Africa/Sao_Tome",
	"Saratov Standard Time": "Europe/Saratov",
	"Singapore Standard Time": "Asia/Singapore",
	"South Africa Standard Time": "Africa/Johannesburg",
	"South Sudan Standard Time": "Africa/Juba",
	"Sri Lanka Standard Time": "Asia/Colombo",
	"Sudan Standard Time": "Africa/Khartoum",
	"Syria Standard Time": "Asia/Damascus",
	"Taipei Standard Time": "Asia/Taipei",
	"Tasmania Standard Time": "Australia/Hobart",
	"Tocantins Standard Time": "America/Araguaina",
	"Tokyo Standard Time": "Asia/Tokyo",
	"Tomsk Standard Time": "Asia/Tomsk",
	"Tonga Standard Time": "Pacific/Tongatapu",
	"Transbaikal Standard Time": "Asia/Chita",
	"Turkey Standard Time": "Europe/Istanbul",
	"Turks And Caicos Standard Time": "America/Grand_Turk",
	"US Eastern Standard Time": "America/Indianapolis",
	"US Mountain Standard Time": "America/Phoenix",
	"UTC": "Etc/UTC",
	"UTC+12": "Etc/GMT-12",
	"UTC+13": "Etc/GMT-13",
	"UTC-02": "Etc/GMT+2",
	"UTC-08": "Etc/GMT+8",
	"UTC-09": "Etc/GMT+9",
	"UTC-11": "Etc/GMT+11",
	"Ulaanbaatar Standard Time": "Asia/Ulaanbaatar",
	"Venezuela Standard Time": "America/Caracas",
	"Vladivostok Standard Time": "Asia/Vladivostok",
	"Volgograd Standard Time": "Europe/Volgograd",
	"W. Australia Standard Time": "Australia/Perth",
	"W. Central Africa Standard Time": "Africa/Lagos",
	"W. Europe Standard Time": "Europe/Berlin",
	"W. Mongolia Standard Time": "Asia/Hovd",
	"West Asia Standard Time": "Asia/Tashkent",
	"West Bank Standard Time": "Asia/Hebron",
	"West Pacific Standard Time": "Pacific/Port_Moresby",
	"Yakutsk Standard Time": "Asia/Yakutsk",
	"Yukon Standard Time": "America/Whitehorse",
}
