package format

func units(pairs ...string) map[string]string {
	m := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		m[pairs[i]] = pairs[i+1]
	}
	return m
}

var bundled = map[string]*Locale{
	"en": {
		Tag: "en",
		Months: [12]string{
			"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December",
		},
		MonthsShort: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		Weekdays:          [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		WeekdaysShort:     [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
		NumericOrder:      [3]string{"month", "day", "year"},
		DateSeparator:     "/",
		TextPattern:       []string{"weekday", ", ", "month", " ", "day", ", ", "year"},
		WeekdaySeparator:  ", ",
		DateTimeSeparator: ", ",
		Hour12:            true,
		AM:                "AM",
		PM:                "PM",
		Relative: RelativeData{
			Future: "in {0}",
			Past:   "{0} ago",
			Units: map[string]map[string]string{
				"second": units("one", "second", "other", "seconds"),
				"minute": units("one", "minute", "other", "minutes"),
				"hour":   units("one", "hour", "other", "hours"),
				"day":    units("one", "day", "other", "days"),
				"month":  units("one", "month", "other", "months"),
				"year":   units("one", "year", "other", "years"),
			},
			UnitsShort: map[string]map[string]string{
				"second": units("other", "sec."),
				"minute": units("other", "min."),
				"hour":   units("other", "hr."),
				"day":    units("one", "day", "other", "days"),
				"month":  units("other", "mo."),
				"year":   units("other", "yr."),
			},
			Now:       "now",
			Yesterday: "yesterday",
			Today:     "today",
			Tomorrow:  "tomorrow",
		},
	},
	"es": {
		Tag: "es",
		Months: [12]string{
			"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
		},
		MonthsShort: [12]string{
			"ene", "feb", "mar", "abr", "may", "jun",
			"jul", "ago", "sept", "oct", "nov", "dic",
		},
		Weekdays:          [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		WeekdaysShort:     [7]string{"dom", "lun", "mar", "mié", "jue", "vie", "sáb"},
		NumericOrder:      [3]string{"day", "month", "year"},
		DateSeparator:     "/",
		TextPattern:       []string{"weekday", ", ", "day", " de ", "month", " de ", "year"},
		WeekdaySeparator:  ", ",
		DateTimeSeparator: ", ",
		Hour12:            false,
		AM:                "a. m.",
		PM:                "p. m.",
		CurrencyAfter:     true,
		Relative: RelativeData{
			Future: "dentro de {0}",
			Past:   "hace {0}",
			Units: map[string]map[string]string{
				"second": units("one", "segundo", "other", "segundos"),
				"minute": units("one", "minuto", "other", "minutos"),
				"hour":   units("one", "hora", "other", "horas"),
				"day":    units("one", "día", "other", "días"),
				"month":  units("one", "mes", "other", "meses"),
				"year":   units("one", "año", "other", "años"),
			},
			UnitsShort: map[string]map[string]string{
				"second": units("other", "s"),
				"minute": units("other", "min"),
				"hour":   units("other", "h"),
				"day":    units("one", "d", "other", "d"),
				"month":  units("other", "m."),
				"year":   units("other", "a."),
			},
			Now:       "ahora",
			Yesterday: "ayer",
			Today:     "hoy",
			Tomorrow:  "mañana",
		},
	},
	"fr": {
		Tag: "fr",
		Months: [12]string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		},
		MonthsShort: [12]string{
			"janv.", "févr.", "mars", "avr.", "mai", "juin",
			"juil.", "août", "sept.", "oct.", "nov.", "déc.",
		},
		Weekdays:          [7]string{"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
		WeekdaysShort:     [7]string{"dim.", "lun.", "mar.", "mer.", "jeu.", "ven.", "sam."},
		NumericOrder:      [3]string{"day", "month", "year"},
		DateSeparator:     "/",
		TextPattern:       []string{"weekday", " ", "day", " ", "month", " ", "year"},
		WeekdaySeparator:  " ",
		DateTimeSeparator: " ",
		Hour12:            false,
		AM:                "AM",
		PM:                "PM",
		CurrencyAfter:     true,
		Relative: RelativeData{
			Future: "dans {0}",
			Past:   "il y a {0}",
			Units: map[string]map[string]string{
				"second": units("one", "seconde", "other", "secondes"),
				"minute": units("one", "minute", "other", "minutes"),
				"hour":   units("one", "heure", "other", "heures"),
				"day":    units("one", "jour", "other", "jours"),
				"month":  units("one", "mois", "other", "mois"),
				"year":   units("one", "an", "other", "ans"),
			},
			UnitsShort: map[string]map[string]string{
				"second": units("other", "s"),
				"minute": units("other", "min"),
				"hour":   units("other", "h"),
				"day":    units("one", "j", "other", "j"),
				"month":  units("other", "m."),
				"year":   units("other", "a"),
			},
			Now:       "maintenant",
			Yesterday: "hier",
			Today:     "aujourd’hui",
			Tomorrow:  "demain",
		},
	},
	"de": {
		Tag: "de",
		Months: [12]string{
			"Januar", "Februar", "März", "April", "Mai", "Juni",
			"Juli", "August", "September", "Oktober", "November", "Dezember",
		},
		MonthsShort: [12]string{
			"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni",
			"Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez.",
		},
		Weekdays:          [7]string{"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
		WeekdaysShort:     [7]string{"So.", "Mo.", "Di.", "Mi.", "Do.", "Fr.", "Sa."},
		NumericOrder:      [3]string{"day", "month", "year"},
		DateSeparator:     ".",
		TextPattern:       []string{"weekday", ", ", "day", ". ", "month", " ", "year"},
		WeekdaySeparator:  ", ",
		DateTimeSeparator: ", ",
		Hour12:            false,
		AM:                "AM",
		PM:                "PM",
		CurrencyAfter:     true,
		Relative: RelativeData{
			Future: "in {0}",
			Past:   "vor {0}",
			Units: map[string]map[string]string{
				"second": units("one", "Sekunde", "other", "Sekunden"),
				"minute": units("one", "Minute", "other", "Minuten"),
				"hour":   units("one", "Stunde", "other", "Stunden"),
				"day":    units("one", "Tag", "other", "Tagen"),
				"month":  units("one", "Monat", "other", "Monaten"),
				"year":   units("one", "Jahr", "other", "Jahren"),
			},
			UnitsShort: map[string]map[string]string{
				"second": units("other", "Sek."),
				"minute": units("other", "Min."),
				"hour":   units("other", "Std."),
				"day":    units("one", "Tag", "other", "Tagen"),
				"month":  units("other", "Mon."),
				"year":   units("other", "J."),
			},
			Now:       "jetzt",
			Yesterday: "gestern",
			Today:     "heute",
			Tomorrow:  "morgen",
		},
	},
	"pt": {
		Tag: "pt",
		Months: [12]string{
			"janeiro", "fevereiro", "março", "abril", "maio", "junho",
			"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
		},
		MonthsShort: [12]string{
			"jan.", "fev.", "mar.", "abr.", "mai.", "jun.",
			"jul.", "ago.", "set.", "out.", "nov.", "dez.",
		},
		Weekdays:          [7]string{"domingo", "segunda-feira", "terça-feira", "quarta-feira", "quinta-feira", "sexta-feira", "sábado"},
		WeekdaysShort:     [7]string{"dom.", "seg.", "ter.", "qua.", "qui.", "sex.", "sáb."},
		NumericOrder:      [3]string{"day", "month", "year"},
		DateSeparator:     "/",
		TextPattern:       []string{"weekday", ", ", "day", " de ", "month", " de ", "year"},
		WeekdaySeparator:  ", ",
		DateTimeSeparator: " ",
		Hour12:            false,
		AM:                "AM",
		PM:                "PM",
		Relative: RelativeData{
			Future: "em {0}",
			Past:   "há {0}",
			Units: map[string]map[string]string{
				"second": units("one", "segundo", "other", "segundos"),
				"minute": units("one", "minuto", "other", "minutos"),
				"hour":   units("one", "hora", "other", "horas"),
				"day":    units("one", "dia", "other", "dias"),
				"month":  units("one", "mês", "other", "meses"),
				"year":   units("one", "ano", "other", "anos"),
			},
			UnitsShort: map[string]map[string]string{
				"second": units("other", "seg."),
				"minute": units("other", "min."),
				"hour":   units("other", "h"),
				"day":    units("one", "dia", "other", "dias"),
				"month":  units("other", "meses"),
				"year":   units("other", "anos"),
			},
			Now:       "agora",
			Yesterday: "ontem",
			Today:     "hoje",
			Tomorrow:  "amanhã",
		},
	},
	"it": {
		Tag: "it",
		Months: [12]string{
			"gennaio", "febbraio", "marzo", "aprile", "maggio", "giugno",
			"luglio", "agosto", "settembre", "ottobre", "novembre", "dicembre",
		},
		MonthsShort: [12]string{
			"gen", "feb", "mar", "apr", "mag", "giu",
			"lug", "ago", "set", "ott", "nov", "dic",
		},
		Weekdays:          [7]string{"domenica", "lunedì", "martedì", "mercoledì", "giovedì", "venerdì", "sabato"},
		WeekdaysShort:     [7]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"},
		NumericOrder:      [3]string{"day", "month", "year"},
		DateSeparator:     "/",
		TextPattern:       []string{"weekday", " ", "day", " ", "month", " ", "year"},
		WeekdaySeparator:  " ",
		DateTimeSeparator: ", ",
		Hour12:            false,
		AM:                "AM",
		PM:                "PM",
		CurrencyAfter:     true,
		Relative: RelativeData{
			Future: "tra {0}",
			Past:   "{0} fa",
			Units: map[string]map[string]string{
				"second": units("one", "secondo", "other", "secondi"),
				"minute": units("one", "minuto", "other", "minuti"),
				"hour":   units("one", "ora", "other", "ore"),
				"day":    units("one", "giorno", "other", "giorni"),
				"month":  units("one", "mese", "other", "mesi"),
				"year":   units("one", "anno", "other", "anni"),
			},
			UnitsShort: map[string]map[string]string{
				"second": units("other", "sec."),
				"minute": units("other", "min"),
				"hour":   units("other", "h"),
				"day":    units("one", "g", "other", "gg"),
				"month":  units("other", "mesi"),
				"year":   units("other", "anni"),
			},
			Now:       "ora",
			Yesterday: "ieri",
			Today:     "oggi",
			Tomorrow:  "domani",
		},
	},
}
