package useragent

var browserFields = []Field{Plain(KeyName), Plain(KeyVersion), Plain(KeyMajor)}

func brand(name string) []Field {
	return []Field{Const(KeyName, name), Plain(KeyVersion), Plain(KeyMajor)}
}

// browserRules detects the browser name, full version and major version.
var browserRules = Table{
	// Presto based Opera
	{
		Patterns: rx(
			`(opera\smini)/((\d+)?[\w.-]+)`,
			`(opera\s[mobiletab]+).+version/((\d+)?[\w.-]+)`,
			`(opera).+version/((\d+)?[\w.]+)`,
			`(opera)[/\s]+((\d+)?[\w.]+)`,
		),
		Fields: browserFields,
	},
	// Webkit based Opera
	{
		Patterns: rx(`\s(opr)/((\d+)?[\w.]+)`),
		Fields:   brand("Opera"),
	},
	{
		Patterns: rx(
			`(kindle)/((\d+)?[\w.]+)`,
			`(lunascape|maxthon|netfront|jasmine|blazer)[/\s]?((\d+)?[\w.]+)?`,
			`(avant\s|iemobile|slim|baidu)(?:browser)?[/\s]?((\d+)?[\w.]*)`,
			`(?:ms|\()(ie)\s((\d+)?[\w.]+)`,
			`(rekonq)(/[\w.]+)?`,
			`(chromium|flock|rockmelt|midori|epiphany|silk|skyfire|ovibrowser|bolt|iron)/((\d+)?[\w.-]+)`,
		),
		Fields: browserFields,
	},
	// IE11 dropped the MSIE token
	{
		Patterns: rx(`(trident).+rv[:\s]((\d+)?[\w.]+).+like\sgecko`),
		Fields:   brand("IE"),
	},
	{
		Patterns: rx(`(yabrowser)/((\d+)?[\w.]+)`),
		Fields:   brand("Yandex"),
	},
	{
		Patterns: rx(`(comodo_dragon)/((\d+)?[\w.]+)`),
		Fields:   []Field{Replace(KeyName, underscore, " "), Plain(KeyVersion), Plain(KeyMajor)},
	},
	{
		Patterns: rx(`(chrome|omniweb|arora|[tizenoka]{5}\s?browser)/v?((\d+)?[\w.]+)`),
		Fields:   browserFields,
	},
	{
		Patterns: rx(`(dolfin)/((\d+)?[\w.]+)`),
		Fields:   brand("Dolphin"),
	},
	// Chrome for Android and iOS
	{
		Patterns: rx(`((?:android.+)crmo|crios)/((\d+)?[\w.]+)`),
		Fields:   brand("Chrome"),
	},
	{
		Patterns: rx(`version/((\d+)?[\w.]+).+?mobile/\w+\s(safari)`),
		Fields:   []Field{Plain(KeyVersion), Plain(KeyMajor), Const(KeyName, "Mobile Safari")},
	},
	{
		Patterns: rx(`version/((\d+)?[\w.]+).+?(mobile\s?safari|safari)`),
		Fields:   []Field{Plain(KeyVersion), Plain(KeyMajor), Plain(KeyName)},
	},
	// Safari < 3.0 only exposes the WebKit build
	{
		Patterns: rx(`webkit.+?(mobile\s?safari|safari)((/[\w.]+))`),
		Fields: []Field{
			Plain(KeyName),
			Lookup(KeyMajor, oldSafariMajor),
			Lookup(KeyVersion, oldSafariVersion),
		},
	},
	{
		Patterns: rx(
			`(konqueror)/((\d+)?[\w.]+)`,
			`(webkit|khtml)/((\d+)?[\w.]+)`,
		),
		Fields: browserFields,
	},
	// Gecko based
	{
		Patterns: rx(`(navigator|netscape)/((\d+)?[\w.-]+)`),
		Fields:   brand("Netscape"),
	},
	{
		Patterns: rx(
			`(swiftfox)`,
			`(icedragon|iceweasel|camino|chimera|fennec|maemo\sbrowser|minimo|conkeror)[/\s]?((\d+)?[\w.+]+)`,
			`(firefox|seamonkey|k-meleon|icecat|iceape|firebird|phoenix)/((\d+)?[\w.-]+)`,
			`(mozilla)/((\d+)?[\w.]+).+rv:.+gecko/\d+`,
			`(uc\s?browser|polaris|lynx|dillo|icab|doris|amaya|w3m|netsurf|qqbrowser)[/\s]?((\d+)?[\w.]+)`,
			`(links)\s\(((\d+)?[\w.]+)`,
			`(gobrowser)/?((\d+)?[\w.]+)?`,
			`(ice\s?browser)/v?((\d+)?[\w._]+)`,
			`(mosaic)[/\s]((\d+)?[\w.]+)`,
		),
		Fields: browserFields,
	},
}
