package useragent

var engineRules = Table{
	{
		Patterns: rx(
			`(presto)/([\w.]+)`,
			`(webkit|trident|netfront|netsurf|amaya|lynx|w3m)/([\w.]+)`,
			`(khtml|tasman|links)[/\s]\(?([\w.]+)`,
			`(icab)[/\s]([23]\.[\d.]+)`,
		),
		Fields: []Field{Plain(KeyName), Plain(KeyVersion)},
	},
	{
		Patterns: rx(`rv:([\w.]+).*(gecko)`),
		Fields:   []Field{Plain(KeyVersion), Plain(KeyName)},
	},
}
